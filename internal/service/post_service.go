// Package service contains the use-case layer between handlers and
// repositories.
package service

import (
	"encoding/json"
	"regexp"
	"strings"

	"drone-site-server/internal/domain"
	apperrors "drone-site-server/pkg/errors"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// PostService implements domain.PostService.
type PostService struct {
	repo   domain.PostRepository
	logger domain.Logger
}

// NewPostService creates a new post service.
func NewPostService(repo domain.PostRepository, logger domain.Logger) *PostService {
	return &PostService{
		repo:   repo,
		logger: logger,
	}
}

// CreatePost validates and stores a new post. An empty body defaults to an
// empty editor document.
func (s *PostService) CreatePost(post *domain.Post) error {
	if err := s.validate(post); err != nil {
		return err
	}
	if len(post.Body) == 0 {
		post.Body = json.RawMessage("[]")
	}
	if err := s.repo.Create(post); err != nil {
		s.logger.Error("failed to create post", err, "slug", post.Slug)
		return err
	}
	s.logger.Info("post created", "slug", post.Slug)
	return nil
}

// GetPost fetches a post by slug.
func (s *PostService) GetPost(slug string) (*domain.Post, error) {
	if slug == "" {
		return nil, apperrors.NewValidationError("slug cannot be empty")
	}
	return s.repo.GetBySlug(slug)
}

// ListPosts returns posts, optionally restricted to published ones.
func (s *PostService) ListPosts(publishedOnly bool) ([]*domain.Post, error) {
	posts, err := s.repo.List(publishedOnly)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = make([]*domain.Post, 0)
	}
	return posts, nil
}

// UpdatePost validates and rewrites a post.
func (s *PostService) UpdatePost(post *domain.Post) error {
	if post.ID == "" {
		return apperrors.NewValidationError("post id cannot be empty")
	}
	if err := s.validate(post); err != nil {
		return err
	}
	return s.repo.Update(post)
}

// DeletePost removes a post by id.
func (s *PostService) DeletePost(id string) error {
	if id == "" {
		return apperrors.NewValidationError("post id cannot be empty")
	}
	return s.repo.Delete(id)
}

func (s *PostService) validate(post *domain.Post) error {
	if strings.TrimSpace(post.Title) == "" {
		return apperrors.NewValidationError("title cannot be empty")
	}
	if !slugPattern.MatchString(post.Slug) {
		return apperrors.NewValidationError("invalid slug", post.Slug)
	}
	return nil
}
