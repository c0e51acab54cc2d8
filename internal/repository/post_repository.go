package repository

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"drone-site-server/internal/domain"
)

// SupabasePostRepository implements domain.PostRepository over the posts
// table.
type SupabasePostRepository struct {
	supabaseClient *SupabaseClient
	logger         domain.Logger
}

// NewSupabasePostRepository creates a new Supabase post repository.
func NewSupabasePostRepository(supabaseClient *SupabaseClient, logger domain.Logger) domain.PostRepository {
	return &SupabasePostRepository{
		supabaseClient: supabaseClient,
		logger:         logger,
	}
}

// Create inserts a new post.
func (r *SupabasePostRepository) Create(post *domain.Post) error {
	client, err := r.supabaseClient.Client()
	if err != nil {
		return err
	}

	body := post.Body
	if len(body) == 0 {
		body = json.RawMessage("[]")
	}
	data := map[string]interface{}{
		"title":     post.Title,
		"slug":      post.Slug,
		"body":      body,
		"published": post.Published,
	}
	if post.CoverURL != nil {
		data["cover_url"] = *post.CoverURL
	}

	resp, _, err := client.From("posts").Insert(data, false, "", "representation", "").Execute()
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	var rows []domain.Post
	if err := json.Unmarshal(resp, &rows); err == nil && len(rows) > 0 {
		post.ID = rows[0].ID
		post.CreatedAt = rows[0].CreatedAt
		post.UpdatedAt = rows[0].UpdatedAt
	}
	return nil
}

// GetBySlug fetches a single post by its slug.
func (r *SupabasePostRepository) GetBySlug(slug string) (*domain.Post, error) {
	client, err := r.supabaseClient.Client()
	if err != nil {
		return nil, err
	}

	resp, _, err := client.From("posts").Select("*", "", false).Eq("slug", slug).Limit(1, "").Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	var rows []domain.Post
	if err := json.Unmarshal(resp, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode post: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrPostNotFound
	}
	return &rows[0], nil
}

// List returns posts, most recent first.
func (r *SupabasePostRepository) List(publishedOnly bool) ([]*domain.Post, error) {
	client, err := r.supabaseClient.Client()
	if err != nil {
		return nil, err
	}

	query := client.From("posts").Select("*", "", false)
	if publishedOnly {
		query = query.Eq("published", "true")
	}
	resp, _, err := query.Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	var rows []domain.Post
	if err := json.Unmarshal(resp, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}

	posts := make([]*domain.Post, 0, len(rows))
	for i := range rows {
		posts = append(posts, &rows[i])
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

// Update rewrites the mutable fields of a post.
func (r *SupabasePostRepository) Update(post *domain.Post) error {
	client, err := r.supabaseClient.Client()
	if err != nil {
		return err
	}

	data := map[string]interface{}{
		"title":      post.Title,
		"slug":       post.Slug,
		"body":       post.Body,
		"published":  post.Published,
		"updated_at": time.Now().UTC(),
	}
	if post.CoverURL != nil {
		data["cover_url"] = *post.CoverURL
	}

	_, _, err = client.From("posts").Update(data, "", "").Eq("id", post.ID).Execute()
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	return nil
}

// Delete removes a post by id.
func (r *SupabasePostRepository) Delete(id string) error {
	client, err := r.supabaseClient.Client()
	if err != nil {
		return err
	}

	_, _, err = client.From("posts").Delete("", "").Eq("id", id).Execute()
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}
