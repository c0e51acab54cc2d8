// Package handler provides HTTP handlers for the API.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"drone-site-server/internal/domain"
	apperrors "drone-site-server/pkg/errors"
)

// PostHandler handles blog post HTTP requests
type PostHandler struct {
	postService domain.PostService
	logger      domain.Logger
}

// NewPostHandler creates a new post handler
func NewPostHandler(postService domain.PostService, logger domain.Logger) *PostHandler {
	return &PostHandler{
		postService: postService,
		logger:      logger,
	}
}

// CreatePost handles POST /posts
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var post domain.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.postService.CreatePost(&post); err != nil {
		writeError(w, apperrors.GetStatusCode(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

// GetPost handles GET /posts/{slug}
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	post, err := h.postService.GetPost(slug)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			writeError(w, http.StatusNotFound, "Post not found")
			return
		}
		writeError(w, apperrors.GetStatusCode(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// ListPosts handles GET /posts; ?published=true restricts to published.
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	publishedOnly := r.URL.Query().Get("published") == "true"

	posts, err := h.postService.ListPosts(publishedOnly)
	if err != nil {
		h.logger.Error("failed to list posts", err)
		writeError(w, http.StatusInternalServerError, "Failed to list posts")
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

// UpdatePost handles PUT /posts/{id}
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var post domain.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	post.ID = id

	if err := h.postService.UpdatePost(&post); err != nil {
		writeError(w, apperrors.GetStatusCode(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// DeletePost handles DELETE /posts/{id}
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.postService.DeletePost(id); err != nil {
		writeError(w, apperrors.GetStatusCode(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
