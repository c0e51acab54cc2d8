package domain

import (
	"encoding/json"
	"time"
)

// Post represents a blog entry authored in the rich-text editor.
// Body holds the serialized editor document (ordered node array).
type Post struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`

	Body     json.RawMessage `json:"body"`
	CoverURL *string         `json:"cover_url,omitempty"`

	Published bool `json:"published"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(post *Post) error
	GetBySlug(slug string) (*Post, error)
	List(publishedOnly bool) ([]*Post, error)
	Update(post *Post) error
	Delete(id string) error
}

// PostService defines the use-case operations for posts.
type PostService interface {
	CreatePost(post *Post) error
	GetPost(slug string) (*Post, error)
	ListPosts(publishedOnly bool) ([]*Post, error)
	UpdatePost(post *Post) error
	DeletePost(id string) error
}
