package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	storage_go "github.com/supabase-community/storage-go"

	"drone-site-server/internal/domain"
)

// SupabaseStore uploads assets into a Supabase storage bucket and resolves
// their public URLs. Timeouts and retries live inside the underlying
// client; callers see any of that only as an ordinary upload failure.
type SupabaseStore struct {
	client  *storage_go.Client
	baseURL string
	bucket  string
	logger  domain.Logger
}

// NewSupabaseStore creates a blob store over the given Supabase project.
func NewSupabaseStore(baseURL, apiKey, bucket string, logger domain.Logger) *SupabaseStore {
	baseURL = strings.TrimSuffix(baseURL, "/")
	return &SupabaseStore{
		client:  storage_go.NewClient(baseURL+"/storage/v1", apiKey, nil),
		baseURL: baseURL,
		bucket:  bucket,
		logger:  logger,
	}
}

// Put uploads the object into the bucket under key.
func (s *SupabaseStore) Put(ctx context.Context, key string, r io.Reader, contentType string) error {
	_, err := s.client.UploadFile(s.bucket, key, r, storage_go.FileOptions{
		ContentType: &contentType,
	})
	if err != nil {
		return fmt.Errorf("storage upload failed: %w", err)
	}
	s.logger.Debug("object uploaded", "bucket", s.bucket, "key", key)
	return nil
}

// ResolveURL returns the public URL for an object in the bucket. Public
// URLs are derived from the key alone, so resolution is idempotent.
func (s *SupabaseStore) ResolveURL(key string) string {
	return s.baseURL + "/storage/v1/object/public/" + s.bucket + "/" + key
}
