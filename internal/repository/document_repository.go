package repository

import (
	"encoding/json"
	"fmt"

	"drone-site-server/internal/domain"
)

// SupabaseDocumentRepository implements domain.DocumentRepository over the
// downloadable documents catalog.
type SupabaseDocumentRepository struct {
	supabaseClient *SupabaseClient
	logger         domain.Logger
}

// NewSupabaseDocumentRepository creates a new Supabase document repository.
func NewSupabaseDocumentRepository(supabaseClient *SupabaseClient, logger domain.Logger) domain.DocumentRepository {
	return &SupabaseDocumentRepository{
		supabaseClient: supabaseClient,
		logger:         logger,
	}
}

// List returns the full download catalog.
func (r *SupabaseDocumentRepository) List() ([]*domain.DownloadableDocument, error) {
	client, err := r.supabaseClient.Client()
	if err != nil {
		return nil, err
	}

	resp, _, err := client.From("documents").Select("*", "", false).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	var rows []domain.DownloadableDocument
	if err := json.Unmarshal(resp, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode documents: %w", err)
	}

	docs := make([]*domain.DownloadableDocument, 0, len(rows))
	for i := range rows {
		docs = append(docs, &rows[i])
	}
	return docs, nil
}

// GetByID fetches a single catalog entry.
func (r *SupabaseDocumentRepository) GetByID(id string) (*domain.DownloadableDocument, error) {
	client, err := r.supabaseClient.Client()
	if err != nil {
		return nil, err
	}

	resp, _, err := client.From("documents").Select("*", "", false).Eq("id", id).Limit(1, "").Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	var rows []domain.DownloadableDocument
	if err := json.Unmarshal(resp, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrDocumentNotFound
	}
	return &rows[0], nil
}
