// Package repository implements persistence against the Supabase data
// platform.
package repository

import (
	"fmt"

	"github.com/supabase-community/supabase-go"

	"drone-site-server/internal/domain"
)

// SupabaseClient wraps the Supabase API client used by the repositories.
type SupabaseClient struct {
	client *supabase.Client
	config domain.Config
	logger domain.Logger
}

// NewSupabaseClient creates a new Supabase client instance.
func NewSupabaseClient(config domain.Config, logger domain.Logger) *SupabaseClient {
	return &SupabaseClient{
		config: config,
		logger: logger,
	}
}

// Initialize establishes a connection to Supabase.
func (s *SupabaseClient) Initialize() error {
	supabaseURL := s.config.GetSupabaseURL()
	supabaseKey := s.config.GetSupabaseKey()

	if supabaseURL == "" || supabaseKey == "" {
		return fmt.Errorf("supabase URL and key must be provided")
	}

	client, err := supabase.NewClient(supabaseURL, supabaseKey, &supabase.ClientOptions{})
	if err != nil {
		return fmt.Errorf("failed to create supabase client: %w", err)
	}

	s.client = client
	s.logger.Info("Supabase client initialized", "url", supabaseURL)
	return nil
}

// Client returns the underlying Supabase client.
func (s *SupabaseClient) Client() (*supabase.Client, error) {
	if s.client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}
	return s.client, nil
}
