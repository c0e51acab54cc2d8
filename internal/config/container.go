package config

import (
	"drone-site-server/internal/domain"
	"drone-site-server/internal/repository"
	"drone-site-server/internal/service"
	"drone-site-server/internal/storage"
	"drone-site-server/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config             domain.Config
	Logger             domain.Logger
	SupabaseClient     *repository.SupabaseClient
	BlobStore          domain.BlobStore
	PostRepository     domain.PostRepository
	DocumentRepository domain.DocumentRepository
	PostService        domain.PostService
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	supabaseClient := repository.NewSupabaseClient(config, appLogger)

	// Without a configured Supabase project (local dev, CI) assets go to
	// an in-memory store restricted to media types, like the real bucket.
	var blobStore domain.BlobStore
	if config.GetSupabaseURL() != "" {
		blobStore = storage.NewSupabaseStore(
			config.GetSupabaseURL(),
			config.GetSupabaseKey(),
			config.GetStorageBucket(),
			appLogger,
		)
	} else {
		appLogger.Warn("SUPABASE_URL not set, using in-memory blob store")
		blobStore = storage.NewMemoryStore("http://localhost/storage/"+config.GetStorageBucket(), "image/*", "video/*")
	}

	postRepo := repository.NewSupabasePostRepository(supabaseClient, appLogger)
	documentRepo := repository.NewSupabaseDocumentRepository(supabaseClient, appLogger)

	postService := service.NewPostService(postRepo, appLogger)

	return &Container{
		Config:             config,
		Logger:             appLogger,
		SupabaseClient:     supabaseClient,
		BlobStore:          blobStore,
		PostRepository:     postRepo,
		DocumentRepository: documentRepo,
		PostService:        postService,
	}
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}

// GetBlobStore returns the blob store instance
func (c *Container) GetBlobStore() domain.BlobStore {
	return c.BlobStore
}

// GetPostService returns the post service instance
func (c *Container) GetPostService() domain.PostService {
	return c.PostService
}

// GetDocumentRepository returns the document repository instance
func (c *Container) GetDocumentRepository() domain.DocumentRepository {
	return c.DocumentRepository
}
