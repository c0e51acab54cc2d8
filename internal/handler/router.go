package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"drone-site-server/internal/config"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()

	// API prefix
	api := router.PathPrefix("/api/v1").Subrouter()

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"drone-site-server"}`))
	}).Methods("GET")

	// Initialize handlers
	cfg := container.GetConfig()
	postHandler := NewPostHandler(container.GetPostService(), container.GetLogger())
	documentHandler := NewDocumentHandler(container.GetDocumentRepository(), container.GetLogger())
	assetHandler := NewAssetHandler(container.GetBlobStore(), assetFolder, cfg.GetMaxUploadSize(), container.GetLogger())
	downloadHandler := NewDownloadHandler(cfg.GetDownloadFunctionURL(), cfg.GetSupabaseKey(), container.GetLogger())
	webhookHandler := NewWebhookHandler(cfg.GetWebhookForwardURL(), container.GetLogger())

	api.Use(LoggingMiddleware(container.GetLogger()))

	// Blog post routes
	api.HandleFunc("/posts", postHandler.ListPosts).Methods("GET")
	api.HandleFunc("/posts", postHandler.CreatePost).Methods("POST")
	api.HandleFunc("/posts/{slug}", postHandler.GetPost).Methods("GET")
	api.HandleFunc("/posts/{id}", postHandler.UpdatePost).Methods("PUT")
	api.HandleFunc("/posts/{id}", postHandler.DeletePost).Methods("DELETE")

	// Editor asset upload
	api.HandleFunc("/editor/assets", assetHandler.UploadAsset).Methods("POST")

	// Download catalog and relay
	api.HandleFunc("/documents", documentHandler.ListDocuments).Methods("GET")
	api.HandleFunc("/documents/download", downloadHandler.RequestDownload).Methods("POST")
	api.HandleFunc("/documents/{id}", documentHandler.GetDocument).Methods("GET")

	// Webhook relay
	api.HandleFunc("/webhook", webhookHandler.Forward).Methods("POST")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:5173", // Vite dev server
			"http://localhost:4173", // Vite preview
			"http://localhost:3000", // Alternative dev port
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-CSRF-Token",
		},
		ExposedHeaders: []string{
			"Link",
		},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
