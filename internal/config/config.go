package config

import (
	"os"
	"strconv"

	"drone-site-server/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort          string
	LogLevel            string
	SupabaseURL         string
	SupabaseKey         string
	StorageBucket       string
	MaxUploadSize       int64
	WebhookForwardURL   string
	DownloadFunctionURL string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:          getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		SupabaseURL:         getEnvOrDefault("SUPABASE_URL", ""),
		SupabaseKey:         getEnvOrDefault("SUPABASE_ANON_KEY", ""),
		StorageBucket:       getEnvOrDefault("STORAGE_BUCKET", "editor"),
		MaxUploadSize:       getEnvInt64OrDefault("MAX_UPLOAD_SIZE", 10*1024*1024), // 10MB default
		WebhookForwardURL:   getEnvOrDefault("WEBHOOK_FORWARD_URL", ""),
		DownloadFunctionURL: getEnvOrDefault("DOWNLOAD_FUNCTION_URL", ""),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetSupabaseURL returns the Supabase URL
func (c *AppConfig) GetSupabaseURL() string {
	return c.SupabaseURL
}

// GetSupabaseKey returns the Supabase anon key
func (c *AppConfig) GetSupabaseKey() string {
	return c.SupabaseKey
}

// GetStorageBucket returns the editor asset bucket name
func (c *AppConfig) GetStorageBucket() string {
	return c.StorageBucket
}

// GetMaxUploadSize returns the maximum allowed asset upload size
func (c *AppConfig) GetMaxUploadSize() int64 {
	return c.MaxUploadSize
}

// GetWebhookForwardURL returns the webhook relay target
func (c *AppConfig) GetWebhookForwardURL() string {
	return c.WebhookForwardURL
}

// GetDownloadFunctionURL returns the document-download function endpoint
func (c *AppConfig) GetDownloadFunctionURL() string {
	return c.DownloadFunctionURL
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
