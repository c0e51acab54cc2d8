package config

import "testing"

const defaultMaxUploadSize int64 = 10 * 1024 * 1024

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_ANON_KEY", "")
	t.Setenv("STORAGE_BUCKET", "")
	t.Setenv("MAX_UPLOAD_SIZE", "")
	t.Setenv("WEBHOOK_FORWARD_URL", "")
	t.Setenv("DOWNLOAD_FUNCTION_URL", "")

	cfg := NewConfig()

	if cfg.GetServerPort() != "8080" {
		t.Fatalf("expected default server port 8080, got %s", cfg.GetServerPort())
	}
	if cfg.GetLogLevel() != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.GetLogLevel())
	}
	if cfg.GetStorageBucket() != "editor" {
		t.Fatalf("expected default storage bucket editor, got %s", cfg.GetStorageBucket())
	}
	if cfg.GetMaxUploadSize() != defaultMaxUploadSize {
		t.Fatalf("expected default max upload size %d, got %d", defaultMaxUploadSize, cfg.GetMaxUploadSize())
	}
	if cfg.GetSupabaseURL() != "" {
		t.Fatalf("expected default supabase url empty, got %s", cfg.GetSupabaseURL())
	}
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SUPABASE_URL", "http://localhost:54321")
	t.Setenv("SUPABASE_ANON_KEY", "test-key")
	t.Setenv("STORAGE_BUCKET", "media")
	t.Setenv("MAX_UPLOAD_SIZE", "12345")
	t.Setenv("WEBHOOK_FORWARD_URL", "https://hooks.example.com/abc")
	t.Setenv("DOWNLOAD_FUNCTION_URL", "http://localhost:54321/functions/v1/send-document")

	cfg := NewConfig()

	if cfg.GetServerPort() != "9090" {
		t.Fatalf("expected PORT to win over SERVER_PORT, got %s", cfg.GetServerPort())
	}
	if cfg.GetLogLevel() != "debug" {
		t.Fatalf("expected log level debug, got %s", cfg.GetLogLevel())
	}
	if cfg.GetSupabaseURL() != "http://localhost:54321" {
		t.Fatalf("unexpected supabase url: %s", cfg.GetSupabaseURL())
	}
	if cfg.GetSupabaseKey() != "test-key" {
		t.Fatalf("unexpected supabase key: %s", cfg.GetSupabaseKey())
	}
	if cfg.GetStorageBucket() != "media" {
		t.Fatalf("unexpected storage bucket: %s", cfg.GetStorageBucket())
	}
	if cfg.GetMaxUploadSize() != 12345 {
		t.Fatalf("unexpected max upload size: %d", cfg.GetMaxUploadSize())
	}
	if cfg.GetWebhookForwardURL() != "https://hooks.example.com/abc" {
		t.Fatalf("unexpected webhook url: %s", cfg.GetWebhookForwardURL())
	}
	if cfg.GetDownloadFunctionURL() != "http://localhost:54321/functions/v1/send-document" {
		t.Fatalf("unexpected download function url: %s", cfg.GetDownloadFunctionURL())
	}
}

func TestNewConfig_InvalidMaxUploadSizeFallsBack(t *testing.T) {
	t.Setenv("MAX_UPLOAD_SIZE", "not-a-number")

	cfg := NewConfig()
	if cfg.GetMaxUploadSize() != defaultMaxUploadSize {
		t.Fatalf("expected fallback to default, got %d", cfg.GetMaxUploadSize())
	}
}
