package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"drone-site-server/internal/config"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	// Without SUPABASE_URL the container falls back to the in-memory
	// blob store, which is what router tests want.
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_ANON_KEY", "")
	return NewRouter(config.NewContainer())
}

func TestRouter_HealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected health body: %s", rr.Body.String())
	}
}

func TestRouter_UnknownRouteReturns404(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest("GET", "/api/v1/nope", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rr.Code)
	}
}

func TestRouter_AssetUploadKeyOmitsBucketName(t *testing.T) {
	// Keys are prefixed with the asset folder, not the bucket name, so
	// public URLs never repeat the bucket segment.
	t.Setenv("STORAGE_BUCKET", "editor")
	router := newTestRouter(t)

	body, contentType := multipartBody(t, "photo.png", "image/png", "png-bytes")
	req := httptest.NewRequest("POST", "/api/v1/editor/assets", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if !strings.HasPrefix(resp["key"], "assets/") {
		t.Fatalf("expected key under assets/, got %s", resp["key"])
	}
	if strings.Contains(resp["url"], "/editor/editor/") {
		t.Fatalf("bucket segment repeated in url: %s", resp["url"])
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest("OPTIONS", "/api/v1/posts", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
		t.Fatalf("expected CORS allow-origin header, got %q", rr.Header().Get("Access-Control-Allow-Origin"))
	}
}
