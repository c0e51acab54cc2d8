package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"drone-site-server/internal/storage"
)

func multipartBody(t *testing.T, filename, contentType, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("failed to create multipart part: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("failed to write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	return &buf, writer.FormDataContentType()
}

func TestAssetHandler_UploadReturnsPublicURL(t *testing.T) {
	store := storage.NewMemoryStore("https://store", "image/*")
	h := NewAssetHandler(store, "editor", 10<<20, NewMockHandlerLogger())

	body, contentType := multipartBody(t, "photo.png", "image/png", "png-bytes")
	req := httptest.NewRequest("POST", "/api/v1/editor/assets", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	h.UploadAsset(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if !strings.HasPrefix(resp["url"], "https://store/editor/") || !strings.HasSuffix(resp["url"], ".png") {
		t.Fatalf("unexpected asset url: %s", resp["url"])
	}
	if store.Count() != 1 {
		t.Fatalf("expected 1 stored object, got %d", store.Count())
	}
	if data, ok := store.Get(resp["key"]); !ok || string(data) != "png-bytes" {
		t.Fatalf("stored object mismatch for key %s", resp["key"])
	}
}

func TestAssetHandler_RejectsDisallowedType(t *testing.T) {
	store := storage.NewMemoryStore("https://store", "image/*", "video/*")
	h := NewAssetHandler(store, "editor", 10<<20, NewMockHandlerLogger())

	body, contentType := multipartBody(t, "doc.pdf", "application/pdf", "%PDF")
	req := httptest.NewRequest("POST", "/api/v1/editor/assets", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	h.UploadAsset(rr, req)

	if rr.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected status 415, got %d", rr.Code)
	}
	if store.Count() != 0 {
		t.Fatalf("expected no stored objects, got %d", store.Count())
	}
}

func TestAssetHandler_MissingFileField(t *testing.T) {
	store := storage.NewMemoryStore("https://store")
	h := NewAssetHandler(store, "editor", 10<<20, NewMockHandlerLogger())

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	_ = writer.WriteField("other", "value")
	_ = writer.Close()

	req := httptest.NewRequest("POST", "/api/v1/editor/assets", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rr := httptest.NewRecorder()
	h.UploadAsset(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
}
