package handler

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"drone-site-server/internal/domain"
)

// WebhookHandler forwards arbitrary JSON payloads verbatim to a fixed
// third-party endpoint.
type WebhookHandler struct {
	targetURL string
	client    *http.Client
	logger    domain.Logger
}

// NewWebhookHandler creates a new webhook relay handler.
func NewWebhookHandler(targetURL string, logger domain.Logger) *WebhookHandler {
	return &WebhookHandler{
		targetURL: targetURL,
		client:    &http.Client{Timeout: 15 * time.Second},
		logger:    logger,
	}
}

// Forward handles POST /webhook. The body is passed through untouched.
func (h *WebhookHandler) Forward(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	upstream, err := http.NewRequestWithContext(r.Context(), http.MethodPost, h.targetURL, bytes.NewReader(body))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to build upstream request")
		return
	}
	upstream.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(upstream)
	if err != nil {
		h.logger.Error("webhook forward failed", err, "target", h.targetURL)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		h.logger.Warn("webhook target rejected payload", "status", resp.StatusCode)
		writeError(w, http.StatusInternalServerError, "Webhook delivery failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
