package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"drone-site-server/internal/domain"
)

// DownloadHandler relays document-download requests to the server-side
// function that records the lead and sends the file.
type DownloadHandler struct {
	functionURL string
	apiKey      string
	client      *http.Client
	logger      domain.Logger
}

// NewDownloadHandler creates a new download relay handler.
func NewDownloadHandler(functionURL, apiKey string, logger domain.Logger) *DownloadHandler {
	return &DownloadHandler{
		functionURL: functionURL,
		apiKey:      apiKey,
		client:      &http.Client{Timeout: 15 * time.Second},
		logger:      logger,
	}
}

// RequestDownload handles POST /documents/download. The request body is
// validated, forwarded upstream, and the upstream error message is
// propagated verbatim when available.
func (h *DownloadHandler) RequestDownload(w http.ResponseWriter, r *http.Request) {
	var req domain.DownloadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	payload, err := json.Marshal(req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to encode request")
		return
	}

	upstream, err := http.NewRequestWithContext(r.Context(), http.MethodPost, h.functionURL, bytes.NewReader(payload))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to build upstream request")
		return
	}
	upstream.Header.Set("Content-Type", "application/json")
	if h.apiKey != "" {
		upstream.Header.Set("Authorization", "Bearer "+h.apiKey)
	}

	resp, err := h.client.Do(upstream)
	if err != nil {
		h.logger.Error("download relay failed", err, "document_id", req.Document.ID)
		writeError(w, http.StatusBadGateway, "Failed to reach download service")
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		writeError(w, http.StatusBadGateway, "Failed to read upstream response")
		return
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		// Malformed upstream body: surface a generic failure, commit nothing.
		h.logger.Warn("download service returned non-JSON body", "status", resp.StatusCode)
		writeError(w, http.StatusBadGateway, "Download service returned an invalid response")
		return
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := "Download request failed"
		if errMsg, ok := parsed["error"].(string); ok && errMsg != "" {
			message = errMsg
		}
		writeError(w, resp.StatusCode, message)
		return
	}

	h.logger.Info("download request relayed", "document_id", req.Document.ID, "email", req.Email)
	writeJSON(w, http.StatusOK, parsed)
}
