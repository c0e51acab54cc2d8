package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"drone-site-server/internal/domain"
)

// DocumentHandler serves the downloadable document catalog.
type DocumentHandler struct {
	repo   domain.DocumentRepository
	logger domain.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(repo domain.DocumentRepository, logger domain.Logger) *DocumentHandler {
	return &DocumentHandler{
		repo:   repo,
		logger: logger,
	}
}

// ListDocuments handles GET /documents
func (h *DocumentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.repo.List()
	if err != nil {
		h.logger.Error("failed to list documents", err)
		writeError(w, http.StatusInternalServerError, "Failed to list documents")
		return
	}
	if docs == nil {
		docs = make([]*domain.DownloadableDocument, 0)
	}
	writeJSON(w, http.StatusOK, docs)
}

// GetDocument handles GET /documents/{id}
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	doc, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			writeError(w, http.StatusNotFound, "Document not found")
			return
		}
		h.logger.Error("failed to get document", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Failed to get document")
		return
	}
	writeJSON(w, http.StatusOK, doc)
}
