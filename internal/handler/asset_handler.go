package handler

import (
	"errors"
	"net/http"

	"drone-site-server/internal/domain"
	"drone-site-server/internal/storage"
)

// assetFolder is the key prefix for editor uploads inside the storage
// bucket, distinct from the bucket name so keys never repeat it.
const assetFolder = "assets"

// AssetHandler accepts media uploads from the authoring UI and returns
// the public URL the editor embeds.
type AssetHandler struct {
	store         domain.BlobStore
	folder        string
	maxUploadSize int64
	logger        domain.Logger
}

// NewAssetHandler creates a new asset handler. folder is the logical key
// prefix for uploaded assets.
func NewAssetHandler(store domain.BlobStore, folder string, maxUploadSize int64, logger domain.Logger) *AssetHandler {
	return &AssetHandler{
		store:         store,
		folder:        folder,
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}
}

// UploadAsset handles POST /editor/assets (multipart form, "file" field).
func (h *AssetHandler) UploadAsset(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := storage.ObjectKey(h.folder, header.Filename)
	if err := h.store.Put(r.Context(), key, file, contentType); err != nil {
		h.logger.Error("asset upload failed", err, "key", key, "content_type", contentType)
		if errors.Is(err, domain.ErrUnsupportedMediaType) {
			writeError(w, http.StatusUnsupportedMediaType, "Unsupported media type")
			return
		}
		writeError(w, http.StatusBadGateway, "Upload failed")
		return
	}

	url := h.store.ResolveURL(key)
	h.logger.Info("asset uploaded", "key", key, "url", url)
	writeJSON(w, http.StatusCreated, map[string]string{"url": url, "key": key})
}
