// internal/api/handler/images.go
package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/jstrand/tradelog/internal/api/response"
	"github.com/jstrand/tradelog/internal/core"
	"github.com/jstrand/tradelog/internal/storage/archive"
	"github.com/jstrand/tradelog/internal/storage/trade"
)

// maxImageBytes caps screenshot uploads.
const maxImageBytes = 10 << 20

// ImagesHandler attaches and serves trade screenshots. The blobs are
// opaque; nothing here inspects or re-encodes them.
type ImagesHandler struct {
	store   trade.Store
	archive archive.Storage
}

// NewImagesHandler creates a new images handler.
func NewImagesHandler(store trade.Store, arch archive.Storage) *ImagesHandler {
	return &ImagesHandler{store: store, archive: arch}
}

// Upload stores the request body as the trade's screenshot.
func (h *ImagesHandler) Upload(w http.ResponseWriter, r *http.Request, tradeID string) {
	if _, err := h.store.GetByID(r.Context(), tradeID); err != nil {
		response.Error(w, response.StatusFor(err), err)
		return
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxImageBytes+1))
	if err != nil {
		response.Error(w, http.StatusBadRequest,
			core.WrapError(core.ErrValidation, err))
		return
	}
	if len(data) == 0 {
		response.Error(w, http.StatusBadRequest,
			core.WrapError(core.ErrValidation, fmt.Errorf("empty image body")))
		return
	}
	if len(data) > maxImageBytes {
		response.Error(w, http.StatusRequestEntityTooLarge,
			core.WrapError(core.ErrValidation, fmt.Errorf("image exceeds %d bytes", maxImageBytes)))
		return
	}

	key := archive.ImageKey(tradeID)
	if err := h.archive.Write(r.Context(), key, data); err != nil {
		response.Error(w, http.StatusInternalServerError, err)
		return
	}
	if err := h.store.SetImageKey(r.Context(), tradeID, key); err != nil {
		response.Error(w, response.StatusFor(err), err)
		return
	}

	response.JSON(w, http.StatusCreated, map[string]any{
		"trade_id":  tradeID,
		"image_key": key,
		"size":      len(data),
	})
}

// Get serves the trade's screenshot bytes.
func (h *ImagesHandler) Get(w http.ResponseWriter, r *http.Request, tradeID string) {
	rec, err := h.store.GetByID(r.Context(), tradeID)
	if err != nil {
		response.Error(w, response.StatusFor(err), err)
		return
	}
	if !rec.HasImage() {
		response.Error(w, http.StatusNotFound, core.ErrImageNotFound)
		return
	}

	data, err := h.archive.Read(r.Context(), rec.ImageKey)
	if err != nil {
		response.Error(w, response.StatusFor(err), err)
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
