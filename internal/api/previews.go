package api

import (
	"net/http"

	"github.com/Ramoniswack/vinc/internal/imaging"
)

// PreviewsHandler handles admin photo uploads and preview serving.
type PreviewsHandler struct {
	Previews *imaging.PreviewCache
}

// Upload handles POST /api/admin/previews. The processed upload is cached in
// memory and only its reference string travels onward into the catalog.
func (h *PreviewsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	// Limit to 5 MB.
	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)

	if err := r.ParseMultipartForm(5 << 20); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "image file required")
		return
	}
	defer file.Close()

	result, err := imaging.Process(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	ref := h.Previews.Put(header.Filename, result)
	jsonResponse(w, http.StatusCreated, map[string]string{"reference": ref})
}

// Get handles GET /api/previews/{id}.
func (h *PreviewsHandler) Get(w http.ResponseWriter, r *http.Request) {
	preview, ok := h.Previews.Get(r.PathValue("id"))
	if !ok {
		jsonError(w, http.StatusNotFound, "no such preview")
		return
	}

	w.Header().Set("Content-Type", preview.MIME)
	w.Header().Set("Cache-Control", "no-store")
	w.Write(preview.Data)
}

// Delete handles DELETE /api/admin/previews/{id}.
func (h *PreviewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.Previews.Remove(r.PathValue("id"))
	jsonResponse(w, http.StatusOK, map[string]string{"message": "preview discarded"})
}
