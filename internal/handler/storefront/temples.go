package storefront

import (
	"log/slog"
	"net/http"

	"github.com/omkaralabs/divinestore/internal/temple"
)

// TempleHandler serves the static temple directory
type TempleHandler struct {
	directory temple.Directory
	logger    *slog.Logger
}

// NewTempleHandler creates a new temple handler
func NewTempleHandler(directory temple.Directory, logger *slog.Logger) *TempleHandler {
	return &TempleHandler{
		directory: directory,
		logger:    logger,
	}
}

// List handles GET /api/temples?status=
func (h *TempleHandler) List(w http.ResponseWriter, r *http.Request) {
	status := temple.DarshanStatus(r.URL.Query().Get("status"))

	temples, err := h.directory.List(r.Context(), status)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"temples": temples,
		"count":   len(temples),
	})
}

// Detail handles GET /api/temples/{id}
func (h *TempleHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	t, err := h.directory.Get(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, t)
}
