package api

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/phrazzld/typeflow-api/internal/platform/logger"
	"github.com/phrazzld/typeflow-api/internal/web"
)

// PageHandler serves the typing practice page.
type PageHandler struct {
	page *web.Page
}

// NewPageHandler parses the embedded page template.
func NewPageHandler() (*PageHandler, error) {
	page, err := web.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to load practice page: %w", err)
	}
	return &PageHandler{page: page}, nil
}

// Index handles GET / requests
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.page.Render(&buf); err != nil {
		HandleAPIError(w, r, err, "Failed to render page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logger.FromContext(r.Context()).Debug("failed to write page", "error", err)
	}
}

// Health handles GET /health requests
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
