package handler

import (
	"net/http"

	"github.com/fitlog/fitlog/web"
)

// Home serves the embedded landing page.
// GET /
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(web.IndexHTML)
}
