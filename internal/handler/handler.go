// Package handler provides HTTP request handlers.
package handler

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Handler serves the endpoints that need no service dependencies.
type Handler struct{}

// New creates a new Handler instance.
func New() *Handler {
	return &Handler{}
}

// NotFound handles 404 responses.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"error": "resource not found",
	}
	writeJSON(w, http.StatusNotFound, response)
}

// MethodNotAllowed handles 405 responses.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"error": "method not allowed",
	}
	writeJSON(w, http.StatusMethodNotAllowed, response)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes a plain-text error response.
// Failure bodies are human-readable text, not structured JSON.
func writeError(w http.ResponseWriter, status int, message string) {
	http.Error(w, message, status)
}

// isFormRequest reports whether the request carries an HTML-form body.
// The API accepts both JSON and form-encoded bodies since the landing page
// submits plain forms.
func isFormRequest(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return strings.Contains(ct, "application/x-www-form-urlencoded") ||
		strings.Contains(ct, "multipart/form-data")
}
