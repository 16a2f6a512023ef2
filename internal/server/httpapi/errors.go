package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/policia-dp/delegacia-api/internal/apperror"
)

// handlerFunc is an http.HandlerFunc that may fail. Errors are collapsed
// into the uniform response object by handle; handlers never write error
// bodies themselves.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// handle is the terminal error handler: every failure in the pipeline ends
// up here exactly once.
func (s *Server) handle(h handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			s.writeError(w, r, err)
		}
	})
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	ae := apperror.FromError(err)
	if ae.Status >= http.StatusInternalServerError {
		// The cause is logged here and never echoed to the client.
		s.loggerFrom(r.Context()).Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	writeJSON(w, ae.Status, ae)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
