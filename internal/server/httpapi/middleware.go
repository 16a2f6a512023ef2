package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/policia-dp/delegacia-api/internal/apperror"
	"github.com/policia-dp/delegacia-api/internal/common"
	"github.com/policia-dp/delegacia-api/internal/server/auth"
)

// bearerToken extracts the token from "Authorization: Bearer <token>".
// The empty string means no usable credential was presented.
func bearerToken(r *http.Request) string {
	h := r.Header.Get(common.AuthorizationHeaderName)
	if h == "" || !strings.HasPrefix(h, common.BearerScheme) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, common.BearerScheme))
}

// protect rejects requests without a valid access token. Expired and
// otherwise invalid tokens produce the same client-facing 401; the log line
// keeps them apart.
func (s *Server) protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			s.writeError(w, r, apperror.Unauthenticated(apperror.MsgNoToken))
			return
		}

		claims, err := auth.ParseToken(token, s.jwtSecret)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				s.loggerFrom(r.Context()).Info(r.Context(), "rejected expired token", "path", r.URL.Path)
			} else {
				s.loggerFrom(r.Context()).Info(r.Context(), "rejected invalid token", "path", r.URL.Path)
			}
			s.writeError(w, r, apperror.Unauthenticated(apperror.MsgInvalidToken))
			return
		}

		ctx := contextWithPrincipal(r.Context(), Principal{AgentID: claims.AgentID, Cargo: claims.Cargo})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// statusRecorder captures the status code written by the handler chain.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// withRequestLogging tags every request with a fresh request id. The tagged
// logger rides the request context so error and rejection log lines can be
// correlated with the request line written here.
func (s *Server) withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		log := s.logger.With("request_id", uuid.NewString())
		r = r.WithContext(contextWithLogger(r.Context(), log))
		next.ServeHTTP(rec, r)

		log.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// recoverPanics converts an unexpected handler panic into the uniform 500
// response instead of letting net/http abort the connection.
func (s *Server) recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.loggerFrom(r.Context()).Error(r.Context(), "panic recovered",
					"method", r.Method, "path", r.URL.Path, "panic", rec)
				writeJSON(w, http.StatusInternalServerError, apperror.Internal())
			}
		}()
		next.ServeHTTP(w, r)
	})
}
