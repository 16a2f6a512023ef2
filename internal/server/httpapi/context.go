package httpapi

import (
	"context"

	"github.com/policia-dp/delegacia-api/internal/logging"
)

// Principal identifies the authenticated agent attached to a request.
type Principal struct {
	AgentID int64
	Cargo   string
}

type principalKey struct{}

func contextWithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the authenticated agent, if any. It only
// reports ok for requests that passed the access-control middleware.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

type loggerKey struct{}

func contextWithLogger(ctx context.Context, l logging.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFrom returns the request-scoped logger carrying the request id, or
// the server's base logger for code running outside the middleware chain.
func (s *Server) loggerFrom(ctx context.Context) logging.Logger {
	if l, ok := ctx.Value(loggerKey{}).(logging.Logger); ok {
		return l
	}
	return s.logger
}
