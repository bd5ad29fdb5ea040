package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/altosdelparque/ADP-BookingService/internal/api/handlers"
	"github.com/altosdelparque/ADP-BookingService/internal/domain"
	"github.com/altosdelparque/ADP-BookingService/internal/integrations/identityservice"
)

type identityKey struct{}

// IdentityResolver resolves an account id into a caller identity.
type IdentityResolver interface {
	Resolve(ctx context.Context, userID int64) (*identityservice.Identity, error)
}

// Logger is the logging interface consumed by the middleware.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Identity authenticates requests via the X-User-ID header and resolves
// the caller's role and owner id through the identity service. The
// resolved identity is the input every ownership check runs against; no
// booking or payment operation is reachable without it.
func Identity(resolver IdentityResolver, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get("X-User-ID")
			if raw == "" {
				handlers.RespondError(w, http.StatusUnauthorized, "missing X-User-ID header")
				return
			}

			userID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || userID <= 0 {
				handlers.RespondError(w, http.StatusUnauthorized, "invalid X-User-ID header")
				return
			}

			resolved, err := resolver.Resolve(r.Context(), userID)
			if err != nil {
				if errors.Is(err, identityservice.ErrIdentityNotFound) {
					log.Warn("Identity: user id=%d has no identity record", userID)
					handlers.RespondError(w, http.StatusUnauthorized, "unknown caller")
					return
				}
				log.Error("Identity: failed to resolve user id=%d: %v", userID, err)
				handlers.RespondInternalError(w)
				return
			}

			identity := domain.Identity{
				UserID:  resolved.UserID,
				Role:    resolved.Role,
				OwnerID: resolved.OwnerID,
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), identityKey{}, identity)))
		})
	}
}

// IdentityFromContext returns the identity stored by the Identity
// middleware. The second return is false on routes that skipped it.
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(domain.Identity)
	return id, ok
}
