package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"
)

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (entities.Principal, error)
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p entities.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFromContext(ctx context.Context) (entities.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(entities.Principal)
	return p, ok
}

// RequireUser пропускает любого пользователя с валидным токеном.
func RequireUser(logger *slog.Logger, auth Authenticator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := authenticate(logger, auth, w, r)
			if !ok {
				return
			}
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}

// RequireAdmin пропускает только пользователей из списка администраторов.
func RequireAdmin(logger *slog.Logger, auth Authenticator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := authenticate(logger, auth, w, r)
			if !ok {
				return
			}
			if !p.IsAdmin {
				logger.WarnContext(r.Context(), "non-admin access attempt", slog.String("user_id", p.UserID), slog.String("path", r.URL.Path))
				utils.WriteError(w, "forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}

func authenticate(logger *slog.Logger, auth Authenticator, w http.ResponseWriter, r *http.Request) (entities.Principal, bool) {
	p, err := auth.Authenticate(r.Context(), utils.BearerToken(r))
	if err != nil {
		logger.DebugContext(r.Context(), "auth failed", slog.String("path", r.URL.Path), slog.Any("error", err))
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return entities.Principal{}, false
	}
	return p, true
}
