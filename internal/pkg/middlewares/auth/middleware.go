package auth

import (
	"net/http"
	"strings"

	"courier-management/internal/entities"
	pkgauth "courier-management/internal/pkg/auth"
	"courier-management/pkg/logger"
)

// Middleware проверяет Bearer-токен и кладет актора в контекст запроса.
// allowedRoles пустой — пускаем любого аутентифицированного.
func Middleware(log handlerLogger, verifier TokenVerifier, allowedRoles ...entities.UserRoleType) func(http.Handler) http.Handler {
	middlewareLog := log.With()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			actor, err := verifier.Verify(token)
			if err != nil {
				middlewareLog.With(
					logger.NewField("error", err),
				).Warn("reject request with invalid token")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if !roleAllowed(actor.Role, allowedRoles) {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			ctx := pkgauth.ContextWithActor(r.Context(), actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return token, token != ""
}

func roleAllowed(role entities.UserRoleType, allowed []entities.UserRoleType) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, allowedRole := range allowed {
		if role == allowedRole {
			return true
		}
	}
	return false
}
