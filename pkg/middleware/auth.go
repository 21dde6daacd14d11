package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/vfg2006/mcc-manager-api/internal/config"
	"github.com/vfg2006/mcc-manager-api/internal/usecases/authenticating"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
	ContextKeyCron contextKey = "cron"
)

// AuthMiddleware exige um JWT válido em todas as rotas, exceto login,
// healthcheck e registro. Rotas de atualização de cache também aceitam o
// segredo compartilhado do agendador externo, via bearer ou query string,
// para invocação não assistida.
func AuthMiddleware(authService authenticating.Authenticator, cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/v1/login" || r.URL.Path == "/healthcheck" || r.URL.Path == "/v1/register" {
				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r)

			if isCronPath(r.URL.Path) {
				secret := token
				if secret == "" {
					secret = r.URL.Query().Get("token")
				}
				if cronSecretMatches(cfg.Auth.CronSecret, secret) {
					ctx := context.WithValue(r.Context(), ContextKeyCron, true)
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
			}

			if token == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			claims, err := authService.ValidateToken(token)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return ""
	}
	return token
}

// isCronPath indica se a rota pode ser invocada pelo agendador externo
func isCronPath(path string) bool {
	if strings.HasPrefix(path, "/v1/cache/") && strings.HasSuffix(path, "/refresh") {
		return true
	}
	return strings.HasPrefix(path, "/v1/cron/")
}

func cronSecretMatches(configured, provided string) bool {
	if configured == "" || provided == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(provided)) == 1
}
