package access

import (
	"net/http"

	"github.com/nanambeah/MedPrep-Ghana/internal/auth"
	"github.com/nanambeah/MedPrep-Ghana/internal/config"
)

// RequireRole rejects requests whose token claims do not carry one of roles.
// It must run after auth.AuthMiddleware.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := auth.GetUserClaimsFromContext(r.Context())
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			for _, role := range roles {
				if claims.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			config.WithContext(r.Context()).WithField("user_id", claims.UserID).Warn("Role check failed")
			http.Error(w, "forbidden", http.StatusForbidden)
		})
	}
}
