package middleware

import (
	"context"
	"mesero_server/lib"
	"mesero_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

type contextKey string

const ClaimsContextKey contextKey = "claims"

// Authenticated protects routes to logged-in staff only.
func (mw *Middleware) Authenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := lib.ExtractClaims(r, mw.authService.GetAccessTokenSecret())
		if err != nil {
			mw.logger.Warn("Failed to extract claims from request", gecho.Field("error", err))
			gecho.Unauthorized(w, gecho.WithMessage("Invalid or missing access token"), gecho.Send())
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole restricts a route to one staff role. Use after Authenticated.
func (mw *Middleware) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetClaimsFromContext(r.Context())
			if !ok {
				gecho.Forbidden(w, gecho.WithMessage("Access denied"), gecho.Send())
				return
			}

			if claims.Role != role {
				mw.logger.Warn("Role check failed",
					gecho.Field("employee_id", claims.Sub),
					gecho.Field("role", claims.Role),
					gecho.Field("required", role),
				)
				gecho.Forbidden(w, gecho.WithMessage("Access denied"), gecho.Send())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetClaimsFromContext is a helper function to extract the claims from request context
func GetClaimsFromContext(ctx context.Context) (*structs.AuthClaims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*structs.AuthClaims)
	return claims, ok
}
