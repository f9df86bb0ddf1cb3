package middleware

import (
	"net/http"

	"go.uber.org/zap"
)

// RequireUserType ensures the signed-in user sees only their own
// dashboard surface: farmers get the survey, listings and monitoring
// routes, consumers get the cart and wishlist routes.
func RequireUserType(allowed string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userType, ok := GetUserType(r.Context())
			if !ok {
				logger.Warn("User type not found in context")
				RespondWithError(w, http.StatusForbidden, "insufficient permissions")
				return
			}

			if userType != allowed {
				logger.Warn("User type not authorized for endpoint",
					zap.String("user_type", userType),
					zap.String("required", allowed),
				)
				RespondWithError(w, http.StatusForbidden, "insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
