package middleware

import (
	"context"
	"net/http"
	"watchmarket_server/lib"
	"watchmarket_server/structs"

	"github.com/MonkyMars/gecho"
)

// Context keys for storing user data in request context
type contextKey string

const (
	UserContextKey contextKey = "user"
)

// UserAuthMiddleware protects routes to only logged-in users
func (mw *Middleware) UserAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := lib.ExtractToken(r)
		if err != nil {
			mw.logger.Debug("No session token on request", gecho.Field("error", err))
			gecho.Unauthorized(w, gecho.WithMessage("You must be logged in"), gecho.Send())
			return
		}

		user, err := mw.authService.Authenticate(token)
		if err != nil {
			mw.logger.Warn("Rejected session token", gecho.Field("error", err))
			gecho.Unauthorized(w, gecho.WithMessage("Invalid or expired session"), gecho.Send())
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserFromContext is a helper function to extract the user from request context
func GetUserFromContext(ctx context.Context) (*structs.User, bool) {
	user, ok := ctx.Value(UserContextKey).(*structs.User)
	return user, ok
}
