package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	appError "github.com/fazamuttaqien/statusreply/pkg/app-error"
	"github.com/fazamuttaqien/statusreply/pkg/enum"
	pkgJwt "github.com/fazamuttaqien/statusreply/pkg/jwt"
	"github.com/fazamuttaqien/statusreply/types"

	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware verifies the bearer token and stores the admin email in
// the request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			appError.WriteError(w, appError.NewAppError(enum.AuthTokenNotFound, "Authorization header not found", nil))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			appError.WriteError(w, appError.NewAppError(enum.AuthInvalidToken, "Invalid authorization header format", nil))
			return
		}

		claims, err := pkgJwt.ParseJwtToken(parts[1])
		if err != nil {
			var appErr *appError.AppError
			switch {
			case errors.Is(err, pkgJwt.ErrMissingSecret):
				appErr = appError.NewInternalError("Authentication is not configured", err)
			case errors.Is(err, jwt.ErrTokenExpired):
				appErr = appError.NewAppError(enum.AuthInvalidToken, "Token has expired", err)
			case errors.Is(err, jwt.ErrTokenSignatureInvalid):
				appErr = appError.NewAppError(enum.AuthInvalidToken, "Invalid token signature", err)
			default:
				appErr = appError.NewAppError(enum.AuthInvalidToken, "Invalid token", err)
			}
			appError.WriteError(w, appErr)
			return
		}

		ctx := context.WithValue(r.Context(), types.AdminEmailKey, claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAdminEmailFromContext retrieves the admin email stored by auth middleware.
func GetAdminEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(types.AdminEmailKey).(string)
	return email, ok
}
