package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	appError "github.com/fazamuttaqien/statusreply/pkg/app-error"
	"github.com/fazamuttaqien/statusreply/pkg/enum"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// Timeout cancels the request context after timeout. Handlers must watch
// ctx.Done(); if the deadline passes before they write anything, a 504 error
// envelope is sent.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				cancel()
				if errors.Is(ctx.Err(), context.DeadlineExceeded) && ww.Status() == 0 {
					appError.WriteError(ww, appError.NewAppError(enum.RequestTimeout, "", ctx.Err()))
				}
			}()

			next.ServeHTTP(ww, r.WithContext(ctx))
		})
	}
}
