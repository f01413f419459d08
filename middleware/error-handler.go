package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	appError "github.com/fazamuttaqien/statusreply/pkg/app-error"
)

// ErrorMiddleware recovers from panics in later handlers and replies with
// an error envelope. A panic carrying an *AppError keeps its status.
func ErrorMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			slog.Error("Panic recovered",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Any("panic", rec),
				slog.String("stack", string(debug.Stack())),
			)

			var err error
			switch typedRec := rec.(type) {
			case string:
				err = errors.New(typedRec)
			case error:
				err = typedRec
			default:
				err = fmt.Errorf("unknown panic type: %v", typedRec)
			}

			appError.WriteError(w, err)
		}()

		next.ServeHTTP(w, r)
	})
}
