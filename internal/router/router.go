package router

import (
	"net/http"
	"time"

	"github.com/fazamuttaqien/statusreply/internal/dto"
	"github.com/fazamuttaqien/statusreply/internal/presenter"
	"github.com/fazamuttaqien/statusreply/middleware"
	appError "github.com/fazamuttaqien/statusreply/pkg/app-error"
	"github.com/fazamuttaqien/statusreply/pkg/enum"
	"github.com/fazamuttaqien/statusreply/pkg/validator"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Options struct {
	FrontendOrigin string
	RequestTimeout time.Duration
}

func New(presenters presenter.Presenter, opts Options) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{opts.FrontendOrigin},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authMiddleware := middleware.AuthMiddleware
	errorHandlerMiddleware := middleware.ErrorMiddleware

	// Global middleware stack
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}
	r.Use(errorHandlerMiddleware)
	r.Use(securityHeadersMiddleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		appError.WriteError(w, appError.NewAppError(enum.RouteNotFound, "", nil))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		appError.WriteError(w, appError.NewAppError(enum.MethodNotAllowed, "", nil))
	})

	c := presenters.Controllers

	r.Route("/api", func(r chi.Router) {
		// --- Status phrase routes (Public) ---
		r.Route("/status", func(r chi.Router) {
			r.Get("/", c.ListStatusPhrases)
			r.Route("/{code}", func(r chi.Router) {
				r.Use(middleware.WithValidation[dto.StatusCodeParamsDto](validator.SourceParams))
				r.Get("/", c.GetStatusPhrase)
				r.Get("/reply", c.ReplyWithStatus)
			})
		})

		// --- Auth Routes (Public) ---
		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.WithValidation[dto.LoginDto](validator.SourceBody)).
				Post("/login", c.Login)
		})

		// --- Contact Routes (Public) ---
		r.With(middleware.WithValidation[dto.CreateContactMessageDto](validator.SourceBody)).
			Post("/contactus", c.CreateContactMessage)

		// --- Message Routes (Admin) ---
		r.Route("/messages", func(r chi.Router) {
			r.Use(authMiddleware)

			r.With(middleware.WithValidation[dto.ListContactMessagesDto](validator.SourceQuery)).
				Get("/", c.ListContactMessages)

			r.With(
				middleware.WithValidation[dto.ContactMessageParamsDto](validator.SourceParams),
				middleware.WithValidation[dto.UpdateContactStatusDto](validator.SourceBody),
			).Patch("/{messageId}/status", c.UpdateContactMessageStatus)
		})
	})

	// Health check endpoint for monitoring
	r.Get("/health", c.Health)

	return r
}

// Enhanced security headers middleware
func securityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		w.Header().Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		// API responses are never cached
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")

		next.ServeHTTP(w, r)
	})
}
