package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/fazamuttaqien/statusreply/pkg/enum"
	pkgValidator "github.com/fazamuttaqien/statusreply/pkg/validator"
	"github.com/fazamuttaqien/statusreply/types"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
)

const maxBodyBytes = 1 << 20

// valuesDecoder maps query and path values onto DTO fields by their json tags.
var valuesDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.SetAliasTag("json")
	d.IgnoreUnknownKeys(true)
	return d
}()

// WithValidation creates middleware to validate request data against a struct (DTO).
// T is the type of the struct to validate against.
// source indicates where to find the data ("body", "query", "params").
func WithValidation[T any](source string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var dto T

			var err error
			switch source {
			case pkgValidator.SourceBody:
				err = decodeBody(w, r, &dto)
			case pkgValidator.SourceQuery:
				err = valuesDecoder.Decode(&dto, r.URL.Query())
			case pkgValidator.SourceParams:
				err = valuesDecoder.Decode(&dto, routeParams(r))
			default:
				pkgValidator.WriteValidationErrorResponse(w, http.StatusInternalServerError, enum.InternalServerError, "Internal server error: Invalid validation source.", nil)
				return
			}
			if err != nil {
				slog.Debug("Request decode failed", slog.String("source", source), slog.String("error", err.Error()))
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					pkgValidator.WriteValidationErrorResponse(w, http.StatusRequestEntityTooLarge, enum.PayloadTooLarge,
						fmt.Sprintf("Request body exceeds %d bytes.", tooLarge.Limit), nil)
					return
				}
				pkgValidator.WriteValidationErrorResponse(w, http.StatusBadRequest, enum.ValidationError, "Invalid request "+source+".", nil)
				return
			}

			validationErr := pkgValidator.Validate.Struct(dto)
			if validationErr != nil {
				var ve validator.ValidationErrors
				if errors.As(validationErr, &ve) {
					formattedErrors := pkgValidator.FormatValidationErrors(ve)
					pkgValidator.WriteValidationErrorResponse(w, http.StatusBadRequest, enum.ValidationError, "Validation failed", formattedErrors)
					return
				}
				slog.Error("Unexpected validation error", slog.String("error", validationErr.Error()))
				pkgValidator.WriteValidationErrorResponse(w, http.StatusInternalServerError, enum.InternalServerError, "Error during validation process.", nil)
				return
			}

			ctx := context.WithValue(r.Context(), types.ValidatedDTOKey[T](), dto)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return errors.New("request body is empty")
	}
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}
	if decoder.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

func routeParams(r *http.Request) map[string][]string {
	values := map[string][]string{}
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		for i, key := range rctx.URLParams.Keys {
			values[key] = []string{rctx.URLParams.Values[i]}
		}
	}
	return values
}
