package validator

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/fazamuttaqien/statusreply/helper"
	"github.com/fazamuttaqien/statusreply/pkg/enum"
	"github.com/fazamuttaqien/statusreply/pkg/response"
	"github.com/fazamuttaqien/statusreply/types"
	"github.com/go-playground/validator/v10"
)

const (
	SourceBody   = "body"
	SourceQuery  = "query"
	SourceParams = "params"
)

// ValidationErrorDetail describes a single validation failure.
type ValidationErrorDetail struct {
	Field   string `json:"field"`
	Message any    `json:"message"`
}

// Validator instance (create once for efficiency)
var Validate *validator.Validate

func init() {
	Validate = validator.New()

	// Report field names using json tags
	Validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = Validate.RegisterValidation("contact_status", func(fl validator.FieldLevel) bool {
		return enum.ContactStatus(fl.Field().String()).IsValid()
	})
}

// FormatValidationErrors translates validator errors into field details.
func FormatValidationErrors(ve validator.ValidationErrors) []ValidationErrorDetail {
	out := make([]ValidationErrorDetail, len(ve))
	for i, fe := range ve {
		out[i] = ValidationErrorDetail{
			Field:   fe.Field(),
			Message: ValidationMessageForTag(fe),
		}
	}
	return out
}

// ValidationMessageForTag provides a basic error message for a validation tag.
func ValidationMessageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min", "gte":
		return fmt.Sprintf("Value must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("Value must be at most %s", fe.Param())
	case "max":
		return fmt.Sprintf("Value must not exceed %s", fe.Param())
	case "contact_status":
		return fmt.Sprintf("Value must be one of: %s", strings.Join(enum.ContactStatusValues(), ", "))
	default:
		return fmt.Sprintf("Invalid value (validation: %s)", fe.Tag())
	}
}

// GetValidatedDTOFromContext retrieves the validated DTO stored by validation middleware.
// Returns zero value of T and false if not found or type mismatch.
func GetValidatedDTOFromContext[T any](ctx context.Context) (T, bool) {
	dto, ok := ctx.Value(types.ValidatedDTOKey[T]()).(T)
	return dto, ok
}

// ValidationErrorReply builds the error envelope for a failed validation:
// the usual message/error pair plus "errorCode" and, if any, "errors".
func ValidationErrorReply(code int, errorCode enum.ErrorCode, message string, detail []ValidationErrorDetail) *response.Builder {
	b := response.ErrorMessage(message, code).Add("errorCode", errorCode)
	if detail != nil {
		b.Add("errors", detail)
	}
	return b
}

// WriteValidationErrorResponse writes ValidationErrorReply to w.
func WriteValidationErrorResponse(
	w http.ResponseWriter,
	code int, errorCode enum.ErrorCode,
	message string, detail []ValidationErrorDetail,
) {
	helper.Send(w, ValidationErrorReply(code, errorCode, message, detail))
}
