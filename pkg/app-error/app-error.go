package appError

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/fazamuttaqien/statusreply/helper"
	"github.com/fazamuttaqien/statusreply/pkg/enum"
	"github.com/fazamuttaqien/statusreply/pkg/response"
)

const KeyErrorCode = "errorCode"

// ErrorDetail holds configuration details for a specific application ErrorCode.
type ErrorDetail struct {
	HTTPStatus int
	Message    string
}

// appErrorConfig maps application error codes to their details.
// It's kept private to the package and accessed via functions.
var appErrorConfig = map[enum.ErrorCode]ErrorDetail{
	// --- Authentication Errors ---
	enum.AuthInvalidToken: {
		HTTPStatus: http.StatusUnauthorized,
		Message:    "Authentication failed: Invalid or expired token.",
	},
	enum.AuthInvalidCredentials: {
		HTTPStatus: http.StatusUnauthorized,
		Message:    "Invalid email or password.",
	},
	enum.AuthUnauthorizedAccess: {
		HTTPStatus: http.StatusUnauthorized,
		Message:    "Authentication required to access this resource.",
	},
	enum.AuthTokenNotFound: {
		HTTPStatus: http.StatusUnauthorized,
		Message:    "Authentication token not provided.",
	},

	// --- Validation and Resource Errors ---
	enum.ValidationError: {
		HTTPStatus: http.StatusBadRequest,
		Message:    "Input validation failed.",
	},
	enum.ResourceNotFound: {
		HTTPStatus: http.StatusNotFound,
		Message:    "The requested resource could not be found.",
	},
	enum.RouteNotFound: {
		HTTPStatus: http.StatusNotFound,
		Message:    "Route not found.",
	},
	enum.MethodNotAllowed: {
		HTTPStatus: http.StatusMethodNotAllowed,
		Message:    "Method not allowed.",
	},
	enum.BadRequest: {
		HTTPStatus: http.StatusBadRequest,
		Message:    "The request could not be understood.",
	},
	enum.PayloadTooLarge: {
		HTTPStatus: http.StatusRequestEntityTooLarge,
		Message:    "Request body is too large.",
	},

	// --- System Errors ---
	enum.InternalServerError: {
		HTTPStatus: http.StatusInternalServerError,
		Message:    "An unexpected internal error occurred. Please try again later.",
	},
	enum.RequestTimeout: {
		HTTPStatus: http.StatusGatewayTimeout,
		Message:    "Request timed out.",
	},
}

// AppError is a custom error type for application-specific errors.
type AppError struct {
	Code    enum.ErrorCode // The specific application error code
	Message string         // Overrides the configured message when set
	Err     error          // Optional wrapped cause, never sent to the client
}

// NewAppError creates a new application error.
// If msg is empty, the default message for the code is used by Error().
func NewAppError(code enum.ErrorCode, msg string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: msg,
		Err:     cause,
	}
}

// GetErrorDetail retrieves the configured details for the error's code.
// Unknown or unmapped codes fall back to a 500.
func (e *AppError) GetErrorDetail() ErrorDetail {
	detail, ok := appErrorConfig[e.Code]
	if !ok || !e.Code.IsValid() {
		return ErrorDetail{
			HTTPStatus: http.StatusInternalServerError,
			Message:    "An unknown internal error occurred.",
		}
	}
	return detail
}

// Error implements the standard error interface.
func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.GetErrorDetail().Message
}

// HTTPStatus returns the appropriate HTTP status code for this error.
func (e *AppError) HTTPStatus() int {
	return e.GetErrorDetail().HTTPStatus
}

// Unwrap allows retrieving the underlying error (for use with errors.Is/As).
func (e *AppError) Unwrap() error {
	return e.Err
}

// Reply builds the error envelope for this error:
// {"message": <status phrase>, "error": <Error()>, "errorCode": <Code>}.
func (e *AppError) Reply() *response.Builder {
	return response.ErrorMessage(e.Error(), e.HTTPStatus()).Add(KeyErrorCode, e.Code)
}

// --- Helper Functions for Common Errors ---

func NewNotFoundError(resource string, cause error) *AppError {
	msg := fmt.Sprintf("Resource '%s' not found.", resource)
	if resource == "" {
		msg = ""
	}
	return NewAppError(enum.ResourceNotFound, msg, cause)
}

func NewValidationError(specificMessage string, cause error) *AppError {
	return NewAppError(enum.ValidationError, specificMessage, cause)
}

func NewBadRequestError(specificMessage string, cause error) *AppError {
	return NewAppError(enum.BadRequest, specificMessage, cause)
}

func NewInternalError(specificMessage string, cause error) *AppError {
	return NewAppError(enum.InternalServerError, specificMessage, cause)
}

// ReplyFor converts any error into an error envelope. Errors that are not an
// AppError become a generic 500 so internals never reach the client.
func ReplyFor(err error) *response.Builder {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if cause := appErr.Unwrap(); cause != nil {
			slog.Error("AppError", slog.String("code", appErr.Code.String()), slog.String("message", appErr.Error()), slog.String("cause", cause.Error()))
		} else {
			slog.Warn("AppError", slog.String("code", appErr.Code.String()), slog.String("message", appErr.Error()))
		}
		return appErr.Reply()
	}

	slog.Error("Unhandled internal error", slog.String("error", err.Error()))
	return NewInternalError("An unexpected internal error occurred.", err).Reply()
}

// WriteError writes the error envelope for err to w.
func WriteError(w http.ResponseWriter, err error) {
	helper.Send(w, ReplyFor(err))
}
