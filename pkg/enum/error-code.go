package enum

// ErrorCode represents specific error identifiers used throughout the application.
// It's based on the underlying type string.
type ErrorCode string

// Define the possible constant values for ErrorCode.
const (
	// --- Authentication Errors ---

	// AuthInvalidToken indicates a provided token is invalid or expired.
	AuthInvalidToken ErrorCode = "AUTH_INVALID_TOKEN"
	// AuthInvalidCredentials indicates a login with a wrong email or password.
	AuthInvalidCredentials ErrorCode = "AUTH_INVALID_CREDENTIALS"
	// AuthUnauthorizedAccess indicates missing or insufficient credentials for an action.
	AuthUnauthorizedAccess ErrorCode = "AUTH_UNAUTHORIZED_ACCESS"
	// AuthTokenNotFound indicates that an expected authentication token was not provided.
	AuthTokenNotFound ErrorCode = "AUTH_TOKEN_NOT_FOUND"

	// --- Validation and Resource Errors ---

	// ValidationError indicates input data failed validation rules.
	ValidationError ErrorCode = "VALIDATION_ERROR"
	// ResourceNotFound indicates a requested resource (e.g., via ID) does not exist.
	ResourceNotFound ErrorCode = "RESOURCE_NOT_FOUND"
	// RouteNotFound indicates no handler is registered for the path.
	RouteNotFound ErrorCode = "ROUTE_NOT_FOUND"
	// MethodNotAllowed indicates the path exists but not for this method.
	MethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"
	// BadRequest indicates a malformed request outside of DTO validation.
	BadRequest ErrorCode = "BAD_REQUEST"
	// PayloadTooLarge indicates the request body exceeds the accepted size.
	PayloadTooLarge ErrorCode = "PAYLOAD_TOO_LARGE"

	// --- System Errors ---

	// InternalServerError indicates an unexpected error occurred on the server.
	InternalServerError ErrorCode = "INTERNAL_SERVER_ERROR"
	// RequestTimeout indicates the handler did not finish before the request deadline.
	RequestTimeout ErrorCode = "REQUEST_TIMEOUT"
)

// AllErrorCodes returns a slice containing all possible ErrorCode values.
func AllErrorCodes() []ErrorCode {
	return []ErrorCode{
		AuthInvalidToken,
		AuthInvalidCredentials,
		AuthUnauthorizedAccess,
		AuthTokenNotFound,
		ValidationError,
		ResourceNotFound,
		RouteNotFound,
		MethodNotAllowed,
		BadRequest,
		PayloadTooLarge,
		InternalServerError,
		RequestTimeout,
	}
}

// IsValid checks if the ErrorCode value is one of the predefined constants.
func (ec ErrorCode) IsValid() bool {
	for _, code := range AllErrorCodes() {
		if ec == code {
			return true
		}
	}
	return false
}

// String returns the string representation of the ErrorCode.
// This method satisfies the fmt.Stringer interface.
func (ec ErrorCode) String() string {
	return string(ec)
}
