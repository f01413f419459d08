package httpStatus

import "sort"

// HttpStatusCode represents an HTTP status code using a custom type.
type HttpStatusCode int

// Define common HTTP status codes as constants of the custom type.
const (
	// --- Success Status ---
	OK                   HttpStatusCode = 200
	Created              HttpStatusCode = 201
	Accepted             HttpStatusCode = 202
	NonAuthoritativeInfo HttpStatusCode = 203
	NoContent            HttpStatusCode = 204

	// --- Client Error Responses ---
	BadRequest          HttpStatusCode = 400
	Unauthorized        HttpStatusCode = 401
	Forbidden           HttpStatusCode = 403
	NotFound            HttpStatusCode = 404
	MethodNotAllowed    HttpStatusCode = 405
	Conflict            HttpStatusCode = 409
	UnprocessableEntity HttpStatusCode = 422
	TooManyRequests     HttpStatusCode = 429

	// --- Server Error Responses ---
	InternalServerError HttpStatusCode = 500
	NotImplemented      HttpStatusCode = 501
	BadGateway          HttpStatusCode = 502
	ServiceUnavailable  HttpStatusCode = 503
	GatewayTimeout      HttpStatusCode = 504
	// NetworkTimeout is not registered with IANA; some proxies emit it.
	NetworkTimeout HttpStatusCode = 509
)

// phrases is the fixed set of codes that carry a default message.
// Codes missing here have no phrase, even if they are valid HTTP codes.
var phrases = map[HttpStatusCode]string{
	OK:                   "OK",
	Created:              "Created",
	Accepted:             "Accepted",
	NonAuthoritativeInfo: "Non-Authoritative Information",
	NoContent:            "No Content",

	BadRequest:   "Bad Request",
	Unauthorized: "Unauthorized",
	Forbidden:    "Forbidden",
	NotFound:     "Not Found",
	Conflict:     "Conflict",

	InternalServerError: "Internal Server Error",
	NotImplemented:      "Not Implemented",
	BadGateway:          "Bad Gateway",
	ServiceUnavailable:  "Service Unavailable",
	GatewayTimeout:      "Gateway Timeout",
	NetworkTimeout:      "Network Timeout",
}

// PhraseFor returns the reason phrase for code.
// The boolean is false for any code outside the phrase table.
func PhraseFor(code int) (string, bool) {
	return HttpStatusCode(code).Phrase()
}

// Codes returns every code that has a phrase, in ascending order.
func Codes() []HttpStatusCode {
	out := make([]HttpStatusCode, 0, len(phrases))
	for code := range phrases {
		out = append(out, code)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Phrase returns the reason phrase for the status code, if it has one.
func (sc HttpStatusCode) Phrase() (string, bool) {
	phrase, ok := phrases[sc]
	return phrase, ok
}

// String returns the reason phrase for the status code, or an empty string.
// This implements the fmt.Stringer interface.
func (sc HttpStatusCode) String() string {
	phrase, _ := sc.Phrase()
	return phrase
}

// Int returns the underlying integer value of the status code.
func (sc HttpStatusCode) Int() int {
	return int(sc)
}

// --- Optional helper methods ---

// IsSuccess checks if the status code represents success (2xx).
func (sc HttpStatusCode) IsSuccess() bool {
	return sc >= 200 && sc < 300
}

// IsClientError checks if the status code represents a client error (4xx).
func (sc HttpStatusCode) IsClientError() bool {
	return sc >= 400 && sc < 500
}

// IsServerError checks if the status code represents a server error (5xx).
func (sc HttpStatusCode) IsServerError() bool {
	return sc >= 500 && sc < 600
}

// IsWritable reports whether net/http will accept the code in WriteHeader.
func (sc HttpStatusCode) IsWritable() bool {
	return sc >= 100 && sc <= 999
}
