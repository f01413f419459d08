// Package response assembles JSON response bodies whose "message" is derived
// from the status code.
//
// A Builder is created with one of three policies:
//
//	Plain            {}
//	AutoMessage      {"message": <phrase or null>}
//	AutoMessageError {"message": <phrase or null>, "error": <text>}
//
// and extended with Add before being finalized into an Envelope.
package response

import (
	httpStatus "github.com/fazamuttaqien/statusreply/pkg/http-status"
)

const (
	KeyMessage = "message"
	KeyError   = "error"

	DefaultStatusCode      = 200
	DefaultErrorText       = "Unexpected error"
	DefaultErrorStatusCode = 501
)

// Policy selects how a Builder seeds its body at construction.
type Policy int

const (
	// Plain starts with an empty body.
	Plain Policy = iota
	// AutoMessage seeds "message" with the status phrase.
	AutoMessage
	// AutoMessageError seeds "message" like AutoMessage and "error" with free text.
	AutoMessageError
)

// Body is the JSON object sent to the client.
type Body map[string]any

// Envelope pairs a body with the status code it is sent with.
type Envelope struct {
	Body       Body
	StatusCode int
}

// Builder incrementally assembles a response body.
// It is not safe for concurrent use.
type Builder struct {
	body Body
	code int
}

type settings struct {
	code      int
	errorText string
}

// Option overrides a policy default.
type Option func(*settings)

// WithStatus sets the status code.
func WithStatus(code int) Option {
	return func(s *settings) { s.code = code }
}

// WithErrorText sets the "error" value. Only AutoMessageError uses it.
func WithErrorText(text string) Option {
	return func(s *settings) { s.errorText = text }
}

// New creates a builder for policy. Without options the status code is 200,
// or 501 with error text "Unexpected error" for AutoMessageError.
func New(policy Policy, opts ...Option) *Builder {
	s := settings{code: DefaultStatusCode}
	if policy == AutoMessageError {
		s.code = DefaultErrorStatusCode
		s.errorText = DefaultErrorText
	}
	for _, opt := range opts {
		opt(&s)
	}

	b := &Builder{body: Body{}, code: s.code}

	switch policy {
	case AutoMessage:
		b.seedMessage()
	case AutoMessageError:
		b.seedMessage()
		b.body[KeyError] = s.errorText
	}

	return b
}

// Base creates a Plain builder.
func Base(code int) *Builder {
	return New(Plain, WithStatus(code))
}

// Message creates an AutoMessage builder.
func Message(code int) *Builder {
	return New(AutoMessage, WithStatus(code))
}

// ErrorMessage creates an AutoMessageError builder. The "message" key is
// looked up from code and is independent of text.
func ErrorMessage(text string, code int) *Builder {
	return New(AutoMessageError, WithErrorText(text), WithStatus(code))
}

// seedMessage stores the phrase for b.code, or a nil value when the code
// has none, so the key always serializes (as null if unknown).
func (b *Builder) seedMessage() {
	if phrase, ok := httpStatus.PhraseFor(b.code); ok {
		b.body[KeyMessage] = phrase
		return
	}
	b.body[KeyMessage] = nil
}

// Add sets key to value, overwriting any previous value.
func (b *Builder) Add(key string, value any) *Builder {
	b.body[key] = value
	return b
}

// SetMessage is Add("message", value).
func (b *Builder) SetMessage(value any) *Builder {
	return b.Add(KeyMessage, value)
}

// StatusCode returns the code the envelope will carry.
func (b *Builder) StatusCode() int {
	return b.code
}

// Finalize returns the body and status code. The body is not copied, so
// later calls to Add are visible through the returned envelope.
func (b *Builder) Finalize() Envelope {
	return Envelope{Body: b.body, StatusCode: b.code}
}

// Send finalizes the builder and hands the envelope to e.
func (b *Builder) Send(e Emitter) error {
	env := b.Finalize()
	return e.Emit(env.Body, env.StatusCode)
}
