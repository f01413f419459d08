package response

// Emitter serializes a body and transmits it with the given status code.
type Emitter interface {
	Emit(body Body, code int) error
}

// EmitterFunc adapts a function to the Emitter interface.
type EmitterFunc func(body Body, code int) error

func (f EmitterFunc) Emit(body Body, code int) error {
	return f(body, code)
}
