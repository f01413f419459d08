package helper

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/fazamuttaqien/statusreply/pkg/response"
	"github.com/go-playground/validator/v10"
)

// statusLine is validated before anything reaches the ResponseWriter,
// because net/http panics on codes it cannot write.
type statusLine struct {
	StatusCode int `validate:"gte=100,lte=999"`
}

var statusValidate = validator.New()

// ResponseJson writes data as JSON with the given status code.
func ResponseJson(w http.ResponseWriter, code int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil && bodyAllowed(code) {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("Error encoding JSON response", slog.Int("status", code), slog.String("error", err.Error()))
			return fmt.Errorf("encode response: %w", err)
		}
	}
	return nil
}

// bodyAllowed mirrors net/http: 1xx, 204 and 304 responses carry no body.
func bodyAllowed(code int) bool {
	switch {
	case code >= 100 && code <= 199:
		return false
	case code == http.StatusNoContent, code == http.StatusNotModified:
		return false
	}
	return true
}

// JSONEmitter sends response envelopes as JSON over an http.ResponseWriter.
type JSONEmitter struct {
	W http.ResponseWriter
}

// Emit implements response.Emitter. Codes outside 100-999 are rejected
// and nothing is written.
func (e JSONEmitter) Emit(body response.Body, code int) error {
	if err := statusValidate.Struct(statusLine{StatusCode: code}); err != nil {
		return fmt.Errorf("status code %d cannot be sent: %w", code, err)
	}
	return ResponseJson(e.W, code, body)
}

// Send writes the builder's envelope to w.
func Send(w http.ResponseWriter, b *response.Builder) {
	if err := b.Send(JSONEmitter{W: w}); err != nil {
		slog.Error("Failed to send response", slog.Int("status", b.StatusCode()), slog.String("error", err.Error()))
	}
}
