package controller

import (
	"fmt"
	"net/http"

	"github.com/fazamuttaqien/statusreply/helper"
	"github.com/fazamuttaqien/statusreply/internal/dto"
	"github.com/fazamuttaqien/statusreply/internal/model"
	appError "github.com/fazamuttaqien/statusreply/pkg/app-error"
	httpStatus "github.com/fazamuttaqien/statusreply/pkg/http-status"
	"github.com/fazamuttaqien/statusreply/pkg/response"
	"github.com/fazamuttaqien/statusreply/pkg/validator"
)

func phraseEntry(code int) model.StatusPhrase {
	entry := model.StatusPhrase{Code: code}
	if phrase, ok := httpStatus.PhraseFor(code); ok {
		entry.Phrase = &phrase
		entry.Known = true
	}
	return entry
}

// GET /api/status
func (h *Controller) ListStatusPhrases(w http.ResponseWriter, r *http.Request) {
	codes := httpStatus.Codes()
	entries := make([]model.StatusPhrase, 0, len(codes))
	for _, code := range codes {
		entries = append(entries, phraseEntry(code.Int()))
	}

	helper.Send(w, response.Message(http.StatusOK).Add("result", entries))
}

// statusCodeParam reads the validated {code} path parameter.
func statusCodeParam(r *http.Request) (int, error) {
	params, ok := validator.GetValidatedDTOFromContext[dto.StatusCodeParamsDto](r.Context())
	if !ok {
		return 0, appError.NewInternalError("Validated DTO not found in context", nil)
	}
	return params.Code, nil
}

// GET /api/status/{code}
func (h *Controller) GetStatusPhrase(w http.ResponseWriter, r *http.Request) {
	code, err := statusCodeParam(r)
	if err != nil {
		appError.WriteError(w, err)
		return
	}

	helper.Send(w, response.Message(http.StatusOK).Add("result", phraseEntry(code)))
}

// GET /api/status/{code}/reply?policy=plain|message|error&error=text
//
// Replies with the requested status and a body built by the chosen policy.
func (h *Controller) ReplyWithStatus(w http.ResponseWriter, r *http.Request) {
	code, err := statusCodeParam(r)
	if err != nil {
		appError.WriteError(w, err)
		return
	}
	// 1xx would be sent as an interim response followed by an implicit 200.
	if !httpStatus.HttpStatusCode(code).IsWritable() || code < 200 {
		appError.WriteError(w, appError.NewBadRequestError(fmt.Sprintf("Status code %d cannot be sent as a final response.", code), nil))
		return
	}

	query := r.URL.Query()
	policy, err := parsePolicy(query.Get("policy"))
	if err != nil {
		appError.WriteError(w, err)
		return
	}

	opts := []response.Option{response.WithStatus(code)}
	if query.Has("error") {
		opts = append(opts, response.WithErrorText(query.Get("error")))
	}

	helper.Send(w, response.New(policy, opts...))
}

func parsePolicy(name string) (response.Policy, error) {
	switch name {
	case "plain":
		return response.Plain, nil
	case "", "message":
		return response.AutoMessage, nil
	case "error":
		return response.AutoMessageError, nil
	}
	return 0, appError.NewBadRequestError(fmt.Sprintf("Unknown policy '%s'. Use plain, message or error.", name), nil)
}
