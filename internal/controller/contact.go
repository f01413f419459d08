package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fazamuttaqien/statusreply/helper"
	"github.com/fazamuttaqien/statusreply/internal/dto"
	"github.com/fazamuttaqien/statusreply/internal/repository"
	"github.com/fazamuttaqien/statusreply/middleware"
	appError "github.com/fazamuttaqien/statusreply/pkg/app-error"
	"github.com/fazamuttaqien/statusreply/pkg/response"
	"github.com/fazamuttaqien/statusreply/pkg/enum"
	"github.com/fazamuttaqien/statusreply/pkg/validator"
)

// POST /api/contactus
func (h *Controller) CreateContactMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dto, ok := validator.GetValidatedDTOFromContext[dto.CreateContactMessageDto](ctx)
	if !ok {
		appError.WriteError(w, appError.NewInternalError("Validated DTO not found in context", nil))
		return
	}

	msg, err := h.contacts.Create(ctx, dto.From, dto.Subject, dto.Content)
	if err != nil {
		appError.WriteError(w, appError.NewInternalError("Failed to save message", err))
		return
	}

	helper.Send(w, response.Message(http.StatusCreated).Add("result", msg))
}

// GET /api/messages?status=open|closed
func (h *Controller) ListContactMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, ok := validator.GetValidatedDTOFromContext[dto.ListContactMessagesDto](ctx)
	if !ok {
		appError.WriteError(w, appError.NewInternalError("Validated DTO not found in context", nil))
		return
	}

	messages, err := h.contacts.List(ctx, filter.Status)
	if err != nil {
		appError.WriteError(w, appError.NewInternalError("Failed to fetch messages", err))
		return
	}

	helper.Send(w, response.Message(http.StatusOK).Add("result", messages))
}

// PATCH /api/messages/{messageId}/status
func (h *Controller) UpdateContactMessageStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	adminEmail, ok := middleware.GetAdminEmailFromContext(ctx)
	if !ok {
		appError.WriteError(w, appError.NewAppError(enum.AuthUnauthorizedAccess, "", nil))
		return
	}

	params, ok := validator.GetValidatedDTOFromContext[dto.ContactMessageParamsDto](ctx)
	if !ok {
		appError.WriteError(w, appError.NewInternalError("Validated DTO not found in context", nil))
		return
	}

	body, ok := validator.GetValidatedDTOFromContext[dto.UpdateContactStatusDto](ctx)
	if !ok {
		appError.WriteError(w, appError.NewInternalError("Validated DTO not found in context", nil))
		return
	}

	msg, err := h.contacts.UpdateStatus(ctx, params.MessageID, body.Status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			appError.WriteError(w, appError.NewNotFoundError("message", err))
			return
		}
		appError.WriteError(w, appError.NewInternalError("Failed to update message status", err))
		return
	}

	slog.Info("Contact message status changed",
		slog.String("id", msg.ID),
		slog.String("status", string(msg.Status)),
		slog.String("by", adminEmail))

	helper.Send(w, response.Message(http.StatusOK).Add("result", msg))
}
