package controller

import (
	"net/http"
	"strings"

	"github.com/fazamuttaqien/statusreply/helper"
	"github.com/fazamuttaqien/statusreply/internal/dto"
	appError "github.com/fazamuttaqien/statusreply/pkg/app-error"
	"github.com/fazamuttaqien/statusreply/pkg/enum"
	pkgJwt "github.com/fazamuttaqien/statusreply/pkg/jwt"
	"github.com/fazamuttaqien/statusreply/pkg/response"
	"github.com/fazamuttaqien/statusreply/pkg/validator"
)

// POST /api/auth/login
func (h *Controller) Login(w http.ResponseWriter, r *http.Request) {
	dto, ok := validator.GetValidatedDTOFromContext[dto.LoginDto](r.Context())
	if !ok {
		appError.WriteError(w, appError.NewInternalError("Validated DTO not found in context", nil))
		return
	}

	// Same reply for unknown email and wrong password.
	emailMatches := strings.EqualFold(dto.Email, h.admin.Email)
	passwordErr := helper.ComparePassword(h.admin.PasswordHash, dto.Password)
	if !emailMatches || passwordErr != nil {
		appError.WriteError(w, appError.NewAppError(enum.AuthInvalidCredentials, "", nil))
		return
	}

	accessToken, expiresAt, err := pkgJwt.SignJwtToken(h.admin.Email)
	if err != nil {
		appError.WriteError(w, appError.NewInternalError("Failed to generate access token", err))
		return
	}

	helper.Send(w, response.Message(http.StatusOK).
		Add("accessToken", accessToken).
		Add("expiresAt", expiresAt))
}
