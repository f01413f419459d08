package dto

import "github.com/fazamuttaqien/statusreply/pkg/enum"

// --- Auth DTO ---

type LoginDto struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// --- Contact DTO ---

type CreateContactMessageDto struct {
	From    string `json:"from" validate:"required,email,max=254"`
	Subject string `json:"subject" validate:"required,max=200"`
	Content string `json:"content" validate:"required,max=5000"`
}

type UpdateContactStatusDto struct {
	Status enum.ContactStatus `json:"status" validate:"required,contact_status"`
}

type ListContactMessagesDto struct {
	Status enum.ContactStatus `json:"status" validate:"omitempty,contact_status"`
}

type ContactMessageParamsDto struct {
	MessageID string `json:"messageId" validate:"required,uuid"`
}

// --- Status DTO ---

type StatusCodeParamsDto struct {
	Code int `json:"code"`
}
