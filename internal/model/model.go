package model

import (
	"time"

	"github.com/fazamuttaqien/statusreply/pkg/enum"
)

type ContactMessage struct {
	ID        string             `db:"id" json:"id"`
	From      string             `db:"sender" json:"from"`
	Subject   string             `db:"subject" json:"subject"`
	Content   string             `db:"content" json:"content"`
	Status    enum.ContactStatus `db:"status" json:"status"`
	CreatedAt time.Time          `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `db:"updated_at" json:"updatedAt"`
}

// StatusPhrase is one row of the phrase table as exposed by the API.
type StatusPhrase struct {
	Code   int     `json:"code"`
	Phrase *string `json:"phrase"`
	Known  bool    `json:"known"`
}
