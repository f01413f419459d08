package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fazamuttaqien/statusreply/internal/model"
	"github.com/fazamuttaqien/statusreply/pkg/enum"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when no row matches the given ID.
var ErrNotFound = errors.New("not found")

// ContactRepository persists messages sent through the contact form.
type ContactRepository interface {
	Create(ctx context.Context, from, subject, content string) (*model.ContactMessage, error)
	List(ctx context.Context, status enum.ContactStatus) ([]model.ContactMessage, error)
	UpdateStatus(ctx context.Context, id string, status enum.ContactStatus) (*model.ContactMessage, error)
}

type contactRepository struct {
	db *sqlx.DB
}

func NewContactRepository(db *sqlx.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, from, subject, content string) (*model.ContactMessage, error) {
	query := `
		INSERT INTO contact_messages (id, sender, subject, content, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, sender, subject, content, status, created_at, updated_at;
	`

	var msg model.ContactMessage
	if err := r.db.GetContext(ctx, &msg, query, uuid.NewString(), from, subject, content, enum.ContactOpen); err != nil {
		return nil, fmt.Errorf("insert contact message: %w", err)
	}
	return &msg, nil
}

// List returns messages newest first. An empty status matches every message.
func (r *contactRepository) List(ctx context.Context, status enum.ContactStatus) ([]model.ContactMessage, error) {
	query := `
		SELECT id, sender, subject, content, status, created_at, updated_at
		FROM contact_messages
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC;
	`

	messages := []model.ContactMessage{}
	if err := r.db.SelectContext(ctx, &messages, query, status); err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return messages, nil
}

func (r *contactRepository) UpdateStatus(ctx context.Context, id string, status enum.ContactStatus) (*model.ContactMessage, error) {
	query := `
		UPDATE contact_messages
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, sender, subject, content, status, created_at, updated_at;
	`

	var msg model.ContactMessage
	if err := r.db.GetContext(ctx, &msg, query, id, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update contact message %s: %w", id, err)
	}
	return &msg, nil
}
