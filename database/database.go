package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Retry configuration parameters
const (
	initialBackoff = 1 * time.Second
	maxBackoff     = 30 * time.Second
	backoffFactor  = 2.0
	jitterFactor   = 0.2
)

const schema = `
CREATE TABLE IF NOT EXISTS contact_messages (
	id         UUID PRIMARY KEY,
	sender     TEXT NOT NULL,
	subject    TEXT NOT NULL,
	content    TEXT NOT NULL,
	status     TEXT NOT NULL DEFAULT 'open',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS contact_messages_status_idx ON contact_messages (status, created_at DESC);
`

// DB represents the database connection
type DB struct {
	*sqlx.DB
}

// New connects to PostgreSQL, retrying with jittered exponential backoff
// until it succeeds or ctx is done.
func New(ctx context.Context, url string) (*DB, error) {
	if url == "" {
		return nil, errors.New("database URL must be provided")
	}

	slog.Info("Establishing database connection")

	attempt := 1
	backoff := initialBackoff

	for {
		db, err := connect(ctx, url)
		if err == nil {
			slog.Info("Successfully connected to PostgreSQL", slog.Int("attempt", attempt))
			return &DB{db}, nil
		}

		slog.Error("Failed to connect to database", slog.String("error", err.Error()), slog.Int("attempt", attempt))

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("connect to database: %w", errors.Join(ctx.Err(), err))
		case <-time.After(calculateBackoff(backoff)):
		}
		backoff = min(time.Duration(float64(backoff)*backoffFactor), maxBackoff)
		attempt++
	}
}

func connect(ctx context.Context, url string) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", url)
	if err != nil {
		return nil, err
	}

	// Configure connection pooling
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return db, nil
}

// calculateBackoff adds jitter to avoid the thundering herd problem
func calculateBackoff(backoff time.Duration) time.Duration {
	jitter := float64(backoff) * jitterFactor
	return backoff + time.Duration(rand.Float64()*jitter)
}

// EnsureSchema creates the tables the service needs if they are missing.
func (db *DB) EnsureSchema(ctx context.Context) error {
	return db.Transaction(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, schema); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		return nil
	})
}

// Ping reports whether the database answers within two seconds.
func (db *DB) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return db.PingContext(ctx)
}

// Transaction executes a function within a transaction
func (db *DB) Transaction(ctx context.Context, fn func(*sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p) // re-throw panic after rollback
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, rbErr)
		}
		return err
	}

	return tx.Commit()
}
