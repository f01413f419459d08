package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/fazamuttaqien/statusreply/database"
	"github.com/fazamuttaqien/statusreply/pkg/enum"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real PostgreSQL when POSTGRES_TEST_URL is set.
func newTestRepository(t *testing.T) ContactRepository {
	t.Helper()

	url := os.Getenv("POSTGRES_TEST_URL")
	if url == "" {
		t.Skip("POSTGRES_TEST_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.New(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.EnsureSchema(ctx))
	_, err = db.ExecContext(ctx, "DELETE FROM contact_messages")
	require.NoError(t, err)

	return NewContactRepository(db.DB)
}

func TestContactRepositoryLifecycle(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, "a@example.com", "Please help", "It is broken")
	require.NoError(t, err)
	assert.Equal(t, enum.ContactOpen, first.Status)
	_, err = uuid.Parse(first.ID)
	assert.NoError(t, err)

	second, err := repo.Create(ctx, "b@example.com", "Thanks", "All good")
	require.NoError(t, err)

	closed, err := repo.UpdateStatus(ctx, second.ID, enum.ContactClosed)
	require.NoError(t, err)
	assert.Equal(t, enum.ContactClosed, closed.Status)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	open, err := repo.List(ctx, enum.ContactOpen)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, first.ID, open[0].ID)
}

func TestContactRepositoryUpdateMissing(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.UpdateStatus(context.Background(), uuid.NewString(), enum.ContactClosed)

	assert.ErrorIs(t, err, ErrNotFound)
}
