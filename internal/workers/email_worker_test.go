package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"edubridge_backend/internal/email"
	"edubridge_backend/internal/models"
	"edubridge_backend/internal/repositories"
	"edubridge_backend/internal/testutil"
)

type fakeProvider struct {
	sent []email.Message
	err  error
}

func (p *fakeProvider) Send(ctx context.Context, msg email.Message) error {
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, msg)
	return nil
}

func newWorker(db *gorm.DB, provider email.Provider, maxAttempts int) *EmailWorker {
	return NewEmailWorker(db, repositories.NewOutboxRepository(), provider, time.Second, 10, maxAttempts)
}

func enqueue(t *testing.T, db *gorm.DB, to string) *models.EmailOutbox {
	t.Helper()
	entry := &models.EmailOutbox{
		ToEmail: to,
		Subject: "hello",
		Body:    "plain text",
	}
	require.NoError(t, repositories.NewOutboxRepository().Enqueue(db, entry))
	return entry
}

func reload(t *testing.T, db *gorm.DB, id string) *models.EmailOutbox {
	t.Helper()
	var entry models.EmailOutbox
	require.NoError(t, db.First(&entry, "id = ?", id).Error)
	return &entry
}

func TestProcessBatchDeliversPendingEntries(t *testing.T) {
	db := testutil.NewTestDB(t)
	provider := &fakeProvider{}
	worker := newWorker(db, provider, 3)

	entry := enqueue(t, db, "lead@example.com")
	worker.ProcessBatch(context.Background())

	require.Len(t, provider.sent, 1)
	assert.Equal(t, "lead@example.com", provider.sent[0].To)

	got := reload(t, db, entry.ID)
	assert.Equal(t, models.OutboxStatusSent, got.Status)
	assert.NotNil(t, got.SentAt)
}

func TestFailedDeliveryIsRetriedWithBackoff(t *testing.T) {
	db := testutil.NewTestDB(t)
	provider := &fakeProvider{err: errors.New("smtp connection refused")}
	worker := newWorker(db, provider, 3)

	entry := enqueue(t, db, "lead@example.com")
	before := time.Now()
	worker.ProcessBatch(context.Background())

	got := reload(t, db, entry.ID)
	assert.Equal(t, models.OutboxStatusPending, got.Status)
	assert.Equal(t, 1, got.Attempts)
	assert.Contains(t, got.LastError, "connection refused")
	assert.True(t, got.NextAttemptAt.After(before), "next attempt must be pushed into the future")

	// Not due yet, the next pass skips it.
	provider.err = nil
	worker.ProcessBatch(context.Background())
	assert.Empty(t, provider.sent)
}

func TestEntryIsParkedAfterMaxAttempts(t *testing.T) {
	db := testutil.NewTestDB(t)
	provider := &fakeProvider{err: errors.New("permanent failure")}
	worker := newWorker(db, provider, 2)

	entry := enqueue(t, db, "lead@example.com")

	for i := 0; i < 3; i++ {
		// Pull the entry back to due so every pass attempts it.
		require.NoError(t, db.Model(&models.EmailOutbox{}).
			Where("id = ?", entry.ID).
			Update("next_attempt_at", time.Now().Add(-time.Minute)).Error)
		worker.ProcessBatch(context.Background())
	}

	got := reload(t, db, entry.ID)
	assert.Equal(t, models.OutboxStatusFailed, got.Status)
	assert.Equal(t, 2, got.Attempts)

	// Parked entries are never claimed again.
	provider.err = nil
	require.NoError(t, db.Model(&models.EmailOutbox{}).
		Where("id = ?", entry.ID).
		Update("next_attempt_at", time.Now().Add(-time.Minute)).Error)
	worker.ProcessBatch(context.Background())
	assert.Empty(t, provider.sent)
}

func TestBackoffDoublesAndCaps(t *testing.T) {
	assert.Equal(t, time.Minute, backoff(1))
	assert.Equal(t, 2*time.Minute, backoff(2))
	assert.Equal(t, 4*time.Minute, backoff(3))
	assert.Equal(t, time.Hour, backoff(10))
}
