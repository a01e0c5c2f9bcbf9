package workers

import (
	"context"
	"time"

	"gorm.io/gorm"

	"edubridge_backend/internal/email"
	"edubridge_backend/internal/logger"
	"edubridge_backend/internal/metrics"
	"edubridge_backend/internal/models"
	"edubridge_backend/internal/repositories"
)

// EmailWorker drains the email outbox on a ticker. Delivery is
// at-least-once: a crash between send and MarkSent means a resend on the
// next pass. Failed attempts back off exponentially until MaxAttempts,
// then the entry is parked as failed.
type EmailWorker struct {
	db          *gorm.DB
	outboxRepo  repositories.OutboxRepository
	provider    email.Provider
	interval    time.Duration
	batchSize   int
	maxAttempts int
}

func NewEmailWorker(
	db *gorm.DB,
	outboxRepo repositories.OutboxRepository,
	provider email.Provider,
	pollInterval time.Duration,
	batchSize int,
	maxAttempts int,
) *EmailWorker {
	return &EmailWorker{
		db:          db,
		outboxRepo:  outboxRepo,
		provider:    provider,
		interval:    pollInterval,
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
	}
}

// Start blocks until ctx is cancelled. Run it in its own goroutine.
func (w *EmailWorker) Start(ctx context.Context) {
	log := logger.With("worker", "email_outbox")
	log.Info("outbox worker started",
		"poll_interval", w.interval,
		"batch_size", w.batchSize,
		"max_attempts", w.maxAttempts,
	)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("outbox worker stopped")
			return
		case <-ticker.C:
			w.ProcessBatch(ctx)
		}
	}
}

// ProcessBatch drains one batch of due entries. Exported so tests can
// drive the worker without the ticker.
func (w *EmailWorker) ProcessBatch(ctx context.Context) {
	entries, err := w.outboxRepo.ClaimDue(w.db, time.Now(), w.batchSize)
	if err != nil {
		logger.CtxWithError(ctx, "outbox claim failed", err)
		return
	}

	for i := range entries {
		select {
		case <-ctx.Done():
			return
		default:
		}
		w.process(ctx, &entries[i])
	}
}

func (w *EmailWorker) process(ctx context.Context, entry *models.EmailOutbox) {
	err := w.provider.Send(ctx, email.Message{
		To:       entry.ToEmail,
		Subject:  entry.Subject,
		TextBody: entry.Body,
		HTMLBody: entry.HTMLBody,
	})

	attempts := entry.Attempts + 1

	if err == nil {
		if markErr := w.outboxRepo.MarkSent(w.db, entry.ID, time.Now()); markErr != nil {
			logger.CtxWithError(ctx, "outbox mark-sent failed", markErr, "outbox_id", entry.ID)
			return
		}
		metrics.RecordOutboxSent()
		return
	}

	metrics.RecordOutboxFailure()
	logger.CtxWithError(ctx, "outbox delivery failed", err,
		"outbox_id", entry.ID, "to", entry.ToEmail, "attempts", attempts)

	if attempts >= w.maxAttempts {
		if markErr := w.outboxRepo.MarkFailed(w.db, entry.ID, attempts, err.Error()); markErr != nil {
			logger.CtxWithError(ctx, "outbox mark-failed failed", markErr, "outbox_id", entry.ID)
			return
		}
		metrics.RecordOutboxDead()
		return
	}

	next := time.Now().Add(backoff(attempts))
	if markErr := w.outboxRepo.MarkRetry(w.db, entry.ID, attempts, next, err.Error()); markErr != nil {
		logger.CtxWithError(ctx, "outbox mark-retry failed", markErr, "outbox_id", entry.ID)
	}
}

// backoff doubles per attempt: 1m, 2m, 4m, ... capped at an hour.
func backoff(attempts int) time.Duration {
	d := time.Minute << (attempts - 1)
	if d > time.Hour {
		return time.Hour
	}
	return d
}
