package repositories

import (
	"errors"
	"time"

	"edubridge_backend/internal/models"

	"gorm.io/gorm"
)

var ErrOutboxEntryNotFound = errors.New("outbox entry not found")

type OutboxRepository interface {
	Enqueue(db *gorm.DB, entry *models.EmailOutbox) error
	ClaimDue(db *gorm.DB, now time.Time, limit int) ([]models.EmailOutbox, error)
	MarkSent(db *gorm.DB, id string, at time.Time) error
	MarkRetry(db *gorm.DB, id string, attempts int, nextAttemptAt time.Time, lastError string) error
	MarkFailed(db *gorm.DB, id string, attempts int, lastError string) error
	CountByStatus(db *gorm.DB, status models.OutboxStatus) (int64, error)
}

type OutboxRepositoryImpl struct{}

func NewOutboxRepository() OutboxRepository {
	return &OutboxRepositoryImpl{}
}

func (r *OutboxRepositoryImpl) Enqueue(db *gorm.DB, entry *models.EmailOutbox) error {
	if entry.Status == "" {
		entry.Status = models.OutboxStatusPending
	}
	if entry.NextAttemptAt.IsZero() {
		entry.NextAttemptAt = time.Now()
	}
	return db.Create(entry).Error
}

// ClaimDue returns pending entries whose next attempt is due, oldest first.
// A single worker polls the table, so no row locking is taken here.
func (r *OutboxRepositoryImpl) ClaimDue(db *gorm.DB, now time.Time, limit int) ([]models.EmailOutbox, error) {
	var entries []models.EmailOutbox
	err := db.Where("status = ? AND next_attempt_at <= ?", models.OutboxStatusPending, now).
		Order("next_attempt_at ASC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (r *OutboxRepositoryImpl) MarkSent(db *gorm.DB, id string, at time.Time) error {
	result := db.Model(&models.EmailOutbox{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     models.OutboxStatusSent,
		"sent_at":    at,
		"last_error": "",
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOutboxEntryNotFound
	}
	return nil
}

func (r *OutboxRepositoryImpl) MarkRetry(db *gorm.DB, id string, attempts int, nextAttemptAt time.Time, lastError string) error {
	result := db.Model(&models.EmailOutbox{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":          models.OutboxStatusPending,
		"attempts":        attempts,
		"next_attempt_at": nextAttemptAt,
		"last_error":      lastError,
		"updated_at":      time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOutboxEntryNotFound
	}
	return nil
}

func (r *OutboxRepositoryImpl) MarkFailed(db *gorm.DB, id string, attempts int, lastError string) error {
	result := db.Model(&models.EmailOutbox{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     models.OutboxStatusFailed,
		"attempts":   attempts,
		"last_error": lastError,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOutboxEntryNotFound
	}
	return nil
}

func (r *OutboxRepositoryImpl) CountByStatus(db *gorm.DB, status models.OutboxStatus) (int64, error) {
	var count int64
	err := db.Model(&models.EmailOutbox{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
