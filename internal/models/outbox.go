package models

import "time"

// EmailOutbox is a queued outbound email. Services enqueue rows inside the
// same transaction as the triggering write; the outbox worker delivers them
// at least once with capped retries.
type EmailOutbox struct {
	BaseModel
	ToEmail  string `gorm:"not null" json:"to_email"`
	Subject  string `gorm:"not null" json:"subject"`
	Body     string `json:"body"`
	HTMLBody string `json:"html_body"`

	Status        OutboxStatus `gorm:"type:varchar(10);not null;default:'pending';index" json:"status"`
	Attempts      int          `gorm:"default:0" json:"attempts"`
	LastError     string       `json:"last_error,omitempty"`
	NextAttemptAt time.Time    `gorm:"index" json:"next_attempt_at"`
	SentAt        *time.Time   `json:"sent_at,omitempty"`
}

func (EmailOutbox) TableName() string {
	return "email_outbox"
}
