package email

import (
	"context"

	"edubridge_backend/internal/logger"
)

// Message is a single outbound email.
type Message struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Provider delivers a message to one recipient.
type Provider interface {
	Send(ctx context.Context, msg Message) error
}

// NoopProvider logs instead of sending. Used when email is disabled in
// config and in tests.
type NoopProvider struct{}

func NewNoopProvider() *NoopProvider {
	return &NoopProvider{}
}

func (p *NoopProvider) Send(ctx context.Context, msg Message) error {
	logger.CtxInfo(ctx, "email delivery skipped (disabled)",
		"to", msg.To,
		"subject", msg.Subject,
	)
	return nil
}
