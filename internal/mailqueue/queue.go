package mailqueue

import (
	"context"

	"github.com/devsquadbr/crm-template/internal/mailer"
)

// Queue is the outbound-email buffer between request handlers and the
// delivery worker. Handlers only ever publish; delivery failures stay on the
// worker side.
type Queue interface {
	Publish(ctx context.Context, msg mailer.Message) error
	Consume(ctx context.Context, handler Handler) error
	Close() error
}

// Handler processes one queued message.
type Handler func(ctx context.Context, msg mailer.Message) error
