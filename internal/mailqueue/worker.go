package mailqueue

import (
	"context"
	"log"

	"github.com/devsquadbr/crm-template/internal/mailer"
)

// Worker drains the queue through a Sender.
type Worker struct {
	queue  Queue
	sender mailer.Sender
}

func NewWorker(queue Queue, sender mailer.Sender) *Worker {
	return &Worker{queue: queue, sender: sender}
}

// Run blocks until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	log.Println("mail worker started")
	return w.queue.Consume(ctx, func(ctx context.Context, msg mailer.Message) error {
		return w.sender.Send(ctx, msg)
	})
}
