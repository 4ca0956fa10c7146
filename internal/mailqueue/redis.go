package mailqueue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/devsquadbr/crm-template/internal/mailer"
)

type RedisQueue struct {
	client    *redis.Client
	queueName string
}

func NewRedisQueue(url, queueName string) (*RedisQueue, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisQueue{client: client, queueName: queueName}, nil
}

func (q *RedisQueue) Publish(ctx context.Context, msg mailer.Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal mail message: %w", err)
	}

	if err := q.client.LPush(ctx, q.queueName, data).Err(); err != nil {
		return fmt.Errorf("failed to push mail message: %w", err)
	}
	return nil
}

// Consume blocks, popping messages until the context is cancelled. Handler
// failures are logged and the message is dropped; email here is best-effort.
func (q *RedisQueue) Consume(ctx context.Context, handler Handler) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		result, err := q.client.BRPop(ctx, 1*time.Second, q.queueName).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			log.Println("mailqueue: pop failed:", err)
			time.Sleep(1 * time.Second)
			continue
		}

		// BRPop returns [queueName, value]
		if len(result) < 2 {
			continue
		}

		var msg mailer.Message
		if err := json.Unmarshal([]byte(result[1]), &msg); err != nil {
			log.Println("mailqueue: bad message payload:", err)
			continue
		}

		if err := handler(ctx, msg); err != nil {
			log.Printf("mailqueue: delivery to %s failed: %v", msg.To, err)
		}
	}
}

func (q *RedisQueue) Close() error {
	return q.client.Close()
}

var _ Queue = (*RedisQueue)(nil)
