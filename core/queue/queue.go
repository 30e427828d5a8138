package queue

import (
	"context"
	"encoding/json"
	"honeydew-api/core/config"
	"honeydew-api/core/constants"
	"honeydew-api/core/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Queue wraps the asynq client used to enqueue background work.
type Queue struct {
	client *asynq.Client
}

var instance *Queue

func Get() *Queue {
	return instance
}

func Init(cfg config.RedisConfig) *Queue {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	instance = &Queue{client: client}
	return instance
}

func (q *Queue) Close() error {
	return q.client.Close()
}

// BadgeEvaluatePayload asks the worker to re-check badge thresholds for a user.
type BadgeEvaluatePayload struct {
	UserID uuid.UUID `json:"user_id"`
}

// EnqueueBadgeEvaluate schedules a badge evaluation for the user. Failures are
// logged and swallowed: the badges endpoint re-evaluates on read anyway.
func (q *Queue) EnqueueBadgeEvaluate(ctx context.Context, userID uuid.UUID) {
	payload, err := json.Marshal(BadgeEvaluatePayload{UserID: userID})
	if err != nil {
		logger.Error("Queue:EnqueueBadgeEvaluate:Marshal", err)
		return
	}

	task := asynq.NewTask(constants.TaskBadgeEvaluate, payload)
	if _, err := q.client.EnqueueContext(ctx, task, asynq.MaxRetry(3)); err != nil {
		logger.Error("Queue:EnqueueBadgeEvaluate:Enqueue", err)
	}
}

// NewWorkerServer builds the asynq server processing background tasks.
func NewWorkerServer(cfg config.RedisConfig) *asynq.Server {
	return asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		},
		asynq.Config{
			Concurrency: 5,
		},
	)
}
