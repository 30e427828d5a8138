package service

import (
	"context"
	"encoding/json"
	"honeydew-api/core/logger"
	"honeydew-api/core/queue"

	"github.com/hibiken/asynq"
)

// BadgeWorker processes queued badge evaluations.
type BadgeWorker struct {
	service BadgeServiceInterface
}

func NewBadgeWorker(svc BadgeServiceInterface) *BadgeWorker {
	return &BadgeWorker{service: svc}
}

// HandleBadgeEvaluate runs one evaluation pass for the user in the payload.
func (w *BadgeWorker) HandleBadgeEvaluate(ctx context.Context, t *asynq.Task) error {
	var payload queue.BadgeEvaluatePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		logger.Error("BadgeWorker:HandleBadgeEvaluate:Unmarshal", err)
		return err
	}

	if _, appErr := w.service.EvaluateAndGrant(ctx, payload.UserID); appErr != nil {
		logger.Error("BadgeWorker:HandleBadgeEvaluate", appErr)
		return appErr
	}

	return nil
}
