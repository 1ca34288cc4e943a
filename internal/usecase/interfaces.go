package usecase

import (
	"context"

	"github.com/homepilot/homepilot-api/internal/infra/queue"
)

// IntentScorer rates how serious a signup message is on the canonical
// 1..5 scale. Implementations must clamp whatever the backing model
// returns; callers still treat the result as untrusted.
type IntentScorer interface {
	Score(ctx context.Context, message string) (int, error)
}

type NotificationProducerInterface interface {
	PublishNotification(ctx context.Context, payload queue.NotificationPayload) error
}
