package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type EventType string

const (
	EventCreated   EventType = "created"
	EventUpdated   EventType = "updated"
	EventDeleted   EventType = "deleted"
	EventPublished EventType = "published"
)

// ContentEvent announces a change to a portfolio record.
type ContentEvent struct {
	Type       EventType `json:"type"`
	Resource   string    `json:"resource"`
	ID         uuid.UUID `json:"id"`
	Key        string    `json:"key,omitempty"`
	ActorID    uuid.UUID `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type EventPublisher interface {
	Publish(ctx context.Context, ev ContentEvent) error
}

type nopPublisher struct{}

// NewNopPublisher is used when no broker is configured.
func NewNopPublisher() EventPublisher { return nopPublisher{} }

func (nopPublisher) Publish(context.Context, ContentEvent) error { return nil }

// Announce publishes ev and only logs failures; a write that already committed
// is never failed because of the broker.
func Announce(ctx context.Context, pub EventPublisher, log logger.Logger, ev ContentEvent) {
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}
	if err := pub.Publish(ctx, ev); err != nil {
		log.Warn("Failed to publish content event",
			zap.String("resource", ev.Resource),
			zap.String("type", string(ev.Type)),
			zap.String("id", ev.ID.String()),
			zap.Error(err),
		)
	}
}
