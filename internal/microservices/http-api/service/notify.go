package service

import (
	"context"
	"log/slog"
	"time"

	"awardshub/internal/events"
)

const publishTimeout = 2 * time.Second

// notifier publishes domain events best-effort. A nil publisher drops events.
type notifier struct {
	pub    events.Publisher
	logger *slog.Logger
}

func (n notifier) emit(ctx context.Context, e events.Event) {
	if n.pub == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := n.pub.Publish(ctx, e); err != nil && n.logger != nil {
		n.logger.Warn("event_publish_failed", "type", e.Type, "key", e.Key, "error", err)
	}
}
