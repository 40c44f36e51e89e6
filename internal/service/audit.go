package service

import (
	"context"

	"viwahaa-be/internal/pkg/logger"
	"viwahaa-be/pkg/events"
)

// publishAudit is fire-and-forget: a lost audit event never fails the
// operation that produced it.
func publishAudit(ctx context.Context, pub events.Publisher, log logger.ILogger, tag, eventType string, data map[string]interface{}) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, events.New(eventType, data)); err != nil {
		log.Warn(tag, "Audit publish failed", map[string]interface{}{"event": eventType, "error": err.Error()})
	}
}
