package service

import (
	"context"

	"viwahaa-be/internal/pkg/logger"
	"viwahaa-be/pkg/events"
	pktNats "viwahaa-be/pkg/nats"
)

// AuditTrail drains the audit stream into the system log, so back-office
// actions stay reviewable from the admin log viewer.
type AuditTrail struct {
	subscriber *pktNats.Subscriber
	logger     logger.ILogger
}

func NewAuditTrail(sub *pktNats.Subscriber, log logger.ILogger) *AuditTrail {
	return &AuditTrail{
		subscriber: sub,
		logger:     log,
	}
}

// Start registers the durable consumer on the audit stream.
func (a *AuditTrail) Start() {
	if err := a.subscriber.Subscribe(pktNats.SubjectAll, "audit-trail-worker", a.record); err != nil {
		a.logger.Error("AuditTrail", "Failed to start audit subscriber", map[string]interface{}{"error": err.Error()})
		return
	}
	a.logger.Info("AuditTrail", "Audit trail started, listening to "+pktNats.SubjectAll, nil)
}

func (a *AuditTrail) record(ctx context.Context, event events.Event) error {
	a.logger.Info("Audit", event.EventType(), event.Payload())
	return nil
}
