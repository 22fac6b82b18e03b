package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"travel-backoffice/internal/domain/audit"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// AuditPublisher hands audit entries to the event transport. Publishing never
// fails the caller; errors are logged and the entry is dropped.
type AuditPublisher struct {
	publisher message.Publisher
	topic     string
}

func NewAuditPublisher(publisher message.Publisher, topic string) *AuditPublisher {
	return &AuditPublisher{publisher: publisher, topic: topic}
}

func (p *AuditPublisher) Record(ctx context.Context, e audit.Entry) {
	payload, err := json.Marshal(e)
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode audit entry", "action", e.Action, "error", err.Error())
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("action", string(e.Action))
	if err := p.publisher.Publish(p.topic, msg); err != nil {
		slog.ErrorContext(ctx, "failed to publish audit entry",
			"action", e.Action,
			"details", e.Details,
			"error", err.Error())
	}
}
