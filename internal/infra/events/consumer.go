package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"travel-backoffice/internal/domain/audit"
	"travel-backoffice/internal/pkg/errs"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

const auditHandlerName = "persist-audit-entry"

type AuditStore interface {
	Insert(ctx context.Context, e audit.Entry) error
}

// NewAuditRouter persists every entry published on topic. Undecodable
// messages are acknowledged and dropped so they never block the stream.
func NewAuditRouter(t *Transport, topic string, store AuditStore) (*message.Router, error) {
	router, err := message.NewRouter(message.RouterConfig{CloseTimeout: 5 * time.Second}, t.Logger)
	if err != nil {
		return nil, errs.Wrap(err, "creating audit router")
	}

	router.AddMiddleware(
		middleware.Recoverer,
		middleware.Retry{
			MaxRetries:      5,
			InitialInterval: 100 * time.Millisecond,
			MaxInterval:     2 * time.Second,
			Multiplier:      2,
			Logger:          t.Logger,
		}.Middleware,
	)

	router.AddNoPublisherHandler(auditHandlerName, topic, t.Subscriber, persistAuditEntry(store))
	return router, nil
}

func persistAuditEntry(store AuditStore) message.NoPublishHandlerFunc {
	return func(msg *message.Message) error {
		var e audit.Entry
		if err := json.Unmarshal(msg.Payload, &e); err != nil {
			slog.Error("dropping undecodable audit message", "message_uuid", msg.UUID, "error", err.Error())
			return nil
		}
		if err := store.Insert(msg.Context(), e); err != nil {
			return errs.Wrapf(err, "persist audit entry %s", e.Action)
		}
		return nil
	}
}
