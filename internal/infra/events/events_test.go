//go:build unit

package events_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"travel-backoffice/internal/domain/audit"
	"travel-backoffice/internal/infra/events"
	"travel-backoffice/internal/pkg/config"
	"travel-backoffice/internal/pkg/errs"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTopic = "backoffice.audit.test"

type recordingStore struct {
	mu       sync.Mutex
	entries  []audit.Entry
	failures int
}

func (s *recordingStore) Insert(_ context.Context, e audit.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failures > 0 {
		s.failures--
		return errs.New("connection lost")
	}
	s.entries = append(s.entries, e)
	return nil
}

func (s *recordingStore) snapshot() []audit.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]audit.Entry(nil), s.entries...)
}

func startPipeline(t *testing.T, store events.AuditStore) *events.Transport {
	t.Helper()
	transport, err := events.NewTransport(
		config.EventsConfig{Driver: config.EventsDriverMemory},
		nil,
		events.NewLogger(slog.New(slog.DiscardHandler)),
	)
	require.NoError(t, err)

	router, err := events.NewAuditRouter(transport, testTopic, store)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = router.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		_ = router.Close()
		_ = transport.Close()
	})
	<-router.Running()
	return transport
}

func TestAuditPipeline_PersistsPublishedEntries(t *testing.T) {
	store := &recordingStore{}
	transport := startPipeline(t, store)
	actorID := uuid.New()
	at := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	pub := events.NewAuditPublisher(transport.Publisher, testTopic)
	pub.Record(context.Background(), audit.NewEntry(
		audit.Actor{ID: &actorID, Name: "alice", Role: "admin"},
		audit.ActionBookingDelete, "Booking #42 deleted", at,
	))

	require.Eventually(t, func() bool { return len(store.snapshot()) == 1 }, 2*time.Second, 10*time.Millisecond)
	got := store.snapshot()[0]
	assert.Equal(t, audit.ActionBookingDelete, got.Action)
	assert.Equal(t, "Booking #42 deleted", got.Details)
	assert.Equal(t, "alice", got.PerformedBy)
	assert.Equal(t, &actorID, got.UserID)
	assert.True(t, at.Equal(got.OccurredAt))
}

func TestAuditPipeline_RetriesFailedInserts(t *testing.T) {
	store := &recordingStore{failures: 2}
	transport := startPipeline(t, store)

	events.NewAuditPublisher(transport.Publisher, testTopic).
		Record(context.Background(), audit.NewEntry(audit.System(), audit.ActionSettingsUpdate, "System settings updated", time.Now()))

	require.Eventually(t, func() bool { return len(store.snapshot()) == 1 }, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, audit.SystemActorName, store.snapshot()[0].PerformedBy)
}

func TestAuditPipeline_DropsUndecodableMessages(t *testing.T) {
	store := &recordingStore{}
	transport := startPipeline(t, store)

	require.NoError(t, transport.Publisher.Publish(testTopic, message.NewMessage(watermill.NewUUID(), []byte("{broken"))))
	events.NewAuditPublisher(transport.Publisher, testTopic).
		Record(context.Background(), audit.NewEntry(audit.System(), audit.ActionInvoiceDelete, "Invoice RTT-INV-0001 deleted", time.Now()))

	require.Eventually(t, func() bool { return len(store.snapshot()) == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "Invoice RTT-INV-0001 deleted", store.snapshot()[0].Details)
}

func TestNewTransport_RejectsUnknownDriver(t *testing.T) {
	_, err := events.NewTransport(config.EventsConfig{Driver: "kafka"}, nil, watermill.NopLogger{})
	require.Error(t, err)

	_, err = events.NewTransport(config.EventsConfig{Driver: config.EventsDriverRedis}, nil, watermill.NopLogger{})
	require.Error(t, err)
}
