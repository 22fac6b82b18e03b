//go:build unit

package commands_test

import (
	"context"
	"testing"

	"travel-backoffice/internal/domain/audit"
	"travel-backoffice/internal/usecase/shared"
	sharedmock "travel-backoffice/tests/mock/shared"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

var adminID = uuid.MustParse("7b1c7f0e-1b5a-4c1e-9b55-0a5f0d3c2e11")

var admin = audit.Actor{ID: &adminID, Name: "alice", Role: "admin"}

type txFixture struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	bookings *sharedmock.MockBookingRepository
	invoices *sharedmock.MockInvoiceRepository
	sequence *sharedmock.MockInvoiceSequenceRepository
	settings *sharedmock.MockSettingsRepository
	users    *sharedmock.MockUserRepository
	auditLog *sharedmock.MockAuditLog
	cache    *sharedmock.MockCache
}

// newTxFixture wires a unit of work whose Within runs fn against mocked repositories.
func newTxFixture(t *testing.T) *txFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &txFixture{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		reads:    sharedmock.NewMockCommandReads(ctrl),
		bookings: sharedmock.NewMockBookingRepository(ctrl),
		invoices: sharedmock.NewMockInvoiceRepository(ctrl),
		sequence: sharedmock.NewMockInvoiceSequenceRepository(ctrl),
		settings: sharedmock.NewMockSettingsRepository(ctrl),
		users:    sharedmock.NewMockUserRepository(ctrl),
		auditLog: sharedmock.NewMockAuditLog(ctrl),
		cache:    sharedmock.NewMockCache(ctrl),
	}
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Bookings().Return(f.bookings).AnyTimes()
	f.tx.EXPECT().Invoices().Return(f.invoices).AnyTimes()
	f.tx.EXPECT().InvoiceSequence().Return(f.sequence).AnyTimes()
	f.tx.EXPECT().Settings().Return(f.settings).AnyTimes()
	f.tx.EXPECT().Users().Return(f.users).AnyTimes()
	return f
}

// expectAudit captures the single entry the command under test records.
func (f *txFixture) expectAudit() *audit.Entry {
	var got audit.Entry
	f.auditLog.EXPECT().Record(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, e audit.Entry) { got = e })
	return &got
}
