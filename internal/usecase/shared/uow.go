package shared

import (
	"context"
	"time"

	"travel-backoffice/internal/domain/booking"
	"travel-backoffice/internal/domain/invoice"
	"travel-backoffice/internal/domain/setting"
	"travel-backoffice/internal/domain/user"
	sqlc "travel-backoffice/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Invoices() InvoiceRepository
	InvoiceSequence() InvoiceSequenceRepository
	Settings() SettingsRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	Settings(ctx context.Context) (setting.Settings, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (int64, error)
	Update(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	Delete(ctx context.Context, tx sqlc.DBTX, id int64) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id int64) (*booking.Booking, error)
	CountInvoices(ctx context.Context, tx sqlc.DBTX, id int64) (int64, error)
}

type InvoiceRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, inv *invoice.Invoice) (int64, error)
	Update(ctx context.Context, tx sqlc.DBTX, inv *invoice.Invoice) error
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, id int64, status invoice.PaymentStatus, now time.Time) error
	Delete(ctx context.Context, tx sqlc.DBTX, id int64) (string, error)
	FindByID(ctx context.Context, tx sqlc.DBTX, id int64) (*invoice.Invoice, error)
}

type InvoiceSequenceRepository interface {
	// Reserve returns the number of values handed out before this call.
	Reserve(ctx context.Context, tx sqlc.DBTX, name string) (int64, error)
}

type SettingsRepository interface {
	Load(ctx context.Context, tx sqlc.DBTX) (setting.Settings, error)
	Upsert(ctx context.Context, tx sqlc.DBTX, values map[setting.Key]string) error
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	Update(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*user.User, error)
	CountDuplicates(ctx context.Context, tx sqlc.DBTX, username, email string, exclude *uuid.UUID) (int64, error)
	CountAdmins(ctx context.Context, tx sqlc.DBTX) (int64, error)
}
