//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type BookingRow struct {
	UserEmail   string
	PackageID   int
	PackageName string
	FromDate    time.Time
	ToDate      time.Time
	Status      string
	CreatedAt   time.Time
}

type InvoiceRow struct {
	Number        string
	BookingID     *int64
	InvoiceDate   time.Time
	CustomerName  string
	CustomerEmail string
	PackageName   string
	PackagePrice  decimal.Decimal
	Tax           decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	Status        string
	CreatedAt     time.Time
}

func CreateTestUser(t *testing.T, db DBLike, username, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, username, email, password_hash, role) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (username) DO NOTHING",
		userID, username, username+"@example.com", testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE username = $1", username).Scan(&userID))
	}
	return userID
}

func CreateTestBooking(t *testing.T, db DBLike, b BookingRow) int64 {
	t.Helper()

	if b.Status == "" {
		b.Status = "pending"
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO bookings (user_email, package_id, package_name, from_date, to_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING id`,
		b.UserEmail, b.PackageID, b.PackageName, b.FromDate, b.ToDate, b.Status, b.CreatedAt,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestInvoice(t *testing.T, db DBLike, inv InvoiceRow) int64 {
	t.Helper()

	if inv.Status == "" {
		inv.Status = "pending"
	}
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = inv.InvoiceDate
	}
	if inv.Total.IsZero() {
		inv.Total = inv.PackagePrice.
			Add(inv.PackagePrice.Mul(inv.Tax).Div(decimal.NewFromInt(100))).
			Sub(inv.Discount).
			Round(2)
	}
	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO invoices (invoice_number, booking_id, invoice_date, customer_name, customer_email,
		                      package_name, package_price, tax, discount, total_amount, payment_status,
		                      created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
		RETURNING id`,
		inv.Number, inv.BookingID, inv.InvoiceDate, inv.CustomerName, inv.CustomerEmail,
		inv.PackageName, inv.PackagePrice, inv.Tax, inv.Discount, inv.Total, inv.Status,
		inv.CreatedAt,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func SetInvoiceSequence(t *testing.T, db DBLike, last int64) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE invoice_sequence SET last_value = $1, updated_at = NOW() WHERE name = 'invoice'", last)
	require.NoError(t, err)
}

func CountAuditEntries(t *testing.T, db DBLike, action string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM system_log WHERE action = $1", action).Scan(&n)
	require.NoError(t, err)
	return n
}

// SeedReferenceData restores the invoice sequence and default settings rows.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO invoice_sequence (name, last_value) VALUES ('invoice', 0)
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO settings (setting_key, setting_value) VALUES
		    ('company_name', 'Rainbow Travel & Tours'),
		    ('currency', 'USD'),
		    ('tax_rate', '10'),
		    ('invoice_prefix', 'RTT-INV-'),
		    ('smtp_port', '587')
		ON CONFLICT (setting_key) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table and reseeds reference data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
