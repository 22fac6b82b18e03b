package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Bookings struct {
	ID          int64              `db:"id" json:"id"`
	UserEmail   string             `db:"user_email" json:"user_email"`
	PackageID   int32              `db:"package_id" json:"package_id"`
	PackageName string             `db:"package_name" json:"package_name"`
	FromDate    pgtype.Date        `db:"from_date" json:"from_date"`
	ToDate      pgtype.Date        `db:"to_date" json:"to_date"`
	Status      string             `db:"status" json:"status"`
	CreatedAt   pgtype.Timestamptz `db:"created_at" json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `db:"updated_at" json:"updated_at"`
}

type InvoiceSequence struct {
	Name      string             `db:"name" json:"name"`
	LastValue int64              `db:"last_value" json:"last_value"`
	UpdatedAt pgtype.Timestamptz `db:"updated_at" json:"updated_at"`
}

type Invoices struct {
	ID            int64              `db:"id" json:"id"`
	InvoiceNumber string             `db:"invoice_number" json:"invoice_number"`
	BookingID     pgtype.Int8        `db:"booking_id" json:"booking_id"`
	InvoiceDate   pgtype.Date        `db:"invoice_date" json:"invoice_date"`
	CustomerName  string             `db:"customer_name" json:"customer_name"`
	CustomerEmail string             `db:"customer_email" json:"customer_email"`
	PackageName   string             `db:"package_name" json:"package_name"`
	PackagePrice  pgtype.Numeric     `db:"package_price" json:"package_price"`
	Tax           pgtype.Numeric     `db:"tax" json:"tax"`
	Discount      pgtype.Numeric     `db:"discount" json:"discount"`
	TotalAmount   pgtype.Numeric     `db:"total_amount" json:"total_amount"`
	PaymentStatus string             `db:"payment_status" json:"payment_status"`
	CreatedAt     pgtype.Timestamptz `db:"created_at" json:"created_at"`
	UpdatedAt     pgtype.Timestamptz `db:"updated_at" json:"updated_at"`
}

type Settings struct {
	SettingKey   string             `db:"setting_key" json:"setting_key"`
	SettingValue string             `db:"setting_value" json:"setting_value"`
	UpdatedAt    pgtype.Timestamptz `db:"updated_at" json:"updated_at"`
}

type SystemLog struct {
	ID            int64              `db:"id" json:"id"`
	UserID        pgtype.UUID        `db:"user_id" json:"user_id"`
	Action        string             `db:"action" json:"action"`
	ActionDetails string             `db:"action_details" json:"action_details"`
	PerformedBy   string             `db:"performed_by" json:"performed_by"`
	CreatedAt     pgtype.Timestamptz `db:"created_at" json:"created_at"`
}

type Users struct {
	ID           uuid.UUID          `db:"id" json:"id"`
	Username     string             `db:"username" json:"username"`
	Email        string             `db:"email" json:"email"`
	PasswordHash string             `db:"password_hash" json:"password_hash"`
	Role         string             `db:"role" json:"role"`
	CreatedAt    pgtype.Timestamptz `db:"created_at" json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `db:"updated_at" json:"updated_at"`
}
