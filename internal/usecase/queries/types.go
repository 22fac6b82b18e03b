package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingView represents read-optimized booking data
type BookingView struct {
	ID           int64     `json:"id"`
	UserEmail    string    `json:"user_email"`
	PackageID    int       `json:"package_id"`
	PackageName  string    `json:"package_name"`
	FromDate     time.Time `json:"from_date"`
	ToDate       time.Time `json:"to_date"`
	Status       string    `json:"status"`
	InvoiceCount int64     `json:"invoice_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type BookingStats struct {
	Total        int64 `json:"total"`
	Confirmed    int64 `json:"confirmed"`
	Pending      int64 `json:"pending"`
	Cancelled    int64 `json:"cancelled"`
	WithInvoices int64 `json:"with_invoices"`
}

type BookingPage struct {
	Items  []*BookingView `json:"items"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// InvoiceView carries the invoice plus the dates of the booking it came from, if any.
type InvoiceView struct {
	ID              int64           `json:"id"`
	InvoiceNumber   string          `json:"invoice_number"`
	BookingID       *int64          `json:"booking_id,omitempty"`
	InvoiceDate     time.Time       `json:"invoice_date"`
	CustomerName    string          `json:"customer_name"`
	CustomerEmail   string          `json:"customer_email"`
	PackageName     string          `json:"package_name"`
	PackagePrice    decimal.Decimal `json:"package_price"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	Discount        decimal.Decimal `json:"discount"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	PaymentStatus   string          `json:"payment_status"`
	BookingFromDate *time.Time      `json:"booking_from_date,omitempty"`
	BookingToDate   *time.Time      `json:"booking_to_date,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type InvoiceStats struct {
	Total        int64           `json:"total"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	Paid         int64           `json:"paid"`
	Pending      int64           `json:"pending"`
	Overdue      int64           `json:"overdue"`
}

type InvoicePage struct {
	Items  []*InvoiceView `json:"items"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

type DashboardTotals struct {
	TotalInvoices   int64           `json:"total_invoices"`
	PaidInvoices    int64           `json:"paid_invoices"`
	PendingInvoices int64           `json:"pending_invoices"`
	PaidRevenue     decimal.Decimal `json:"paid_revenue"`
}

type DailyActivity struct {
	InvoiceCount int64           `json:"invoice_count"`
	PaidRevenue  decimal.Decimal `json:"paid_revenue"`
}

type MonthRevenue struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}

type PackageRevenue struct {
	PackageName  string          `json:"package_name"`
	InvoiceCount int64           `json:"invoice_count"`
	Revenue      decimal.Decimal `json:"revenue"`
}

type DashboardSummary struct {
	DashboardTotals
	Today          DailyActivity     `json:"today"`
	RecentInvoices []*InvoiceView    `json:"recent_invoices"`
	MonthlyRevenue []*MonthRevenue   `json:"monthly_revenue"`
	TopPackages    []*PackageRevenue `json:"top_packages"`
}

// AuditLogView represents one system_log row
type AuditLogView struct {
	ID          int64      `json:"id"`
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	Action      string     `json:"action"`
	Details     string     `json:"details"`
	PerformedBy string     `json:"performed_by"`
	CreatedAt   time.Time  `json:"created_at"`
}

type SystemCounts struct {
	Invoices int64 `json:"invoices"`
	Bookings int64 `json:"bookings"`
	Users    int64 `json:"users"`
}

type SystemInfo struct {
	Counts         SystemCounts    `json:"counts"`
	RecentActivity []*AuditLogView `json:"recent_activity"`
}

// UserView never carries the password hash.
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PackageView struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	BasePrice decimal.Decimal `json:"base_price"`
}
