package report

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrUnknownType = errors.New("unknown report type")

type Type string

const (
	TypeFinancialSummary   Type = "financial_summary"
	TypeInvoiceAnalysis    Type = "invoice_analysis"
	TypeCustomerReports    Type = "customer_reports"
	TypePackagePerformance Type = "package_performance"
)

const DefaultType = TypeFinancialSummary

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeFinancialSummary, TypeInvoiceAnalysis, TypeCustomerReports, TypePackagePerformance:
		return true
	default:
		return false
	}
}

// ParseType maps an empty string to DefaultType.
func ParseType(s string) (Type, error) {
	if s == "" {
		return DefaultType, nil
	}
	t := Type(s)
	if !t.IsValid() {
		return "", ErrUnknownType
	}
	return t, nil
}

// Result holds exactly one populated section, matching Type.
type Result struct {
	Type        Type                `json:"type"`
	Range       DateRange           `json:"range"`
	GeneratedAt time.Time           `json:"generated_at"`
	Financial   *FinancialSummary   `json:"financial,omitempty"`
	Invoices    *InvoiceAnalysis    `json:"invoices,omitempty"`
	Customers   *CustomerReport     `json:"customers,omitempty"`
	Packages    *PackagePerformance `json:"packages,omitempty"`
	Charts      []Series            `json:"charts"`
}

type FinancialSummary struct {
	TotalRevenue        decimal.Decimal  `json:"total_revenue"`
	TotalInvoices       int64            `json:"total_invoices"`
	PaidInvoices        int64            `json:"paid_invoices"`
	PendingInvoices     int64            `json:"pending_invoices"`
	AverageInvoiceValue decimal.Decimal  `json:"average_invoice_value"`
	RevenueByStatus     []StatusTotal    `json:"revenue_by_status"`
	MonthlyTrend        []MonthlyRevenue `json:"monthly_trend"`
}

type StatusTotal struct {
	Status string          `json:"status"`
	Count  int64           `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

type MonthlyRevenue struct {
	Month        string          `json:"month"` // YYYY-MM
	Revenue      decimal.Decimal `json:"revenue"`
	InvoiceCount int64           `json:"invoice_count"`
}

type InvoiceAnalysis struct {
	StatusDistribution []StatusTotal `json:"status_distribution"`
	TopInvoices        []TopInvoice  `json:"top_invoices"`
	InvoiceAge         []StatusAge   `json:"invoice_age"`
}

type TopInvoice struct {
	InvoiceNumber string          `json:"invoice_number"`
	CustomerName  string          `json:"customer_name"`
	PackageName   string          `json:"package_name"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	InvoiceDate   time.Time       `json:"invoice_date"`
	PaymentStatus string          `json:"payment_status"`
}

type StatusAge struct {
	Status     string          `json:"status"`
	AvgAgeDays decimal.Decimal `json:"avg_age_days"`
	Count      int64           `json:"count"`
}

type CustomerReport struct {
	TopCustomers []CustomerSpend `json:"top_customers"`
	NewCustomers []MonthlyCount  `json:"new_customers"`
}

type CustomerSpend struct {
	CustomerName    string          `json:"customer_name"`
	CustomerEmail   string          `json:"customer_email"`
	InvoiceCount    int64           `json:"invoice_count"`
	TotalSpent      decimal.Decimal `json:"total_spent"`
	AvgInvoiceValue decimal.Decimal `json:"avg_invoice_value"`
}

type MonthlyCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type PackagePerformance struct {
	Packages []PackageRevenue `json:"packages"`
	Trend    []PackageTrend   `json:"trend"`
}

type PackageRevenue struct {
	PackageName          string          `json:"package_name"`
	BookingsCount        int64           `json:"bookings_count"`
	TotalRevenue         decimal.Decimal `json:"total_revenue"`
	AvgRevenuePerBooking decimal.Decimal `json:"avg_revenue_per_booking"`
}

type PackageTrend struct {
	PackageName string `json:"package_name"`
	Month       string `json:"month"`
	Count       int64  `json:"count"`
}

// Series is one labelled data set for a chart.
type Series struct {
	Name   string            `json:"name"`
	Labels []string          `json:"labels"`
	Values []decimal.Decimal `json:"values"`
}
