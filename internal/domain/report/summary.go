package report

import (
	"travel-backoffice/internal/pkg/money"

	"github.com/shopspring/decimal"
)

// FinancialTotals are the raw counters behind a financial summary.
type FinancialTotals struct {
	PaidRevenue     decimal.Decimal
	TotalInvoices   int64
	PaidInvoices    int64
	PendingInvoices int64
}

// NewFinancialSummary derives the average invoice value as paid revenue over
// all invoices in range, zero when there are none. Nil slices become empty.
func NewFinancialSummary(t FinancialTotals, byStatus []StatusTotal, trend []MonthlyRevenue) *FinancialSummary {
	if byStatus == nil {
		byStatus = []StatusTotal{}
	}
	if trend == nil {
		trend = []MonthlyRevenue{}
	}
	return &FinancialSummary{
		TotalRevenue:        t.PaidRevenue,
		TotalInvoices:       t.TotalInvoices,
		PaidInvoices:        t.PaidInvoices,
		PendingInvoices:     t.PendingInvoices,
		AverageInvoiceValue: money.Average(t.PaidRevenue, t.TotalInvoices),
		RevenueByStatus:     byStatus,
		MonthlyTrend:        trend,
	}
}
