//go:build unit

package export_test

import (
	"bytes"
	"testing"
	"time"

	"travel-backoffice/internal/domain/report"
	"travel-backoffice/internal/handler/export"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestWriteReportCSV(t *testing.T) {
	testCases := []struct {
		name string
		res  *report.Result
		want string
	}{
		{
			name: "financial summary",
			res: &report.Result{Financial: report.NewFinancialSummary(report.FinancialTotals{
				PaidRevenue: d("100"), TotalInvoices: 1, PaidInvoices: 1,
			}, nil, nil)},
			want: "Metric,Value\n" +
				"Total Revenue,$100.00\n" +
				"Total Invoices,1\n" +
				"Paid Invoices,1\n" +
				"Pending Invoices,0\n" +
				"Average Invoice Value,$100.00\n",
		},
		{
			name: "invoice analysis",
			res: &report.Result{Invoices: &report.InvoiceAnalysis{StatusDistribution: []report.StatusTotal{
				{Status: "paid", Count: 3, Amount: d("4567.8")},
				{Status: "overdue", Count: 1, Amount: d("990")},
			}}},
			want: "Status,Count,Total Amount\n" +
				"Paid,3,\"$4,567.80\"\n" +
				"Overdue,1,$990.00\n",
		},
		{
			name: "customer reports quote names with commas",
			res: &report.Result{Customers: &report.CustomerReport{TopCustomers: []report.CustomerSpend{
				{CustomerName: "Doe, Jane", CustomerEmail: "jane.doe@example.com", InvoiceCount: 2, TotalSpent: d("2640"), AvgInvoiceValue: d("1320")},
			}}},
			want: "Customer,Email,Invoices,Total Spent,Avg Invoice\n" +
				"\"Doe, Jane\",jane.doe@example.com,2,\"$2,640.00\",\"$1,320.00\"\n",
		},
		{
			name: "package performance",
			res: &report.Result{Packages: &report.PackagePerformance{Packages: []report.PackageRevenue{
				{PackageName: "African Safari", BookingsCount: 2, TotalRevenue: d("6600"), AvgRevenuePerBooking: d("3300")},
			}}},
			want: "Package,Bookings,Total Revenue,Avg Revenue\n" +
				"African Safari,2,\"$6,600.00\",\"$3,300.00\"\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, export.WriteReportCSV(&buf, tc.res))
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestCSVFilename(t *testing.T) {
	assert.Equal(t, "reports_2025-03-14.csv", export.CSVFilename(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)))
}
