package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"travel-backoffice/internal/domain/report"
	"travel-backoffice/internal/pkg/errs"
	"travel-backoffice/internal/pkg/money"
)

const CSVContentType = "text/csv"

// CSVFilename is the attachment name for an export generated on today.
func CSVFilename(today time.Time) string {
	return "reports_" + today.Format("2006-01-02") + ".csv"
}

// WriteReportCSV renders the populated section of res as a header row plus data rows.
func WriteReportCSV(w io.Writer, res *report.Result) error {
	cw := csv.NewWriter(w)
	for _, row := range reportRows(res) {
		if err := cw.Write(row); err != nil {
			return errs.Wrap(err, "write csv row")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errs.Wrap(err, "flush csv")
	}
	return nil
}

func reportRows(res *report.Result) [][]string {
	switch {
	case res.Financial != nil:
		f := res.Financial
		return [][]string{
			{"Metric", "Value"},
			{"Total Revenue", money.Format(f.TotalRevenue)},
			{"Total Invoices", itoa(f.TotalInvoices)},
			{"Paid Invoices", itoa(f.PaidInvoices)},
			{"Pending Invoices", itoa(f.PendingInvoices)},
			{"Average Invoice Value", money.Format(f.AverageInvoiceValue)},
		}
	case res.Invoices != nil:
		rows := [][]string{{"Status", "Count", "Total Amount"}}
		for _, s := range res.Invoices.StatusDistribution {
			rows = append(rows, []string{report.Ucfirst(s.Status), itoa(s.Count), money.Format(s.Amount)})
		}
		return rows
	case res.Customers != nil:
		rows := [][]string{{"Customer", "Email", "Invoices", "Total Spent", "Avg Invoice"}}
		for _, c := range res.Customers.TopCustomers {
			rows = append(rows, []string{
				c.CustomerName,
				c.CustomerEmail,
				itoa(c.InvoiceCount),
				money.Format(c.TotalSpent),
				money.Format(c.AvgInvoiceValue),
			})
		}
		return rows
	case res.Packages != nil:
		rows := [][]string{{"Package", "Bookings", "Total Revenue", "Avg Revenue"}}
		for _, p := range res.Packages.Packages {
			rows = append(rows, []string{
				p.PackageName,
				itoa(p.BookingsCount),
				money.Format(p.TotalRevenue),
				money.Format(p.AvgRevenuePerBooking),
			})
		}
		return rows
	}
	return nil
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
