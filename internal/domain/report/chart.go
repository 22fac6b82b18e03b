package report

import (
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const chartTopN = 8

// BuildCharts derives the chart series for whichever section r carries.
func BuildCharts(r *Result) []Series {
	switch {
	case r.Financial != nil:
		trend := Series{Name: "monthly_revenue"}
		for _, m := range r.Financial.MonthlyTrend {
			trend.Labels = append(trend.Labels, MonthLabel(m.Month))
			trend.Values = append(trend.Values, m.Revenue)
		}
		status := Series{Name: "revenue_by_status"}
		for _, s := range r.Financial.RevenueByStatus {
			status.Labels = append(status.Labels, Ucfirst(s.Status))
			status.Values = append(status.Values, s.Amount)
		}
		return []Series{trend, status}
	case r.Invoices != nil:
		dist := Series{Name: "status_distribution"}
		for _, s := range r.Invoices.StatusDistribution {
			dist.Labels = append(dist.Labels, Ucfirst(s.Status))
			dist.Values = append(dist.Values, decimal.NewFromInt(s.Count))
		}
		return []Series{dist}
	case r.Customers != nil:
		top := Series{Name: "top_customers"}
		for i, c := range r.Customers.TopCustomers {
			if i == chartTopN {
				break
			}
			top.Labels = append(top.Labels, c.CustomerName)
			top.Values = append(top.Values, c.TotalSpent)
		}
		return []Series{top}
	case r.Packages != nil:
		top := Series{Name: "package_revenue"}
		for i, p := range r.Packages.Packages {
			if i == chartTopN {
				break
			}
			top.Labels = append(top.Labels, p.PackageName)
			top.Values = append(top.Values, p.TotalRevenue)
		}
		return []Series{top}
	}
	return []Series{}
}

// MonthLabel turns "2025-01" into "Jan 2025"; unparseable input is returned unchanged.
func MonthLabel(month string) string {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	return t.Format("Jan 2006")
}

// Ucfirst upper-cases the first letter only.
func Ucfirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
