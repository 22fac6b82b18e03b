package response

import (
	"travel-backoffice/internal/usecase/queries"
)

type MonthRevenueResponse struct {
	Month   string `json:"month"`
	Revenue string `json:"revenue"`
}

type PackageRevenueResponse struct {
	PackageName  string `json:"package_name"`
	InvoiceCount int64  `json:"invoice_count"`
	Revenue      string `json:"revenue"`
}

type DailyActivityResponse struct {
	InvoiceCount int64  `json:"invoice_count"`
	PaidRevenue  string `json:"paid_revenue"`
}

type DashboardResponse struct {
	TotalInvoices   int64                     `json:"total_invoices"`
	PaidInvoices    int64                     `json:"paid_invoices"`
	PendingInvoices int64                     `json:"pending_invoices"`
	PaidRevenue     string                    `json:"paid_revenue"`
	Today           DailyActivityResponse     `json:"today"`
	RecentInvoices  []*InvoiceResponse        `json:"recent_invoices"`
	MonthlyRevenue  []*MonthRevenueResponse   `json:"monthly_revenue"`
	TopPackages     []*PackageRevenueResponse `json:"top_packages"`
}

func FromDashboardSummary(s *queries.DashboardSummary) (*DashboardResponse, error) {
	recent, err := FromInvoiceViews(s.RecentInvoices)
	if err != nil {
		return nil, err
	}
	res := &DashboardResponse{
		TotalInvoices:   s.TotalInvoices,
		PaidInvoices:    s.PaidInvoices,
		PendingInvoices: s.PendingInvoices,
		PaidRevenue:     Money(s.PaidRevenue),
		Today:           DailyActivityResponse{InvoiceCount: s.Today.InvoiceCount, PaidRevenue: Money(s.Today.PaidRevenue)},
		RecentInvoices:  recent,
		MonthlyRevenue:  make([]*MonthRevenueResponse, len(s.MonthlyRevenue)),
		TopPackages:     make([]*PackageRevenueResponse, len(s.TopPackages)),
	}
	for i, m := range s.MonthlyRevenue {
		res.MonthlyRevenue[i] = &MonthRevenueResponse{Month: m.Month, Revenue: Money(m.Revenue)}
	}
	for i, p := range s.TopPackages {
		res.TopPackages[i] = &PackageRevenueResponse{PackageName: p.PackageName, InvoiceCount: p.InvoiceCount, Revenue: Money(p.Revenue)}
	}
	return res, nil
}
