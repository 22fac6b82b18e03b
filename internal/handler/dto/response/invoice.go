package response

import (
	"time"

	"travel-backoffice/internal/usecase/queries"
)

type InvoiceResponse struct {
	ID              int64     `json:"id"`
	InvoiceNumber   string    `json:"invoice_number"`
	BookingID       *int64    `json:"booking_id"`
	InvoiceDate     string    `json:"invoice_date"`
	CustomerName    string    `json:"customer_name"`
	CustomerEmail   string    `json:"customer_email"`
	PackageName     string    `json:"package_name"`
	PackagePrice    string    `json:"package_price"`
	TaxRate         string    `json:"tax_rate"`
	TaxAmount       string    `json:"tax_amount"`
	Discount        string    `json:"discount"`
	TotalAmount     string    `json:"total_amount"`
	PaymentStatus   string    `json:"payment_status"`
	BookingFromDate *string   `json:"booking_from_date,omitempty"`
	BookingToDate   *string   `json:"booking_to_date,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type InvoiceListResponse struct {
	Invoices []*InvoiceResponse `json:"invoices"`
	Total    int64              `json:"total"`
	Limit    int                `json:"limit"`
	Offset   int                `json:"offset"`
}

type InvoiceStatsResponse struct {
	Total        int64  `json:"total"`
	TotalRevenue string `json:"total_revenue"`
	Paid         int64  `json:"paid"`
	Pending      int64  `json:"pending"`
	Overdue      int64  `json:"overdue"`
}

func FromInvoiceView(v *queries.InvoiceView) (*InvoiceResponse, error) {
	var res InvoiceResponse
	if err := copyInto(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromInvoiceViews(views []*queries.InvoiceView) ([]*InvoiceResponse, error) {
	res := make([]*InvoiceResponse, len(views))
	for i, v := range views {
		item, err := FromInvoiceView(v)
		if err != nil {
			return nil, err
		}
		res[i] = item
	}
	return res, nil
}

func FromInvoicePage(p *queries.InvoicePage) (*InvoiceListResponse, error) {
	items, err := FromInvoiceViews(p.Items)
	if err != nil {
		return nil, err
	}
	return &InvoiceListResponse{Invoices: items, Total: p.Total, Limit: p.Limit, Offset: p.Offset}, nil
}

func FromInvoiceStats(s *queries.InvoiceStats) (*InvoiceStatsResponse, error) {
	var res InvoiceStatsResponse
	if err := copyInto(&res, s); err != nil {
		return nil, err
	}
	return &res, nil
}
