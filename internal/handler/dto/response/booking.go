package response

import (
	"time"

	"travel-backoffice/internal/usecase/queries"
)

type BookingResponse struct {
	ID           int64     `json:"id"`
	UserEmail    string    `json:"user_email"`
	PackageID    int       `json:"package_id"`
	PackageName  string    `json:"package_name"`
	FromDate     string    `json:"from_date"`
	ToDate       string    `json:"to_date"`
	Status       string    `json:"status"`
	InvoiceCount int64     `json:"invoice_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int64              `json:"total"`
	Limit    int                `json:"limit"`
	Offset   int                `json:"offset"`
}

type ConvertResponse struct {
	InvoiceID     int64  `json:"invoice_id"`
	InvoiceNumber string `json:"invoice_number"`
	Message       string `json:"message"`
}

type CreatedResponse struct {
	ID any `json:"id"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var res BookingResponse
	if err := copyInto(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromBookingPage(p *queries.BookingPage) (*BookingListResponse, error) {
	items := make([]*BookingResponse, len(p.Items))
	for i, v := range p.Items {
		item, err := FromBookingView(v)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	return &BookingListResponse{Bookings: items, Total: p.Total, Limit: p.Limit, Offset: p.Offset}, nil
}
