package request

import (
	"time"

	"travel-backoffice/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type InvoiceRequest struct {
	BookingID     *int64          `json:"booking_id" binding:"omitempty,min=1"`
	InvoiceDate   string          `json:"invoice_date"`
	CustomerName  string          `json:"customer_name" binding:"required,max=255"`
	CustomerEmail string          `json:"customer_email" binding:"required,email"`
	PackageName   string          `json:"package_name" binding:"required,max=255"`
	PackagePrice  decimal.Decimal `json:"package_price"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	Discount      decimal.Decimal `json:"discount"`
	PaymentStatus string          `json:"payment_status" binding:"required,oneof=pending paid overdue"`
}

// ToInput leaves InvoiceDate zero when omitted so the command applies its default.
// Omitted tax_rate and discount decode as zero.
func (r *InvoiceRequest) ToInput() (commands.InvoiceInput, error) {
	var date time.Time
	if r.InvoiceDate != "" {
		d, err := ParseDate(r.InvoiceDate)
		if err != nil {
			return commands.InvoiceInput{}, err
		}
		date = d
	}
	return commands.InvoiceInput{
		BookingID:     r.BookingID,
		InvoiceDate:   date,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		PackageName:   r.PackageName,
		PackagePrice:  r.PackagePrice,
		TaxRate:       r.TaxRate,
		Discount:      r.Discount,
		PaymentStatus: r.PaymentStatus,
	}, nil
}

type InvoiceStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required,oneof=pending paid overdue"`
}
