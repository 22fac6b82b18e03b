//go:build unit || e2e

package builder

import (
	"time"

	"travel-backoffice/internal/domain/contact"
	"travel-backoffice/internal/domain/invoice"
	reqdto "travel-backoffice/internal/handler/dto/request"
	sqlc "travel-backoffice/internal/infra/sqlc/generated"
	"travel-backoffice/internal/pkg/pgconv"
	"travel-backoffice/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type InvoiceBuilder struct {
	ID            int64
	Number        string
	BookingID     *int64
	InvoiceDate   time.Time
	CustomerName  string
	CustomerEmail string
	PackageName   string
	PackagePrice  decimal.Decimal
	TaxRate       decimal.Decimal
	Discount      decimal.Decimal
	Status        string
}

func NewInvoiceBuilder() *InvoiceBuilder {
	return &InvoiceBuilder{
		ID:            7,
		Number:        "RTT-INV-0007",
		InvoiceDate:   time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane.doe@example.com",
		PackageName:   "Bali Paradise Tour",
		PackagePrice:  decimal.RequireFromString("1200.00"),
		TaxRate:       decimal.NewFromInt(10),
		Discount:      decimal.Zero,
		Status:        "pending",
	}
}

func (b *InvoiceBuilder) With(mutate func(*InvoiceBuilder)) *InvoiceBuilder {
	mutate(b)
	return b
}

func (b *InvoiceBuilder) Draft() invoice.Draft {
	return invoice.Draft{
		BookingID:     b.BookingID,
		InvoiceDate:   b.InvoiceDate,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		PackageName:   b.PackageName,
		PackagePrice:  b.PackagePrice,
		TaxRate:       b.TaxRate,
		Discount:      b.Discount,
		Status:        invoice.PaymentStatus(b.Status),
	}
}

func (b *InvoiceBuilder) BuildDomain() (*invoice.Invoice, error) {
	return invoice.NewInvoice(b.Number, b.Draft(), FixedNow)
}

func (b *InvoiceBuilder) BuildReconstructed() *invoice.Invoice {
	email, _ := contact.NewEmail(b.CustomerEmail)
	return invoice.ReconstructInvoice(b.ID, b.Number, b.BookingID, b.InvoiceDate, b.CustomerName, email,
		b.PackageName, b.PackagePrice, b.TaxRate, b.Discount,
		invoice.Total(b.PackagePrice, b.TaxRate, b.Discount),
		invoice.PaymentStatus(b.Status), FixedNow, FixedNow)
}

func (b *InvoiceBuilder) BuildInfra() sqlc.Invoices {
	return sqlc.Invoices{
		ID:            b.ID,
		InvoiceNumber: b.Number,
		BookingID:     pgconv.Int64PtrToPgtype(b.BookingID),
		InvoiceDate:   pgtype.Date{Time: b.InvoiceDate, Valid: true},
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		PackageName:   b.PackageName,
		PackagePrice:  pgconv.NumericToPgtype(b.PackagePrice),
		Tax:           pgconv.NumericToPgtype(b.TaxRate),
		Discount:      pgconv.NumericToPgtype(b.Discount),
		TotalAmount:   pgconv.NumericToPgtype(invoice.Total(b.PackagePrice, b.TaxRate, b.Discount)),
		PaymentStatus: b.Status,
		CreatedAt:     pgtype.Timestamptz{Time: FixedNow, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: FixedNow, Valid: true},
	}
}

func (b *InvoiceBuilder) WithID(id int64) *InvoiceBuilder {
	b.ID = id
	return b
}

func (b *InvoiceBuilder) WithNumber(number string) *InvoiceBuilder {
	b.Number = number
	return b
}

func (b *InvoiceBuilder) WithBooking(id int64) *InvoiceBuilder {
	b.BookingID = &id
	return b
}

func (b *InvoiceBuilder) WithPrice(price, rate, discount string) *InvoiceBuilder {
	b.PackagePrice = decimal.RequireFromString(price)
	b.TaxRate = decimal.RequireFromString(rate)
	b.Discount = decimal.RequireFromString(discount)
	return b
}

func (b *InvoiceBuilder) WithStatus(status string) *InvoiceBuilder {
	b.Status = status
	return b
}

func (b *InvoiceBuilder) WithCustomer(name, email string) *InvoiceBuilder {
	b.CustomerName = name
	b.CustomerEmail = email
	return b
}

func (b *InvoiceBuilder) BuildRequestDTO() reqdto.InvoiceRequest {
	return reqdto.InvoiceRequest{
		BookingID:     b.BookingID,
		InvoiceDate:   b.InvoiceDate.Format(reqdto.DateLayout),
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		PackageName:   b.PackageName,
		PackagePrice:  b.PackagePrice,
		TaxRate:       b.TaxRate,
		Discount:      b.Discount,
		PaymentStatus: b.Status,
	}
}

// BuildView computes the stored amounts the same way the invoice entity does.
func (b *InvoiceBuilder) BuildView() *queries.InvoiceView {
	inv, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return &queries.InvoiceView{
		ID:            b.ID,
		InvoiceNumber: b.Number,
		BookingID:     b.BookingID,
		InvoiceDate:   b.InvoiceDate,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		PackageName:   b.PackageName,
		PackagePrice:  inv.PackagePrice(),
		TaxRate:       inv.TaxRate(),
		TaxAmount:     inv.TaxAmount(),
		Discount:      inv.Discount(),
		TotalAmount:   inv.Total(),
		PaymentStatus: b.Status,
		CreatedAt:     FixedNow,
		UpdatedAt:     FixedNow,
	}
}
