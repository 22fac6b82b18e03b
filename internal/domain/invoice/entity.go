package invoice

import (
	"errors"
	"strings"
	"time"

	"travel-backoffice/internal/domain/contact"
	"travel-backoffice/internal/pkg/money"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidNumber        = errors.New("invoice number is required")
	ErrInvalidCustomerName  = errors.New("customer name is required")
	ErrInvalidPackageName   = errors.New("package name is required")
	ErrInvalidInvoiceDate   = errors.New("invoice date is required")
	ErrNegativeAmount       = errors.New("amounts must not be negative")
	ErrInvalidTaxRate       = errors.New("tax rate must be between 0 and 100")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
)

// Draft carries the editable fields of an invoice.
type Draft struct {
	BookingID     *int64
	InvoiceDate   time.Time
	CustomerName  string
	CustomerEmail string
	PackageName   string
	PackagePrice  decimal.Decimal
	TaxRate       decimal.Decimal
	Discount      decimal.Decimal
	Status        PaymentStatus
}

type Invoice struct {
	id            int64
	number        string
	bookingID     *int64
	invoiceDate   time.Time
	customerName  string
	customerEmail contact.Email
	packageName   string
	packagePrice  decimal.Decimal
	taxRate       decimal.Decimal
	discount      decimal.Decimal
	total         decimal.Decimal
	status        PaymentStatus
	createdAt     time.Time
	updatedAt     time.Time
}

func NewInvoice(number string, d Draft, now time.Time) (*Invoice, error) {
	if strings.TrimSpace(number) == "" {
		return nil, ErrInvalidNumber
	}
	inv := &Invoice{number: number, createdAt: now}
	if err := inv.apply(d, now); err != nil {
		return nil, err
	}
	return inv, nil
}

func ReconstructInvoice(
	id int64, number string, bookingID *int64, invoiceDate time.Time,
	customerName string, customerEmail contact.Email, packageName string,
	packagePrice, taxRate, discount, total decimal.Decimal,
	status PaymentStatus, createdAt, updatedAt time.Time,
) *Invoice {
	return &Invoice{
		id:            id,
		number:        number,
		bookingID:     bookingID,
		invoiceDate:   invoiceDate,
		customerName:  customerName,
		customerEmail: customerEmail,
		packageName:   packageName,
		packagePrice:  packagePrice,
		taxRate:       taxRate,
		discount:      discount,
		total:         total,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Revise replaces the editable fields and recomputes the total. The number never changes.
func (i *Invoice) Revise(d Draft, now time.Time) error {
	return i.apply(d, now)
}

func (i *Invoice) ChangeStatus(s PaymentStatus, now time.Time) error {
	if !s.IsValid() {
		return ErrInvalidPaymentStatus
	}
	i.status = s
	i.updatedAt = now
	return nil
}

func (i *Invoice) apply(d Draft, now time.Time) error {
	email, err := contact.NewEmail(d.CustomerEmail)
	if err != nil {
		return err
	}
	name := strings.TrimSpace(d.CustomerName)
	if name == "" {
		return ErrInvalidCustomerName
	}
	pkg := strings.TrimSpace(d.PackageName)
	if pkg == "" {
		return ErrInvalidPackageName
	}
	if d.InvoiceDate.IsZero() {
		return ErrInvalidInvoiceDate
	}
	if d.PackagePrice.IsNegative() || d.Discount.IsNegative() {
		return ErrNegativeAmount
	}
	if d.TaxRate.IsNegative() || d.TaxRate.GreaterThan(maxTaxRate) {
		return ErrInvalidTaxRate
	}
	if !d.Status.IsValid() {
		return ErrInvalidPaymentStatus
	}

	i.bookingID = d.BookingID
	i.invoiceDate = d.InvoiceDate
	i.customerName = name
	i.customerEmail = email
	i.packageName = pkg
	i.packagePrice = money.Round2(d.PackagePrice)
	i.taxRate = d.TaxRate
	i.discount = money.Round2(d.Discount)
	i.total = Total(i.packagePrice, i.taxRate, i.discount)
	i.status = d.Status
	i.updatedAt = now
	return nil
}

func (i *Invoice) ID() int64                     { return i.id }
func (i *Invoice) Number() string                { return i.number }
func (i *Invoice) BookingID() *int64             { return i.bookingID }
func (i *Invoice) InvoiceDate() time.Time        { return i.invoiceDate }
func (i *Invoice) CustomerName() string          { return i.customerName }
func (i *Invoice) CustomerEmail() contact.Email  { return i.customerEmail }
func (i *Invoice) PackageName() string           { return i.packageName }
func (i *Invoice) PackagePrice() decimal.Decimal { return i.packagePrice }
func (i *Invoice) TaxRate() decimal.Decimal      { return i.taxRate }
func (i *Invoice) TaxAmount() decimal.Decimal    { return TaxAmount(i.packagePrice, i.taxRate) }
func (i *Invoice) Discount() decimal.Decimal     { return i.discount }
func (i *Invoice) Total() decimal.Decimal        { return i.total }
func (i *Invoice) Status() PaymentStatus         { return i.status }
func (i *Invoice) CreatedAt() time.Time          { return i.createdAt }
func (i *Invoice) UpdatedAt() time.Time          { return i.updatedAt }
