package converter

import (
	"travel-backoffice/internal/domain/contact"
	"travel-backoffice/internal/domain/invoice"
	sqlc "travel-backoffice/internal/infra/sqlc/generated"
	"travel-backoffice/internal/pkg/pgconv"
)

func InvoiceToCreateParams(inv *invoice.Invoice) sqlc.CreateInvoiceParams {
	return sqlc.CreateInvoiceParams{
		InvoiceNumber: inv.Number(),
		BookingID:     pgconv.Int64PtrToPgtype(inv.BookingID()),
		InvoiceDate:   pgconv.DateToPgtype(inv.InvoiceDate()),
		CustomerName:  inv.CustomerName(),
		CustomerEmail: inv.CustomerEmail().Value(),
		PackageName:   inv.PackageName(),
		PackagePrice:  pgconv.NumericToPgtype(inv.PackagePrice()),
		Tax:           pgconv.NumericToPgtype(inv.TaxRate()),
		Discount:      pgconv.NumericToPgtype(inv.Discount()),
		TotalAmount:   pgconv.NumericToPgtype(inv.Total()),
		PaymentStatus: inv.Status().String(),
		CreatedAt:     pgconv.TimeToPgtype(inv.CreatedAt()),
	}
}

func InvoiceToUpdateParams(inv *invoice.Invoice) sqlc.UpdateInvoiceParams {
	return sqlc.UpdateInvoiceParams{
		ID:            inv.ID(),
		BookingID:     pgconv.Int64PtrToPgtype(inv.BookingID()),
		InvoiceDate:   pgconv.DateToPgtype(inv.InvoiceDate()),
		CustomerName:  inv.CustomerName(),
		CustomerEmail: inv.CustomerEmail().Value(),
		PackageName:   inv.PackageName(),
		PackagePrice:  pgconv.NumericToPgtype(inv.PackagePrice()),
		Tax:           pgconv.NumericToPgtype(inv.TaxRate()),
		Discount:      pgconv.NumericToPgtype(inv.Discount()),
		TotalAmount:   pgconv.NumericToPgtype(inv.Total()),
		PaymentStatus: inv.Status().String(),
		UpdatedAt:     pgconv.TimeToPgtype(inv.UpdatedAt()),
	}
}

func InvoiceFromRow(row sqlc.Invoices) (*invoice.Invoice, error) {
	email, err := contact.NewEmail(row.CustomerEmail)
	if err != nil {
		return nil, err
	}
	status, err := invoice.NewPaymentStatus(row.PaymentStatus)
	if err != nil {
		return nil, err
	}
	return invoice.ReconstructInvoice(
		row.ID,
		row.InvoiceNumber,
		pgconv.Int64PtrFromPgtype(row.BookingID),
		pgconv.DateFromPgtype(row.InvoiceDate),
		row.CustomerName,
		email,
		row.PackageName,
		pgconv.DecimalFromNumeric(row.PackagePrice),
		pgconv.DecimalFromNumeric(row.Tax),
		pgconv.DecimalFromNumeric(row.Discount),
		pgconv.DecimalFromNumeric(row.TotalAmount),
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
