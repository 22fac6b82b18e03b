package shared

import (
	"github.com/google/uuid"
)

// InvoiceSequenceName is the invoice_sequence row that numbers invoices.
const InvoiceSequenceName = "invoice"

// Minimal snapshot for command read operations
type UserSnapshot struct {
	ID       uuid.UUID
	Username string
	Role     string
}
