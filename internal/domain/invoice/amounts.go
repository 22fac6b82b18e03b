package invoice

import (
	"travel-backoffice/internal/pkg/money"

	"github.com/shopspring/decimal"
)

var maxTaxRate = decimal.NewFromInt(100)

// TaxAmount is the tax owed on price at a percentage rate, rounded to cents.
func TaxAmount(price, rate decimal.Decimal) decimal.Decimal {
	return money.Percent(price, rate)
}

// Total is price plus tax minus discount. It is computed once and stored;
// later changes to the configured tax rate never touch existing invoices.
func Total(price, rate, discount decimal.Decimal) decimal.Decimal {
	return money.Round2(price.Add(TaxAmount(price, rate)).Sub(discount))
}
