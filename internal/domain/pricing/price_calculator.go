package pricing

import (
	"time"

	"travel-backoffice/internal/pkg/money"

	"github.com/shopspring/decimal"
)

// MinimumStayDays is the shortest stay charged; shorter or inverted ranges pay for a full week.
const MinimumStayDays = 7

type PriceCalculator interface {
	Price(packageName string, from, to time.Time) decimal.Decimal
}

type DefaultPriceCalculator struct {
	catalog *Catalog
}

func NewDefaultPriceCalculator(catalog *Catalog) *DefaultPriceCalculator {
	return &DefaultPriceCalculator{catalog: catalog}
}

// Price prorates the weekly base price over the stay: base/7 * days, rounded to cents.
func (pc *DefaultPriceCalculator) Price(packageName string, from, to time.Time) decimal.Decimal {
	days := max(DurationDays(from, to), MinimumStayDays)
	base := pc.catalog.BasePrice(packageName)
	return money.Round2(base.Mul(decimal.NewFromInt(days)).Div(decimal.NewFromInt(7)))
}

const secondsPerDay = 24 * 60 * 60

// DurationDays counts calendar days between the dates of from and to; negative when to is earlier.
func DurationDays(from, to time.Time) int64 {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	// time.Duration saturates near 292 years; Unix seconds do not.
	return (t.Unix() - f.Unix()) / secondsPerDay
}
