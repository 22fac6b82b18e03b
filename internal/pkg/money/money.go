// Package money holds the rounding and formatting rules shared by pricing,
// invoicing and the report export.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

const Places = 2

var hundred = decimal.NewFromInt(100)

// Round2 rounds half away from zero to cents.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// Percent returns amount*rate/100 rounded to cents.
func Percent(amount, rate decimal.Decimal) decimal.Decimal {
	return Round2(amount.Mul(rate).Div(hundred))
}

// Average divides total by count, or returns zero when count is zero.
func Average(total decimal.Decimal, count int64) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return Round2(total.Div(decimal.NewFromInt(count)))
}

// Format renders d as "$1,234.56".
func Format(d decimal.Decimal) string {
	return "$" + Grouped(d)
}

// Grouped renders d with two decimals and comma thousands separators.
func Grouped(d decimal.Decimal) string {
	s := Round2(d).StringFixed(Places)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return sign + b.String() + "." + frac
}
