package response

import (
	"time"

	"travel-backoffice/internal/pkg/errs"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

// copyOptions renders calendar dates as YYYY-MM-DD and money as two-decimal strings.
var copyOptions = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(time.Time).Format(DateLayout), nil
			},
		},
		{
			SrcType: &time.Time{},
			DstType: new(string),
			Fn: func(src any) (any, error) {
				t, _ := src.(*time.Time)
				if t == nil {
					return (*string)(nil), nil
				}
				s := t.Format(DateLayout)
				return &s, nil
			},
		},
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return Money(src.(decimal.Decimal)), nil
			},
		},
	},
}

func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func copyInto(dst, src any) error {
	if err := copier.CopyWithOption(dst, src, copyOptions); err != nil {
		return errs.Wrapf(err, "map %T", src)
	}
	return nil
}
