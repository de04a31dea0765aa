package loan

import "github.com/shopspring/decimal"

// Scales and exclusive upper bounds of the money columns, decimal(18,2), and
// of interest_rate, decimal(9,4). Payments share the money column type.
const (
	MoneyScale int32 = 2
	RateScale  int32 = 4
)

var (
	MoneyLimit = decimal.New(1, 16)
	RateLimit  = decimal.New(1, 5)
)

// FitsColumn reports whether d is stored unchanged by a column with the given
// scale, i.e. it neither rounds nor overflows.
func FitsColumn(d decimal.Decimal, scale int32, limit decimal.Decimal) bool {
	return d.Equal(d.Truncate(scale)) && d.Abs().LessThan(limit)
}

func FitsMoney(d decimal.Decimal) bool { return FitsColumn(d, MoneyScale, MoneyLimit) }

func FitsRate(d decimal.Decimal) bool { return FitsColumn(d, RateScale, RateLimit) }
