package folio

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// percentOf returns part/whole as a percentage rounded to two decimals.
// The caller guards against a zero whole.
func percentOf(part, whole decimal.Decimal) Percent {
	ratio := part.Div(whole).Mul(decimal.NewFromInt(100)).Round(2)
	return Percent(ratio.InexactFloat64())
}
