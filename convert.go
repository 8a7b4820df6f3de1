package folio

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Converter normalizes Money amounts into a single home currency so that
// values from different markets can be summed and compared. Rates are
// expressed as one unit of the foreign currency in home currency.
type Converter struct {
	home  string
	rates map[string]decimal.Decimal
}

// NewConverter returns a Converter normalizing into home.
func NewConverter(home string) *Converter {
	return &Converter{home: home, rates: make(map[string]decimal.Decimal)}
}

// Home returns the home currency code.
func (c *Converter) Home() string { return c.home }

// SetRate registers the home-currency value of one unit of currency.
func (c *Converter) SetRate(currency string, rate decimal.Decimal) {
	c.rates[currency] = rate
}

// Convert returns m expressed in the home currency. Amounts already in the
// home currency, or without a currency, pass through unchanged.
func (c *Converter) Convert(m Money) (Money, error) {
	if m.Currency() == "" || m.Currency() == c.home {
		return M(m.Amount(), c.home), nil
	}
	rate, ok := c.rates[m.Currency()]
	if !ok {
		return Money{}, fmt.Errorf("no conversion rate from %s to %s", m.Currency(), c.home)
	}
	return M(m.Amount().Mul(rate), c.home), nil
}
