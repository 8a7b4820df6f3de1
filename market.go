package folio

import "fmt"

// HomeCurrency is the currency aggregate totals and percentages are reported in.
const HomeCurrency = "TRY"

// Market identifies the venue a holding trades on. The set is closed: every
// market carries its native currency, its display symbol and the suffix the
// quote feed expects, all fixed at compile time rather than defaulted at
// runtime.
type Market string

const (
	America   Market = "America"
	BIST      Market = "BIST"
	Crypto    Market = "Crypto"
	Commodity Market = "Commodity"
)

type marketInfo struct {
	currency string // native currency quotes and bucket totals are expressed in
	symbol   string // display symbol for that currency
	suffix   string // suffix appended to the ticker on the quote feed
}

var marketInfos = map[Market]marketInfo{
	America:   {currency: "USD", symbol: "$", suffix: ""},
	BIST:      {currency: HomeCurrency, symbol: "₺", suffix: ".IS"},
	Crypto:    {currency: "USD", symbol: "$", suffix: "-USD"},
	Commodity: {currency: "USD", symbol: "$", suffix: "=F"},
}

// marketOrder fixes the order buckets appear in snapshots and reports.
var marketOrder = []Market{America, BIST, Crypto, Commodity}

// Markets returns all markets in their reporting order.
func Markets() []Market {
	out := make([]Market, len(marketOrder))
	copy(out, marketOrder)
	return out
}

// ParseMarket parses a market identifier, rejecting anything outside the
// closed set.
func ParseMarket(s string) (Market, error) {
	m := Market(s)
	if _, ok := marketInfos[m]; !ok {
		return "", fmt.Errorf("unknown market %q (want one of %v)", s, marketOrder)
	}
	return m, nil
}

// Currency returns the native currency instruments on this market trade in.
func (m Market) Currency() string { return marketInfos[m].currency }

// Symbol returns the display symbol of the market's native currency.
func (m Market) Symbol() string { return marketInfos[m].symbol }

// suffix returns the ticker suffix the quote feed expects for this market.
func (m Market) suffix() string { return marketInfos[m].suffix }

func (m Market) String() string { return string(m) }
