package folio

import (
	"errors"
	"time"
)

// TRY is a helper for test to create lira money from const
func TRY(v float64) Money { return M(v, "TRY") }

// USD is a helper for test to create dollar money from const
func USD(v float64) Money { return M(v, "USD") }

// lira converts to home currency with the fixed test rate of 40 TRY per USD.
func lira() *Converter {
	fx := NewConverter(HomeCurrency)
	fx.SetRate("USD", newDecimal(40))
	return fx
}

// fakeQuotes serves canned prices, keyed by symbol. Historical lookups use
// the past map and fall back to the current price.
type fakeQuotes struct {
	prices map[string]Money
	past   map[string]Money
}

func (f *fakeQuotes) Price(symbol string, market Market) (Money, error) {
	p, ok := f.prices[symbol]
	if !ok {
		return Money{}, &PriceUnavailableError{Symbol: symbol, Market: market, Err: errors.New("no canned price")}
	}
	return p, nil
}

func (f *fakeQuotes) PriceOn(symbol string, market Market, on Date) (Money, error) {
	if p, ok := f.past[symbol]; ok {
		return p, nil
	}
	return f.Price(symbol, market)
}

func (f *fakeQuotes) Metadata(symbol string, market Market) (Metadata, error) {
	return Metadata{Name: symbol + " Inc", Currency: market.Currency()}, nil
}

// brokenLedger fails every append, to exercise the trade rollback path.
type brokenLedger struct{}

func (brokenLedger) Append(TradeRecord) error          { return errors.New("disk full") }
func (brokenLedger) Since(Date) ([]TradeRecord, error) { return nil, nil }

// fixedToday freezes Today() for the duration of a test.
func fixedToday(on Date) (restore func()) {
	prev := now
	now = func() time.Time { return time.Date(on.Year(), on.Month(), on.Day(), 12, 0, 0, 0, time.UTC) }
	return func() { now = prev }
}
