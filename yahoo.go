package folio

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// YahooProvider quotes symbols from the Yahoo Finance chart API. Responses
// are cached on disk for the day, so repeated valuations within a day do
// not hammer the service.
type YahooProvider struct {
	base   string
	client *http.Client
}

// NewYahooProvider returns a provider against the public Yahoo endpoint.
func NewYahooProvider() *YahooProvider {
	return &YahooProvider{
		base:   "https://query1.finance.yahoo.com",
		client: daily(),
	}
}

// ticker maps a symbol to Yahoo's naming for its market, e.g. "THYAO" on
// the Istanbul exchange becomes "THYAO.IS" and "BTC" becomes "BTC-USD".
func ticker(symbol string, market Market) string {
	return symbol + market.suffix()
}

// Price returns the latest regular market price of symbol on market.
func (y *YahooProvider) Price(symbol string, market Market) (Money, error) {
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=1d", y.base, url.PathEscape(ticker(symbol, market)))
	val, err := y.meta(addr, "$.chart.result[0].meta.regularMarketPrice")
	if err != nil {
		return Money{}, &PriceUnavailableError{Symbol: symbol, Market: market, Err: err}
	}
	return M(val, market.Currency()).Round(), nil
}

// PriceOn returns the last available closing price of symbol at or before
// on. It scans a two week window ending at on so weekends and market
// holidays still resolve to the previous close.
func (y *YahooProvider) PriceOn(symbol string, market Market, on Date) (Money, error) {
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&period1=%d&period2=%d",
		y.base, url.PathEscape(ticker(symbol, market)), on.Add(-15).Unix(), on.Add(1).Unix())

	var jobj any
	if err := jwget(y.client, addr, &jobj); err != nil {
		return Money{}, &PriceUnavailableError{Symbol: symbol, Market: market, On: on, Err: err}
	}
	path := "$.chart.result[0].indicators.quote[0].close"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return Money{}, &PriceUnavailableError{Symbol: symbol, Market: market, On: on, Err: fmt.Errorf("parsing %q: %w", path, err)}
	}
	// because jsonpath is never clear about whether it returns the close
	// list itself or a list-of-one wrapping it: treat a bare scalar as a
	// one-session window
	closes, ok := jval.([]any)
	if !ok {
		closes = []any{jval}
	}
	// the API pads missing sessions with nulls, keep the last real close
	var last float64
	found := false
	for _, c := range closes {
		if v, ok := c.(float64); ok {
			last = v
			found = true
		}
	}
	if !found {
		return Money{}, &PriceUnavailableError{Symbol: symbol, Market: market, On: on, Err: fmt.Errorf("no close in window")}
	}
	return M(last, market.Currency()).Round(), nil
}

// Metadata resolves the display name of symbol from the chart metadata.
// The trading currency comes from the market table, which is authoritative
// for bucket accounting.
func (y *YahooProvider) Metadata(symbol string, market Market) (Metadata, error) {
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=1d", y.base, url.PathEscape(ticker(symbol, market)))

	var jobj any
	if err := jwget(y.client, addr, &jobj); err != nil {
		return Metadata{}, fmt.Errorf("fetching metadata for %q: %w", symbol, err)
	}
	name := symbol
	for _, path := range []string{"$.chart.result[0].meta.longName", "$.chart.result[0].meta.shortName"} {
		jval, err := jsonpath.Get(path, jobj)
		if err != nil {
			continue
		}
		if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
			jval = jlist[0]
		}
		if s, ok := jval.(string); ok && s != "" {
			name = s
			break
		}
	}
	return Metadata{Name: name, Currency: market.Currency()}, nil
}

// USDRate returns the home-currency value of one US dollar, from the
// "TRY=X" currency pair.
func (y *YahooProvider) USDRate() (decimal.Decimal, error) {
	addr := fmt.Sprintf("%s/v8/finance/chart/TRY=X?interval=1d&range=1d", y.base)
	val, err := y.meta(addr, "$.chart.result[0].meta.regularMarketPrice")
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("fetching USD rate: %w", err)
	}
	return decimal.NewFromFloat(val), nil
}

// meta fetches addr and extracts one float via a jsonpath expression.
func (y *YahooProvider) meta(addr, path string) (float64, error) {
	var jobj any
	if err := jwget(y.client, addr, &jobj); err != nil {
		return 0, err
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("parsing %q: %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("parsing %q: not a float: %v", path, jval)
	}
	return val, nil
}
