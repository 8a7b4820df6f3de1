// Package cmd implements the CLI application to manage a portfolio.
package cmd

import (
	"flag"
	"fmt"

	"github.com/etnz/folio"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "trading")
	c.Register(&sellCmd{}, "trading")

	c.Register(&statusCmd{}, "reporting")
	c.Register(&gainsCmd{}, "reporting")
	c.Register(&txCmd{}, "reporting")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "trades.jsonl", "Path to the trade ledger file (JSONL format)")
var holdingsFile = flag.String("holdings-file", "holdings.jsonl", "Path to the holdings book file (JSONL format)")
var usdRate = flag.String("usd-rate", "", "Override the USD rate in home currency (fetched from the market when empty)")

// Ledger returns the app's trade ledger.
func Ledger() *folio.FileLedger { return folio.NewFileLedger(*ledgerFile) }

// Holdings returns the app's holdings book.
func Holdings() *folio.FileHoldings { return folio.NewFileHoldings(*holdingsFile) }

// Quotes returns the app's market data provider.
func Quotes() *folio.YahooProvider { return folio.NewYahooProvider() }

// Converter returns the home currency converter, with the USD rate taken
// from the -usd-rate flag or fetched from the market.
func Converter(quotes *folio.YahooProvider) (*folio.Converter, error) {
	fx := folio.NewConverter(folio.HomeCurrency)
	var rate decimal.Decimal
	if *usdRate != "" {
		var err error
		rate, err = decimal.NewFromString(*usdRate)
		if err != nil {
			return nil, fmt.Errorf("invalid -usd-rate %q: %w", *usdRate, err)
		}
	} else {
		var err error
		rate, err = quotes.USDRate()
		if err != nil {
			return nil, err
		}
	}
	fx.SetRate("USD", rate)
	return fx, nil
}
