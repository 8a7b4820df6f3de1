package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/folio"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// buyCmd holds the flags for the 'buy' subcommand.
type buyCmd struct {
	date   string
	market string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record the purchase of a security" }
func (*buyCmd) Usage() string {
	return `fct buy -m <market> [-d <date>] <symbol> <unit-cost> <quantity>

  Records a buy: the holding's average cost is blended with the trade and
  one record is appended to the ledger.

Usage Examples:
# Buy 30 shares of THYAO on the Istanbul exchange.
$ fct buy -m BIST THYAO 300.25 30

`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Date of the trade. See 'fct topic gains' for supported date formats.")
	f.StringVar(&c.market, "m", "", "Market of the security (America, BIST, Crypto, Commodity)")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "buy requires <symbol> <unit-cost> <quantity>")
		return subcommands.ExitUsageError
	}
	market, err := folio.ParseMarket(c.market)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing market: %v\n", err)
		return subcommands.ExitUsageError
	}
	on, err := folio.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	cost, err := decimal.NewFromString(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing unit cost %q: %v\n", f.Arg(1), err)
		return subcommands.ExitUsageError
	}
	qty, err := folio.ParseQuantity(f.Arg(2))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing quantity %q: %v\n", f.Arg(2), err)
		return subcommands.ExitUsageError
	}

	tracker := folio.NewTracker(Holdings(), Ledger(), Quotes())
	h, err := tracker.Buy(on, f.Arg(0), market, cost, qty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording buy: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Bought %s %s, now holding %s at %s\n", qty, h.Symbol, h.Quantity, h.Cost)
	return subcommands.ExitSuccess
}
