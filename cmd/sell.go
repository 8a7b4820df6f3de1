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

// sellCmd holds the flags for the 'sell' subcommand.
type sellCmd struct {
	date string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record the sale of a security" }
func (*sellCmd) Usage() string {
	return `fct sell [-d <date>] <symbol> <unit-cost> <quantity>

  Records a sell. Selling the full position removes the holding; selling
  more than is held is rejected and nothing changes.

Usage Examples:
# Sell 10 shares of THYAO.
$ fct sell THYAO 301.25 10

`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Date of the trade. See 'fct topic gains' for supported date formats.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "sell requires <symbol> <unit-cost> <quantity>")
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
	outcome, err := tracker.Sell(on, f.Arg(0), cost, qty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording sell: %v\n", err)
		return subcommands.ExitFailure
	}

	if outcome.Removed {
		fmt.Printf("Sold %s %s, position closed\n", qty, f.Arg(0))
	} else {
		fmt.Printf("Sold %s %s, still holding %s at %s\n", qty, f.Arg(0), outcome.Holding.Quantity, outcome.Holding.Cost)
	}
	return subcommands.ExitSuccess
}
