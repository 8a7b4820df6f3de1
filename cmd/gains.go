package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/folio"
	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

// gainsCmd holds the flags for the 'gains' subcommand.
type gainsCmd struct {
	since string
}

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "profit over a trailing window, replayed from the ledger" }
func (*gainsCmd) Usage() string {
	return `fct gains [-s <date>]

  Replays the trade ledger since the given date and reports the window's
  profit in home currency, with its share of the current portfolio value.

Usage Examples:
# Profit over the last quarter.
$ fct gains -s -3m

`
}

func (c *gainsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.since, "s", "-1m", "Start of the window. See 'fct topic gains' for supported date formats.")
}

func (c *gainsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	since, err := folio.ParseDate(c.since)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
		return subcommands.ExitUsageError
	}

	quotes := Quotes()
	fx, err := Converter(quotes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving USD rate: %v\n", err)
		return subcommands.ExitFailure
	}

	// the current snapshot provides the denominator for the window percent
	valuator := folio.NewValuator(Holdings(), quotes, fx)
	snapshot, err := valuator.Snapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error valuing portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	reconstructor := folio.NewReconstructor(Ledger(), quotes, quotes, fx)
	window, err := reconstructor.Since(since, snapshot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reconstructing gains: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.WindowMarkdown(window))
	return subcommands.ExitSuccess
}
