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

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	since string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list recorded trades" }
func (*txCmd) Usage() string {
	return `fct tx [-s <date>]

  Lists the ledger's trade records in order, optionally only those since
  a given date.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.since, "s", "", "Only list trades on or after this date. Lists everything when empty.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var records []folio.TradeRecord
	var err error
	if c.since == "" {
		records, err = Ledger().All()
	} else {
		var since folio.Date
		since, err = folio.ParseDate(c.since)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		records, err = Ledger().Since(since)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.TradesMarkdown(records))
	return subcommands.ExitSuccess
}
