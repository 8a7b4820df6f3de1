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

type statusCmd struct{}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "value the portfolio at current market prices" }
func (*statusCmd) Usage() string {
	return `fct status

  Prices every holding at its latest quote and prints one table per
  market, plus the portfolio totals in home currency.
`
}

func (c *statusCmd) SetFlags(f *flag.FlagSet) {}

func (c *statusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	quotes := Quotes()
	fx, err := Converter(quotes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving USD rate: %v\n", err)
		return subcommands.ExitFailure
	}

	valuator := folio.NewValuator(Holdings(), quotes, fx)
	snapshot, err := valuator.Snapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error valuing portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SnapshotMarkdown(snapshot))
	return subcommands.ExitSuccess
}
