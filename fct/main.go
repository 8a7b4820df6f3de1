package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/folio/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// shell completion, a no-op outside of completion mode
	completion().Complete("fct")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "documentation")
	commander.Register(commander.FlagsCommand(), "documentation")
	commander.Register(commander.CommandsCommand(), "documentation")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	markets := predict.Set{"America", "BIST", "Crypto", "Commodity"}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"buy": {Flags: map[string]complete.Predictor{
				"m": markets,
				"d": predict.Nothing,
			}},
			"sell": {Flags: map[string]complete.Predictor{
				"d": predict.Nothing,
			}},
			"status": {},
			"gains": {Flags: map[string]complete.Predictor{
				"s": predict.Nothing,
			}},
			"tx": {Flags: map[string]complete.Predictor{
				"s": predict.Nothing,
			}},
			"topic": {Args: predict.Set{"readme", "cost-basis", "gains", "markets", "status", "*"}},
		},
		Flags: map[string]complete.Predictor{
			"ledger-file":   predict.Files("*.jsonl"),
			"holdings-file": predict.Files("*.jsonl"),
			"usd-rate":      predict.Nothing,
		},
	}
}
