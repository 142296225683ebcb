package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lolo1969/kontoauszug"
	"github.com/lolo1969/kontoauszug/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a summary of the positions in a statement" }
func (*summaryCmd) Usage() string {
	return `konto summary <statement.txt>

  Displays the number of recognized trades, distinct securities and held
  positions, plus one row per held security. Use "-" to read the text
  from stdin.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Please provide the path to the statement text file.")
		return subcommands.ExitUsageError
	}

	lines, err := ReadStatement(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	trades := kontoauszug.ExtractTrades(lines)
	positions := kontoauszug.Aggregate(trades)

	printMarkdown(renderer.SummaryMarkdown(renderer.NewReport(trades, positions)))
	return subcommands.ExitSuccess
}
