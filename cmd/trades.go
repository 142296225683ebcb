package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lolo1969/kontoauszug"
)

type tradesCmd struct{}

func (*tradesCmd) Name() string { return "trades" }
func (*tradesCmd) Synopsis() string {
	return "extract the trades from a statement text and print them as JSONL"
}
func (*tradesCmd) Usage() string {
	return `konto trades <statement.txt>

  Scans the extracted statement text for buy/sell trade entries and prints
  one JSON object per trade to stdout, in document order. Use "-" to read
  the text from stdin.

  Because the scanner deliberately re-reads overlapping line windows, an
  entry repeated by the statement renderer shows up repeatedly here;
  review the output before feeding it anywhere.

  Example: konto trades statement.txt > trades.jsonl
`
}

func (c *tradesCmd) SetFlags(f *flag.FlagSet) {}

func (c *tradesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	warnSuspectISINs(trades)

	if err := kontoauszug.EncodeTrades(os.Stdout, trades); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding trades to JSONL: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
