package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lolo1969/kontoauszug"
)

type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "verify the check digit of every extracted identifier" }
func (*checkCmd) Usage() string {
	return `konto check <statement.txt>

  Extracts the trades and validates each security identifier against the
  ISIN format and check digit. A failing identifier usually means the text
  extraction mangled a line of the statement. Exits with failure when any
  identifier is invalid.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	invalid := 0
	seen := make(map[string]struct{})
	for _, t := range trades {
		if _, done := seen[t.ISIN]; done {
			continue
		}
		seen[t.ISIN] = struct{}{}
		if err := kontoauszug.ValidateISIN(t.ISIN); err != nil {
			fmt.Printf("%s (%s): %v\n", t.ISIN, t.Name, err)
			invalid++
		}
	}

	fmt.Fprintf(os.Stderr, "%d identifiers checked, %d invalid\n", len(seen), invalid)
	if invalid > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
