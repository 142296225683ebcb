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

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	output string
}

func (*exportCmd) Name() string { return "export" }
func (*exportCmd) Synopsis() string {
	return "convert a statement text into the portfolio import CSV"
}
func (*exportCmd) Usage() string {
	return `konto export [-o <file>] <statement.txt>

  Runs the full pipeline: extracts the trades from the statement text,
  folds them into held positions, and writes the semicolon-delimited
  import file (Name;ISIN;Anzahl;Kaufkurs;Waehrung). The run summary is
  printed to stderr. Use "-" to read the text from stdin, and -o "-" to
  write the CSV to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "portfolio_import.csv", "Path of the CSV file to write, \"-\" for stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	positions := kontoauszug.Aggregate(trades)
	report := renderer.NewReport(trades, positions)

	out := os.Stdout
	if c.output != "-" {
		out, err = os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}

	if err := kontoauszug.ExportCSV(out, report.Held); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Gesamt Trades gefunden: %d\n", report.Trades)
	fmt.Fprintf(os.Stderr, "Verschiedene Wertpapiere: %d\n", report.Securities)
	fmt.Fprintf(os.Stderr, "Noch gehaltene Positionen: %d\n", len(report.Held))
	for _, h := range report.Held {
		fmt.Fprintf(os.Stderr, "  %-50s ISIN: %s  Stk: %12s  Avg: %8s %s\n",
			h.Name, h.ISIN, h.Quantity, h.AveragePrice.StringFixed(2), h.Currency())
	}
	if c.output != "-" {
		fmt.Fprintf(os.Stderr, "CSV gespeichert: %s\n", c.output)
	}
	return subcommands.ExitSuccess
}
