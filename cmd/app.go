// Package cmd implements the CLI application to convert brokerage statements.
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/lolo1969/kontoauszug"
)

// as a CLI application, it has a very short lived lifecycle, so commands keep
// their state in flag-backed struct fields only.

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&tradesCmd{}, "statement")
	c.Register(&exportCmd{}, "statement")
	c.Register(&summaryCmd{}, "statement")
	c.Register(&checkCmd{}, "statement")

	c.Register(&topicCmd{}, "documentation")
}

// ReadStatement reads the statement text from the file named by the
// command's single positional argument ("-" means stdin) and returns its
// lines in document order.
func ReadStatement(path string) ([]string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read statement %q: %w", path, err)
	}
	return kontoauszug.SplitLines(string(data)), nil
}

// warnSuspectISINs logs every trade whose identifier fails the ISIN check
// digit. The trade is kept: a failed checksum usually means the text
// extraction mangled a line, and the user decides what to do with the row.
func warnSuspectISINs(trades []kontoauszug.TradeRecord) {
	seen := make(map[string]struct{})
	for _, t := range trades {
		if _, done := seen[t.ISIN]; done {
			continue
		}
		seen[t.ISIN] = struct{}{}
		if err := kontoauszug.ValidateISIN(t.ISIN); err != nil {
			log.Printf("warning: %q (%s): %v", t.ISIN, t.Name, err)
		}
	}
}
