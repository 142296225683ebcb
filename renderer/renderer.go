// Package renderer turns statement reports into markdown for the terminal.
package renderer

import (
	"fmt"
	"strings"

	"github.com/lolo1969/kontoauszug"
)

// SummaryMarkdown renders the full run summary: the three counts and the
// held-positions table. Labels stay in German, matching the import file the
// rows are destined for.
func SummaryMarkdown(r *Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Kontoauszug\n\n")
	fmt.Fprintf(&b, "- Gesamt Trades gefunden: %d\n", r.Trades)
	fmt.Fprintf(&b, "- Verschiedene Wertpapiere: %d\n", r.Securities)
	fmt.Fprintf(&b, "- Noch gehaltene Positionen: %d\n", len(r.Held))
	b.WriteString("\n")
	b.WriteString(HeldMarkdown(r.Held))
	return b.String()
}

// HeldMarkdown renders the held positions as a markdown table, one row per
// security in the order given (already sorted by name).
func HeldMarkdown(held []kontoauszug.HeldPosition) string {
	if len(held) == 0 {
		return "Keine gehaltenen Positionen.\n"
	}

	var b strings.Builder
	fmt.Fprintln(&b, "| Name | ISIN | Anzahl | Kaufkurs | Waehrung |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|:---|")
	for _, h := range held {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			h.Name,
			h.ISIN,
			h.Quantity,
			h.AveragePrice.StringFixed(2),
			h.Currency(),
		)
	}
	return b.String()
}
