package renderer

import (
	"github.com/lolo1969/kontoauszug"
)

// Report is the view of one statement run: the three headline counts and the
// rows still held. Numbers are kept in the exact decimal types so that
// rendering never re-rounds them.
type Report struct {
	// Trades is the total number of trade records recognized in the text.
	Trades int `json:"trades"`
	// Securities is the number of distinct securities ever seen, held or not.
	Securities int `json:"securities"`
	// Held are the positions with a meaningfully positive net quantity,
	// sorted by name.
	Held []kontoauszug.HeldPosition `json:"held"`
}

// NewReport builds the report view from the extracted trades and the
// aggregated positions.
func NewReport(trades []kontoauszug.TradeRecord, positions kontoauszug.Positions) *Report {
	return &Report{
		Trades:     len(trades),
		Securities: len(positions),
		Held:       positions.Held(),
	}
}
