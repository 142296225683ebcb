package kontoauszug

import (
	"regexp"
	"strings"
)

// euroMarker is the byte sequence that precedes every amount in the extracted
// statement text. It is the Euro sign as mangled by the text extraction step
// ("€" encoded as UTF-8 and re-decoded as CP1252), kept here as an opaque
// token rather than interpreted as a currency symbol.
const euroMarker = "â‚¬"

// lookahead is the number of lines joined after the current one when building
// a recognition window. The statement renderer wraps a single logical trade
// entry over at most this many extra physical lines.
const lookahead = 3

// tradePattern recognizes one trade entry inside a window, in order: the
// action keyword and the literal word "trade", the 12-character security
// identifier, the free-text security name up to a comma, the quantity after
// the literal "quantity:", and the amount glued to the euro marker.
// Quantity and amount may carry thousands-separator commas.
var tradePattern = regexp.MustCompile(
	`(Buy|Sell)\s+trade\s+([A-Z0-9]{12})\s+(.+?),\s*quantity:\s*([\d,.]+)\s+` + euroMarker + `([\d,.]+)`)

// SplitLines splits a statement text blob into its physical lines, in
// document reading order.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// ExtractTrades scans the statement lines and returns every recognized trade,
// in the order its window started.
//
// For each line position a lookahead window is built by space-joining the
// line with the following up to 3 lines, so a trade wrapped across physical
// lines is still seen whole. The scan then advances by exactly one line,
// match or not: windows deliberately overlap, and no deduplication happens
// here. Lines that match nothing are simply not represented, and a candidate
// with an unparseable numeric field is dropped the same way.
func ExtractTrades(lines []string) []TradeRecord {
	var trades []TradeRecord
	for i := range lines {
		if t, ok := matchTrade(window(lines, i)); ok {
			trades = append(trades, t)
		}
	}
	return trades
}

// window joins line i with the following up to lookahead lines, each trimmed.
func window(lines []string, i int) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(lines[i]))
	for j := 1; j <= lookahead && i+j < len(lines); j++ {
		b.WriteString(" ")
		b.WriteString(strings.TrimSpace(lines[i+j]))
	}
	return b.String()
}

// matchTrade applies the trade pattern to a window. Absence of a match is the
// normal outcome for the vast majority of windows, so it is reported as a
// boolean, not an error.
func matchTrade(window string) (TradeRecord, bool) {
	m := tradePattern.FindStringSubmatch(window)
	if m == nil {
		return TradeRecord{}, false
	}

	quantity, err := ParseQuantity(m[4])
	if err != nil {
		return TradeRecord{}, false
	}
	amount, err := ParseAmount(m[5])
	if err != nil {
		return TradeRecord{}, false
	}

	return TradeRecord{
		Action:   Action(strings.ToLower(m[1])),
		ISIN:     m[2],
		Name:     strings.TrimSpace(m[3]),
		Quantity: quantity,
		Amount:   amount,
	}, true
}

// stripThousands removes the thousands-separator commas from a statement
// numeric field.
func stripThousands(s string) string {
	return strings.ReplaceAll(s, ",", "")
}
