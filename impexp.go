package kontoauszug

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// this file contains functions to handle the interchange and export formats.

// csvHeader is the column header expected by the portfolio import tool.
var csvHeader = []string{"Name", "ISIN", "Anzahl", "Kaufkurs", "Waehrung"}

// EncodeTrades writes trades to 'w' in the interchange format: a JSONL
// stream, one trade per line, fields in a stable order.
func EncodeTrades(w io.Writer, trades []TradeRecord) error {
	for _, t := range trades {
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("cannot marshal trade %q: %w", t.ISIN, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write trade: %w", err)
		}
	}
	return nil
}

// DecodeTrades reads trades from 'r' in the interchange format. Empty lines
// are skipped; a malformed line aborts the decode with an error naming the
// line content.
func DecodeTrades(r io.Reader) ([]TradeRecord, error) {
	var trades []TradeRecord
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var t TradeRecord
		if err := json.Unmarshal(line, &t); err != nil {
			return nil, fmt.Errorf("cannot parse line for trade interchange format: %q: %w", string(line), err)
		}
		trades = append(trades, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read trade interchange format: %w", err)
	}
	return trades, nil
}

// ExportCSV writes the held positions to 'w' as the semicolon-delimited file
// the portfolio tool imports: Name;ISIN;Anzahl;Kaufkurs;Waehrung.
func ExportCSV(w io.Writer, held []HeldPosition) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for _, h := range held {
		row := []string{
			h.Name,
			h.ISIN,
			h.Quantity.String(),
			h.AveragePrice.StringFixed(pricePlaces),
			h.Currency(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write CSV row for %q: %w", h.ISIN, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
