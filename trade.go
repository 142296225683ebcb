package kontoauszug

// SettlementCurrency is the currency every amount in the statement is already
// converted to.
const SettlementCurrency = "EUR"

// Action is the direction of a trade.
type Action string

const (
	Buy  Action = "buy"
	Sell Action = "sell"
)

// TradeRecord is one recognized buy or sell transaction from the statement.
// Quantity is positive and Amount is the total value of the trade in the
// settlement currency; records that would violate this never leave the
// extractor.
type TradeRecord struct {
	Action   Action
	ISIN     string // 12-character security identifier
	Name     string // security name as printed in the statement
	Quantity Quantity
	Amount   Money
}

// UnitPrice returns the price paid per unit, or a zero amount when the
// quantity is zero.
func (t TradeRecord) UnitPrice() Money {
	if t.Quantity.IsZero() {
		return M(0, SettlementCurrency)
	}
	return t.Amount.Div(t.Quantity)
}
