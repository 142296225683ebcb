package kontoauszug

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a given currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// ParseAmount parses a statement amount field into Money in the statement's
// settlement currency. Thousands-separator commas are stripped before parsing.
func ParseAmount(s string) (Money, error) {
	d, err := decimal.NewFromString(stripThousands(s))
	if err != nil {
		return Money{}, err
	}
	return Money{value: d, cur: SettlementCurrency}, nil
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value, formatted with
// the currency symbol.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// StringFixed returns the bare numeric value with a fixed number of
// fractional digits, without any currency decoration.
func (m Money) StringFixed(places int32) string { return m.value.StringFixed(places) }

func (m Money) Currency() string   { return m.cur }
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) IsPositive() bool   { return m.value.IsPositive() }
func (m Money) IsNegative() bool   { return m.value.IsNegative() }
func (m Money) Neg() Money         { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Mul(n Quantity) Money {
	return Money{value: m.value.Mul(n.value), cur: m.cur}
}
func (m Money) Div(n Quantity) Money {
	return Money{value: m.value.Div(n.value), cur: m.cur}
}

// Round rounds to the given number of fractional digits, half away from zero.
func (m Money) Round(places int32) Money { return Money{value: m.value.Round(places), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}
