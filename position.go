package kontoauszug

import (
	"slices"
	"strings"
)

// heldEpsilon is the net quantity below which a position is considered
// closed. It absorbs residue from statements whose sell quantities were
// rounded by the renderer.
var heldEpsilon = Q(0.001)

// Rounding applied to the reported rows, half away from zero.
const (
	quantityPlaces = 6
	pricePlaces    = 2
)

// Position is the running accumulator for one security while folding the
// trade list. It is created on the security's first trade and never removed
// within a run; a position whose net quantity falls to zero or below simply
// does not appear in the held output.
type Position struct {
	ISIN string
	Name string // from the first trade seen for this security

	NetQuantity Quantity // buys add, sells subtract; may go negative
	CostBasis   Money    // cost attributed to currently-owned units, never negative
	BuyQuantity Quantity // cumulative buy quantity, never decreases
}

// AveragePrice is the average cost per unit over all buys ever seen, not just
// the currently-held units. Selling at average cost keeps this rate constant,
// which is the intended simplification of the method.
func (p *Position) AveragePrice() Money {
	if !p.BuyQuantity.IsPositive() {
		return M(0, SettlementCurrency)
	}
	return p.CostBasis.Div(p.BuyQuantity)
}

// IsHeld reports whether the position still meaningfully exists.
func (p *Position) IsHeld() bool {
	return p.NetQuantity.GreaterThan(heldEpsilon)
}

// Positions maps a security identifier to its accumulated position.
type Positions map[string]*Position

// Aggregate folds an ordered trade list into per-security positions using the
// running average-cost-basis method. The input order is economically
// meaningful: reordering trades for the same security changes the average.
//
// A buy adds its quantity to the net and cumulative buy totals and its amount
// to the cost basis. A sell subtracts its quantity from the net total and
// reduces the cost basis by the current average cost per unit times the
// quantity sold, clamped at zero so that selling more than was ever bought
// (e.g. trades missing from the statement) cannot drive the basis negative.
func Aggregate(trades []TradeRecord) Positions {
	positions := make(Positions)
	for _, t := range trades {
		p, ok := positions[t.ISIN]
		if !ok {
			p = &Position{
				ISIN:      t.ISIN,
				Name:      t.Name,
				CostBasis: M(0, SettlementCurrency),
			}
			positions[t.ISIN] = p
		}

		switch t.Action {
		case Buy:
			p.BuyQuantity = p.BuyQuantity.Add(t.Quantity)
			p.NetQuantity = p.NetQuantity.Add(t.Quantity)
			p.CostBasis = p.CostBasis.Add(t.Amount)
		case Sell:
			p.NetQuantity = p.NetQuantity.Sub(t.Quantity)
			if p.BuyQuantity.IsPositive() {
				avgCost := p.CostBasis.Div(p.BuyQuantity)
				p.CostBasis = p.CostBasis.Sub(avgCost.Mul(t.Quantity))
				if p.CostBasis.IsNegative() {
					p.CostBasis = M(0, SettlementCurrency)
				}
			}
		}
	}
	return positions
}

// HeldPosition is one output row for the portfolio import.
type HeldPosition struct {
	Name         string
	ISIN         string
	Quantity     Quantity // rounded to 6 fractional digits
	AveragePrice Money    // rounded to 2 fractional digits
}

// Currency returns the settlement currency, constant for the whole statement.
func (HeldPosition) Currency() string { return SettlementCurrency }

// Held returns the rows for every position still held, sorted by security
// name in ordinal order.
func (positions Positions) Held() []HeldPosition {
	var held []HeldPosition
	for _, p := range positions {
		if !p.IsHeld() {
			continue
		}
		held = append(held, HeldPosition{
			Name:         p.Name,
			ISIN:         p.ISIN,
			Quantity:     p.NetQuantity.Round(quantityPlaces),
			AveragePrice: p.AveragePrice().Round(pricePlaces),
		})
	}
	slices.SortFunc(held, func(a, b HeldPosition) int {
		return strings.Compare(a.Name, b.Name)
	})
	return held
}
