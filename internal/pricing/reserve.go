package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ibuchix/auto-strada001testing-sub006/internal/auctionerrors"
)

// tier maps a valuation upper bound (inclusive) to the discount applied when
// deriving the reserve price. The table is ordered by upper bound; the last
// tier is open-ended.
type tier struct {
	upperBound int64
	discount   decimal.Decimal
}

var discountTable = []tier{
	{15_000, decimal.NewFromFloat(0.65)},
	{20_000, decimal.NewFromFloat(0.46)},
	{30_000, decimal.NewFromFloat(0.37)},
	{50_000, decimal.NewFromFloat(0.27)},
	{60_000, decimal.NewFromFloat(0.22)},
	{80_000, decimal.NewFromFloat(0.20)},
	{100_000, decimal.NewFromFloat(0.185)},
	{130_000, decimal.NewFromFloat(0.17)},
	{160_000, decimal.NewFromFloat(0.16)},
	{200_000, decimal.NewFromFloat(0.15)},
}

// openEndedDiscount applies above the highest table breakpoint.
var openEndedDiscount = decimal.NewFromFloat(0.145)

// Discount returns the discount tier for a positive valuation. Each interval
// is closed at its upper bound: a valuation sitting exactly on a breakpoint
// uses that breakpoint's tier, not the next one.
func Discount(valuation int64) decimal.Decimal {
	for _, t := range discountTable {
		if valuation <= t.upperBound {
			return t.discount
		}
	}
	return openEndedDiscount
}

// ReservePrice derives the reserve price from a valuation figure:
// round(valuation * (1 - discount)). It is deterministic and side-effect
// free, and is the single code path shared by the pricing preview and the
// persisted reserve so the two cannot drift.
//
// A zero or negative valuation yields a reserve of zero together with
// ErrNoValuation; callers must surface "no valuation available" instead of
// silently using the zero.
func ReservePrice(valuation int64) (int64, error) {
	if valuation <= 0 {
		return 0, fmt.Errorf("reserve price for valuation %d: %w", valuation, auctionerrors.ErrNoValuation)
	}

	v := decimal.NewFromInt(valuation)
	factor := decimal.NewFromInt(1).Sub(Discount(valuation))
	return v.Mul(factor).Round(0).IntPart(), nil
}
