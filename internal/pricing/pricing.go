// Package pricing computes proposal totals. It is a pure computation over
// line items and the proposal's discount/tax configuration; persistence and
// presentation concerns live elsewhere. No rounding happens here, currency
// display rounding belongs to the presentation layer.
package pricing

import (
	"github.com/craftwise/proposal-api/internal/domain"
)

// LineItem is the pricing engine's view of a proposal line item
type LineItem struct {
	Quantity    float64
	UnitPrice   float64
	PricingType domain.PricingType
}

// Input holds everything the engine needs to compute totals
type Input struct {
	LineItems          []LineItem
	DefaultPricingType domain.PricingType
	DiscountType       domain.DiscountType
	DiscountValue      float64
	TaxRate            float64
}

// Totals is the computed pricing breakdown.
// Order of computation: subtotal, then discount, then tax, then grand total,
// independently per bucket.
type Totals struct {
	OneTimeSubtotal   float64
	MonthlySubtotal   float64
	DiscountOneTime   float64
	DiscountMonthly   float64
	TaxOneTime        float64
	TaxMonthly        float64
	GrandTotalOneTime float64
	GrandTotalMonthly float64

	// Mixed is true when both buckets are non-zero. When uniform,
	// UniformType holds the single pricing type in play.
	Mixed       bool
	UniformType domain.PricingType
}

// ComputeTotals computes the full pricing breakdown for a set of line items.
// Items with no pricing type fall back to defaultPricingType; items whose
// effective type is monthly form the monthly bucket, everything else is
// one-time. Discounts are clamped so a bucket's discount never exceeds its
// subtotal. Negative quantities and prices pass through untouched.
func ComputeTotals(in Input) Totals {
	var t Totals

	effectiveTypes := make(map[domain.PricingType]bool)
	for _, item := range in.LineItems {
		pt := item.PricingType
		if pt == "" {
			pt = in.DefaultPricingType
		}
		if pt == "" {
			pt = domain.PricingTypeFixed
		}
		effectiveTypes[pt] = true

		amount := item.Quantity * item.UnitPrice
		if pt == domain.PricingTypeMonthly {
			t.MonthlySubtotal += amount
		} else {
			t.OneTimeSubtotal += amount
		}
	}

	t.DiscountOneTime, t.DiscountMonthly = computeDiscount(
		in.DiscountType, in.DiscountValue, t.OneTimeSubtotal, t.MonthlySubtotal)

	if in.TaxRate != 0 {
		rate := in.TaxRate / 100
		t.TaxOneTime = (t.OneTimeSubtotal - t.DiscountOneTime) * rate
		t.TaxMonthly = (t.MonthlySubtotal - t.DiscountMonthly) * rate
	}

	t.GrandTotalOneTime = t.OneTimeSubtotal - t.DiscountOneTime + t.TaxOneTime
	t.GrandTotalMonthly = t.MonthlySubtotal - t.DiscountMonthly + t.TaxMonthly

	t.Mixed = t.OneTimeSubtotal != 0 && t.MonthlySubtotal != 0
	if !t.Mixed && len(effectiveTypes) == 1 {
		for pt := range effectiveTypes {
			t.UniformType = pt
		}
	}

	return t
}

// computeDiscount returns the per-bucket discount amounts.
// A percentage rate is clamped to [0,100] and applied to each bucket
// independently. A flat amount is taken from the single non-zero bucket, or
// split proportionally by subtotal share when billing is mixed; each share
// is clamped to its own bucket's subtotal.
func computeDiscount(discountType domain.DiscountType, value, oneTime, monthly float64) (float64, float64) {
	switch discountType {
	case domain.DiscountTypePercentage:
		rate := value
		if rate < 0 {
			rate = 0
		}
		if rate > 100 {
			rate = 100
		}
		return oneTime * rate / 100, monthly * rate / 100

	case domain.DiscountTypeFlat:
		if value <= 0 {
			return 0, 0
		}
		combined := oneTime + monthly
		if combined <= 0 {
			return 0, 0
		}
		if oneTime != 0 && monthly != 0 {
			shareOneTime := value * oneTime / combined
			shareMonthly := value * monthly / combined
			return clamp(shareOneTime, oneTime), clamp(shareMonthly, monthly)
		}
		if oneTime != 0 {
			return clamp(value, oneTime), 0
		}
		return 0, clamp(value, monthly)

	default:
		return 0, 0
	}
}

func clamp(v, max float64) float64 {
	if v > max {
		return max
	}
	return v
}

// ColumnLabels returns the quantity/rate column headers to use when
// rendering line items, based on the uniform pricing type.
func (t Totals) ColumnLabels() (quantity, rate string) {
	switch t.UniformType {
	case domain.PricingTypeHourly:
		return "Hours", "Rate"
	case domain.PricingTypeMonthly:
		return "Qty", "Monthly rate"
	default:
		return "Qty", "Unit price"
	}
}
