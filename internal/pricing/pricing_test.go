package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftwise/proposal-api/internal/domain"
)

func TestComputeTotals_EmptyLineItems(t *testing.T) {
	totals := ComputeTotals(Input{
		DefaultPricingType: domain.PricingTypeFixed,
		DiscountType:       domain.DiscountTypePercentage,
		DiscountValue:      10,
		TaxRate:            25,
	})

	assert.Zero(t, totals.OneTimeSubtotal)
	assert.Zero(t, totals.MonthlySubtotal)
	assert.Zero(t, totals.DiscountOneTime)
	assert.Zero(t, totals.TaxOneTime)
	assert.Zero(t, totals.GrandTotalOneTime)
	assert.Zero(t, totals.GrandTotalMonthly)
	assert.False(t, totals.Mixed)
}

func TestComputeTotals_SingleBucketFixed(t *testing.T) {
	totals := ComputeTotals(Input{
		LineItems: []LineItem{
			{Quantity: 2, UnitPrice: 100, PricingType: domain.PricingTypeFixed},
			{Quantity: 1, UnitPrice: 50, PricingType: domain.PricingTypeFixed},
		},
		DefaultPricingType: domain.PricingTypeFixed,
		DiscountType:       domain.DiscountTypeNone,
	})

	assert.InDelta(t, 250.0, totals.OneTimeSubtotal, 1e-9)
	assert.Zero(t, totals.MonthlySubtotal)
	assert.InDelta(t, 250.0, totals.GrandTotalOneTime, 1e-9)
	assert.False(t, totals.Mixed)
	assert.Equal(t, domain.PricingTypeFixed, totals.UniformType)
}

func TestComputeTotals_DefaultTypeFallback(t *testing.T) {
	totals := ComputeTotals(Input{
		LineItems: []LineItem{
			{Quantity: 3, UnitPrice: 40},
		},
		DefaultPricingType: domain.PricingTypeMonthly,
	})

	assert.Zero(t, totals.OneTimeSubtotal)
	assert.InDelta(t, 120.0, totals.MonthlySubtotal, 1e-9)
	assert.Equal(t, domain.PricingTypeMonthly, totals.UniformType)
}

func TestComputeTotals_MixedBilling(t *testing.T) {
	totals := ComputeTotals(Input{
		LineItems: []LineItem{
			{Quantity: 1, UnitPrice: 100, PricingType: domain.PricingTypeFixed},
			{Quantity: 10, UnitPrice: 15, PricingType: domain.PricingTypeHourly},
			{Quantity: 1, UnitPrice: 50, PricingType: domain.PricingTypeMonthly},
		},
		DefaultPricingType: domain.PricingTypeFixed,
	})

	assert.InDelta(t, 250.0, totals.OneTimeSubtotal, 1e-9)
	assert.InDelta(t, 50.0, totals.MonthlySubtotal, 1e-9)
	assert.True(t, totals.Mixed)
	assert.Empty(t, totals.UniformType)
}

func TestComputeTotals_PercentageDiscountPerBucket(t *testing.T) {
	totals := ComputeTotals(Input{
		LineItems: []LineItem{
			{Quantity: 1, UnitPrice: 200, PricingType: domain.PricingTypeFixed},
			{Quantity: 1, UnitPrice: 100, PricingType: domain.PricingTypeMonthly},
		},
		DiscountType:  domain.DiscountTypePercentage,
		DiscountValue: 10,
	})

	assert.InDelta(t, 20.0, totals.DiscountOneTime, 1e-9)
	assert.InDelta(t, 10.0, totals.DiscountMonthly, 1e-9)
	assert.InDelta(t, 180.0, totals.GrandTotalOneTime, 1e-9)
	assert.InDelta(t, 90.0, totals.GrandTotalMonthly, 1e-9)
}

func TestComputeTotals_PercentageDiscountClamped(t *testing.T) {
	over := ComputeTotals(Input{
		LineItems:     []LineItem{{Quantity: 1, UnitPrice: 100}},
		DiscountType:  domain.DiscountTypePercentage,
		DiscountValue: 150,
	})
	assert.InDelta(t, 100.0, over.DiscountOneTime, 1e-9)
	assert.Zero(t, over.GrandTotalOneTime)

	negative := ComputeTotals(Input{
		LineItems:     []LineItem{{Quantity: 1, UnitPrice: 100}},
		DiscountType:  domain.DiscountTypePercentage,
		DiscountValue: -5,
	})
	assert.Zero(t, negative.DiscountOneTime)
	assert.InDelta(t, 100.0, negative.GrandTotalOneTime, 1e-9)
}

func TestComputeTotals_FlatDiscountSingleBucket(t *testing.T) {
	totals := ComputeTotals(Input{
		LineItems: []LineItem{
			{Quantity: 1, UnitPrice: 80, PricingType: domain.PricingTypeMonthly},
		},
		DiscountType:  domain.DiscountTypeFlat,
		DiscountValue: 30,
	})

	assert.Zero(t, totals.DiscountOneTime)
	assert.InDelta(t, 30.0, totals.DiscountMonthly, 1e-9)
	assert.InDelta(t, 50.0, totals.GrandTotalMonthly, 1e-9)
}

func TestComputeTotals_FlatDiscountExceedsSubtotal(t *testing.T) {
	totals := ComputeTotals(Input{
		LineItems:     []LineItem{{Quantity: 1, UnitPrice: 40}},
		DiscountType:  domain.DiscountTypeFlat,
		DiscountValue: 100,
	})

	assert.InDelta(t, 40.0, totals.DiscountOneTime, 1e-9)
	assert.Zero(t, totals.GrandTotalOneTime)
}

func TestComputeTotals_FlatDiscountProportionalSplit(t *testing.T) {
	// One-time subtotal 200, monthly subtotal 50, flat discount 30 splits
	// 24 / 6 by subtotal share. With 10% tax the grand totals land at
	// 193.60 and 48.40.
	totals := ComputeTotals(Input{
		LineItems: []LineItem{
			{Quantity: 2, UnitPrice: 100, PricingType: domain.PricingTypeFixed},
			{Quantity: 1, UnitPrice: 50, PricingType: domain.PricingTypeMonthly},
		},
		DiscountType:  domain.DiscountTypeFlat,
		DiscountValue: 30,
		TaxRate:       10,
	})

	require.True(t, totals.Mixed)
	assert.InDelta(t, 24.0, totals.DiscountOneTime, 1e-9)
	assert.InDelta(t, 6.0, totals.DiscountMonthly, 1e-9)
	assert.InDelta(t, 17.6, totals.TaxOneTime, 1e-9)
	assert.InDelta(t, 4.4, totals.TaxMonthly, 1e-9)
	assert.InDelta(t, 193.6, totals.GrandTotalOneTime, 1e-9)
	assert.InDelta(t, 48.4, totals.GrandTotalMonthly, 1e-9)
}

func TestComputeTotals_FlatDiscountNonPositive(t *testing.T) {
	totals := ComputeTotals(Input{
		LineItems:     []LineItem{{Quantity: 1, UnitPrice: 100}},
		DiscountType:  domain.DiscountTypeFlat,
		DiscountValue: -10,
	})

	assert.Zero(t, totals.DiscountOneTime)
	assert.InDelta(t, 100.0, totals.GrandTotalOneTime, 1e-9)
}

func TestComputeTotals_TaxAppliedAfterDiscount(t *testing.T) {
	totals := ComputeTotals(Input{
		LineItems:     []LineItem{{Quantity: 1, UnitPrice: 100}},
		DiscountType:  domain.DiscountTypePercentage,
		DiscountValue: 20,
		TaxRate:       25,
	})

	assert.InDelta(t, 20.0, totals.DiscountOneTime, 1e-9)
	assert.InDelta(t, 20.0, totals.TaxOneTime, 1e-9)
	assert.InDelta(t, 100.0, totals.GrandTotalOneTime, 1e-9)
}

func TestComputeTotals_ZeroQuantityAndPrice(t *testing.T) {
	totals := ComputeTotals(Input{
		LineItems: []LineItem{
			{Quantity: 0, UnitPrice: 100},
			{Quantity: 5, UnitPrice: 0},
		},
		DiscountType:  domain.DiscountTypeFlat,
		DiscountValue: 10,
		TaxRate:       25,
	})

	assert.Zero(t, totals.OneTimeSubtotal)
	assert.Zero(t, totals.DiscountOneTime)
	assert.Zero(t, totals.GrandTotalOneTime)
}

func TestColumnLabels(t *testing.T) {
	tests := []struct {
		name        string
		uniformType domain.PricingType
		wantQty     string
		wantRate    string
	}{
		{"hourly", domain.PricingTypeHourly, "Hours", "Rate"},
		{"monthly", domain.PricingTypeMonthly, "Qty", "Monthly rate"},
		{"fixed", domain.PricingTypeFixed, "Qty", "Unit price"},
		{"mixed", "", "Qty", "Unit price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qty, rate := Totals{UniformType: tt.uniformType}.ColumnLabels()
			assert.Equal(t, tt.wantQty, qty)
			assert.Equal(t, tt.wantRate, rate)
		})
	}
}
