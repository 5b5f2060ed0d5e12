package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func referenceBuyInput() BuyInput {
	return BuyInput{
		WeightKg:             10,
		LawPercentage:        100,
		RecoveryPercentage:   95,
		MineralType:          "oro",
		PriceUSDOz:           2000,
		FreightCost:          0,
		CommissionPercentage: 3,
		IGVPercentage:        18,
		FXRate:               3.70,
	}
}

func TestCalculateBuyReferenceCase(t *testing.T) {
	r := CalculateBuy(referenceBuyInput())

	// usable = 10 * 1.00 * 0.95
	assert.InDelta(t, 9.5, r.UsableWeightKg, 0.0001)
	// price_per_kg = (2000 / 31.1035) * 3.70
	assert.InDelta(t, 237.92, r.PricePerKgPEN, 0.01)
	assert.InDelta(t, 2260.20, r.GrossCostPEN, 0.01)
	assert.InDelta(t, 67.81, r.CommissionCostPEN, 0.01)
	assert.InDelta(t, 2192.39, r.SubtotalPEN, 0.01)
	assert.InDelta(t, 394.63, r.IGVPEN, 0.01)
	assert.InDelta(t, 2587.02, r.TotalPEN, 0.01)
}

func TestCalculateBuyInternalConsistency(t *testing.T) {
	r := CalculateBuy(referenceBuyInput())

	assert.InDelta(t, r.SubtotalPEN+r.IGVPEN, r.TotalPEN, 0.02)
	assert.InDelta(t, r.GrossCostPEN-r.FreightDeductionPEN-r.CommissionCostPEN, r.SubtotalPEN, 0.02)
}

func TestCalculateBuyZeroWeight(t *testing.T) {
	in := referenceBuyInput()
	in.WeightKg = 0

	r := CalculateBuy(in)
	assert.Zero(t, r.UsableWeightKg)
	assert.Zero(t, r.TotalPEN)
}

func TestCalculateBuyNegativeWeight(t *testing.T) {
	// Negative weight is an accepted edge case that produces a negative
	// total, not an error.
	in := referenceBuyInput()
	in.WeightKg = -5

	r := CalculateBuy(in)
	assert.Negative(t, r.TotalPEN)
}

func TestCalculateBuyFreightReducesTotal(t *testing.T) {
	base := CalculateBuy(referenceBuyInput())

	in := referenceBuyInput()
	in.FreightCost = 250
	withFreight := CalculateBuy(in)

	assert.Less(t, withFreight.TotalPEN, base.TotalPEN)
}

func TestCalculateBuyConfigurableIGV(t *testing.T) {
	in := referenceBuyInput()
	in.IGVPercentage = 0

	r := CalculateBuy(in)
	assert.Zero(t, r.IGVPEN)
	assert.InDelta(t, r.SubtotalPEN, r.TotalPEN, 0.001)
}

func referenceSellInput() SellInput {
	return SellInput{
		WeightKg:               10,
		LawPercentage:          100,
		RecoveryPercentage:     95,
		MineralType:            "oro",
		PriceUSDOz:             2000,
		TransportCost:          100,
		IntermediaryPercentage: 2,
		TaxesPercentage:        5,
		FXRate:                 3.70,
	}
}

func TestCalculateSellReferenceCase(t *testing.T) {
	r := CalculateSell(referenceSellInput())

	assert.InDelta(t, 9.5, r.UsableWeightKg, 0.0001)
	assert.InDelta(t, 237.92, r.PricePerKgPEN, 0.01)
	assert.InDelta(t, 2260.20, r.GrossIncomePEN, 0.01)
	// intermediary 2% and taxes 5% of gross, minus 100 transport
	assert.InDelta(t, 45.20, r.IntermediaryCostPEN, 0.01)
	assert.InDelta(t, 113.01, r.TaxesCostPEN, 0.01)
	assert.InDelta(t, 2001.98, r.NetIncomePEN, 0.01)
}

func TestCalculateSellTaxMonotonicity(t *testing.T) {
	// Raising the tax percentage while holding everything else fixed must
	// strictly decrease net income.
	prev := CalculateSell(referenceSellInput()).NetIncomePEN
	for _, taxes := range []float64{6, 8, 12, 20, 50} {
		in := referenceSellInput()
		in.TaxesPercentage = taxes
		next := CalculateSell(in).NetIncomePEN
		assert.Less(t, next, prev, "taxes_percentage=%v", taxes)
		prev = next
	}
}

func TestCalculateSellZeroWeight(t *testing.T) {
	in := referenceSellInput()
	in.WeightKg = 0

	r := CalculateSell(in)
	assert.Zero(t, r.UsableWeightKg)
	// Transport still costs money even with nothing to sell.
	assert.InDelta(t, -100, r.NetIncomePEN, 0.001)
}

func TestRoundingHelpers(t *testing.T) {
	assert.Equal(t, 1.24, Round2(1.2449))
	assert.Equal(t, 1.25, Round2(1.246))
	assert.Equal(t, 0.1235, Round4(0.123456))
}
