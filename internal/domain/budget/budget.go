// Package budget implements the deterministic purchase and sale budget
// calculators. Both calculators are pure functions over their inputs: the
// same inputs always yield the same breakdown, and no I/O happens here.
package budget

import "math"

// GramsPerTroyOunce converts a per-troy-ounce spot price into a
// per-kilogram price: price_per_kg = (usd_per_oz / GramsPerTroyOunce) * fx.
const GramsPerTroyOunce = 31.1035

// Default input values applied when a parameter is omitted.
const (
	DefaultLawPercentage          = 100.0
	DefaultRecoveryPercentage     = 95.0
	DefaultPriceUSDOz             = 2000.0
	DefaultFXRate                 = 3.70
	DefaultFreightCost            = 0.0
	DefaultCommissionPercentage   = 3.0
	DefaultIGVPercentage          = 18.0
	DefaultTransportCost          = 100.0
	DefaultIntermediaryPercentage = 2.0
	DefaultTaxesPercentage        = 5.0
)

// BuyInput holds the parameters of a purchase budget. Percentages are
// expressed on a 0-100 scale.
type BuyInput struct {
	WeightKg             float64
	LawPercentage        float64
	RecoveryPercentage   float64
	MineralType          string
	PriceUSDOz           float64
	FreightCost          float64
	CommissionPercentage float64
	IGVPercentage        float64
	FXRate               float64
}

// BuyResult is the full breakdown of a purchase budget. Weights are rounded
// to 4 decimal places, monetary amounts (PEN) to 2.
type BuyResult struct {
	WeightKg             float64
	LawPercentage        float64
	RecoveryPercentage   float64
	UsableWeightKg       float64
	PriceUSDOz           float64
	PricePerKgPEN        float64
	GrossCostPEN         float64
	FreightDeductionPEN  float64
	CommissionPercentage float64
	CommissionCostPEN    float64
	SubtotalPEN          float64
	IGVPEN               float64
	TotalPEN             float64
	FXRate               float64
}

// SellInput holds the parameters of a sale budget.
type SellInput struct {
	WeightKg               float64
	LawPercentage          float64
	RecoveryPercentage     float64
	MineralType            string
	PriceUSDOz             float64
	TransportCost          float64
	IntermediaryPercentage float64
	TaxesPercentage        float64
	FXRate                 float64
}

// SellResult is the full breakdown of a sale budget.
type SellResult struct {
	WeightKg               float64
	LawPercentage          float64
	RecoveryPercentage     float64
	UsableWeightKg         float64
	PriceUSDOz             float64
	PricePerKgPEN          float64
	GrossIncomePEN         float64
	TransportDeductionPEN  float64
	IntermediaryPercentage float64
	IntermediaryCostPEN    float64
	TaxesPercentage        float64
	TaxesCostPEN           float64
	NetIncomePEN           float64
	FXRate                 float64
}

// CalculateBuy computes a purchase budget from the given inputs.
//
// A zero or negative weight yields a zero or negative total rather than an
// error; that is the documented edge-case policy, not a defect, so callers
// can quote hypothetical positions without special-casing.
func CalculateBuy(in BuyInput) BuyResult {
	usableWeight := in.WeightKg * (in.LawPercentage / 100) * (in.RecoveryPercentage / 100)
	pricePerKg := (in.PriceUSDOz / GramsPerTroyOunce) * in.FXRate
	grossCost := usableWeight * pricePerKg
	commissionCost := grossCost * (in.CommissionPercentage / 100)
	subtotal := grossCost - in.FreightCost - commissionCost
	igv := subtotal * (in.IGVPercentage / 100)
	total := subtotal + igv

	return BuyResult{
		WeightKg:             in.WeightKg,
		LawPercentage:        in.LawPercentage,
		RecoveryPercentage:   in.RecoveryPercentage,
		UsableWeightKg:       Round4(usableWeight),
		PriceUSDOz:           in.PriceUSDOz,
		PricePerKgPEN:        Round2(pricePerKg),
		GrossCostPEN:         Round2(grossCost),
		FreightDeductionPEN:  Round2(in.FreightCost),
		CommissionPercentage: in.CommissionPercentage,
		CommissionCostPEN:    Round2(commissionCost),
		SubtotalPEN:          Round2(subtotal),
		IGVPEN:               Round2(igv),
		TotalPEN:             Round2(total),
		FXRate:               in.FXRate,
	}
}

// CalculateSell computes a sale budget from the given inputs. The same
// zero/negative weight policy as CalculateBuy applies.
func CalculateSell(in SellInput) SellResult {
	usableWeight := in.WeightKg * (in.LawPercentage / 100) * (in.RecoveryPercentage / 100)
	pricePerKg := (in.PriceUSDOz / GramsPerTroyOunce) * in.FXRate
	grossIncome := usableWeight * pricePerKg
	intermediaryCost := grossIncome * (in.IntermediaryPercentage / 100)
	taxesCost := grossIncome * (in.TaxesPercentage / 100)
	netIncome := grossIncome - in.TransportCost - intermediaryCost - taxesCost

	return SellResult{
		WeightKg:               in.WeightKg,
		LawPercentage:          in.LawPercentage,
		RecoveryPercentage:     in.RecoveryPercentage,
		UsableWeightKg:         Round4(usableWeight),
		PriceUSDOz:             in.PriceUSDOz,
		PricePerKgPEN:          Round2(pricePerKg),
		GrossIncomePEN:         Round2(grossIncome),
		TransportDeductionPEN:  Round2(in.TransportCost),
		IntermediaryPercentage: in.IntermediaryPercentage,
		IntermediaryCostPEN:    Round2(intermediaryCost),
		TaxesPercentage:        in.TaxesPercentage,
		TaxesCostPEN:           Round2(taxesCost),
		NetIncomePEN:           Round2(netIncome),
		FXRate:                 in.FXRate,
	}
}

// Round2 rounds to 2 decimal places (monetary amounts).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round4 rounds to 4 decimal places (weights).
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
