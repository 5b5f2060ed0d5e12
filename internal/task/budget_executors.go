package task

import (
	"context"
	"log/slog"

	"github.com/mineralagent/mineral-agent-api/internal/domain/budget"
)

const defaultIGVPercentage = budget.DefaultIGVPercentage

// buyBudgetExecutor computes a purchase budget. It is a pure calculator:
// it never fails for well-typed numeric inputs.
type buyBudgetExecutor struct {
	igvPercentage float64
	logger        *slog.Logger
}

func (e *buyBudgetExecutor) Execute(ctx context.Context, params Params) (map[string]any, error) {
	in := budget.BuyInput{
		WeightKg:             params.Float("weight_kg", 0),
		LawPercentage:        params.Float("law_percentage", budget.DefaultLawPercentage),
		RecoveryPercentage:   params.Float("recovery_percentage", budget.DefaultRecoveryPercentage),
		MineralType:          params.String("mineral_type", "oro"),
		PriceUSDOz:           params.Float("price_usd_oz", budget.DefaultPriceUSDOz),
		FreightCost:          params.Float("freight_cost", budget.DefaultFreightCost),
		CommissionPercentage: params.Float("commission_percentage", budget.DefaultCommissionPercentage),
		IGVPercentage:        params.Float("igv_percentage", e.igvPercentage),
		FXRate:               params.Float("fx_rate", budget.DefaultFXRate),
	}

	e.logger.InfoContext(ctx, "generating buy budget",
		"weight_kg", in.WeightKg,
		"mineral_type", in.MineralType)

	r := budget.CalculateBuy(in)

	return map[string]any{
		"success":  true,
		"executor": "budget_buy",
		"type":     "buy",
		"mineral":  in.MineralType,
		"calculations": map[string]any{
			"weight_kg":             r.WeightKg,
			"law_percentage":        r.LawPercentage,
			"recovery_percentage":   r.RecoveryPercentage,
			"usable_weight_kg":      r.UsableWeightKg,
			"price_usd_oz":          r.PriceUSDOz,
			"price_per_kg_pen":      r.PricePerKgPEN,
			"gross_cost_pen":        r.GrossCostPEN,
			"freight_deduction_pen": r.FreightDeductionPEN,
			"commission_percentage": r.CommissionPercentage,
			"commission_cost_pen":   r.CommissionCostPEN,
			"subtotal_pen":          r.SubtotalPEN,
			"igv_pen":               r.IGVPEN,
			"total_pen":             r.TotalPEN,
			"fx_rate":               r.FXRate,
		},
		"summary": map[string]any{
			"you_pay":  r.TotalPEN,
			"currency": "PEN",
		},
	}, nil
}

// sellBudgetExecutor computes a sale budget; pure like the buy calculator.
type sellBudgetExecutor struct {
	logger *slog.Logger
}

func (e *sellBudgetExecutor) Execute(ctx context.Context, params Params) (map[string]any, error) {
	in := budget.SellInput{
		WeightKg:               params.Float("weight_kg", 0),
		LawPercentage:          params.Float("law_percentage", budget.DefaultLawPercentage),
		RecoveryPercentage:     params.Float("recovery_percentage", budget.DefaultRecoveryPercentage),
		MineralType:            params.String("mineral_type", "oro"),
		PriceUSDOz:             params.Float("price_usd_oz", budget.DefaultPriceUSDOz),
		TransportCost:          params.Float("transport_cost", budget.DefaultTransportCost),
		IntermediaryPercentage: params.Float("intermediary_percentage", budget.DefaultIntermediaryPercentage),
		TaxesPercentage:        params.Float("taxes_percentage", budget.DefaultTaxesPercentage),
		FXRate:                 params.Float("fx_rate", budget.DefaultFXRate),
	}

	e.logger.InfoContext(ctx, "generating sell budget",
		"weight_kg", in.WeightKg,
		"mineral_type", in.MineralType)

	r := budget.CalculateSell(in)

	return map[string]any{
		"success":  true,
		"executor": "budget_sell",
		"type":     "sell",
		"mineral":  in.MineralType,
		"calculations": map[string]any{
			"weight_kg":               r.WeightKg,
			"law_percentage":          r.LawPercentage,
			"recovery_percentage":     r.RecoveryPercentage,
			"usable_weight_kg":        r.UsableWeightKg,
			"price_usd_oz":            r.PriceUSDOz,
			"price_per_kg_pen":        r.PricePerKgPEN,
			"gross_income_pen":        r.GrossIncomePEN,
			"transport_deduction_pen": r.TransportDeductionPEN,
			"intermediary_percentage": r.IntermediaryPercentage,
			"intermediary_cost_pen":   r.IntermediaryCostPEN,
			"taxes_percentage":        r.TaxesPercentage,
			"taxes_cost_pen":          r.TaxesCostPEN,
			"net_income_pen":          r.NetIncomePEN,
			"fx_rate":                 r.FXRate,
		},
		"summary": map[string]any{
			"you_receive": r.NetIncomePEN,
			"currency":    "PEN",
		},
	}, nil
}
