package api

import "github.com/mineralagent/mineral-agent-api/internal/task"

// SubmitTaskRequest is the generic task submission body.
type SubmitTaskRequest struct {
	Type        string         `json:"type"        validate:"required"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// SubmitTaskResponse acknowledges an accepted submission.
type SubmitTaskResponse struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
}

// TaskListResponse wraps the full task listing.
type TaskListResponse struct {
	Tasks []*task.Task `json:"tasks"`
	Count int          `json:"count"`
}

// BuyerSearchRequest is the convenience body for buyer searches.
type BuyerSearchRequest struct {
	MineralType string `json:"mineral_type" validate:"required"`
	Location    string `json:"location"`
}

// BuyBudgetRequest is the flattened convenience body for buy budgets.
// Optional fields left nil fall back to stored quotes or calculator
// defaults.
type BuyBudgetRequest struct {
	WeightKg             float64  `json:"weight_kg"             validate:"required,gt=0"`
	MineralType          string   `json:"mineral_type"`
	LawPercentage        *float64 `json:"law_percentage"        validate:"omitempty,gt=0,lte=100"`
	RecoveryPercentage   *float64 `json:"recovery_percentage"   validate:"omitempty,gt=0,lte=100"`
	PriceUSDOz           *float64 `json:"price_usd_oz"          validate:"omitempty,gt=0"`
	FXRate               *float64 `json:"fx_rate"               validate:"omitempty,gt=0"`
	FreightCost          *float64 `json:"freight_cost"          validate:"omitempty,gte=0"`
	CommissionPercentage *float64 `json:"commission_percentage" validate:"omitempty,gte=0,lte=100"`
	IGVPercentage        *float64 `json:"igv_percentage"        validate:"omitempty,gte=0,lte=100"`
}

// Params converts the request into a task parameter bag, omitting nil
// fields so downstream defaults apply.
func (r *BuyBudgetRequest) Params() task.Params {
	params := task.Params{"weight_kg": r.WeightKg}
	if r.MineralType != "" {
		params["mineral_type"] = r.MineralType
	}
	setFloat(params, "law_percentage", r.LawPercentage)
	setFloat(params, "recovery_percentage", r.RecoveryPercentage)
	setFloat(params, "price_usd_oz", r.PriceUSDOz)
	setFloat(params, "fx_rate", r.FXRate)
	setFloat(params, "freight_cost", r.FreightCost)
	setFloat(params, "commission_percentage", r.CommissionPercentage)
	setFloat(params, "igv_percentage", r.IGVPercentage)
	return params
}

// SellBudgetRequest is the flattened convenience body for sell budgets.
type SellBudgetRequest struct {
	WeightKg               float64  `json:"weight_kg"               validate:"required,gt=0"`
	MineralType            string   `json:"mineral_type"`
	LawPercentage          *float64 `json:"law_percentage"          validate:"omitempty,gt=0,lte=100"`
	RecoveryPercentage     *float64 `json:"recovery_percentage"     validate:"omitempty,gt=0,lte=100"`
	PriceUSDOz             *float64 `json:"price_usd_oz"            validate:"omitempty,gt=0"`
	FXRate                 *float64 `json:"fx_rate"                 validate:"omitempty,gt=0"`
	TransportCost          *float64 `json:"transport_cost"          validate:"omitempty,gte=0"`
	IntermediaryPercentage *float64 `json:"intermediary_percentage" validate:"omitempty,gte=0,lte=100"`
	TaxesPercentage        *float64 `json:"taxes_percentage"        validate:"omitempty,gte=0,lte=100"`
}

// Params converts the request into a task parameter bag.
func (r *SellBudgetRequest) Params() task.Params {
	params := task.Params{"weight_kg": r.WeightKg}
	if r.MineralType != "" {
		params["mineral_type"] = r.MineralType
	}
	setFloat(params, "law_percentage", r.LawPercentage)
	setFloat(params, "recovery_percentage", r.RecoveryPercentage)
	setFloat(params, "price_usd_oz", r.PriceUSDOz)
	setFloat(params, "fx_rate", r.FXRate)
	setFloat(params, "transport_cost", r.TransportCost)
	setFloat(params, "intermediary_percentage", r.IntermediaryPercentage)
	setFloat(params, "taxes_percentage", r.TaxesPercentage)
	return params
}

// RecordPriceRequest is the body for storing a commodity quote.
type RecordPriceRequest struct {
	Commodity string  `json:"commodity"  validate:"required"`
	USDPerOz  float64 `json:"usd_per_oz" validate:"required,gt=0"`
	FXRate    float64 `json:"fx_rate"    validate:"required,gt=0"`
	Source    string  `json:"source"`
}

func setFloat(params task.Params, key string, v *float64) {
	if v != nil {
		params[key] = *v
	}
}
