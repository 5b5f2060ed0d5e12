package task

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mineralagent/mineral-agent-api/internal/domain"
	"github.com/mineralagent/mineral-agent-api/internal/lookup"
	"github.com/mineralagent/mineral-agent-api/internal/store"
)

// fakeGenerator implements generation.Generator for executor tests.
type fakeGenerator struct {
	reply string
	err   error

	lastSystem string
	lastUser   string
}

func (f *fakeGenerator) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.lastSystem = systemPrompt
	f.lastUser = userPrompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

// fakeCompanyLookup implements lookup.CompanyLookup for executor tests.
type fakeCompanyLookup struct {
	company *lookup.Company
	err     error
}

func (f *fakeCompanyLookup) FindByRUC(ctx context.Context, ruc string) (*lookup.Company, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.company, nil
}

// fakePriceStore implements store.PriceStore for executor tests.
type fakePriceStore struct {
	price *domain.Price
	err   error
	saved []*domain.Price
}

func (f *fakePriceStore) Save(ctx context.Context, price *domain.Price) error {
	f.saved = append(f.saved, price)
	return f.err
}

func (f *fakePriceStore) GetLatest(ctx context.Context, commodity string) (*domain.Price, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.price, nil
}

func TestNewExecutorsCoversAllTypes(t *testing.T) {
	executors := NewExecutors(ExecutorDeps{
		Generator: &fakeGenerator{},
		Companies: &fakeCompanyLookup{},
		Prices:    &fakePriceStore{err: store.ErrPriceNotFound},
		Logger:    setupTestLogger(),
	})

	for _, taskType := range AllTypes() {
		assert.Contains(t, executors, taskType, "missing executor for %s", taskType)
	}
	assert.Len(t, executors, len(AllTypes()))
}

func TestBuyBudgetExecutorReferenceCase(t *testing.T) {
	exec := &buyBudgetExecutor{igvPercentage: 18, logger: setupTestLogger()}

	result, err := exec.Execute(context.Background(), Params{
		"weight_kg":             10.0,
		"law_percentage":        100.0,
		"recovery_percentage":   95.0,
		"price_usd_oz":          2000.0,
		"fx_rate":               3.70,
		"commission_percentage": 3.0,
		"freight_cost":          0.0,
	})
	require.NoError(t, err)

	calc, ok := result["calculations"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 9.5, calc["usable_weight_kg"].(float64), 0.0001)
	assert.InDelta(t, 237.92, calc["price_per_kg_pen"].(float64), 0.01)
	assert.InDelta(t, 2587.02, calc["total_pen"].(float64), 0.01)

	summary, ok := result["summary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, calc["total_pen"], summary["you_pay"])
	assert.Equal(t, "PEN", summary["currency"])
}

func TestBuyBudgetExecutorDefaults(t *testing.T) {
	exec := &buyBudgetExecutor{igvPercentage: 18, logger: setupTestLogger()}

	// Only weight given; every other parameter falls back to its default.
	result, err := exec.Execute(context.Background(), Params{"weight_kg": 10.0})
	require.NoError(t, err)

	calc := result["calculations"].(map[string]any)
	assert.Equal(t, 100.0, calc["law_percentage"])
	assert.Equal(t, 95.0, calc["recovery_percentage"])
	assert.Equal(t, 2000.0, calc["price_usd_oz"])
	assert.Equal(t, 3.70, calc["fx_rate"])
	assert.Equal(t, 3.0, calc["commission_percentage"])
	assert.Equal(t, "oro", result["mineral"])
}

func TestSellBudgetExecutorMonotonicity(t *testing.T) {
	exec := &sellBudgetExecutor{logger: setupTestLogger()}

	netFor := func(taxes float64) float64 {
		result, err := exec.Execute(context.Background(), Params{
			"weight_kg":        10.0,
			"law_percentage":   90.0,
			"taxes_percentage": taxes,
		})
		require.NoError(t, err)
		return result["calculations"].(map[string]any)["net_income_pen"].(float64)
	}

	assert.Greater(t, netFor(5), netFor(10))
	assert.Greater(t, netFor(10), netFor(20))
}

func TestSearchBuyersExecutorParsesJSONReply(t *testing.T) {
	gen := &fakeGenerator{reply: `{"buyers": [{"name": "Minerales del Norte SAC", "ruc": "20123456789"}]}`}
	exec := &searchBuyersExecutor{generator: gen, logger: setupTestLogger()}

	result, err := exec.Execute(context.Background(), Params{
		"mineral_type": "plata",
		"location":     "Lima",
	})
	require.NoError(t, err)

	assert.Equal(t, "plata", result["mineral_type"])
	assert.Equal(t, "Lima", result["location"])
	assert.Contains(t, gen.lastSystem, "plata")
	assert.Contains(t, gen.lastUser, "Lima")

	buyers, ok := result["buyers"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, buyers, "buyers")
}

func TestSearchBuyersExecutorWrapsPlainTextReply(t *testing.T) {
	gen := &fakeGenerator{reply: "No encontré compradores verificados."}
	exec := &searchBuyersExecutor{generator: gen, logger: setupTestLogger()}

	result, err := exec.Execute(context.Background(), Params{})
	require.NoError(t, err)

	buyers, ok := result["buyers"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "No encontré compradores verificados.", buyers["response"])
}

func TestSearchBuyersExecutorPropagatesFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("provider unavailable")}
	exec := &searchBuyersExecutor{generator: gen, logger: setupTestLogger()}

	_, err := exec.Execute(context.Background(), Params{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "provider unavailable")
}

func TestMarketAnalysisExecutor(t *testing.T) {
	gen := &fakeGenerator{reply: "El mercado del cobre muestra tendencia al alza."}
	exec := &marketAnalysisExecutor{generator: gen, logger: setupTestLogger()}

	result, err := exec.Execute(context.Background(), Params{"mineral_type": "cobre"})
	require.NoError(t, err)

	assert.Equal(t, "cobre", result["mineral"])
	assert.Equal(t, gen.reply, result["analysis"])
	assert.Contains(t, gen.lastSystem, "cobre")
}

func TestCompanyVerificationExecutorVerified(t *testing.T) {
	companies := &fakeCompanyLookup{company: &lookup.Company{
		RUC:       "20123456789",
		Name:      "Minerales del Norte SAC",
		LegalName: "Minerales del Norte S.A.C.",
		Status:    "ACTIVO",
		Address:   "Av. España 123, Trujillo",
		Active:    true,
	}}
	exec := &companyVerificationExecutor{companies: companies, logger: setupTestLogger()}

	result, err := exec.Execute(context.Background(), Params{
		"company_name": "Minerales del Norte",
		"ruc":          "20123456789",
	})
	require.NoError(t, err)

	company := result["company"].(map[string]any)
	assert.Equal(t, true, company["verified"])
	assert.Equal(t, "ACTIVO", company["status"])
	assert.Equal(t, "20123456789", company["ruc"])
}

func TestCompanyVerificationExecutorNotFound(t *testing.T) {
	companies := &fakeCompanyLookup{err: lookup.ErrCompanyNotFound}
	exec := &companyVerificationExecutor{companies: companies, logger: setupTestLogger()}

	result, err := exec.Execute(context.Background(), Params{"ruc": "20999999999"})
	require.NoError(t, err)

	company := result["company"].(map[string]any)
	assert.Equal(t, false, company["verified"])
}

func TestCompanyVerificationExecutorTransportFailure(t *testing.T) {
	companies := &fakeCompanyLookup{err: lookup.ErrLookupFailed}
	exec := &companyVerificationExecutor{companies: companies, logger: setupTestLogger()}

	_, err := exec.Execute(context.Background(), Params{"ruc": "20123456789"})
	require.Error(t, err)
	assert.ErrorIs(t, err, lookup.ErrLookupFailed)
}

func TestPriceAnalysisExecutorUsesStoredQuote(t *testing.T) {
	quote, err := domain.NewPrice("oro", 2100, 3.75, "metals-api")
	require.NoError(t, err)
	exec := &priceAnalysisExecutor{prices: &fakePriceStore{price: quote}, logger: setupTestLogger()}

	result, err := exec.Execute(context.Background(), Params{"mineral_type": "oro"})
	require.NoError(t, err)

	prices := result["prices"].(map[string]any)
	assert.Equal(t, 2100.0, prices["usd_per_oz"])
	assert.Equal(t, "metals-api", prices["source"])
	assert.InDelta(t, 2100*(1000/31.1035), prices["usd_per_kg"].(float64), 0.01)
}

func TestPriceAnalysisExecutorFallsBackToReference(t *testing.T) {
	exec := &priceAnalysisExecutor{
		prices: &fakePriceStore{err: store.ErrPriceNotFound},
		logger: setupTestLogger(),
	}

	result, err := exec.Execute(context.Background(), Params{"mineral_type": "plata"})
	require.NoError(t, err)

	prices := result["prices"].(map[string]any)
	assert.Equal(t, 24.50, prices["usd_per_oz"])
	assert.Equal(t, "estable", prices["trend"])
	assert.Equal(t, "reference", prices["source"])
}

func TestPriceAnalysisExecutorUnknownCommodity(t *testing.T) {
	exec := &priceAnalysisExecutor{
		prices: &fakePriceStore{err: store.ErrPriceNotFound},
		logger: setupTestLogger(),
	}

	result, err := exec.Execute(context.Background(), Params{"mineral_type": "litio"})
	require.NoError(t, err)

	prices := result["prices"].(map[string]any)
	assert.Equal(t, 0.0, prices["usd_per_oz"])
	assert.Equal(t, "desconocido", prices["trend"])
}

func TestReportExecutor(t *testing.T) {
	gen := &fakeGenerator{reply: "Resumen del mercado de oro."}
	exec := &reportExecutor{generator: gen, logger: setupTestLogger()}

	result, err := exec.Execute(context.Background(), Params{
		"mineral_type": "oro",
		"report_type":  "semanal",
	})
	require.NoError(t, err)

	report := result["report"].(map[string]any)
	assert.Equal(t, "semanal", report["type"])
	assert.Equal(t, "oro", report["mineral"])
	assert.Equal(t, gen.reply, report["content"])

	generatedAt, err := time.Parse(time.RFC3339, report["generated_at"].(string))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), generatedAt, time.Minute)
}

func TestParamsHelpers(t *testing.T) {
	p := Params{
		"weight_kg": 12.5,
		"count":     3,
		"mineral":   "oro",
		"empty":     "",
		"wrong":     []string{"not", "a", "number"},
	}

	assert.Equal(t, 12.5, p.Float("weight_kg", 0))
	assert.Equal(t, 3.0, p.Float("count", 0))
	assert.Equal(t, 7.0, p.Float("missing", 7))
	assert.Equal(t, 7.0, p.Float("wrong", 7))
	assert.Equal(t, "oro", p.String("mineral", "plata"))
	assert.Equal(t, "plata", p.String("missing", "plata"))
	assert.Equal(t, "plata", p.String("empty", "plata"))
}
