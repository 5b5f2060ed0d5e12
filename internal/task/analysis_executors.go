package task

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mineralagent/mineral-agent-api/internal/domain/budget"
	"github.com/mineralagent/mineral-agent-api/internal/generation"
	"github.com/mineralagent/mineral-agent-api/internal/store"
)

const searchBuyersSystemPrompt = `Eres un agente especializado en buscar compradores de minerales en Perú.

TAREA: Buscar compradores verificados de %s en %s

INSTRUCCIONES:
1. Busca solo empresas verificadas por SUNAT
2. Prioriza empresas con certificaciones internacionales
3. Incluye RUC, teléfono, email y dirección
4. Verifica que la empresa esté activa
5. Proporciona información de contacto actualizada

SALIDA: JSON con lista de compradores verificados`

// searchBuyersExecutor asks the LLM collaborator for verified buyers of a
// mineral in a location and reshapes the reply into a result mapping.
type searchBuyersExecutor struct {
	generator generation.Generator
	logger    *slog.Logger
}

func (e *searchBuyersExecutor) Execute(ctx context.Context, params Params) (map[string]any, error) {
	mineralType := params.String("mineral_type", "oro")
	location := params.String("location", "Trujillo")

	e.logger.InfoContext(ctx, "searching buyers",
		"mineral_type", mineralType,
		"location", location)

	system := fmt.Sprintf(searchBuyersSystemPrompt, mineralType, location)
	user := fmt.Sprintf(
		"Busca compradores verificados de %s en %s, Perú. Responde en JSON.",
		mineralType, location)

	reply, err := e.generator.Generate(ctx, system, user)
	if err != nil {
		return nil, fmt.Errorf("buyer search failed: %w", err)
	}

	// The model is asked for JSON but is not guaranteed to comply; a
	// non-JSON reply is still a usable answer.
	var buyers any
	if err := json.Unmarshal([]byte(reply), &buyers); err != nil {
		buyers = map[string]any{"response": reply}
	}

	return map[string]any{
		"success":      true,
		"executor":     "search_buyers",
		"mineral_type": mineralType,
		"location":     location,
		"buyers":       buyers,
	}, nil
}

// marketAnalysisExecutor delegates a market overview to the LLM collaborator.
type marketAnalysisExecutor struct {
	generator generation.Generator
	logger    *slog.Logger
}

func (e *marketAnalysisExecutor) Execute(ctx context.Context, params Params) (map[string]any, error) {
	mineralType := params.String("mineral_type", "oro")

	e.logger.InfoContext(ctx, "analyzing market", "mineral_type", mineralType)

	system := fmt.Sprintf(
		"Eres un analista experto en mercados de minerales en Perú, especializado en %s.",
		mineralType)
	user := fmt.Sprintf(
		"Analiza el mercado actual de %s en Perú. Incluye: tendencias, precios, demanda, oportunidades.",
		mineralType)

	analysis, err := e.generator.Generate(ctx, system, user)
	if err != nil {
		return nil, fmt.Errorf("market analysis failed: %w", err)
	}

	return map[string]any{
		"success":  true,
		"executor": "analyze_market",
		"mineral":  mineralType,
		"analysis": analysis,
	}, nil
}

// referencePrices are the built-in quotes used when the price store has no
// entry for the requested commodity.
var referencePrices = map[string]struct {
	usdPerOz float64
	trend    string
}{
	"oro":   {usdPerOz: 2050, trend: "al alza"},
	"plata": {usdPerOz: 24.50, trend: "estable"},
	"cobre": {usdPerOz: 4.20, trend: "al alza"},
}

// priceAnalysisExecutor reports the latest stored quote for a commodity,
// falling back to built-in reference prices when none is stored.
type priceAnalysisExecutor struct {
	prices store.PriceStore
	logger *slog.Logger
}

func (e *priceAnalysisExecutor) Execute(ctx context.Context, params Params) (map[string]any, error) {
	mineralType := params.String("mineral_type", "oro")

	e.logger.InfoContext(ctx, "analyzing prices", "mineral_type", mineralType)

	usdPerOz := 0.0
	trend := "desconocido"
	source := "reference"
	fetchedAt := time.Now().UTC()

	if e.prices != nil {
		quote, err := e.prices.GetLatest(ctx, mineralType)
		switch {
		case err == nil:
			usdPerOz = quote.USDPerOz
			source = quote.Source
			fetchedAt = quote.FetchedAt
		case errors.Is(err, store.ErrNotFound):
			// fall through to the reference table
		default:
			return nil, fmt.Errorf("price lookup failed: %w", err)
		}
	}

	if ref, ok := referencePrices[mineralType]; ok {
		if usdPerOz == 0 {
			usdPerOz = ref.usdPerOz
		}
		trend = ref.trend
	}

	usdPerKg := budget.Round2(usdPerOz * (1000 / budget.GramsPerTroyOunce))

	return map[string]any{
		"success":  true,
		"executor": "get_price_analysis",
		"mineral":  mineralType,
		"prices": map[string]any{
			"usd_per_oz": usdPerOz,
			"usd_per_kg": usdPerKg,
			"trend":      trend,
			"source":     source,
			"updated_at": fetchedAt.Format(time.RFC3339),
		},
	}, nil
}

// reportExecutor asks the LLM collaborator to draft a report about a
// mineral and wraps it with generation metadata.
type reportExecutor struct {
	generator generation.Generator
	logger    *slog.Logger
}

func (e *reportExecutor) Execute(ctx context.Context, params Params) (map[string]any, error) {
	mineralType := params.String("mineral_type", "oro")
	reportType := params.String("report_type", "general")

	e.logger.InfoContext(ctx, "generating report",
		"mineral_type", mineralType,
		"report_type", reportType)

	system := "Eres un asistente especializado en ayudar a vendedores de minerales en Trujillo, Perú."
	user := fmt.Sprintf(
		"Genera un reporte de tipo %s sobre %s para un vendedor de minerales. Sé conciso y práctico.",
		reportType, mineralType)

	content, err := e.generator.Generate(ctx, system, user)
	if err != nil {
		return nil, fmt.Errorf("report generation failed: %w", err)
	}

	return map[string]any{
		"success":  true,
		"executor": "generate_report",
		"report": map[string]any{
			"type":         reportType,
			"mineral":      mineralType,
			"generated_at": time.Now().UTC().Format(time.RFC3339),
			"content":      content,
		},
	}, nil
}
