package profit

import "fbaprofit/internal/models"

// NoResultsMessage is shown when no product has usable weight and dimensions.
const NoResultsMessage = "no results yet: fill in weight, length, width and height (all greater than 0)"

// NoCountriesMessage is shown when no target market is selected.
const NoCountriesMessage = "select at least one target market"

// PriceSource supplies the current sale price of a (SKU, country) pair.
type PriceSource interface {
	Price(sku string, country models.Country) float64
}

// Matrix is the evaluation of every qualifying product in every selected market.
type Matrix struct {
	Rows    []models.ResultRow `json:"rows"`
	Skipped []string           `json:"skipped,omitempty"`
}

// Empty reports that no product qualified. It is an informational state.
func (m *Matrix) Empty() bool {
	return len(m.Rows) == 0
}

// Input is everything BuildMatrix needs besides the engine.
type Input struct {
	Products    []models.Product
	Countries   []models.Country
	Prices      PriceSource
	Rates       models.CurrencyRateTable
	FreightRate float64
}

// BuildMatrix evaluates products in input order, each across countries in
// selection order. Products without positive weight and dimensions are
// listed in Skipped.
func (e *Engine) BuildMatrix(in Input) *Matrix {
	m := &Matrix{Rows: make([]models.ResultRow, 0, len(in.Products)*len(in.Countries))}
	for _, p := range in.Products {
		if !p.Qualifies() {
			m.Skipped = append(m.Skipped, p.SKU)
			continue
		}
		for _, c := range in.Countries {
			m.Rows = append(m.Rows, e.Evaluate(p, c, in.Prices.Price(p.SKU, c), in.Rates, in.FreightRate))
		}
	}
	return m
}
