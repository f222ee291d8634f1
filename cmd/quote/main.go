// Command quote evaluates a product CSV against the fee tables and writes
// the profit analysis as CSV, without the HTTP service.
package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"fbaprofit/internal/config"
	"fbaprofit/internal/export"
	"fbaprofit/internal/fees"
	"fbaprofit/internal/logger"
	"fbaprofit/internal/models"
	"fbaprofit/internal/services/profit"
	"fbaprofit/internal/utils"
)

var productColumns = []string{"sku", "cost", "weight_g", "length", "width", "height"}

// rateFlags collects repeated -rate CUR=value flags.
type rateFlags map[string]float64

func (r rateFlags) String() string {
	parts := make([]string, 0, len(r))
	for k, v := range r {
		parts = append(parts, fmt.Sprintf("%s=%g", k, v))
	}
	return strings.Join(parts, ",")
}

func (r rateFlags) Set(s string) error {
	code, value, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("expected CUR=value, got %q", s)
	}
	rate := utils.ParseFloatOrZero(value)
	if rate <= 0 {
		return fmt.Errorf("rate for %s must be greater than 0", code)
	}
	r[strings.ToUpper(strings.TrimSpace(code))] = rate
	return nil
}

// flatPrice quotes the same sale price for every pair.
type flatPrice float64

func (p flatPrice) Price(string, models.Country) float64 {
	return float64(p)
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		logger.Get().WithComponent("quote").Error(err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	catalog, err := config.LoadCatalog(config.GetEnv("MARKETS_FILE", ""))
	if err != nil {
		return err
	}
	log := logger.Get().WithComponent("quote")

	rates := rateFlags{}
	fs := flag.NewFlagSet("quote", flag.ContinueOnError)
	productsPath := fs.String("products", "", "product CSV with columns "+strings.Join(productColumns, ","))
	countriesFlag := fs.String("countries", joinCountries(catalog.DefaultCountries), "comma-separated marketplace codes")
	freightMode := fs.String("freight", string(models.FreightSea), "first-leg freight mode: sea, rail or air")
	freightRate := fs.Float64("freight-rate", -1, "freight CNY per kg, overrides the mode default")
	price := fs.Float64("price", catalog.DefaultPrice, "sale price applied to every SKU and market")
	out := fs.String("out", "", "output file (default stdout)")
	fs.Var(rates, "rate", "currency rate to CNY as CUR=value, repeatable")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *productsPath == "" {
		return errors.New("-products is required")
	}
	if *price < 0 {
		return errors.New("-price must be greater than or equal to 0")
	}

	countries, err := parseCountries(catalog, *countriesFlag)
	if err != nil {
		return err
	}

	ratePerKG, ok := catalog.FreightRate(models.FreightMode(*freightMode))
	if !ok {
		return fmt.Errorf("unknown freight mode %q", *freightMode)
	}
	if *freightRate >= 0 {
		ratePerKG = *freightRate
	}

	currencyRates := catalog.DefaultRates.Clone()
	for code, r := range rates {
		currencyRates[code] = r
	}

	f, err := os.Open(*productsPath)
	if err != nil {
		return fmt.Errorf("open products: %w", err)
	}
	defer f.Close()
	products, err := readProducts(f)
	if err != nil {
		return err
	}

	engine := profit.NewEngine(catalog, fees.NewFulfillmentCalculator(catalog.LowPriceThresholds()))
	m := engine.BuildMatrix(profit.Input{
		Products:    products,
		Countries:   countries,
		Prices:      flatPrice(*price),
		Rates:       currencyRates,
		FreightRate: ratePerKG,
	})
	if m.Empty() {
		log.Info(profit.NoResultsMessage)
	}
	for _, sku := range m.Skipped {
		log.WithField("sku", sku).Warn("skipped: missing weight or dimensions")
	}

	w := stdout
	if *out != "" {
		file, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer file.Close()
		w = file
	}
	if err := export.WriteCSV(w, m.Rows); err != nil {
		return err
	}
	log.WithField("rows", len(m.Rows)).Debug("export written")
	return nil
}

func joinCountries(cs []models.Country) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = string(c)
	}
	return strings.Join(parts, ",")
}

func parseCountries(catalog *config.Catalog, s string) ([]models.Country, error) {
	var out []models.Country
	seen := map[models.Country]bool{}
	for _, raw := range strings.Split(s, ",") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		c := models.ParseCountry(raw)
		if !catalog.Has(c) {
			return nil, fmt.Errorf("unsupported country %q", raw)
		}
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return nil, errors.New(profit.NoCountriesMessage)
	}
	return out, nil
}

// readProducts parses a product CSV. Columns are matched by header name;
// malformed numbers become 0 and rows without a SKU are ignored.
func readProducts(r io.Reader) ([]models.Product, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read products header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	if _, ok := index["sku"]; !ok {
		return nil, errors.New("products CSV has no sku column")
	}

	var products []models.Product
	seen := map[string]bool{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read products: %w", err)
		}
		field := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(rec) {
				return ""
			}
			return rec[i]
		}
		num := func(name string) float64 {
			if v := utils.ParseFloatOrZero(field(name)); v > 0 {
				return v
			}
			return 0
		}

		sku := strings.TrimSpace(field("sku"))
		if sku == "" {
			continue
		}
		if seen[sku] {
			return nil, fmt.Errorf("duplicate sku %q", sku)
		}
		seen[sku] = true
		products = append(products, models.Product{
			SKU:         sku,
			Cost:        num("cost"),
			WeightGrams: num("weight_g"),
			LengthCM:    num("length"),
			WidthCM:     num("width"),
			HeightCM:    num("height"),
		})
	}
	return products, nil
}
