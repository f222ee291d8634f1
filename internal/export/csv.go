// Package export renders result matrices for display and download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"fbaprofit/internal/models"

	"github.com/shopspring/decimal"
)

// Filename is the suggested name of the CSV download.
const Filename = "profit_analysis.csv"

// utf8BOM lets spreadsheet applications detect the encoding.
const utf8BOM = "\ufeff"

var csvHeader = []string{"SKU", "Country", "Price", "Profit (CNY)", "Margin (%)", "FBA Fee", "FBA Tier"}

// Round rounds v half away from zero to two decimal places.
func Round(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

func fixed(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// RoundRow returns a copy of row with every money and percentage field
// rounded for display. The price is kept exact since it is user input.
func RoundRow(row models.ResultRow) models.ResultRow {
	row.ReferralFee = Round(row.ReferralFee)
	row.FulfillmentFee = Round(row.FulfillmentFee)
	row.FreightCost = Round(row.FreightCost)
	row.VAT = Round(row.VAT)
	row.Returns = Round(row.Returns)
	row.Revenue = Round(row.Revenue)
	row.PlatformCost = Round(row.PlatformCost)
	row.Profit = Round(row.Profit)
	row.Margin = Round(row.Margin)
	return row
}

// RoundRows applies RoundRow to every row.
func RoundRows(rows []models.ResultRow) []models.ResultRow {
	out := make([]models.ResultRow, len(rows))
	for i, r := range rows {
		out[i] = RoundRow(r)
	}
	return out
}

// WriteCSV writes rows as a UTF-8 CSV with a byte order mark.
func WriteCSV(w io.Writer, rows []models.ResultRow) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("write csv bom: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range rows {
		label := r.CountryLabel
		if label == "" {
			label = string(r.Country)
		}
		record := []string{
			r.SKU,
			label,
			fixed(r.Price),
			fixed(r.Profit),
			fixed(r.Margin),
			fixed(r.FulfillmentFee),
			r.FulfillmentTier,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv export: %w", err)
	}
	return nil
}
