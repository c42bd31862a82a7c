package service

import "github.com/recibos/ticketero-api/internal/domain/entity"

// TaxCalculator backs the tax portion out of tax-inclusive line totals.
type TaxCalculator struct {
	rate float64
}

// NewTaxCalculator creates a calculator for the given tax rate (e.g. 0.18 for IGV).
func NewTaxCalculator(rate float64) *TaxCalculator {
	return &TaxCalculator{rate: rate}
}

// Calculate sums the line totals and splits out the tax portion:
// Subtotal = Total / (1 + rate), Tax = Total - Subtotal. No rounding is
// applied here; formatting is a rendering concern. An empty input yields
// all-zero totals.
func (c *TaxCalculator) Calculate(items []entity.LineItem) entity.Totals {
	var total float64
	for _, item := range items {
		total += item.LineTotal
	}

	subtotal := total / (1 + c.rate)
	return entity.Totals{
		Subtotal: subtotal,
		Tax:      total - subtotal,
		Total:    total,
	}
}
