package service

import (
	"math"
	"testing"

	"github.com/recibos/ticketero-api/internal/domain/entity"
)

const floatTolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < floatTolerance
}

func TestCalculate_BacksOutTaxFromInclusiveTotals(t *testing.T) {
	calc := NewTaxCalculator(0.18)

	items := []entity.LineItem{
		{LineTotal: 11.80},
		{LineTotal: 23.60},
	}

	totals := calc.Calculate(items)

	if !almostEqual(totals.Total, 35.40) {
		t.Fatalf("Total = %v, want 35.40", totals.Total)
	}
	if !almostEqual(totals.Subtotal, 30.00) {
		t.Fatalf("Subtotal = %v, want 30.00", totals.Subtotal)
	}
	if !almostEqual(totals.Tax, 5.40) {
		t.Fatalf("Tax = %v, want 5.40", totals.Tax)
	}
}

func TestCalculate_InvariantHoldsForArbitraryItems(t *testing.T) {
	calc := NewTaxCalculator(0.18)

	itemSets := [][]entity.LineItem{
		{{LineTotal: 0.01}},
		{{LineTotal: 100}, {LineTotal: 250.75}, {LineTotal: 3.33}},
		{{LineTotal: 999999.99}},
	}

	for _, items := range itemSets {
		totals := calc.Calculate(items)
		if !almostEqual(totals.Subtotal+totals.Tax, totals.Total) {
			t.Errorf("Subtotal(%v) + Tax(%v) != Total(%v)", totals.Subtotal, totals.Tax, totals.Total)
		}
		if !almostEqual(totals.Tax, totals.Total-totals.Total/1.18) {
			t.Errorf("Tax = %v, want %v", totals.Tax, totals.Total-totals.Total/1.18)
		}
	}
}

func TestCalculate_EmptyItemsYieldZeroTotals(t *testing.T) {
	calc := NewTaxCalculator(0.18)

	totals := calc.Calculate(nil)

	if totals.Subtotal != 0 || totals.Tax != 0 || totals.Total != 0 {
		t.Fatalf("expected all-zero totals, got %+v", totals)
	}
}
