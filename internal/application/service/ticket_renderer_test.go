package service

import (
	"bytes"
	"testing"

	"github.com/recibos/ticketero-api/internal/domain/entity"
)

func TestPDFRenderer_ProducesPDFPayload(t *testing.T) {
	renderer := NewPDFRenderer("Recibos Store")

	ticket := &entity.Ticket{
		OrderID: "1002",
		Date:    "12/08/2025",
		Time:    "14:30",
		Payment: "EFECTIVO",
		Customer: entity.CustomerRecord{
			TaxID:        "1002",
			BusinessName: "Comercial Andina SAC",
			Address:      "Av. Dos 123",
		},
		Items: []entity.LineItem{
			{Code: "P1", Description: "Cafe molido", Quantity: 2, UnitPrice: 5.90, LineTotal: 11.80},
			{Code: "P2", Description: "Azucar", Quantity: 4, UnitPrice: 5.90, LineTotal: 23.60},
		},
		Totals: entity.Totals{Subtotal: 30.00, Tax: 5.40, Total: 35.40},
	}

	payload, err := renderer.Render(ticket)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if !bytes.HasPrefix(payload, []byte("%PDF")) {
		t.Errorf("payload does not start with PDF magic: %q", payload[:min(8, len(payload))])
	}
}
