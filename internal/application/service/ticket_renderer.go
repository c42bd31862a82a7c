package service

import (
	"fmt"

	"github.com/recibos/ticketero-api/internal/domain/entity"
	"github.com/recibos/ticketero-api/pkg/pdf"
)

// Renderer turns a ticket into a binary document payload.
type Renderer interface {
	Render(ticket *entity.Ticket) ([]byte, error)
}

// PDFRenderer renders the ticket layout with pkg/pdf.
type PDFRenderer struct {
	storeName string
}

// NewPDFRenderer creates a renderer that prints storeName in the header.
func NewPDFRenderer(storeName string) *PDFRenderer {
	return &PDFRenderer{storeName: storeName}
}

var (
	itemWidths = []float64{0.14, 0.40, 0.12, 0.17, 0.17}
	itemAligns = []string{"L", "L", "C", "R", "R"}
)

// Render lays out header, customer block, item table, and totals block.
func (r *PDFRenderer) Render(ticket *entity.Ticket) ([]byte, error) {
	doc := pdf.NewDocument()

	doc.Title(r.storeName)
	doc.Subtitle("TICKET " + ticket.OrderID)
	if ticket.Date != "" || ticket.Time != "" {
		doc.Subtitle(ticket.Date + " " + ticket.Time)
	}
	doc.Separator()

	if name := ticket.Customer.DisplayName(); name != "" {
		doc.KeyValue("Cliente", name)
	}
	if ticket.Customer.TaxID != "" {
		doc.KeyValue("RUC", ticket.Customer.TaxID)
	}
	if ticket.Customer.Address != "" {
		doc.KeyValue("Direccion", ticket.Customer.Address)
	} else if ticket.Address != "" {
		doc.KeyValue("Direccion", ticket.Address)
	}
	if ticket.Employee != "" {
		doc.KeyValue("Empleado", ticket.Employee)
	}
	if ticket.MovementType != "" {
		doc.KeyValue("Movimiento", ticket.MovementType)
	}
	if ticket.Payment != "" {
		doc.KeyValue("Pago", ticket.Payment)
	}
	doc.Separator()

	doc.TableHeader(itemWidths, []string{"Codigo", "Descripcion", "Cant.", "P. Unit", "Total"})
	for _, item := range ticket.Items {
		doc.TableRow(itemWidths, []string{
			item.Code,
			item.Description,
			formatQuantity(item.Quantity),
			formatAmount(item.UnitPrice),
			formatAmount(item.LineTotal),
		}, itemAligns)
	}

	doc.Space(2)
	doc.KeyValue("Sub Total", formatAmount(ticket.Totals.Subtotal))
	doc.KeyValue("IGV", formatAmount(ticket.Totals.Tax))
	doc.KeyValueBold("TOTAL", formatAmount(ticket.Totals.Total))

	if ticket.Note != "" {
		doc.Space(4)
		doc.Text("Obs: " + ticket.Note)
	}

	return doc.Bytes()
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func formatQuantity(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
