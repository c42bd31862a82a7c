package entity

import "strings"

// LineItem represents a single product row belonging to an order.
// Numeric fields default to 0 when the source cell is blank or non-numeric.
type LineItem struct {
	Code        string  `json:"codigo"`
	Description string  `json:"descripcion"`
	Quantity    float64 `json:"cantidad"`
	UnitPrice   float64 `json:"precio_unit"`
	LineTotal   float64 `json:"total"`
}

// Totals holds the tax breakdown for a ticket. Line totals are tax-inclusive,
// so the subtotal is backed out by dividing by (1 + rate); Totals are derived
// per request and never stored.
type Totals struct {
	Subtotal float64 `json:"sub_total"`
	Tax      float64 `json:"igv"`
	Total    float64 `json:"total"`
}

// TicketRequest is the flat parameter bag carried by the inbound callback.
type TicketRequest struct {
	OrderID      string `json:"id_orden"`
	Date         string `json:"fecha"`
	Time         string `json:"hora"`
	Address      string `json:"direccion"`
	Note         string `json:"observacion"`
	Employee     string `json:"empleado"`
	MovementType string `json:"tipo_movimiento"`
	Payment      string `json:"pago"`
}

// Ticket is a value object representing a renderable receipt.
// It is composed per request from the request parameters, the customer sheet,
// the order-lines sheet, and the computed totals.
type Ticket struct {
	OrderID      string         `json:"id_orden"`
	Date         string         `json:"fecha"`
	Time         string         `json:"hora"`
	Address      string         `json:"direccion"`
	Note         string         `json:"observacion"`
	Employee     string         `json:"empleado"`
	MovementType string         `json:"tipo_movimiento"`
	Payment      string         `json:"pago"`
	Customer     CustomerRecord `json:"cliente"`
	Items        []LineItem     `json:"items"`
	Totals       Totals         `json:"totales"`
}

// FileName derives the ticket file name: TICKET_<order>_<date>.pdf, with
// slashes in the date replaced by hyphens so the name is path-safe.
func (t *Ticket) FileName() string {
	date := strings.ReplaceAll(t.Date, "/", "-")
	return "TICKET_" + t.OrderID + "_" + date + ".pdf"
}
