package request

import (
	"encoding/json"

	"github.com/recibos/ticketero-api/internal/domain/entity"
)

// FlexibleID is an order identifier that accepts either a JSON string or a
// JSON number, keeping the string form. Callers send whatever their sheet
// holds, so "1002" and 1002 must name the same order.
type FlexibleID string

func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexibleID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexibleID(n.String())
	return nil
}

// GenerateTicketRequest mirrors the callback JSON body. Only id_orden is
// required; the rest are pass-through fields printed on the ticket.
type GenerateTicketRequest struct {
	OrderID      FlexibleID `json:"id_orden" binding:"required"`
	Date         string     `json:"fecha"`
	Time         string     `json:"hora"`
	Address      string     `json:"direccion"`
	Note         string     `json:"observacion"`
	Employee     string     `json:"empleado"`
	MovementType string     `json:"tipo_movimiento"`
	Payment      string     `json:"pago"`
}

// ToEntity converts the DTO to the domain request.
func (r *GenerateTicketRequest) ToEntity() *entity.TicketRequest {
	return &entity.TicketRequest{
		OrderID:      string(r.OrderID),
		Date:         r.Date,
		Time:         r.Time,
		Address:      r.Address,
		Note:         r.Note,
		Employee:     r.Employee,
		MovementType: r.MovementType,
		Payment:      r.Payment,
	}
}
