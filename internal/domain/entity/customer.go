package entity

// CustomerRecord holds the customer fields printed on a ticket.
// It is sourced from the customer sheet, not a database table; every field is
// optional and a missing source row yields the zero value rather than an error.
type CustomerRecord struct {
	OrderID      string `json:"id_orden,omitempty"`
	TaxID        string `json:"ruc,omitempty"`
	FullName     string `json:"nombre,omitempty"`
	BusinessName string `json:"razon_social,omitempty"`
	Contact      string `json:"contacto,omitempty"`
	Address      string `json:"direccion,omitempty"`
}

// IsEmpty reports whether no customer row was found for the order.
func (c *CustomerRecord) IsEmpty() bool {
	return *c == CustomerRecord{}
}

// DisplayName returns the business name when present, otherwise the personal name.
func (c *CustomerRecord) DisplayName() string {
	if c.BusinessName != "" {
		return c.BusinessName
	}
	return c.FullName
}
