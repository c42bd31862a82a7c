package repository

import (
	"context"

	"github.com/recibos/ticketero-api/internal/domain/entity"
)

// CustomerRepository defines the interface for customer lookups.
type CustomerRepository interface {
	// FindByOrderID returns the first customer row matching the order
	// identifier. A missing row or missing sheet yields an empty record,
	// never an error.
	FindByOrderID(ctx context.Context, orderID string) (*entity.CustomerRecord, error)
}

// LineItemRepository defines the interface for order line-item lookups.
type LineItemRepository interface {
	// FindAllByOrderID returns every line row matching the order identifier,
	// preserving source row order. Zero matches yield an empty slice; the
	// caller decides whether that is an error.
	FindAllByOrderID(ctx context.Context, orderID string) ([]entity.LineItem, error)
}
