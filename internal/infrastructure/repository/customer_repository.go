package repository

import (
	"context"
	"errors"

	"github.com/recibos/ticketero-api/internal/domain/entity"
	domainRepo "github.com/recibos/ticketero-api/internal/domain/repository"
	"github.com/recibos/ticketero-api/internal/infrastructure/spreadsheet"
	"go.uber.org/zap"
)

// Documented customer sheet layout. Positions are the fallback when the
// header row has drifted from these names.
var customerFields = []spreadsheet.Field{
	{Name: "order_id", Header: "ID_ORDEN", Index: 0},
	{Name: "tax_id", Header: "RUC", Index: 1},
	{Name: "full_name", Header: "NOMBRE", Index: 2},
	{Name: "business_name", Header: "RAZON_SOCIAL", Index: 3},
	{Name: "contact", Header: "CONTACTO", Index: 4},
	{Name: "address", Header: "DIRECCION", Index: 5},
}

type customerRepository struct {
	source spreadsheet.Source
	sheet  string
	logger *zap.Logger
}

// NewCustomerRepository creates a customer lookup backed by the customer sheet.
func NewCustomerRepository(source spreadsheet.Source, sheet string, logger *zap.Logger) domainRepo.CustomerRepository {
	return &customerRepository{source: source, sheet: sheet, logger: logger}
}

// FindByOrderID scans the customer sheet top to bottom and returns the first
// row whose RUC cell equals the order identifier. One customer per tax ID,
// shared across orders; the match is against the RUC column, not ID_ORDEN.
// No match, or a missing sheet, yields an empty record.
func (r *customerRepository) FindByOrderID(ctx context.Context, orderID string) (*entity.CustomerRecord, error) {
	snap, err := r.source.Load(ctx, r.sheet)
	if errors.Is(err, spreadsheet.ErrSheetNotFound) {
		r.logger.Warn("customer sheet not found, returning empty customer",
			zap.String("sheet", r.sheet),
			zap.String("order_id", orderID))
		return &entity.CustomerRecord{}, nil
	}
	if err != nil {
		return nil, err
	}

	binding := spreadsheet.Resolve(snap.Headers, customerFields)
	if binding.Positional() {
		r.logger.Warn("customer sheet headers not recognized, using positional columns",
			zap.String("sheet", r.sheet),
			zap.Strings("headers", snap.Headers))
	}

	for _, row := range snap.Rows {
		if binding.Value(row, "tax_id") != orderID {
			continue
		}
		return &entity.CustomerRecord{
			OrderID:      binding.Value(row, "order_id"),
			TaxID:        binding.Value(row, "tax_id"),
			FullName:     binding.Value(row, "full_name"),
			BusinessName: binding.Value(row, "business_name"),
			Contact:      binding.Value(row, "contact"),
			Address:      binding.Value(row, "address"),
		}, nil
	}

	r.logger.Warn("no customer row matched order, returning empty customer",
		zap.String("sheet", r.sheet),
		zap.String("order_id", orderID))
	return &entity.CustomerRecord{}, nil
}
