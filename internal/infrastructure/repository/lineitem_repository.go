package repository

import (
	"context"
	"errors"

	"github.com/recibos/ticketero-api/internal/domain/entity"
	domainRepo "github.com/recibos/ticketero-api/internal/domain/repository"
	"github.com/recibos/ticketero-api/internal/infrastructure/spreadsheet"
	"github.com/recibos/ticketero-api/pkg/utils"
	"go.uber.org/zap"
)

// Documented order-lines sheet layout, with fallback positions.
var lineItemFields = []spreadsheet.Field{
	{Name: "order_id", Header: "ID_ORDEN", Index: 0},
	{Name: "code", Header: "CODIGO", Index: 1},
	{Name: "description", Header: "DESCRIPCION", Index: 2},
	{Name: "quantity", Header: "CANTIDAD", Index: 3},
	{Name: "unit_price", Header: "PRECIO_UNIT", Index: 4},
	{Name: "line_total", Header: "TOTAL", Index: 5},
}

type lineItemRepository struct {
	source spreadsheet.Source
	sheet  string
	logger *zap.Logger
}

// NewLineItemRepository creates a line-item lookup backed by the order-lines sheet.
func NewLineItemRepository(source spreadsheet.Source, sheet string, logger *zap.Logger) domainRepo.LineItemRepository {
	return &lineItemRepository{source: source, sheet: sheet, logger: logger}
}

// FindAllByOrderID returns every row whose ID_ORDEN cell equals the order
// identifier, in sheet order. Numeric cells that fail to parse become 0; a
// missing sheet yields an empty slice.
func (r *lineItemRepository) FindAllByOrderID(ctx context.Context, orderID string) ([]entity.LineItem, error) {
	snap, err := r.source.Load(ctx, r.sheet)
	if errors.Is(err, spreadsheet.ErrSheetNotFound) {
		r.logger.Warn("order-lines sheet not found",
			zap.String("sheet", r.sheet),
			zap.String("order_id", orderID))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	binding := spreadsheet.Resolve(snap.Headers, lineItemFields)
	if binding.Positional() {
		r.logger.Warn("order-lines sheet headers not recognized, using positional columns",
			zap.String("sheet", r.sheet),
			zap.Strings("headers", snap.Headers))
	}

	var items []entity.LineItem
	for _, row := range snap.Rows {
		if binding.Value(row, "order_id") != orderID {
			continue
		}
		items = append(items, entity.LineItem{
			Code:        binding.Value(row, "code"),
			Description: binding.Value(row, "description"),
			Quantity:    utils.ParseNumberOrZero(binding.Value(row, "quantity")),
			UnitPrice:   utils.ParseNumberOrZero(binding.Value(row, "unit_price")),
			LineTotal:   utils.ParseNumberOrZero(binding.Value(row, "line_total")),
		})
	}

	return items, nil
}
