package repository

import (
	"context"

	"github.com/recibos/ticketero-api/internal/domain/entity"
)

// ReceiptLogRepository defines the interface for the generated-ticket audit trail.
type ReceiptLogRepository interface {
	Create(ctx context.Context, log *entity.ReceiptLog) error
}
