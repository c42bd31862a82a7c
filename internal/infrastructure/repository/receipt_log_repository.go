package repository

import (
	"context"

	"github.com/recibos/ticketero-api/internal/domain/entity"
	domainRepo "github.com/recibos/ticketero-api/internal/domain/repository"
	"gorm.io/gorm"
)

type receiptLogRepository struct {
	db *gorm.DB
}

// NewReceiptLogRepository creates a new receipt log repository
func NewReceiptLogRepository(db *gorm.DB) domainRepo.ReceiptLogRepository {
	return &receiptLogRepository{db: db}
}

func (r *receiptLogRepository) Create(ctx context.Context, log *entity.ReceiptLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

type noopReceiptLogRepository struct{}

// NewNoopReceiptLogRepository creates a no-op audit repository for
// deployments without a database configured.
func NewNoopReceiptLogRepository() domainRepo.ReceiptLogRepository {
	return &noopReceiptLogRepository{}
}

func (r *noopReceiptLogRepository) Create(ctx context.Context, log *entity.ReceiptLog) error {
	return nil
}
