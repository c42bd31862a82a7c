package service

import (
	"context"
	"strings"

	"github.com/recibos/ticketero-api/internal/domain/entity"
	"github.com/recibos/ticketero-api/internal/domain/repository"
	"github.com/recibos/ticketero-api/internal/infrastructure/storage"
	"github.com/recibos/ticketero-api/pkg/apperror"
	"go.uber.org/zap"
)

// TicketService assembles tickets: it looks up the customer and line items
// for an order, computes totals, renders the PDF, and stores it.
type TicketService struct {
	customerRepo   repository.CustomerRepository
	lineItemRepo   repository.LineItemRepository
	receiptLogRepo repository.ReceiptLogRepository
	calculator     *TaxCalculator
	renderer       Renderer
	store          storage.BlobStore
	logger         *zap.Logger
}

// NewTicketService creates a new ticket service
func NewTicketService(
	customerRepo repository.CustomerRepository,
	lineItemRepo repository.LineItemRepository,
	receiptLogRepo repository.ReceiptLogRepository,
	calculator *TaxCalculator,
	renderer Renderer,
	store storage.BlobStore,
	logger *zap.Logger,
) *TicketService {
	return &TicketService{
		customerRepo:   customerRepo,
		lineItemRepo:   lineItemRepo,
		receiptLogRepo: receiptLogRepo,
		calculator:     calculator,
		renderer:       renderer,
		store:          store,
		logger:         logger,
	}
}

// GenerateTicketResult carries the stored file name and access URL back to
// the caller.
type GenerateTicketResult struct {
	FileName string `json:"fileName"`
	FileURL  string `json:"fileUrl"`
}

// GenerateTicket runs the full flow for one callback. The only business-rule
// failure is an order with zero line items; a missing customer degrades to an
// empty customer block. Rendering and storage failures propagate unmodified,
// with no retries.
func (s *TicketService) GenerateTicket(ctx context.Context, req *entity.TicketRequest) (*GenerateTicketResult, error) {
	if strings.TrimSpace(req.OrderID) == "" {
		return nil, apperror.NewValidationError("id_orden is required")
	}

	customer, err := s.customerRepo.FindByOrderID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	items, err := s.lineItemRepo.FindAllByOrderID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperror.NewNotFoundError("No line items found for order " + req.OrderID)
	}

	totals := s.calculator.Calculate(items)

	ticket := &entity.Ticket{
		OrderID:      req.OrderID,
		Date:         req.Date,
		Time:         req.Time,
		Address:      req.Address,
		Note:         req.Note,
		Employee:     req.Employee,
		MovementType: req.MovementType,
		Payment:      req.Payment,
		Customer:     *customer,
		Items:        items,
		Totals:       totals,
	}

	payload, err := s.renderer.Render(ticket)
	if err != nil {
		return nil, apperror.NewCollaboratorError(err)
	}

	stored, err := s.store.Put(ctx, ticket.FileName(), payload, "application/pdf")
	if err != nil {
		return nil, apperror.NewCollaboratorError(err)
	}

	s.recordReceipt(ctx, ticket, stored)

	s.logger.Info("ticket generated",
		zap.String("order_id", ticket.OrderID),
		zap.String("file_name", stored.Name),
		zap.Int("items", len(items)))

	return &GenerateTicketResult{
		FileName: stored.Name,
		FileURL:  stored.URL,
	}, nil
}

// recordReceipt writes the audit row. Audit is best-effort: a database
// failure must not fail a ticket that was already rendered and stored.
func (s *TicketService) recordReceipt(ctx context.Context, ticket *entity.Ticket, stored *storage.PutResult) {
	logRow := &entity.ReceiptLog{
		OrderID:  ticket.OrderID,
		FileName: stored.Name,
		FileURL:  stored.URL,
		Customer: ticket.Customer.DisplayName(),
		SubTotal: ticket.Totals.Subtotal,
		Tax:      ticket.Totals.Tax,
		Total:    ticket.Totals.Total,
	}
	if err := s.receiptLogRepo.Create(ctx, logRow); err != nil {
		s.logger.Warn("failed to record receipt log",
			zap.String("order_id", ticket.OrderID),
			zap.Error(err))
	}
}
