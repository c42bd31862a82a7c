package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/recibos/ticketero-api/internal/application/service"
	"github.com/recibos/ticketero-api/internal/presentation/http/dto/request"
	"github.com/recibos/ticketero-api/internal/presentation/http/dto/response"
	"github.com/recibos/ticketero-api/pkg/apperror"
)

// TicketHandler handles ticket generation HTTP requests
type TicketHandler struct {
	ticketService *service.TicketService
}

// NewTicketHandler creates a new ticket handler
func NewTicketHandler(ticketService *service.TicketService) *TicketHandler {
	return &TicketHandler{ticketService: ticketService}
}

// Generate handles the order callback: binds the JSON body, runs the
// generation flow, and answers with the stored file name and URL.
func (h *TicketHandler) Generate(c *gin.Context) {
	var req request.GenerateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A body that parsed but is missing id_orden is a validation
		// failure; anything else is a malformed request.
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			response.Error(c, apperror.NewValidationError("id_orden is required"))
			return
		}
		response.Error(c, apperror.ErrRequestFormat)
		return
	}

	result, err := h.ticketService.GenerateTicket(c.Request.Context(), req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Ticket generated successfully", result.FileName, result.FileURL)
}
