package handlers

import (
	"net/http"

	"github.com/ArowuTest/fakelotto-backend/internal/models"
	"github.com/ArowuTest/fakelotto-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// TicketHandler handles ticket-related HTTP requests
type TicketHandler struct {
	ticketService services.TicketService
}

// NewTicketHandler creates a new TicketHandler
func NewTicketHandler(ticketService services.TicketService) *TicketHandler {
	return &TicketHandler{
		ticketService: ticketService,
	}
}

// DecodeTicketRequest is the body of POST /tickets/decode
type DecodeTicketRequest struct {
	Raw string `json:"raw"`
}

// DecodeTicketResponse reports what the payload carried
type DecodeTicketResponse struct {
	Round     int                 `json:"round"`
	Lines     []models.TicketLine `json:"lines"`
	LineCount int                 `json:"line_count"`
}

// DecodeTicket handles POST /tickets/decode. Undecodable payloads are not an
// error: they report zero lines.
func (h *TicketHandler) DecodeTicket(c *gin.Context) {
	var request DecodeTicketRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payload := h.ticketService.DecodeTicket(c.Request.Context(), request.Raw)
	c.JSON(http.StatusOK, DecodeTicketResponse{
		Round:     payload.Round,
		Lines:     payload.Lines,
		LineCount: payload.LineCount(),
	})
}
