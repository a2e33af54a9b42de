package services

import (
	"context"

	"github.com/ArowuTest/fakelotto-backend/internal/models"
)

// TicketService defines the interface for ticket decoding and draw synthesis
type TicketService interface {
	// DecodeTicket parses a raw QR payload. Undecodable input yields zero lines.
	DecodeTicket(ctx context.Context, raw string) models.DecodedPayload

	// SynthesizeDraw fabricates a draw in which the requested line wins the requested tier
	SynthesizeDraw(ctx context.Context, req models.SynthesisRequest) (*models.DrawBundle, error)
}

// ShareService defines the interface for signed result hand-off
type ShareService interface {
	Sign(bundle *models.DrawBundle) (string, error)
	Parse(token string) (*models.DrawBundle, error)
}
