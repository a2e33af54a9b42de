package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/ArowuTest/fakelotto-backend/internal/config"
	"github.com/ArowuTest/fakelotto-backend/internal/models"
	"github.com/ArowuTest/fakelotto-backend/internal/prize"
	"github.com/ArowuTest/fakelotto-backend/internal/ticket"
	"github.com/ArowuTest/fakelotto-backend/internal/utils"
	"golang.org/x/exp/slog"
)

// ErrNoUsableLines is returned when a payload decodes to zero lines
var ErrNoUsableLines = errors.New("ticket has no usable lines")

// Compile-time check to ensure TicketServiceImpl implements TicketService
var _ TicketService = (*TicketServiceImpl)(nil)

// SeedSource returns the seed for one synthesis
type SeedSource func() int64

// TicketServiceImpl handles decoding and draw synthesis. It holds no mutable
// state; every synthesis gets its own generator.
type TicketServiceImpl struct {
	drawCfg  config.DrawConfig
	baseDate time.Time
	seeds    SeedSource
}

// NewTicketService creates a new TicketServiceImpl. A non-zero Draw.Seed makes
// every synthesis reproducible; otherwise each one is seeded from the clock.
func NewTicketService(cfg *config.Config) (*TicketServiceImpl, error) {
	baseDate, err := cfg.Draw.BaseDrawDate()
	if err != nil {
		return nil, fmt.Errorf("invalid draw base date: %w", err)
	}

	seeds := func() int64 { return time.Now().UnixNano() }
	if seed := cfg.Draw.Seed; seed != 0 {
		seeds = func() int64 { return seed }
	}

	return &TicketServiceImpl{
		drawCfg:  cfg.Draw,
		baseDate: baseDate,
		seeds:    seeds,
	}, nil
}

// WithSeedSource replaces the seed source
func (s *TicketServiceImpl) WithSeedSource(seeds SeedSource) *TicketServiceImpl {
	cp := *s
	cp.seeds = seeds
	return &cp
}

// DecodeTicket parses raw, logging and absorbing decode failures
func (s *TicketServiceImpl) DecodeTicket(ctx context.Context, raw string) models.DecodedPayload {
	payload, err := ticket.DecodeLines(raw)
	if err != nil {
		slog.Warn("Ticket payload could not be decoded", "error", err)
		return payload
	}
	slog.Debug("Ticket payload decoded", "round", payload.Round, "lines", payload.LineCount())
	return payload
}

// SynthesizeDraw decodes req.Raw and fabricates a draw for it
func (s *TicketServiceImpl) SynthesizeDraw(ctx context.Context, req models.SynthesisRequest) (*models.DrawBundle, error) {
	payload := s.DecodeTicket(ctx, req.Raw)
	if !payload.HasLines() {
		return nil, ErrNoUsableLines
	}

	rng := rand.New(rand.NewSource(s.seeds()))
	result, err := prize.Synthesize(payload.Lines, req.LineIndex, req.Tier, rng)
	if err != nil {
		slog.Warn("Draw synthesis rejected", "error", err, "lineIndex", req.LineIndex, "tier", req.Tier, "lines", payload.LineCount())
		return nil, fmt.Errorf("failed to synthesize draw: %w", err)
	}

	total := utils.RandomTotalPrize(rng, s.drawCfg.MinTotalPrize, s.drawCfg.MaxTotalPrize)
	bundle := &models.DrawBundle{
		Round:             payload.Round,
		DrawDate:          utils.DrawDate(payload.Round, s.drawCfg.BaseRound, s.baseDate).Format(config.DrawDateLayout),
		TotalPrize:        total,
		TotalPrizeDisplay: utils.FormatAmount(total),
		Result:            result,
	}

	slog.Info("Draw synthesized", "round", bundle.Round, "tier", req.Tier, "lineIndex", req.LineIndex, "winning", result.WinningNumbers, "bonus", result.BonusNumber)
	return bundle, nil
}
