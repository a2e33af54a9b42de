package models

import (
	"github.com/shopspring/decimal"
)

// LineResult is a ticket line as displayed on the result page, with its prize
type LineResult struct {
	Numbers TicketLine `json:"numbers"`
	Prize   PrizeLabel `json:"prize"`
}

// SynthesisResult is a fabricated draw: winning numbers, bonus and per-line prizes.
// WinningNumbers always holds six distinct values sorted ascending and never
// contains BonusNumber.
type SynthesisResult struct {
	WinningNumbers []int        `json:"winning_numbers"`
	BonusNumber    int          `json:"bonus_number"`
	Lines          []LineResult `json:"lines"`
}

// SynthesisRequest describes what the operator asked for
type SynthesisRequest struct {
	Raw       string    `json:"raw" binding:"required"`
	LineIndex int       `json:"line_index"`
	Tier      PrizeTier `json:"tier" binding:"required"`
}

// DrawBundle is everything the result view needs for one submission
type DrawBundle struct {
	Round             int             `json:"round"`
	DrawDate          string          `json:"draw_date"` // YYYY-MM-DD
	TotalPrize        decimal.Decimal `json:"total_prize"`
	TotalPrizeDisplay string          `json:"total_prize_display"`
	Result            SynthesisResult `json:"result"`
}
