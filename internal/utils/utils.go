package utils

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// RoundIntervalDays is the number of days between two consecutive draws
const RoundIntervalDays = 7

// Float64Source yields floats uniformly distributed in [0,1)
type Float64Source interface {
	Float64() float64
}

// DrawDate returns the date of round, counting weekly from baseRound held on baseDate
func DrawDate(round, baseRound int, baseDate time.Time) time.Time {
	return baseDate.AddDate(0, 0, (round-baseRound)*RoundIntervalDays)
}

// LineSlot returns the letter printed before the line at position idx
func LineSlot(idx int) string {
	const slots = "ABCDE"
	if idx < 0 || idx >= len(slots) {
		return ""
	}
	return slots[idx : idx+1]
}

// BallColor returns the colour band of a number ball
func BallColor(n int) string {
	switch {
	case n >= 1 && n <= 10:
		return "yellow"
	case n >= 11 && n <= 20:
		return "blue"
	case n >= 21 && n <= 30:
		return "red"
	case n >= 41 && n <= 45:
		return "green"
	default:
		return "gray"
	}
}

// RandomTotalPrize draws a whole amount uniformly from [min, max)
func RandomTotalPrize(rng Float64Source, min, max int64) decimal.Decimal {
	lo := decimal.NewFromInt(min)
	span := decimal.NewFromInt(max - min)
	return lo.Add(span.Mul(decimal.NewFromFloat(rng.Float64())).Floor())
}

// FormatAmount renders a whole amount with thousands separators
func FormatAmount(amount decimal.Decimal) string {
	return humanize.Comma(amount.IntPart())
}
