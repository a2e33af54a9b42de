// Package prize fabricates a draw in which a chosen ticket line wins a chosen
// prize tier, then scores every line of the ticket against that draw.
package prize

import (
	"fmt"

	"github.com/ArowuTest/fakelotto-backend/internal/models"
)

const winningCount = len(models.TicketLine{})

// Synthesize builds winning numbers and a bonus number around lines[chosen]
// so that the chosen line scores tier, and labels every line.
//
// The chosen line keeps its numbers for tier 1. For tiers 2 and 3 its sixth
// number is replaced by the bonus number or by a number that is neither
// winning nor bonus, respectively.
func Synthesize(lines []models.TicketLine, chosen int, tier models.PrizeTier, rng RandomSource) (models.SynthesisResult, error) {
	if chosen < 0 || chosen >= len(lines) {
		return models.SynthesisResult{}, fmt.Errorf("%w: index %d with %d lines", ErrLineIndexOutOfRange, chosen, len(lines))
	}
	if !tier.Valid() {
		return models.SynthesisResult{}, fmt.Errorf("%w: %d", ErrInvalidTier, tier)
	}

	target := lines[chosen]
	for _, n := range target {
		if n < MinNumber || n > MaxNumber {
			return models.SynthesisResult{}, fmt.Errorf("%w: %d on line %d", ErrNumberOutOfRange, n, chosen)
		}
	}

	winning, err := winningNumbers(target, rng)
	if err != nil {
		return models.SynthesisResult{}, err
	}
	inWinning := newNumberSet(winning...)

	displayed := target
	var bonus int
	switch tier {
	case models.PrizeTierFirst:
		if bonus, err = drawNumber(rng, inWinning); err != nil {
			return models.SynthesisResult{}, err
		}
	case models.PrizeTierSecond:
		if bonus, err = drawNumber(rng, inWinning.with(target[:]...)); err != nil {
			return models.SynthesisResult{}, err
		}
		displayed[winningCount-1] = bonus
	case models.PrizeTierThird:
		if bonus, err = drawNumber(rng, inWinning); err != nil {
			return models.SynthesisResult{}, err
		}
		wrong, err := drawNumber(rng, inWinning.with(bonus))
		if err != nil {
			return models.SynthesisResult{}, err
		}
		displayed[winningCount-1] = wrong
	}

	results := make([]models.LineResult, len(lines))
	for i, line := range lines {
		if i == chosen {
			line = displayed
		}
		results[i] = models.LineResult{
			Numbers: line,
			Prize:   Score(line, winning, bonus),
		}
	}
	if got := results[chosen].Prize; got != tier.Label() {
		return models.SynthesisResult{}, fmt.Errorf("%w: tier %d scored %s", ErrTierNotReached, tier, got)
	}

	return models.SynthesisResult{
		WinningNumbers: winning,
		BonusNumber:    bonus,
		Lines:          results,
	}, nil
}

// winningNumbers is the target as an ascending set. A target with repeated
// numbers is topped up with drawn numbers so that the set still has six members.
func winningNumbers(target models.TicketLine, rng RandomSource) ([]int, error) {
	set := newNumberSet(target[:]...)
	winning := set.sorted()
	for len(winning) < winningCount {
		n, err := drawNumber(rng, set)
		if err != nil {
			return nil, err
		}
		set = set.with(n)
		winning = append(winning, n)
	}
	return sortedCopy(winning), nil
}
