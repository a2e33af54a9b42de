package prize

import "github.com/ArowuTest/fakelotto-backend/internal/models"

// Score labels a line against a draw. Every position of the line that holds
// a winning number counts as a match.
func Score(line models.TicketLine, winning []int, bonus int) models.PrizeLabel {
	inWinning := newNumberSet(winning...)
	matches := 0
	hasBonus := false
	for _, n := range line {
		if inWinning.has(n) {
			matches++
		}
		if n == bonus {
			hasBonus = true
		}
	}
	return Label(matches, hasBonus)
}

// Label maps a match count and bonus hit to a prize.
func Label(matches int, hasBonus bool) models.PrizeLabel {
	switch {
	case matches == 6:
		return models.PrizeFirst
	case matches == 5 && hasBonus:
		return models.PrizeSecond
	case matches == 5:
		return models.PrizeThird
	case matches == 4:
		return models.PrizeFourth
	case matches == 3:
		return models.PrizeFifth
	default:
		return models.PrizeNone
	}
}
