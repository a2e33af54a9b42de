package models

// PrizeTier is the rank an operator wants the chosen line to display
type PrizeTier int

const (
	PrizeTierFirst  PrizeTier = 1 // all six numbers match
	PrizeTierSecond PrizeTier = 2 // five numbers plus the bonus
	PrizeTierThird  PrizeTier = 3 // five numbers, no bonus
)

// Valid reports whether the tier is one the synthesizer can force
func (t PrizeTier) Valid() bool {
	return t >= PrizeTierFirst && t <= PrizeTierThird
}

// PrizeLabel is the prize a line receives when scored against a draw
type PrizeLabel string

const (
	PrizeFirst  PrizeLabel = "1st"
	PrizeSecond PrizeLabel = "2nd"
	PrizeThird  PrizeLabel = "3rd"
	PrizeFourth PrizeLabel = "4th"
	PrizeFifth  PrizeLabel = "5th"
	PrizeNone   PrizeLabel = "none"
)

// Label returns the label a forced tier is expected to produce
func (t PrizeTier) Label() PrizeLabel {
	switch t {
	case PrizeTierFirst:
		return PrizeFirst
	case PrizeTierSecond:
		return PrizeSecond
	case PrizeTierThird:
		return PrizeThird
	default:
		return PrizeNone
	}
}
