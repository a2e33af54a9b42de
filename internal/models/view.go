package models

// BallView is one rendered number ball
type BallView struct {
	Number      int    `json:"number"`
	Color       string `json:"color"`
	Highlighted bool   `json:"highlighted"`
}

// LineView is one rendered ticket line. Slot is the A-E letter printed on the ticket.
type LineView struct {
	Slot  string     `json:"slot"`
	Prize PrizeLabel `json:"prize"`
	Balls []BallView `json:"balls"`
}

// ResultView is the data handed to the rendering collaborator
type ResultView struct {
	Round             int        `json:"round"`
	DrawDate          string     `json:"draw_date"`
	TotalPrizeDisplay string     `json:"total_prize_display,omitempty"`
	Winning           []BallView `json:"winning"`
	Bonus             BallView   `json:"bonus"`
	Lines             []LineView `json:"lines"`
}
