package utils

import "github.com/ArowuTest/fakelotto-backend/internal/models"

// BuildResultView lays out a draw for the result page. Balls are highlighted
// when they are winning or bonus numbers.
func BuildResultView(round int, drawDate, totalPrize string, winning []int, bonus int, lines []models.LineResult) models.ResultView {
	hit := make(map[int]bool, len(winning)+1)
	for _, n := range winning {
		hit[n] = true
	}
	hit[bonus] = true

	view := models.ResultView{
		Round:             round,
		DrawDate:          drawDate,
		TotalPrizeDisplay: totalPrize,
		Winning:           make([]models.BallView, len(winning)),
		Bonus:             models.BallView{Number: bonus, Color: BallColor(bonus), Highlighted: true},
		Lines:             make([]models.LineView, len(lines)),
	}
	for i, n := range winning {
		view.Winning[i] = models.BallView{Number: n, Color: BallColor(n), Highlighted: true}
	}
	for i, line := range lines {
		balls := make([]models.BallView, len(line.Numbers))
		for j, n := range line.Numbers {
			balls[j] = models.BallView{Number: n, Color: BallColor(n), Highlighted: hit[n]}
		}
		view.Lines[i] = models.LineView{Slot: LineSlot(i), Prize: line.Prize, Balls: balls}
	}
	return view
}
