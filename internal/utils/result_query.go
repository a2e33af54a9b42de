package utils

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/ArowuTest/fakelotto-backend/internal/models"
)

// Defaults the result view falls back to when a parameter is missing
const (
	DefaultQueryRound   = 654
	DefaultQueryWinning = "1,10,20,30,40,45"
	DefaultQueryBonus   = 45
)

// ResultQuery is a draw result as carried in result view query parameters
type ResultQuery struct {
	Round   int                 `json:"round"`
	Winning []int               `json:"winning"`
	Bonus   int                 `json:"bonus"`
	Lines   []models.LineResult `json:"lines"`
}

// EncodeResultQuery puts a result into round, winning, bonus and lines parameters
func EncodeResultQuery(round int, result models.SynthesisResult) (url.Values, error) {
	lines := result.Lines
	if lines == nil {
		lines = []models.LineResult{}
	}
	linesJSON, err := json.Marshal(lines)
	if err != nil {
		return nil, err
	}

	winning := make([]string, len(result.WinningNumbers))
	for i, n := range result.WinningNumbers {
		winning[i] = strconv.Itoa(n)
	}

	q := url.Values{}
	q.Set("round", strconv.Itoa(round))
	q.Set("winning", strings.Join(winning, ","))
	q.Set("bonus", strconv.Itoa(result.BonusNumber))
	q.Set("lines", string(linesJSON))
	return q, nil
}

// DecodeResultQuery reads result view parameters. Missing or unreadable
// parameters take the view defaults.
func DecodeResultQuery(q url.Values) ResultQuery {
	rq := ResultQuery{
		Round: intParam(q, "round", DefaultQueryRound),
		Bonus: intParam(q, "bonus", DefaultQueryBonus),
	}

	winning, ok := parseNumberList(q.Get("winning"))
	if !ok {
		winning, _ = parseNumberList(DefaultQueryWinning)
	}
	rq.Winning = winning

	rq.Lines = []models.LineResult{}
	if raw := q.Get("lines"); raw != "" {
		var lines []models.LineResult
		if err := json.Unmarshal([]byte(raw), &lines); err == nil && lines != nil {
			rq.Lines = lines
		}
	}
	return rq
}

func intParam(q url.Values, key string, def int) int {
	n, err := strconv.Atoi(q.Get(key))
	if err != nil {
		return def
	}
	return n
}

func parseNumberList(s string) ([]int, bool) {
	if s == "" {
		return nil, false
	}
	parts := strings.Split(s, ",")
	nums := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, false
		}
		nums = append(nums, n)
	}
	return nums, true
}
