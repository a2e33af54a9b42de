package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

func TestDrawDate(t *testing.T) {
	base := time.Date(2023, 12, 30, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		round int
		want  string
	}{
		{1100, "2023-12-30"},
		{1101, "2024-01-06"},
		{1152, "2024-12-28"},
		{1099, "2023-12-23"},
	}
	for _, tc := range testCases {
		got := DrawDate(tc.round, 1100, base).Format("2006-01-02")
		if got != tc.want {
			t.Errorf("DrawDate(%d) = %s, want %s", tc.round, got, tc.want)
		}
	}
}

func TestDrawDate_ConsecutiveRounds(t *testing.T) {
	base := time.Date(2023, 12, 30, 0, 0, 0, 0, time.UTC)
	for round := 1090; round < 1110; round++ {
		gap := DrawDate(round+1, 1100, base).Sub(DrawDate(round, 1100, base))
		if gap != RoundIntervalDays*24*time.Hour {
			t.Errorf("rounds %d and %d are %s apart", round, round+1, gap)
		}
	}
}

func TestLineSlot(t *testing.T) {
	want := []string{"A", "B", "C", "D", "E", ""}
	for i, w := range want {
		if got := LineSlot(i); got != w {
			t.Errorf("LineSlot(%d) = %q, want %q", i, got, w)
		}
	}
	if got := LineSlot(-1); got != "" {
		t.Errorf("LineSlot(-1) = %q, want empty", got)
	}
}

func TestBallColor(t *testing.T) {
	testCases := map[int]string{
		1: "yellow", 10: "yellow",
		11: "blue", 20: "blue",
		21: "red", 30: "red",
		31: "gray", 40: "gray",
		41: "green", 45: "green",
		0: "gray", 99: "gray",
	}
	for n, want := range testCases {
		if got := BallColor(n); got != want {
			t.Errorf("BallColor(%d) = %s, want %s", n, got, want)
		}
	}
}

func TestRandomTotalPrize(t *testing.T) {
	testCases := []struct {
		src  float64
		want int64
	}{
		{0, 1_000_000_000},
		{0.5, 1_500_000_000},
		{0.9999999999, 1_999_999_999},
	}
	for _, tc := range testCases {
		got := RandomTotalPrize(fixedSource(tc.src), 1_000_000_000, 2_000_000_000)
		if !got.Equal(decimal.NewFromInt(tc.want)) {
			t.Errorf("RandomTotalPrize(%v) = %s, want %d", tc.src, got, tc.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(decimal.NewFromInt(1234567890)); got != "1,234,567,890" {
		t.Errorf("FormatAmount() = %s", got)
	}
}
