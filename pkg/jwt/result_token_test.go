package jwt

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/ArowuTest/fakelotto-backend/internal/config"
	"github.com/ArowuTest/fakelotto-backend/internal/models"
	"github.com/shopspring/decimal"
)

func newTestService(secret string, now time.Time) *ResultTokenService {
	svc := NewResultTokenService(&config.Config{
		Share: config.ShareConfig{Secret: secret, ExpiresIn: 3600},
	})
	svc.now = func() time.Time { return now }
	return svc
}

func sampleBundle() *models.DrawBundle {
	return &models.DrawBundle{
		Round:             1100,
		DrawDate:          "2023-12-30",
		TotalPrize:        decimal.NewFromInt(1_500_000_000),
		TotalPrizeDisplay: "1,500,000,000",
		Result: models.SynthesisResult{
			WinningNumbers: []int{3, 11, 22, 33, 41, 45},
			BonusNumber:    7,
			Lines: []models.LineResult{
				{Numbers: models.TicketLine{3, 11, 22, 33, 41, 45}, Prize: models.PrizeFirst},
			},
		},
	}
}

func TestResultToken_RoundTrip(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService("secret", now)

	token, err := svc.Sign(sampleBundle())
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("expected a compact JWT, got %q", token)
	}

	got, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	want := sampleBundle()
	if got.Round != want.Round || got.DrawDate != want.DrawDate || !got.TotalPrize.Equal(want.TotalPrize) {
		t.Errorf("summary mismatch: %+v", got)
	}
	if !reflect.DeepEqual(got.Result, want.Result) {
		t.Errorf("result mismatch: want %+v, got %+v", want.Result, got.Result)
	}
}

func TestResultToken_Expired(t *testing.T) {
	issued := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	token, err := newTestService("secret", issued).Sign(sampleBundle())
	if err != nil {
		t.Fatal(err)
	}

	_, err = newTestService("secret", issued.Add(2*time.Hour)).Parse(token)
	if !errors.Is(err, ErrExpiredShareToken) {
		t.Fatalf("expected ErrExpiredShareToken, got %v", err)
	}
}

func TestResultToken_Invalid(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	token, err := newTestService("secret", now).Sign(sampleBundle())
	if err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name  string
		svc   *ResultTokenService
		token string
	}{
		{"wrong secret", newTestService("other", now), token},
		{"garbage", newTestService("secret", now), "not.a.token"},
		{"empty", newTestService("secret", now), ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.svc.Parse(tc.token); !errors.Is(err, ErrInvalidShareToken) {
				t.Errorf("expected ErrInvalidShareToken, got %v", err)
			}
		})
	}
}
