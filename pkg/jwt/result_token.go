package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/ArowuTest/fakelotto-backend/internal/config"
	"github.com/ArowuTest/fakelotto-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const resultTokenSubject = "draw-result"

var (
	ErrInvalidShareToken = errors.New("invalid share token")
	ErrExpiredShareToken = errors.New("share token expired")
)

// ResultClaims carries a draw bundle inside a signed token
type ResultClaims struct {
	Bundle models.DrawBundle `json:"bundle"`
	jwt.RegisteredClaims
}

// ResultTokenService signs draw bundles so the result page can be shared
// without storing anything server side
type ResultTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewResultTokenService creates a ResultTokenService from the share config
func NewResultTokenService(cfg *config.Config) *ResultTokenService {
	return &ResultTokenService{
		secret: []byte(cfg.Share.Secret),
		ttl:    cfg.Share.ShareTTL(),
		now:    time.Now,
	}
}

// Sign returns an HS256 token holding bundle
func (s *ResultTokenService) Sign(bundle *models.DrawBundle) (string, error) {
	now := s.now()
	claims := ResultClaims{
		Bundle: *bundle,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   resultTokenSubject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign share token: %w", err)
	}
	return signed, nil
}

// Parse verifies tokenString and returns the bundle it carries
func (s *ResultTokenService) Parse(tokenString string) (*models.DrawBundle, error) {
	claims := &ResultClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithSubject(resultTokenSubject),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredShareToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidShareToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidShareToken
	}
	return &claims.Bundle, nil
}
