package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

const (
	PurposeSession       = "session"
	PurposePasswordReset = "password_reset"
)

type Claims struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"name,omitempty"`
	Purpose     string `json:"purpose"`
	// Generation is compared against the account's session generation; sign-out bumps it.
	Generation int64 `json:"gen"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey     []byte
	tokenDuration time.Duration
	resetDuration time.Duration
	now           func() time.Time
}

func NewService(secretKey string, tokenDuration, resetDuration time.Duration) *Service {
	return &Service{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
		resetDuration: resetDuration,
		now:           time.Now,
	}
}

func (s *Service) TokenDuration() time.Duration {
	return s.tokenDuration
}

func (s *Service) GenerateSessionToken(uid, email, displayName string, generation int64) (string, error) {
	return s.sign(Claims{
		UID:         uid,
		Email:       email,
		DisplayName: displayName,
		Purpose:     PurposeSession,
		Generation:  generation,
	}, s.tokenDuration)
}

func (s *Service) GenerateResetToken(uid, email string, generation int64) (string, error) {
	return s.sign(Claims{
		UID:        uid,
		Email:      email,
		Purpose:    PurposePasswordReset,
		Generation: generation,
	}, s.resetDuration)
}

func (s *Service) sign(claims Claims, ttl time.Duration) (string, error) {
	now := s.now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   claims.UID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// ValidateToken parses the token and checks it was issued for purpose.
func (s *Service) ValidateToken(tokenString, purpose string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Purpose != purpose || claims.UID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
