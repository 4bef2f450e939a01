package util

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

const (
	purposeSession = "session"
	purposeCSRF    = "csrf"
)

// Claims represents JWT claims
type Claims struct {
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies admin session tokens and form CSRF tokens
type TokenIssuer struct {
	secret     []byte
	sessionTTL time.Duration
	csrfTTL    time.Duration
	now        func() time.Time
}

// NewTokenIssuer creates a token issuer keyed with the application secret
func NewTokenIssuer(secret string, sessionTTL, csrfTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret:     []byte(secret),
		sessionTTL: sessionTTL,
		csrfTTL:    csrfTTL,
		now:        time.Now,
	}
}

// GenerateSessionToken generates a session token for an authenticated admin
func (t *TokenIssuer) GenerateSessionToken(username string) (string, *Claims, error) {
	return t.generate(purposeSession, username, t.sessionTTL)
}

// ValidateSessionToken validates a session token and returns its claims
func (t *TokenIssuer) ValidateSessionToken(tokenString string) (*Claims, error) {
	return t.validate(tokenString, purposeSession)
}

// GenerateCSRFToken generates a form token
func (t *TokenIssuer) GenerateCSRFToken() (string, error) {
	token, _, err := t.generate(purposeCSRF, "", t.csrfTTL)
	return token, err
}

// VerifyCSRFToken reports whether a form token is authentic and unexpired
func (t *TokenIssuer) VerifyCSRFToken(tokenString string) bool {
	if tokenString == "" {
		return false
	}
	_, err := t.validate(tokenString, purposeCSRF)
	return err == nil
}

func (t *TokenIssuer) generate(purpose, subject string, ttl time.Duration) (string, *Claims, error) {
	now := t.now()
	claims := &Claims{
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(t.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims, nil
}

func (t *TokenIssuer) validate(tokenString, purpose string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid || claims.Purpose != purpose {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
