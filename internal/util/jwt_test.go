package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestSessionTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour, time.Minute)

	token, claims, err := issuer.GenerateSessionToken("admin")
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)

	parsed, err := issuer.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", parsed.Subject)
	assert.Equal(t, claims.ID, parsed.ID)
}

func TestSessionTokenExpires(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Minute, time.Minute)
	token, _, err := issuer.GenerateSessionToken("admin")
	require.NoError(t, err)

	issuer.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	_, err = issuer.ValidateSessionToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestSessionTokenRejectsOtherSecret(t *testing.T) {
	token, _, err := NewTokenIssuer(testSecret, time.Hour, time.Minute).GenerateSessionToken("admin")
	require.NoError(t, err)

	other := NewTokenIssuer("ffffffffffffffffffffffffffffffff", time.Hour, time.Minute)
	_, err = other.ValidateSessionToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour, time.Hour)

	csrf, err := issuer.GenerateCSRFToken()
	require.NoError(t, err)
	session, _, err := issuer.GenerateSessionToken("admin")
	require.NoError(t, err)

	assert.True(t, issuer.VerifyCSRFToken(csrf))
	assert.False(t, issuer.VerifyCSRFToken(session))
	assert.False(t, issuer.VerifyCSRFToken(""))

	_, err = issuer.ValidateSessionToken(csrf)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
