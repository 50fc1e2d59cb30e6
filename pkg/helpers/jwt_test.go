package helpers

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	m, err := NewJWTManager("secret", 30*time.Minute)
	require.NoError(t, err)

	tok, exp, err := m.GenerateAccessToken("a@x.com")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), exp, 2*time.Second)

	claims, err := m.ParseAccessToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Subject)
	assert.Equal(t, exp.Unix(), claims.ExpiresAt.Unix())
}

func TestJWTRejectsEmptySecret(t *testing.T) {
	_, err := NewJWTManager("", time.Minute)
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestJWTExpired(t *testing.T) {
	m, err := NewJWTManager("secret", time.Minute)
	require.NoError(t, err)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	tok, _, err := m.GenerateAccessToken("a@x.com")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.ParseAccessToken(tok)
	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestJWTWrongSecretOrGarbage(t *testing.T) {
	a, _ := NewJWTManager("one", time.Minute)
	b, _ := NewJWTManager("two", time.Minute)
	tok, _, err := a.GenerateAccessToken("a@x.com")
	require.NoError(t, err)

	_, err = b.ParseAccessToken(tok)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	_, err = a.ParseAccessToken("not-a-token")
	assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
}

func TestJWTRejectsOtherAlgorithms(t *testing.T) {
	m, _ := NewJWTManager("secret", time.Minute)
	claims := jwt.RegisteredClaims{Subject: "a@x.com", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute))}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = m.ParseAccessToken(tok)
	assert.Error(t, err)
}
