package jwtauth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerify(t *testing.T) {
	signer := NewSigner("test-secret", time.Hour)

	token, err := signer.Sign(42, 7)
	require.NoError(t, err)
	require.Len(t, strings.Split(token, "."), 3)

	claims, err := signer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, int64(7), claims.CompanyID)
	assert.Greater(t, claims.Exp, time.Now().Unix())
}

func TestVerify_WrongSecret(t *testing.T) {
	token, err := NewSigner("secret-a", time.Hour).Sign(1, 1)
	require.NoError(t, err)

	_, err = NewSigner("secret-b", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Expired(t *testing.T) {
	token, err := NewSigner("secret", -time.Minute).Sign(1, 1)
	require.NoError(t, err)

	_, err = NewSigner("secret", -time.Minute).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Garbage(t *testing.T) {
	signer := NewSigner("secret", time.Hour)

	for _, token := range []string{"", "abc", "a.b", "a.b.c.d", "!!.??.##"} {
		_, err := signer.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}

func TestVerify_TamperedPayload(t *testing.T) {
	signer := NewSigner("secret", time.Hour)

	token, err := signer.Sign(1, 1)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	parts[1] = parts[1] + "x"

	_, err = signer.Verify(strings.Join(parts, "."))
	assert.ErrorIs(t, err, ErrInvalidToken)
}
