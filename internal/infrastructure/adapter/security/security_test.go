package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemasgo/gemasgo-ledger/internal/testutil/testclock"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(4)

	hash, err := hasher.Hash("s3cret!")

	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)
	assert.NoError(t, hasher.Compare(hash, "s3cret!"))
	assert.Error(t, hasher.Compare(hash, "wrong"))
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	assert.Equal(t, 10, NewBcryptHasher(0).cost)
	assert.Equal(t, 10, NewBcryptHasher(99).cost)
}

func TestJWTIssuer(t *testing.T) {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Round trip", func(t *testing.T) {
		// Arrange
		clock := testclock.New(start)
		issuer := NewJWTIssuer("secret", time.Hour, clock)

		// Act
		token, expiresAt, err := issuer.Issue("acc-1")
		require.NoError(t, err)
		claims, err := issuer.Verify(token)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, start.Add(time.Hour), expiresAt)
		assert.Equal(t, "acc-1", claims.AccountID)
		assert.True(t, claims.ExpiresAt.Equal(expiresAt))
	})

	t.Run("Expired token", func(t *testing.T) {
		clock := testclock.New(start)
		issuer := NewJWTIssuer("secret", time.Hour, clock)
		token, _, err := issuer.Issue("acc-1")
		require.NoError(t, err)

		clock.Advance(2 * time.Hour)
		_, err = issuer.Verify(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		clock := testclock.New(start)
		token, _, err := NewJWTIssuer("secret", time.Hour, clock).Issue("acc-1")
		require.NoError(t, err)

		_, err = NewJWTIssuer("other", time.Hour, clock).Verify(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Unsigned token", func(t *testing.T) {
		clock := testclock.New(start)
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Subject:   "acc-1",
			ExpiresAt: jwt.NewNumericDate(start.Add(time.Hour)),
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = NewJWTIssuer("secret", time.Hour, clock).Verify(unsigned)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
