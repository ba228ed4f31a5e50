package core

import "time"

// PasswordHasher hashes and verifies account passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil when password matches hash
	Compare(hash, password string) error
}

// TokenClaims is what a verified access token says about its bearer
type TokenClaims struct {
	AccountID string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenIssuer issues and verifies access tokens
type TokenIssuer interface {
	Issue(accountID string) (token string, expiresAt time.Time, err error)
	Verify(token string) (*TokenClaims, error)
}
