package identity

import (
	"github.com/google/uuid"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
)

// UUIDGenerator issues random (v4) UUIDs
type UUIDGenerator struct{}

var _ core.IDGenerator = UUIDGenerator{}

// NewUUIDGenerator creates the production id generator
func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

// NewID returns a new UUID string
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
