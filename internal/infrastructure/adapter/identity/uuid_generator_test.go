package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_NewID(t *testing.T) {
	generator := NewUUIDGenerator()
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		id := generator.NewID()
		parsed, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), parsed.Version())
		seen[id] = struct{}{}
	}

	assert.Len(t, seen, 100)
}
