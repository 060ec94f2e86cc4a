package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_GeneratesVersion7(t *testing.T) {
	id := NewUUIDGenerator().Generate()

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestUUIDGenerator_Unique(t *testing.T) {
	g := NewUUIDGenerator()
	seen := make(map[string]struct{}, 100)
	for range 100 {
		id := g.Generate()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
