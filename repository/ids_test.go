package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator(t *testing.T) {
	gen := UUIDGenerator{}
	assert.Equal(t, "uuid", gen.Type())

	id, err := gen.Generate()
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)
}

func TestULIDGenerator(t *testing.T) {
	gen := NewULIDGenerator()
	assert.Equal(t, "ulid", gen.Type())

	first, err := gen.Generate()
	require.NoError(t, err)
	second, err := gen.Generate()
	require.NoError(t, err)

	assert.Len(t, first, 26)
	// Monotonic entropy: successive ids sort after one another.
	assert.Less(t, first, second)
}
