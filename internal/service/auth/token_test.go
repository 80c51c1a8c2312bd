package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDTokenGenerator(t *testing.T) {
	t.Parallel()

	gen := NewUUIDTokenGenerator()

	token := gen.Generate()
	_, err := uuid.Parse(token)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token := gen.Generate()
		assert.False(t, seen[token], "generated a duplicate token")
		seen[token] = true
	}
}
