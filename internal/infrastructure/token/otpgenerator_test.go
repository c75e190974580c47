package token

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTPGenerator_Generate(t *testing.T) {
	g := NewOTPGenerator()
	digits := regexp.MustCompile(`^\d{6}$`)

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		code, err := g.Generate()
		require.NoError(t, err)
		assert.Regexp(t, digits, code)
		seen[code] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal("012345", "012345"))
	assert.False(t, Equal("012345", "012346"))
	assert.False(t, Equal("012345", "12345"))
}
