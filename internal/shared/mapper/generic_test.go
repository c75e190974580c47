package mapper

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSlice(t *testing.T) {
	got := MapSlice([]int{1, 2, 3}, strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, got)

	empty := MapSlice[int, string](nil, strconv.Itoa)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestTryMapSlice(t *testing.T) {
	tests := []struct {
		name        string
		input       []string
		want        []int
		errContains string
	}{
		{name: "nil input", input: nil, want: []int{}},
		{name: "all valid", input: []string{"1", "22"}, want: []int{1, 22}},
		{name: "second fails", input: []string{"1", "x"}, errContains: "item 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TryMapSlice(tt.input, strconv.Atoi)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				var numErr *strconv.NumError
				assert.True(t, errors.As(err, &numErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
