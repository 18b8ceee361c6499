package input

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	got, err := Parse("31415926")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 4, 1, 5, 9, 2, 6}, got)

	got, err = Parse("  12345678\n")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, got)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"short", "1234567"},
		{"long", "123456789"},
		{"letter", "1234a678"},
		{"sign", "-1234567"},
		{"inner space", "1234 678"},
		{"full width digit", "１2345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.input, verr.Input)
			assert.NotEmpty(t, verr.Reason)
		})
	}
}

func TestParseN(t *testing.T) {
	got, err := ParseN("321", 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1}, got)

	_, err = ParseN("321", 4)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRandomIsPermutation(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	for i := 0; i < 20; i++ {
		s := Random(r)
		values, err := Parse(s)
		require.NoError(t, err)

		sorted := slices.Clone(values)
		slices.Sort(sorted)
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, sorted)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "31415926", Format([]int{3, 1, 4, 1, 5, 9, 2, 6}))
	assert.Equal(t, "09", Format([]int{-3, 12}))
	assert.Equal(t, "", Format(nil))
}
