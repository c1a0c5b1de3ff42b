//go:build unit
// +build unit

package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      int
		expectedError bool
	}{
		{name: "positive", input: "42", expected: 42},
		{name: "zero", input: "0", expected: 0},
		{name: "negative", input: "-7", expected: -7},
		{name: "empty", input: "", expectedError: true},
		{name: "non-numeric", input: "abc", expectedError: true},
		{name: "trailing garbage", input: "10x", expectedError: true},
		{name: "float", input: "1.5", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseInt(tt.input)

			if tt.expectedError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestParseInt64(t *testing.T) {
	v, err := ParseInt64("9223372036854775807")
	require.NoError(t, err)
	assert.Equal(t, int64(9223372036854775807), v)

	_, err = ParseInt64("not-a-number")
	require.Error(t, err)
}
