package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := GenerateOTP()
		require.NoError(t, err)

		assert.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err, "OTP must be numeric: %q", code)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 1000000)
	}
}

func TestGenerateOTP_ZeroPadded(t *testing.T) {
	// Draw until we see a code below 100000; it must still be six
	// characters long.
	for i := 0; i < 10000; i++ {
		code, err := GenerateOTP()
		require.NoError(t, err)
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		if n < 100000 {
			assert.Equal(t, byte('0'), code[0])
			return
		}
	}
	t.Skip("no low code drawn; padding not exercised this run")
}
