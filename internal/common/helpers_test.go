package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0.000000000", FormatAmount(0, 9))
	assert.Equal(t, "0.000000001", FormatAmount(1, 9))
	assert.Equal(t, "1.000000000", FormatAmount(1_000_000_000, 9))
	assert.Equal(t, "0.024981836", FormatAmount(24981836, 9))
	assert.Equal(t, "12.345678901", FormatAmount(12_345_678_901, 9))
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want uint64
	}{
		{"0", 0},
		{"1", 1_000_000_000},
		{"0.01", 10_000_000},
		{"0.000000001", 1},
		{"12.345678901", 12_345_678_901},
		{"12.3456789012345", 12_345_678_901}, // extra digits truncated
		{".5", 500_000_000},
		{" 2 ", 2_000_000_000},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in, 9)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseAmountErrors(t *testing.T) {
	for _, in := range []string{"", "abc", "1.2.3", "-1", "99999999999999999999999999"} {
		_, err := ParseAmount(in, 9)
		assert.Error(t, err, "input %q", in)
	}
}

func TestSOLRoundTrip(t *testing.T) {
	lamports, err := SOLToLamports("0.5")
	require.NoError(t, err)
	assert.Equal(t, uint64(500_000_000), lamports)
	assert.Equal(t, "0.500000000", LamportsToSOL(lamports))
}
