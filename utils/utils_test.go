package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseInt(t *testing.T) {
	require := require.New(t)

	v, err := ParseInt64("-1")
	require.NoError(err)
	require.Equal(int64(-1), v)

	v, err = ParseInt64("9223372036854775807")
	require.NoError(err)
	require.Equal(int64(9223372036854775807), v)

	for _, bad := range []string{"", " 1", "1 ", "1x", "0x10", "9223372036854775808", "1.5"} {
		_, err = ParseInt64(bad)
		require.Error(err, bad)
	}

	i, err := ParseInt32("2147483647")
	require.NoError(err)
	require.Equal(int32(2147483647), i)

	_, err = ParseInt32("2147483648")
	require.Error(err)
}

func TestCoinConversion(t *testing.T) {
	require := require.New(t)

	require.Equal(int64(20_000_000_000), CoinsToDuffs(200))
	require.Equal(int64(5_000_000_000_000), CoinsToDuffs(50000))
	require.Equal("200.00000000", FormatDuffs(CoinsToDuffs(200)))
	require.Equal("0.00000001", FormatDuffs(1))
	require.Panics(func() { CoinsToDuffs(-1) })
}

func TestReverseBytesCopy(t *testing.T) {
	require := require.New(t)

	in := []byte{1, 2, 3}
	out := ReverseBytesCopy(in)
	require.Equal([]byte{3, 2, 1}, out)
	require.Equal([]byte{1, 2, 3}, in)
	require.Equal([4]byte{0x75, 0x6e, 0x66, 0x79}, ConvertToFixedLength4([]byte{0x75, 0x6e, 0x66, 0x79}))
	require.Panics(func() { ConvertToFixedLength4([]byte{1}) })
}
