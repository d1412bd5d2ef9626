package utils

import (
	"errors"

	"github.com/setavenger/chainparams/logging"
	"github.com/shopspring/decimal"
)

// Coin is the number of base units (duffs) in one coin.
const Coin int64 = 100_000_000

var CoinConstant = decimal.NewFromInt(Coin)

// CoinsToDuffs converts a whole coin amount into duffs.
// panics if the result would be negative
func CoinsToDuffs(coins int64) int64 {
	result := decimal.NewFromInt(coins).Mul(CoinConstant)
	if result.IsNegative() {
		err := errors.New("value was converted to negative value")
		logging.L.Panic().
			Err(err).Int64("coins", coins).
			Msg("value was converted to negative value")
	}
	return result.IntPart()
}

// FormatDuffs renders a duff amount as a coin value with eight decimals.
func FormatDuffs(duffs int64) string {
	return decimal.NewFromInt(duffs).Div(CoinConstant).StringFixed(8)
}
