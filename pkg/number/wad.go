package number

import (
	"math/big"
)

// All USD values and the health factor are fixed point integers scaled by 1e18
// ("wad"). Rates and LTV use basis points with 10000 = 100%. Raw token amounts
// keep each token's native decimals and are rescaled only at USD conversion.

const (
	// WadDecimals usd/health-factor scale
	WadDecimals = 18
	// MaxTokenDecimals highest native precision a token may declare
	MaxTokenDecimals = 18
	// BpsScale 10000 bps = 100%
	BpsScale = 10000
)

var (
	// Wad 1e18
	Wad = Pow10(WadDecimals)
	// MaxHealthFactor sentinel for accounts with no debt, 2^256 - 1
	MaxHealthFactor = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

	bpsScale = big.NewInt(BpsScale)
)

// Pow10 10^n
func Pow10(n int32) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// IsPositive reports whether a is non-nil and > 0
func IsPositive(a *big.Int) bool {
	return a != nil && a.Sign() > 0
}

// WadMul a * b / 1e18, truncated
func WadMul(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Div(r, Wad)
}

// WadDiv a * 1e18 / b, truncated
func WadDiv(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, Wad)
	return r.Div(r, b)
}

// ApplyBps a * bps / 10000, truncated
func ApplyBps(a *big.Int, bps uint64) *big.Int {
	r := new(big.Int).Mul(a, new(big.Int).SetUint64(bps))
	return r.Div(r, bpsScale)
}

// TokenToUSD converts a raw amount with the given native decimals to a usd wad
// using a 1e18-scaled price: amount * price / 10^decimals.
func TokenToUSD(amount, price *big.Int, decimals int32) *big.Int {
	r := new(big.Int).Mul(amount, price)
	return r.Div(r, Pow10(decimals))
}

// USDToToken converts a usd wad back to a raw amount with the given native
// decimals: usd * 10^decimals / price, truncated.
func USDToToken(usd, price *big.Int, decimals int32) *big.Int {
	r := new(big.Int).Mul(usd, Pow10(decimals))
	return r.Div(r, price)
}

// Min smaller of a and b
func Min(a, b *big.Int) *big.Int {
	if a.Cmp(b) <= 0 {
		return new(big.Int).Set(a)
	}
	return new(big.Int).Set(b)
}
