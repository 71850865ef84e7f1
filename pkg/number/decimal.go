package number

import (
	"errors"
	"math/big"

	"github.com/shopspring/decimal"
)

// Decimal helpers live at the interface boundary only: config, CLI flags and
// REST views speak decimal, everything inside the engine is raw big.Int.

func Decimal(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

// ToRaw scales a decimal token amount to the raw integer amount with the
// given native decimals. Fails when the value carries more precision than the
// token supports.
func ToRaw(d decimal.Decimal, decimals int32) (*big.Int, error) {
	shifted := d.Shift(decimals)
	if !shifted.Equal(shifted.Truncate(0)) {
		return nil, errors.New("amount exceeds token precision")
	}

	return shifted.BigInt(), nil
}

// FromRaw renders a raw integer amount as a decimal in token units.
func FromRaw(raw *big.Int, decimals int32) decimal.Decimal {
	return decimal.NewFromBigInt(raw, 0).Shift(-decimals)
}

// FromWad renders a usd wad (or any 1e18 scaled value) as a decimal.
func FromWad(wad *big.Int) decimal.Decimal {
	return decimal.NewFromBigInt(wad, 0).Shift(-WadDecimals)
}

// ToWad scales a decimal to 1e18 fixed point, truncating excess precision.
func ToWad(d decimal.Decimal) *big.Int {
	return d.Shift(WadDecimals).Truncate(0).BigInt()
}
