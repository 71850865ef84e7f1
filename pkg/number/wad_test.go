package number

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenToUSD(t *testing.T) {
	price := ToWad(Decimal("1"))

	// 1000 units of a 6-decimal token at $1 and 1000 units of an 18-decimal
	// token at $1 must both come out as the same 18-decimal usd value.
	six := TokenToUSD(big.NewInt(1000_000000), price, 6)
	eighteen := TokenToUSD(ToWad(Decimal("1000")), price, 18)

	assert.Equal(t, ToWad(Decimal("1000")).String(), six.String())
	assert.Equal(t, six.String(), eighteen.String())
}

func TestUSDToTokenRoundTrip(t *testing.T) {
	price := ToWad(Decimal("1200"))

	usd := ToWad(Decimal("6300"))
	raw := USDToToken(usd, price, 18)
	assert.Equal(t, ToWad(Decimal("5.25")).String(), raw.String())

	back := TokenToUSD(raw, price, 18)
	assert.Equal(t, usd.String(), back.String())
}

func TestApplyBps(t *testing.T) {
	v := ToWad(Decimal("2000"))
	assert.Equal(t, ToWad(Decimal("1500")).String(), ApplyBps(v, 7500).String())
	assert.Equal(t, "0", ApplyBps(v, 0).String())
	assert.Equal(t, v.String(), ApplyBps(v, 10000).String())
}

func TestWadDivTruncates(t *testing.T) {
	hf := WadDiv(ToWad(Decimal("9000")), ToWad(Decimal("12000")))
	assert.Equal(t, ToWad(Decimal("0.75")).String(), hf.String())

	// 1/3 truncates, never rounds up
	third := WadDiv(big.NewInt(1), big.NewInt(3))
	assert.Equal(t, "333333333333333333", third.String())
}

func TestToRaw(t *testing.T) {
	raw, err := ToRaw(Decimal("1.5"), 6)
	assert.Nil(t, err)
	assert.Equal(t, "1500000", raw.String())

	_, err = ToRaw(Decimal("0.0000001"), 6)
	assert.NotNil(t, err)

	assert.Equal(t, "1.5", FromRaw(big.NewInt(1500000), 6).String())
}
