package interest

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUtilizationBps(t *testing.T) {
	assert.Equal(t, uint64(0), UtilizationBps(big.NewInt(0), big.NewInt(0)))
	assert.Equal(t, uint64(0), UtilizationBps(big.NewInt(100), nil))
	assert.Equal(t, uint64(5000), UtilizationBps(big.NewInt(50), big.NewInt(100)))
	assert.Equal(t, uint64(10000), UtilizationBps(big.NewInt(100), big.NewInt(100)))
	assert.Equal(t, uint64(10000), UtilizationBps(big.NewInt(150), big.NewInt(100)))
}

func TestBorrowRateBps(t *testing.T) {
	cases := map[string]struct {
		borrowed int64
		supplied int64
		rate     uint64
	}{
		"empty pool":  {0, 0, 0},
		"idle":        {0, 1000, 0},
		"half kink":   {4000, 10000, 200},
		"at kink":     {8000, 10000, 400},
		"above kink":  {9500, 10000, 4900},
		"fully drawn": {10000, 10000, 6400},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			rate := BorrowRateBps(big.NewInt(c.borrowed), big.NewInt(c.supplied))
			assert.Equal(t, c.rate, rate)
		})
	}
}

func TestSupplyRateBps(t *testing.T) {
	// supply rate = borrow rate x utilization
	assert.Equal(t, uint64(0), SupplyRateBps(big.NewInt(0), big.NewInt(1000)))
	assert.Equal(t, uint64(320), SupplyRateBps(big.NewInt(8000), big.NewInt(10000)))
	assert.Equal(t, uint64(6400), SupplyRateBps(big.NewInt(10000), big.NewInt(10000)))
}

func TestBorrowRateDeterministic(t *testing.T) {
	b, s := big.NewInt(7777), big.NewInt(9999)
	first := BorrowRateBps(b, s)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, BorrowRateBps(b, s))
	}
	assert.Equal(t, "7777", b.String())
	assert.Equal(t, "9999", s.String())
}
