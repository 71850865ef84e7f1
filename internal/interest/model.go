package interest

import (
	"math/big"

	"lever/pkg/number"
)

// Piecewise-linear jump rate model, all rates in basis points. Below the kink
// the borrow rate rises linearly from 0 to RateAtKinkBps; above it a much
// steeper slope takes over to disincentivize draining the pool. The model is
// pure so it can be evaluated repeatedly without state drift.
const (
	// KinkBps optimal utilization
	KinkBps uint64 = 8000
	// RateAtKinkBps borrow rate at the kink
	RateAtKinkBps uint64 = 400
	// JumpSlopeBps extra borrow rate per full utilization unit above the kink
	JumpSlopeBps uint64 = 30000
)

// UtilizationBps totalBorrowed / totalDeposited in bps, 0 for an empty pool,
// capped at 10000.
func UtilizationBps(totalBorrowed, totalDeposited *big.Int) uint64 {
	if totalDeposited == nil || totalDeposited.Sign() == 0 {
		return 0
	}

	u := new(big.Int).Mul(totalBorrowed, big.NewInt(number.BpsScale))
	u.Div(u, totalDeposited)
	if !u.IsUint64() || u.Uint64() > number.BpsScale {
		return number.BpsScale
	}

	return u.Uint64()
}

// BorrowRateBps borrow rate for the given pool totals
func BorrowRateBps(totalBorrowed, totalDeposited *big.Int) uint64 {
	u := UtilizationBps(totalBorrowed, totalDeposited)
	if u <= KinkBps {
		return u * RateAtKinkBps / KinkBps
	}

	return RateAtKinkBps + (u-KinkBps)*JumpSlopeBps/number.BpsScale
}

// SupplyRateBps derived, never stored: borrow rate scaled by utilization
func SupplyRateBps(totalBorrowed, totalDeposited *big.Int) uint64 {
	u := UtilizationBps(totalBorrowed, totalDeposited)
	return BorrowRateBps(totalBorrowed, totalDeposited) * u / number.BpsScale
}
