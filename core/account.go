package core

import (
	"math/big"

	"lever/pkg/number"
)

// AccountSnapshot aggregate risk position of one user, computed on demand and
// never stored. All values are usd wads except HealthFactor which is a 1e18
// fixed-point ratio; number.MaxHealthFactor stands in for infinity when the
// account has no debt.
type AccountSnapshot struct {
	UserID              string   `json:"user_id"`
	TotalCollateralUSD  *big.Int `json:"total_collateral_usd"`
	TotalDebtUSD        *big.Int `json:"total_debt_usd"`
	BorrowCapacityUSD   *big.Int `json:"borrow_capacity_usd"`
	AvailableBorrowsUSD *big.Int `json:"available_borrows_usd"`
	HealthFactor        *big.Int `json:"health_factor"`
}

// Solvent reports whether the account is above the liquidation boundary.
// Exactly 1.0 is safe; only below 1.0 is liquidatable.
func (s *AccountSnapshot) Solvent() bool {
	return s.HealthFactor.Cmp(number.Wad) >= 0
}

// NoDebt reports whether the account owes nothing in any token.
func (s *AccountSnapshot) NoDebt() bool {
	return s.TotalDebtUSD.Sign() == 0
}
