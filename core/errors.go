package core

import "strconv"

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unknown
	ErrUnknown ErrorCode = 100000
	// ErrOperationForbidden operation forbidden
	ErrOperationForbidden ErrorCode = 100001
	// ErrInvalidAddress zero or malformed asset/user/feed reference
	ErrInvalidAddress ErrorCode = 100002

	// ErrTokenNotSupported token not registered
	ErrTokenNotSupported ErrorCode = 100100
	// ErrTokenNotActive token closed for deposit/borrow
	ErrTokenNotActive ErrorCode = 100101
	// ErrInvalidAmount zero or negative amount
	ErrInvalidAmount ErrorCode = 100102
	// ErrInsufficientBalance withdraw exceeds recorded deposit
	ErrInsufficientBalance ErrorCode = 100103
	// ErrInsufficientLiquidity borrow exceeds undrawn pool balance
	ErrInsufficientLiquidity ErrorCode = 100104
	// ErrInsufficientCollateral borrow would exceed weighted capacity
	ErrInsufficientCollateral ErrorCode = 100105
	// ErrWithdrawalBreaksHealthFactor withdraw would leave an indebted account below 1.0
	ErrWithdrawalBreaksHealthFactor ErrorCode = 100106
	// ErrNoDebtToRepay repay target owes nothing
	ErrNoDebtToRepay ErrorCode = 100107

	// ErrNoDebtToLiquidate borrower owes nothing in the debt token
	ErrNoDebtToLiquidate ErrorCode = 100200
	// ErrNoCollateralOfThisType borrower holds none of the collateral token
	ErrNoCollateralOfThisType ErrorCode = 100201
	// ErrHealthFactorHealthy position is solvent
	ErrHealthFactorHealthy ErrorCode = 100202
	// ErrCannotLiquidateSelf borrower and liquidator are the same user
	ErrCannotLiquidateSelf ErrorCode = 100203
	// ErrExceedsMaxLiquidationAmount repay above the close-factor cap
	ErrExceedsMaxLiquidationAmount ErrorCode = 100204
	// ErrInsufficientCollateralToSeize seizure exceeds borrower's collateral balance
	ErrInsufficientCollateralToSeize ErrorCode = 100205

	// ErrPriceFeedNotConfigured no feed registered for the token
	ErrPriceFeedNotConfigured ErrorCode = 100300
	// ErrInvalidPrice feed reported a non-positive price
	ErrInvalidPrice ErrorCode = 100301
	// ErrStalePrice feed has not updated within the price timeout
	ErrStalePrice ErrorCode = 100302
)

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	return e.String()
}
