package codes

import (
	"net/http"

	"lever/core"
)

var messages = map[core.ErrorCode]string{
	core.ErrUnknown:                       "unknown error",
	core.ErrOperationForbidden:            "operation forbidden",
	core.ErrInvalidAddress:                "invalid address",
	core.ErrTokenNotSupported:             "token not supported",
	core.ErrTokenNotActive:                "token not active",
	core.ErrInvalidAmount:                 "invalid amount",
	core.ErrInsufficientBalance:           "insufficient balance",
	core.ErrInsufficientLiquidity:         "insufficient liquidity",
	core.ErrInsufficientCollateral:        "insufficient collateral",
	core.ErrWithdrawalBreaksHealthFactor:  "withdrawal would break health factor",
	core.ErrNoDebtToRepay:                 "no debt to repay",
	core.ErrNoDebtToLiquidate:             "no debt to liquidate",
	core.ErrNoCollateralOfThisType:        "no collateral of this type",
	core.ErrHealthFactorHealthy:           "health factor is healthy",
	core.ErrCannotLiquidateSelf:           "cannot liquidate own position",
	core.ErrExceedsMaxLiquidationAmount:   "exceeds max liquidation amount",
	core.ErrInsufficientCollateralToSeize: "insufficient collateral to seize",
	core.ErrPriceFeedNotConfigured:        "price feed not configured",
	core.ErrInvalidPrice:                  "invalid price",
	core.ErrStalePrice:                    "stale price",
}

var statuses = map[core.ErrorCode]int{
	core.ErrUnknown:            http.StatusInternalServerError,
	core.ErrOperationForbidden: http.StatusForbidden,
	core.ErrInvalidAddress:     http.StatusBadRequest,
	core.ErrTokenNotSupported:  http.StatusNotFound,
	core.ErrInvalidAmount:      http.StatusBadRequest,
}

// Message human readable message for an engine error code
func Message(code core.ErrorCode) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return code.String()
}

// StatusCode http status for an engine error code; business rule rejections
// map to 400
func StatusCode(code core.ErrorCode) int {
	if status, ok := statuses[code]; ok {
		return status
	}
	return http.StatusBadRequest
}
