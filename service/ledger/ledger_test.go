package ledger

import (
	"context"
	"math/big"
	"testing"
	"time"

	"lever/core"
	"lever/pkg/number"
	"lever/service/oracle"
	"lever/service/reward"
	"lever/service/vault"
	"lever/store/event"
	"lever/store/pool"
	"lever/store/reserve"
	"lever/store/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	wethAssetID = "43d61dcd-e413-450d-80b8-101d5e903357"
	usdcAssetID = "9b180ab6-6abe-3dc0-a13f-04169eb34bfa"
	daiAssetID  = "c94ac88f-4671-3976-b60a-09064f1811e8"

	alice = "alice"
	bob   = "bob"
)

type testEnv struct {
	ctx      context.Context
	engine   *Service
	pools    core.IPoolStore
	reserves core.IReserveStore
	rewards  core.IRewardIssuer
	vault    core.ITransferService
	oracle   core.IPriceOracleService
	feeds    map[string]*oracle.ManualFeed
}

func newTestEnv(t *testing.T) *testEnv {
	e := &testEnv{
		ctx:      context.Background(),
		pools:    pool.New(),
		reserves: reserve.New(),
		rewards:  reward.New(),
		vault:    vault.New(),
		oracle:   oracle.New(time.Hour),
		feeds:    make(map[string]*oracle.ManualFeed),
	}
	e.engine = New(Config{}, token.New(), e.pools, e.reserves, event.New(), e.oracle, e.rewards, e.vault)
	return e
}

func (e *testEnv) addToken(t *testing.T, assetID, symbol string, ltv uint64, decimals int32, price string) {
	_, err := e.engine.AddToken(e.ctx, assetID, symbol, ltv, decimals)
	require.Nil(t, err)

	feed := oracle.NewManualFeed(number.ToWad(number.Decimal(price)), 18, time.Now())
	require.Nil(t, e.oracle.SetPriceFeed(e.ctx, assetID, feed))
	e.feeds[assetID] = feed
}

func (e *testEnv) setPrice(assetID, price string) {
	e.feeds[assetID].SetPrice(number.ToWad(number.Decimal(price)), time.Now())
}

func (e *testEnv) fund(t *testing.T, userID, assetID string, amount *big.Int) {
	require.Nil(t, e.vault.Push(e.ctx, userID, assetID, amount))
}

func (e *testEnv) assertPoolInvariants(t *testing.T) {
	pools, err := e.pools.All(e.ctx)
	require.Nil(t, err)
	for _, p := range pools {
		assert.True(t, p.TotalBorrowed.Cmp(p.TotalDeposited) <= 0, "pool %s overdrawn", p.AssetID)
		assert.True(t, p.TotalDeposited.Sign() >= 0)
		assert.True(t, p.TotalBorrowed.Sign() >= 0)
	}
}

func wad(s string) *big.Int {
	return number.ToWad(number.Decimal(s))
}

func raw(t *testing.T, s string, decimals int32) *big.Int {
	v, err := number.ToRaw(number.Decimal(s), decimals)
	require.Nil(t, err)
	return v
}

func TestDepositWithdrawRoundTrip(t *testing.T) {
	e := newTestEnv(t)
	e.addToken(t, wethAssetID, "WETH", 7500, 18, "2000")
	e.fund(t, alice, wethAssetID, wad("10"))

	require.Nil(t, e.engine.Deposit(e.ctx, alice, wethAssetID, wad("10")))

	deposited, err := e.engine.GetUserDeposit(e.ctx, alice, wethAssetID)
	require.Nil(t, err)
	assert.Equal(t, wad("10").String(), deposited.String())

	held, err := e.vault.Balance(e.ctx, alice, wethAssetID)
	require.Nil(t, err)
	assert.Equal(t, "0", held.String())

	minted, err := e.rewards.Balance(e.ctx, alice)
	require.Nil(t, err)
	assert.Equal(t, wad("20000").String(), minted.String())

	require.Nil(t, e.engine.Withdraw(e.ctx, alice, wethAssetID, wad("10")))

	deposited, err = e.engine.GetUserDeposit(e.ctx, alice, wethAssetID)
	require.Nil(t, err)
	assert.Equal(t, "0", deposited.String())

	held, err = e.vault.Balance(e.ctx, alice, wethAssetID)
	require.Nil(t, err)
	assert.Equal(t, wad("10").String(), held.String())

	minted, err = e.rewards.Balance(e.ctx, alice)
	require.Nil(t, err)
	assert.Equal(t, "0", minted.String())

	e.assertPoolInvariants(t)
}

func TestDepositValidation(t *testing.T) {
	e := newTestEnv(t)
	e.addToken(t, wethAssetID, "WETH", 7500, 18, "2000")
	e.fund(t, alice, wethAssetID, wad("1"))

	assert.Equal(t, core.ErrInvalidAmount, e.engine.Deposit(e.ctx, alice, wethAssetID, big.NewInt(0)))
	assert.Equal(t, core.ErrInvalidAmount, e.engine.Deposit(e.ctx, alice, wethAssetID, big.NewInt(-1)))
	assert.Equal(t, core.ErrTokenNotSupported, e.engine.Deposit(e.ctx, alice, daiAssetID, wad("1")))
	assert.Equal(t, core.ErrInsufficientBalance, e.engine.Deposit(e.ctx, alice, wethAssetID, wad("2")))

	require.Nil(t, e.engine.CloseToken(e.ctx, wethAssetID))
	assert.Equal(t, core.ErrTokenNotActive, e.engine.Deposit(e.ctx, alice, wethAssetID, wad("1")))
}

func TestWithdrawAlwaysOpenOnClosedToken(t *testing.T) {
	e := newTestEnv(t)
	e.addToken(t, wethAssetID, "WETH", 7500, 18, "2000")
	e.fund(t, alice, wethAssetID, wad("1"))

	require.Nil(t, e.engine.Deposit(e.ctx, alice, wethAssetID, wad("1")))
	require.Nil(t, e.engine.CloseToken(e.ctx, wethAssetID))
	require.Nil(t, e.engine.Withdraw(e.ctx, alice, wethAssetID, wad("1")))
}

func TestWithdrawHealthGate(t *testing.T) {
	e := newTestEnv(t)
	e.addToken(t, wethAssetID, "WETH", 7500, 18, "2000")
	e.addToken(t, daiAssetID, "DAI", 8000, 18, "1")
	e.fund(t, alice, wethAssetID, wad("10"))
	e.fund(t, bob, daiAssetID, wad("20000"))

	require.Nil(t, e.engine.Deposit(e.ctx, bob, daiAssetID, wad("20000")))
	require.Nil(t, e.engine.Deposit(e.ctx, alice, wethAssetID, wad("10")))
	require.Nil(t, e.engine.Borrow(e.ctx, alice, daiAssetID, wad("12000")))

	assert.Equal(t, core.ErrInsufficientBalance, e.engine.Withdraw(e.ctx, alice, wethAssetID, wad("11")))

	// withdrawing 4 WETH would leave capacity 9000 < debt 12000
	assert.Equal(t, core.ErrWithdrawalBreaksHealthFactor, e.engine.Withdraw(e.ctx, alice, wethAssetID, wad("4")))

	// state must be untouched by the failed withdrawal
	deposited, err := e.engine.GetUserDeposit(e.ctx, alice, wethAssetID)
	require.Nil(t, err)
	assert.Equal(t, wad("10").String(), deposited.String())

	// withdrawing 2 WETH leaves capacity exactly 12000 = debt, allowed
	require.Nil(t, e.engine.Withdraw(e.ctx, alice, wethAssetID, wad("2")))

	snap, err := e.engine.GetUserAccountData(e.ctx, alice)
	require.Nil(t, err)
	assert.Equal(t, number.Wad.String(), snap.HealthFactor.String())

	// bob has no debt, the health gate never runs for him
	require.Nil(t, e.engine.Withdraw(e.ctx, bob, daiAssetID, wad("8000")))

	e.assertPoolInvariants(t)
}

func TestBorrowCapacityBoundary(t *testing.T) {
	e := newTestEnv(t)
	e.addToken(t, wethAssetID, "WETH", 7500, 18, "2000")
	e.addToken(t, usdcAssetID, "USDC", 8000, 6, "1")
	e.addToken(t, daiAssetID, "DAI", 8000, 18, "1")

	e.fund(t, bob, daiAssetID, wad("5000"))
	require.Nil(t, e.engine.Deposit(e.ctx, bob, daiAssetID, wad("5000")))

	e.fund(t, alice, wethAssetID, wad("1"))
	e.fund(t, alice, usdcAssetID, raw(t, "1000", 6))
	require.Nil(t, e.engine.Deposit(e.ctx, alice, wethAssetID, wad("1")))
	require.Nil(t, e.engine.Deposit(e.ctx, alice, usdcAssetID, raw(t, "1000", 6)))

	snap, err := e.engine.GetUserAccountData(e.ctx, alice)
	require.Nil(t, err)
	assert.Equal(t, wad("3000").String(), snap.TotalCollateralUSD.String())
	assert.Equal(t, wad("2300").String(), snap.AvailableBorrowsUSD.String())

	assert.Equal(t, core.ErrInsufficientCollateral, e.engine.Borrow(e.ctx, alice, daiAssetID, wad("2301")))

	require.Nil(t, e.engine.Borrow(e.ctx, alice, daiAssetID, wad("2300")))

	snap, err = e.engine.GetUserAccountData(e.ctx, alice)
	require.Nil(t, err)
	assert.Equal(t, "0", snap.AvailableBorrowsUSD.String())
	assert.Equal(t, number.Wad.String(), snap.HealthFactor.String())

	// exactly at the boundary, any further borrow must fail
	assert.Equal(t, core.ErrInsufficientCollateral, e.engine.Borrow(e.ctx, alice, daiAssetID, big.NewInt(1)))

	e.assertPoolInvariants(t)
}

func TestBorrowLiquidityGate(t *testing.T) {
	e := newTestEnv(t)
	e.addToken(t, wethAssetID, "WETH", 7500, 18, "2000")
	e.addToken(t, daiAssetID, "DAI", 8000, 18, "1")

	e.fund(t, bob, daiAssetID, wad("100"))
	require.Nil(t, e.engine.Deposit(e.ctx, bob, daiAssetID, wad("100")))

	e.fund(t, alice, wethAssetID, wad("10"))
	require.Nil(t, e.engine.Deposit(e.ctx, alice, wethAssetID, wad("10")))

	// plenty of collateral, but the pool only holds 100 DAI
	assert.Equal(t, core.ErrInsufficientLiquidity, e.engine.Borrow(e.ctx, alice, daiAssetID, wad("101")))
	require.Nil(t, e.engine.Borrow(e.ctx, alice, daiAssetID, wad("100")))

	e.assertPoolInvariants(t)
}

func TestRepayCap(t *testing.T) {
	e := newTestEnv(t)
	e.addToken(t, wethAssetID, "WETH", 7500, 18, "2000")
	e.addToken(t, daiAssetID, "DAI", 8000, 18, "1")

	e.fund(t, bob, daiAssetID, wad("1000"))
	require.Nil(t, e.engine.Deposit(e.ctx, bob, daiAssetID, wad("1000")))

	e.fund(t, alice, wethAssetID, wad("1"))
	require.Nil(t, e.engine.Deposit(e.ctx, alice, wethAssetID, wad("1")))
	require.Nil(t, e.engine.Borrow(e.ctx, alice, daiAssetID, wad("100")))

	// alice now holds 100 borrowed DAI, top up so she could overpay
	e.fund(t, alice, daiAssetID, wad("50"))
	require.Nil(t, e.engine.Repay(e.ctx, alice, daiAssetID, wad("150")))

	borrowed, err := e.engine.GetUserBorrow(e.ctx, alice, daiAssetID)
	require.Nil(t, err)
	assert.Equal(t, "0", borrowed.String())

	// only the owed 100 was pulled, the extra 50 stays with alice
	held, err := e.vault.Balance(e.ctx, alice, daiAssetID)
	require.Nil(t, err)
	assert.Equal(t, wad("50").String(), held.String())

	assert.Equal(t, core.ErrNoDebtToRepay, e.engine.Repay(e.ctx, alice, daiAssetID, wad("1")))

	e.assertPoolInvariants(t)
}

func TestDecimalsNormalization(t *testing.T) {
	e := newTestEnv(t)
	e.addToken(t, usdcAssetID, "USDC", 8000, 6, "1")
	e.addToken(t, daiAssetID, "DAI", 8000, 18, "1")

	e.fund(t, alice, usdcAssetID, raw(t, "1000", 6))
	require.Nil(t, e.engine.Deposit(e.ctx, alice, usdcAssetID, raw(t, "1000", 6)))

	e.fund(t, bob, daiAssetID, wad("1000"))
	require.Nil(t, e.engine.Deposit(e.ctx, bob, daiAssetID, wad("1000")))

	aliceSnap, err := e.engine.GetUserAccountData(e.ctx, alice)
	require.Nil(t, err)
	bobSnap, err := e.engine.GetUserAccountData(e.ctx, bob)
	require.Nil(t, err)

	assert.Equal(t, wad("1000").String(), aliceSnap.TotalCollateralUSD.String())
	assert.Equal(t, aliceSnap.TotalCollateralUSD.String(), bobSnap.TotalCollateralUSD.String())
}

func TestHealthFactorSentinel(t *testing.T) {
	e := newTestEnv(t)
	e.addToken(t, wethAssetID, "WETH", 7500, 18, "2000")
	e.addToken(t, daiAssetID, "DAI", 8000, 18, "1")

	snap, err := e.engine.GetUserAccountData(e.ctx, alice)
	require.Nil(t, err)
	assert.Equal(t, number.MaxHealthFactor.String(), snap.HealthFactor.String())

	e.fund(t, bob, daiAssetID, wad("1000"))
	require.Nil(t, e.engine.Deposit(e.ctx, bob, daiAssetID, wad("1000")))

	e.fund(t, alice, wethAssetID, wad("1"))
	require.Nil(t, e.engine.Deposit(e.ctx, alice, wethAssetID, wad("1")))

	// collateral without debt still reads as infinite health
	snap, err = e.engine.GetUserAccountData(e.ctx, alice)
	require.Nil(t, err)
	assert.Equal(t, number.MaxHealthFactor.String(), snap.HealthFactor.String())

	require.Nil(t, e.engine.Borrow(e.ctx, alice, daiAssetID, wad("100")))
	snap, err = e.engine.GetUserAccountData(e.ctx, alice)
	require.Nil(t, err)
	assert.True(t, snap.HealthFactor.Cmp(number.MaxHealthFactor) < 0)

	require.Nil(t, e.engine.Repay(e.ctx, alice, daiAssetID, wad("100")))
	snap, err = e.engine.GetUserAccountData(e.ctx, alice)
	require.Nil(t, err)
	assert.Equal(t, number.MaxHealthFactor.String(), snap.HealthFactor.String())
}

func TestPriceMoveMonotonicity(t *testing.T) {
	e := newTestEnv(t)
	e.addToken(t, wethAssetID, "WETH", 7500, 18, "2000")
	e.addToken(t, daiAssetID, "DAI", 8000, 18, "1")

	e.fund(t, bob, daiAssetID, wad("2000"))
	require.Nil(t, e.engine.Deposit(e.ctx, bob, daiAssetID, wad("2000")))

	e.fund(t, alice, wethAssetID, wad("1"))
	require.Nil(t, e.engine.Deposit(e.ctx, alice, wethAssetID, wad("1")))
	require.Nil(t, e.engine.Borrow(e.ctx, alice, daiAssetID, wad("1000")))

	before, err := e.engine.GetUserAccountData(e.ctx, alice)
	require.Nil(t, err)

	e.setPrice(wethAssetID, "3000")

	after, err := e.engine.GetUserAccountData(e.ctx, alice)
	require.Nil(t, err)

	assert.True(t, after.TotalCollateralUSD.Cmp(before.TotalCollateralUSD) > 0)
	assert.True(t, after.AvailableBorrowsUSD.Cmp(before.AvailableBorrowsUSD) > 0)
	assert.True(t, after.HealthFactor.Cmp(before.HealthFactor) > 0)
}

func TestStalePriceAbortsWithoutSideEffects(t *testing.T) {
	e := newTestEnv(t)
	e.addToken(t, wethAssetID, "WETH", 7500, 18, "2000")
	e.fund(t, alice, wethAssetID, wad("1"))

	e.feeds[wethAssetID].SetPrice(wad("2000"), time.Now().Add(-2*time.Hour))

	assert.Equal(t, core.ErrStalePrice, e.engine.Deposit(e.ctx, alice, wethAssetID, wad("1")))

	held, err := e.vault.Balance(e.ctx, alice, wethAssetID)
	require.Nil(t, err)
	assert.Equal(t, wad("1").String(), held.String())

	deposited, err := e.engine.GetUserDeposit(e.ctx, alice, wethAssetID)
	require.Nil(t, err)
	assert.Equal(t, "0", deposited.String())
}

func TestRates(t *testing.T) {
	e := newTestEnv(t)
	e.addToken(t, daiAssetID, "DAI", 8000, 18, "1")
	e.addToken(t, wethAssetID, "WETH", 7500, 18, "2000")

	e.fund(t, bob, daiAssetID, wad("10000"))
	require.Nil(t, e.engine.Deposit(e.ctx, bob, daiAssetID, wad("10000")))

	e.fund(t, alice, wethAssetID, wad("10"))
	require.Nil(t, e.engine.Deposit(e.ctx, alice, wethAssetID, wad("10")))
	require.Nil(t, e.engine.Borrow(e.ctx, alice, daiAssetID, wad("8000")))

	borrowRate, err := e.engine.GetBorrowRate(e.ctx, daiAssetID)
	require.Nil(t, err)
	assert.Equal(t, uint64(400), borrowRate)

	supplyRate, err := e.engine.GetSupplyRate(e.ctx, daiAssetID)
	require.Nil(t, err)
	assert.Equal(t, uint64(320), supplyRate)

	_, err = e.engine.GetBorrowRate(e.ctx, usdcAssetID)
	assert.Equal(t, core.ErrTokenNotSupported, err)
}

func TestWithdrawLiquidityGate(t *testing.T) {
	e := newTestEnv(t)
	e.addToken(t, wethAssetID, "WETH", 7500, 18, "2000")
	e.addToken(t, daiAssetID, "DAI", 8000, 18, "1")

	e.fund(t, alice, daiAssetID, wad("100"))
	require.Nil(t, e.engine.Deposit(e.ctx, alice, daiAssetID, wad("100")))

	e.fund(t, bob, wethAssetID, wad("10"))
	require.Nil(t, e.engine.Deposit(e.ctx, bob, wethAssetID, wad("10")))
	require.Nil(t, e.engine.Borrow(e.ctx, bob, daiAssetID, wad("95")))

	// alice still has 100 DAI on deposit, but 95 of it is out on loan
	assert.Equal(t, core.ErrInsufficientLiquidity, e.engine.Withdraw(e.ctx, alice, daiAssetID, wad("100")))

	deposited, err := e.engine.GetUserDeposit(e.ctx, alice, daiAssetID)
	require.Nil(t, err)
	assert.Equal(t, wad("100").String(), deposited.String())
	e.assertPoolInvariants(t)

	require.Nil(t, e.engine.Withdraw(e.ctx, alice, daiAssetID, wad("5")))
	e.assertPoolInvariants(t)
}

func TestReadsLeaveNoReserve(t *testing.T) {
	e := newTestEnv(t)
	e.addToken(t, daiAssetID, "DAI", 8000, 18, "1")

	deposited, err := e.engine.GetUserDeposit(e.ctx, alice, daiAssetID)
	require.Nil(t, err)
	assert.Equal(t, 0, deposited.Sign())

	borrowed, err := e.engine.GetUserBorrow(e.ctx, alice, daiAssetID)
	require.Nil(t, err)
	assert.Equal(t, 0, borrowed.Sign())

	reserves, err := e.reserves.FindByUser(e.ctx, alice)
	require.Nil(t, err)
	assert.Empty(t, reserves)
}
