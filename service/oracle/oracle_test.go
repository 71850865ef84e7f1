package oracle

import (
	"context"
	"math/big"
	"testing"
	"time"

	"lever/core"
	"lever/pkg/number"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const btcAssetID = "c6d0c728-2624-429b-8e0d-d9d19b6592fa"

func TestGetPriceNormalization(t *testing.T) {
	ctx := context.Background()

	cases := map[string]struct {
		price    *big.Int
		decimals int32
		want     string
	}{
		"8 decimal feed":  {big.NewInt(2000_00000000), 8, number.ToWad(number.Decimal("2000")).String()},
		"0 decimal feed":  {big.NewInt(2000), 0, number.ToWad(number.Decimal("2000")).String()},
		"18 decimal feed": {number.ToWad(number.Decimal("2000")), 18, number.ToWad(number.Decimal("2000")).String()},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			srv := New(0)
			require.Nil(t, srv.SetPriceFeed(ctx, btcAssetID, NewManualFeed(c.price, c.decimals, time.Now())))

			price, err := srv.GetPrice(ctx, btcAssetID)
			require.Nil(t, err)
			assert.Equal(t, c.want, price.String())
		})
	}
}

func TestGetPriceNotConfigured(t *testing.T) {
	srv := New(0)
	_, err := srv.GetPrice(context.Background(), btcAssetID)
	assert.Equal(t, core.ErrPriceFeedNotConfigured, err)
}

func TestGetPriceInvalid(t *testing.T) {
	ctx := context.Background()
	srv := New(0)

	require.Nil(t, srv.SetPriceFeed(ctx, btcAssetID, NewManualFeed(big.NewInt(0), 8, time.Now())))
	_, err := srv.GetPrice(ctx, btcAssetID)
	assert.Equal(t, core.ErrInvalidPrice, err)

	require.Nil(t, srv.SetPriceFeed(ctx, btcAssetID, NewManualFeed(big.NewInt(100), 19, time.Now())))
	_, err = srv.GetPrice(ctx, btcAssetID)
	assert.Equal(t, core.ErrInvalidPrice, err)
}

func TestGetPriceStale(t *testing.T) {
	ctx := context.Background()
	srv := New(time.Hour)

	require.Nil(t, srv.SetPriceFeed(ctx, btcAssetID, NewManualFeed(big.NewInt(100), 2, time.Now().Add(-2*time.Hour))))
	_, err := srv.GetPrice(ctx, btcAssetID)
	assert.Equal(t, core.ErrStalePrice, err)

	// replacing the feed with a fresh reading recovers
	require.Nil(t, srv.SetPriceFeed(ctx, btcAssetID, NewManualFeed(big.NewInt(100), 2, time.Now())))
	price, err := srv.GetPrice(ctx, btcAssetID)
	require.Nil(t, err)
	assert.Equal(t, number.ToWad(number.Decimal("1")).String(), price.String())
}

func TestSetPriceFeedValidation(t *testing.T) {
	ctx := context.Background()
	srv := New(0)

	assert.Equal(t, core.ErrInvalidAddress, srv.SetPriceFeed(ctx, "", NewManualFeed(big.NewInt(1), 0, time.Now())))
	assert.Equal(t, core.ErrInvalidAddress, srv.SetPriceFeed(ctx, "not-a-uuid", NewManualFeed(big.NewInt(1), 0, time.Now())))
	assert.Equal(t, core.ErrInvalidAddress, srv.SetPriceFeed(ctx, btcAssetID, nil))
}
