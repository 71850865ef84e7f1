package oracle

import (
	"context"
	"math/big"
	"sync"
	"time"

	"lever/core"
	"lever/pkg/number"

	"github.com/asaskevich/govalidator"
	"github.com/fox-one/pkg/logger"
)

// PriceTimeout default freshness window for feed readings
const PriceTimeout = 3600 * time.Second

type priceService struct {
	mu      sync.RWMutex
	feeds   map[string]core.PriceFeed
	timeout time.Duration
	now     func() time.Time
}

// New new oracle price service
func New(timeout time.Duration) core.IPriceOracleService {
	if timeout <= 0 {
		timeout = PriceTimeout
	}

	return &priceService{
		feeds:   make(map[string]core.PriceFeed),
		timeout: timeout,
		now:     time.Now,
	}
}

// GetPrice returns the token's usd price normalized to 1e18 regardless of the
// feed's native decimals.
func (s *priceService) GetPrice(ctx context.Context, assetID string) (*big.Int, error) {
	s.mu.RLock()
	feed, ok := s.feeds[assetID]
	s.mu.RUnlock()

	if !ok {
		return nil, core.ErrPriceFeedNotConfigured
	}

	data, err := feed.Read(ctx)
	if err != nil {
		logger.FromContext(ctx).WithError(err).Errorln("oracle.feed.Read", assetID)
		return nil, err
	}

	if !number.IsPositive(data.Price) {
		return nil, core.ErrInvalidPrice
	}

	if data.Decimals < 0 || data.Decimals > number.WadDecimals {
		return nil, core.ErrInvalidPrice
	}

	if s.now().Sub(data.UpdatedAt) > s.timeout {
		return nil, core.ErrStalePrice
	}

	price := new(big.Int).Mul(data.Price, number.Pow10(number.WadDecimals-data.Decimals))
	return price, nil
}

// SetPriceFeed registers or atomically replaces the feed for a token.
func (s *priceService) SetPriceFeed(ctx context.Context, assetID string, feed core.PriceFeed) error {
	if !govalidator.IsUUID(assetID) || feed == nil {
		return core.ErrInvalidAddress
	}

	s.mu.Lock()
	s.feeds[assetID] = feed
	s.mu.Unlock()
	return nil
}
