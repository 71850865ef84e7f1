package ledger

import (
	"context"

	"lever/core"
	"lever/pkg/number"

	"github.com/asaskevich/govalidator"
	"github.com/fox-one/pkg/logger"
)

// AddToken registers a token with its risk configuration. LTV may not exceed
// 10000 bps and native decimals may not exceed the usd scale.
func (s *Service) AddToken(ctx context.Context, assetID, symbol string, ltv uint64, decimals int32) (*core.Token, error) {
	if !govalidator.IsUUID(assetID) {
		return nil, core.ErrInvalidAddress
	}
	if symbol == "" || ltv > number.BpsScale || decimals < 0 || decimals > number.MaxTokenDecimals {
		return nil, core.ErrOperationForbidden
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	token := &core.Token{
		AssetID:  assetID,
		Symbol:   symbol,
		LTV:      ltv,
		Decimals: decimals,
		Active:   true,
	}
	if err := s.tokens.Add(ctx, token); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Infoln("token added:", symbol, assetID)
	return token, nil
}

// CloseToken gates the token against new deposits and borrows. Withdraw and
// repay stay open so users can always exit.
func (s *Service) CloseToken(ctx context.Context, assetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := s.tokens.Find(ctx, assetID)
	if err != nil {
		return err
	}

	token.Active = false
	if err := s.tokens.Update(ctx, token); err != nil {
		return err
	}

	logger.FromContext(ctx).Infoln("token closed:", token.Symbol, assetID)
	return nil
}

// TokenConfig token risk configuration
func (s *Service) TokenConfig(ctx context.Context, assetID string) (*core.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tokens.Find(ctx, assetID)
}

// AllTokens registered tokens in registration order
func (s *Service) AllTokens(ctx context.Context) ([]*core.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tokens.All(ctx)
}
