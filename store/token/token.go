package token

import (
	"context"
	"sync"
	"time"

	"lever/core"
)

type tokenStore struct {
	mu     sync.RWMutex
	tokens []*core.Token
	index  map[string]*core.Token
}

// New new token store
func New() core.ITokenStore {
	return &tokenStore{
		index: make(map[string]*core.Token),
	}
}

func (s *tokenStore) Add(ctx context.Context, token *core.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[token.AssetID]; ok {
		return core.ErrOperationForbidden
	}

	t := *token
	t.ID = uint64(len(s.tokens) + 1)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	s.tokens = append(s.tokens, &t)
	s.index[t.AssetID] = &t

	token.ID = t.ID
	token.CreatedAt = t.CreatedAt
	return nil
}

func (s *tokenStore) Find(ctx context.Context, assetID string) (*core.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.index[assetID]
	if !ok {
		return nil, core.ErrTokenNotSupported
	}

	out := *t
	return &out, nil
}

// All returns tokens in registration order
func (s *tokenStore) All(ctx context.Context) ([]*core.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*core.Token, 0, len(s.tokens))
	for _, t := range s.tokens {
		c := *t
		out = append(out, &c)
	}
	return out, nil
}

func (s *tokenStore) Update(ctx context.Context, token *core.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.index[token.AssetID]
	if !ok {
		return core.ErrTokenNotSupported
	}

	t.Symbol = token.Symbol
	t.LTV = token.LTV
	t.Decimals = token.Decimals
	t.Active = token.Active
	return nil
}
