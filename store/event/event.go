package event

import (
	"context"
	"sync"

	"lever/core"
)

const capSize = 512

type eventStore struct {
	mu     sync.RWMutex
	events []*core.LiquidationEvent
}

// New new liquidation event store, keeping the most recent events only
func New() core.ILiquidationEventStore {
	return &eventStore{}
}

func (s *eventStore) Create(ctx context.Context, event *core.LiquidationEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, event)
	if len(s.events) > capSize {
		s.events = s.events[len(s.events)-capSize:]
	}
	return nil
}

// List returns up to limit events, newest first
func (s *eventStore) List(ctx context.Context, limit int) ([]*core.LiquidationEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.events) {
		limit = len(s.events)
	}

	out := make([]*core.LiquidationEvent, 0, limit)
	for i := len(s.events) - 1; i >= len(s.events)-limit; i-- {
		out = append(out, s.events[i])
	}
	return out, nil
}
