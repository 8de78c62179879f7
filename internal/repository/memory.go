package repository

import (
	"context"
	"sync"
	"time"

	"bakery/internal/cart"
)

// MemorySessions in-memory хранилище корзин
type MemorySessions struct {
	mu        sync.RWMutex
	ledgers   map[string]*cart.Ledger
	newLedger func() *cart.Ledger
}

func NewMemorySessions(opts ...cart.Option) *MemorySessions {
	return &MemorySessions{
		ledgers:   make(map[string]*cart.Ledger),
		newLedger: func() *cart.Ledger { return cart.NewLedger(opts...) },
	}
}

// Ensure interfaces
var _ SessionRepository = (*MemorySessions)(nil)

// GetOrCreate отмечает активность под замком хранилища, поэтому EvictIdle
// не выбросит корзину, которую только что получил обработчик
func (m *MemorySessions) GetOrCreate(ctx context.Context, sessionID string) (*cart.Ledger, error) {
	m.mu.RLock()
	l, ok := m.ledgers[sessionID]
	if ok {
		l.Touch()
	}
	m.mu.RUnlock()
	if ok {
		return l, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// another request may have created it meanwhile
	if l, ok := m.ledgers[sessionID]; ok {
		l.Touch()
		return l, nil
	}
	l = m.newLedger()
	m.ledgers[sessionID] = l
	return l, nil
}

func (m *MemorySessions) Get(ctx context.Context, sessionID string) (*cart.Ledger, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	l, ok := m.ledgers[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	return l, nil
}

func (m *MemorySessions) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.ledgers[sessionID]; !ok {
		return ErrNotFound
	}
	delete(m.ledgers, sessionID)
	return nil
}

// EvictIdle удаляет корзины без активности с момента before
func (m *MemorySessions) EvictIdle(ctx context.Context, before time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, l := range m.ledgers {
		if l.LastActivity().Before(before) {
			delete(m.ledgers, id)
			n++
		}
	}
	return n, nil
}

func (m *MemorySessions) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.ledgers)
}
