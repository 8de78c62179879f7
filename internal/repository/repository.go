package repository

import (
	"context"
	"errors"
	"time"

	"bakery/internal/cart"
)

// ErrNotFound возвращается, когда сущность не найдена
var ErrNotFound = errors.New("not found")

// SessionRepository корзины покупателей по идентификатору сессии.
// Корзины живут только в памяти процесса.
type SessionRepository interface {
	GetOrCreate(ctx context.Context, sessionID string) (*cart.Ledger, error)
	Get(ctx context.Context, sessionID string) (*cart.Ledger, error)
	Delete(ctx context.Context, sessionID string) error
	EvictIdle(ctx context.Context, before time.Time) (int, error)
	Len() int
}
