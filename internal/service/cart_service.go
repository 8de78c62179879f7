package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"bakery/internal/cart"
	"bakery/internal/catalog"
	"bakery/internal/checkout"
	"bakery/internal/repository"
)

// CheckoutResult текст заказа и ссылка для WhatsApp
type CheckoutResult struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

// CartService операции над корзиной сессии. Товары берутся из каталога в памяти.
type CartService struct {
	sessions repository.SessionRepository
	store    *catalog.Store
	phone    string
	log      *zap.Logger
}

func NewCartService(sessions repository.SessionRepository, store *catalog.Store, whatsappPhone string, log *zap.Logger) *CartService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CartService{sessions: sessions, store: store, phone: whatsappPhone, log: log}
}

func (s *CartService) ledger(ctx context.Context, sessionID string) (*cart.Ledger, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidInput
	}
	return s.sessions.GetOrCreate(ctx, sessionID)
}

func (s *CartService) Get(ctx context.Context, sessionID string) (*cart.State, error) {
	l, err := s.ledger(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	st := l.State()
	return &st, nil
}

// AddItem пустой size означает вариант по умолчанию (первый)
func (s *CartService) AddItem(ctx context.Context, sessionID, productID, size string, qty int) (*cart.State, error) {
	if productID == "" || qty <= 0 {
		return nil, ErrInvalidInput
	}
	l, err := s.ledger(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	snap := s.store.State().Snapshot()
	p, ok := snap.ProductByID(productID)
	if !ok {
		return nil, ErrNotFound
	}
	variant, ok := p.DefaultPrice()
	if size != "" {
		variant, ok = p.PriceBySize(size)
	}
	if !ok {
		return nil, ErrNotFound
	}

	l.AddToCart(*p, variant, qty)
	s.log.Debug("cart item added",
		zap.String("session", sessionID),
		zap.String("line", cart.LineID(p.ID, variant.Size)),
		zap.Int("quantity", qty))

	st := l.State()
	return &st, nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, lineID string, qty int) (*cart.State, error) {
	if lineID == "" {
		return nil, ErrInvalidInput
	}
	l, err := s.ledger(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	l.UpdateQuantity(lineID, qty)
	st := l.State()
	return &st, nil
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID, lineID string) (*cart.State, error) {
	l, err := s.ledger(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	l.RemoveFromCart(lineID)
	st := l.State()
	return &st, nil
}

func (s *CartService) Clear(ctx context.Context, sessionID string) (*cart.State, error) {
	l, err := s.ledger(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	l.ClearCart()
	st := l.State()
	return &st, nil
}

func (s *CartService) ToggleOpen(ctx context.Context, sessionID string) (*cart.State, error) {
	l, err := s.ledger(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	l.ToggleCartOpen()
	st := l.State()
	return &st, nil
}

// Checkout только формирует сообщение; корзина не очищается
func (s *CartService) Checkout(ctx context.Context, sessionID, customerName, note string) (*CheckoutResult, error) {
	l, err := s.ledger(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	st := l.State()
	msg, err := checkout.Compose(checkout.Order{
		Items:        st.Items,
		Total:        st.Total,
		CustomerName: customerName,
		Note:         note,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("checkout composed",
		zap.String("session", sessionID),
		zap.Int("count", st.Count),
		zap.String("total", st.Total.StringFixed(2)))
	return &CheckoutResult{Message: msg, URL: checkout.Link(s.phone, msg)}, nil
}
