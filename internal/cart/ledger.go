package cart

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"bakery/internal/domain"
)

const (
	// NotificationTTL сколько живёт сообщение «добавлено в корзину»
	NotificationTTL = 3 * time.Second
	// AnimationTTL отдельный, более короткий флаг анимации иконки корзины
	AnimationTTL = 600 * time.Millisecond
)

// LineItem строка корзины. ID это не id товара, а LineID(product, size).
type LineItem struct {
	ID            string              `json:"id"`
	ProductID     string              `json:"productId"`
	Name          string              `json:"name"`
	Image         string              `json:"image"`
	Quantity      int                 `json:"quantity"`
	SelectedPrice domain.ProductPrice `json:"selectedPrice"`
}

func (l LineItem) Subtotal() decimal.Decimal {
	return l.SelectedPrice.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// LineID ключ строки: одна строка на пару (товар, размер)
func LineID(productID, size string) string {
	return productID + "-" + size
}

type Notification struct {
	Message string `json:"message"`
}

// State снимок корзины; Count и Total всегда пересчитываются из строк
type State struct {
	Items        []LineItem      `json:"items"`
	Count        int             `json:"count"`
	Total        decimal.Decimal `json:"total"`
	Open         bool            `json:"open"`
	Notification *Notification   `json:"notification,omitempty"`
	Animating    bool            `json:"animating"`
}

// Ledger корзина одной сессии. Все операции локальные и не могут завершиться ошибкой.
type Ledger struct {
	mu  sync.Mutex
	now func() time.Time

	items []LineItem
	open  bool

	message       string
	messageUntil  time.Time
	animatingTill time.Time
	lastActivity  time.Time

	observers map[int]func(State)
	nextObs   int
}

type Option func(*Ledger)

// WithClock подменяет часы, по которым истекают уведомление и анимация
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

func NewLedger(opts ...Option) *Ledger {
	l := &Ledger{
		now:       time.Now,
		items:     make([]LineItem, 0),
		observers: make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.lastActivity = l.now()
	return l
}

// AddToCart объединяет одинаковые (товар, размер): количество складывается.
// qty <= 0 игнорируется.
func (l *Ledger) AddToCart(p domain.Product, variant domain.ProductPrice, qty int) {
	if qty <= 0 {
		return
	}
	id := LineID(p.ID, variant.Size)

	l.mu.Lock()
	merged := false
	for i := range l.items {
		if l.items[i].ID == id {
			l.items[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		l.items = append(l.items, LineItem{
			ID:            id,
			ProductID:     p.ID,
			Name:          p.Name,
			Image:         p.Image,
			Quantity:      qty,
			SelectedPrice: variant,
		})
	}
	// a newer notification always re-arms both expiries
	now := l.now()
	l.message = fmt.Sprintf("¡Agregaste %d × %s al carrito!", qty, p.Name)
	l.messageUntil = now.Add(NotificationTTL)
	l.animatingTill = now.Add(AnimationTTL)
	l.lastActivity = now
	l.mu.Unlock()

	l.notify()
}

// UpdateQuantity выставляет количество; qty <= 0 удаляет строку
func (l *Ledger) UpdateQuantity(lineID string, qty int) {
	l.mu.Lock()
	changed := false
	for i := range l.items {
		if l.items[i].ID != lineID {
			continue
		}
		if qty <= 0 {
			l.items = append(l.items[:i], l.items[i+1:]...)
			changed = true
		} else if l.items[i].Quantity != qty {
			l.items[i].Quantity = qty
			changed = true
		}
		break
	}
	l.lastActivity = l.now()
	l.mu.Unlock()

	if changed {
		l.notify()
	}
}

func (l *Ledger) RemoveFromCart(lineID string) {
	l.mu.Lock()
	changed := false
	for i := range l.items {
		if l.items[i].ID == lineID {
			l.items = append(l.items[:i], l.items[i+1:]...)
			changed = true
			break
		}
	}
	l.lastActivity = l.now()
	l.mu.Unlock()

	if changed {
		l.notify()
	}
}

func (l *Ledger) ClearCart() {
	l.mu.Lock()
	changed := len(l.items) > 0
	l.items = make([]LineItem, 0)
	l.lastActivity = l.now()
	l.mu.Unlock()

	if changed {
		l.notify()
	}
}

// ToggleCartOpen чисто презентационный флаг видимости корзины
func (l *Ledger) ToggleCartOpen() bool {
	l.mu.Lock()
	l.open = !l.open
	open := l.open
	l.lastActivity = l.now()
	l.mu.Unlock()

	l.notify()
	return open
}

func (l *Ledger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return count(l.items)
}

func (l *Ledger) Total() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return total(l.items)
}

// Item возвращает копию строки по id
func (l *Ledger) Item(lineID string) (LineItem, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, it := range l.items {
		if it.ID == lineID {
			return it, true
		}
	}
	return LineItem{}, false
}

func (l *Ledger) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stateLocked()
}

// LastActivity время последней операции; по нему вытесняются брошенные корзины
func (l *Ledger) LastActivity() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastActivity
}

// Touch отмечает активность сессии, не меняя корзину
func (l *Ledger) Touch() {
	l.mu.Lock()
	l.lastActivity = l.now()
	l.mu.Unlock()
}

// Subscribe регистрирует наблюдателя; возвращает функцию отписки
func (l *Ledger) Subscribe(fn func(State)) func() {
	l.mu.Lock()
	id := l.nextObs
	l.nextObs++
	l.observers[id] = fn
	l.mu.Unlock()
	return func() {
		l.mu.Lock()
		delete(l.observers, id)
		l.mu.Unlock()
	}
}

func (l *Ledger) stateLocked() State {
	items := make([]LineItem, len(l.items))
	copy(items, l.items)
	now := l.now()

	st := State{
		Items:     items,
		Count:     count(items),
		Total:     total(items),
		Open:      l.open,
		Animating: now.Before(l.animatingTill),
	}
	if l.message != "" && now.Before(l.messageUntil) {
		st.Notification = &Notification{Message: l.message}
	}
	return st
}

func (l *Ledger) notify() {
	l.mu.Lock()
	st := l.stateLocked()
	fns := make([]func(State), 0, len(l.observers))
	for _, fn := range l.observers {
		fns = append(fns, fn)
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn(st)
	}
}

func count(items []LineItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

func total(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Subtotal())
	}
	return sum
}
