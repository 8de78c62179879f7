package cart

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakery/internal/domain"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLedger() (*Ledger, *fakeClock) {
	clk := &fakeClock{t: time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)}
	return NewLedger(WithClock(clk.Now)), clk
}

var (
	cake   = domain.Product{ID: "cake1", Name: "Tres leches", Image: "/images/cake.jpg"}
	medium = domain.ProductPrice{Size: "M", Price: decimal.NewFromInt(20)}
	large  = domain.ProductPrice{Size: "L", Price: decimal.NewFromInt(35)}
)

func assertTotal(t *testing.T, l *Ledger, want int64) {
	t.Helper()
	got := l.Total()
	assert.True(t, got.Equal(decimal.NewFromInt(want)), "total expected %d, got %s", want, got)
}

func TestLedger_Scenario(t *testing.T) {
	l, _ := newTestLedger()

	l.AddToCart(cake, medium, 2)
	st := l.State()
	require.Len(t, st.Items, 1)
	assert.Equal(t, "cake1-M", st.Items[0].ID)
	assert.Equal(t, 2, st.Items[0].Quantity)
	assertTotal(t, l, 40)

	l.AddToCart(cake, medium, 1)
	st = l.State()
	require.Len(t, st.Items, 1)
	assert.Equal(t, 3, st.Items[0].Quantity)
	assertTotal(t, l, 60)

	l.AddToCart(cake, large, 1)
	require.Len(t, l.State().Items, 2)
	assert.Equal(t, 4, l.Count())
	assertTotal(t, l, 95)

	l.RemoveFromCart("cake1-M")
	st = l.State()
	require.Len(t, st.Items, 1)
	assert.Equal(t, 1, st.Count)
	assert.True(t, st.Total.Equal(decimal.NewFromInt(35)))
}

func TestLedger_MergeKeepsOneLine(t *testing.T) {
	l, _ := newTestLedger()
	l.AddToCart(cake, medium, 4)
	l.AddToCart(cake, medium, 5)
	st := l.State()
	require.Len(t, st.Items, 1)
	assert.Equal(t, LineID("cake1", "M"), st.Items[0].ID)
	assert.Equal(t, "cake1", st.Items[0].ProductID)
	assert.Equal(t, 9, st.Items[0].Quantity)
}

func TestLedger_AddIgnoresNonPositive(t *testing.T) {
	l, _ := newTestLedger()
	l.AddToCart(cake, medium, 0)
	l.AddToCart(cake, medium, -3)
	st := l.State()
	assert.Empty(t, st.Items)
	assert.Nil(t, st.Notification)
}

func TestLedger_UpdateQuantity(t *testing.T) {
	l, _ := newTestLedger()
	l.AddToCart(cake, medium, 2)
	l.AddToCart(cake, large, 1)

	l.UpdateQuantity("cake1-M", 5)
	item, ok := l.Item("cake1-M")
	require.True(t, ok)
	assert.Equal(t, 5, item.Quantity)

	// same value twice is a no-op
	l.UpdateQuantity("cake1-M", 5)
	assert.Equal(t, 6, l.Count())

	l.UpdateQuantity("cake1-M", 0)
	_, ok = l.Item("cake1-M")
	assert.False(t, ok)
	assert.Equal(t, 1, l.Count())

	l.UpdateQuantity("cake1-L", -2)
	assert.Empty(t, l.State().Items)
	assert.Equal(t, 0, l.Count())

	// unknown line is ignored
	l.UpdateQuantity("nope-XL", 3)
	assert.Empty(t, l.State().Items)
}

func TestLedger_RemoveAbsentIsNoop(t *testing.T) {
	l, _ := newTestLedger()
	l.AddToCart(cake, medium, 1)
	l.RemoveFromCart("cake1-XL")
	assert.Equal(t, 1, l.Count())
}

func TestLedger_ClearIdempotent(t *testing.T) {
	l, _ := newTestLedger()
	l.AddToCart(cake, medium, 2)
	l.AddToCart(cake, large, 2)

	l.ClearCart()
	assert.Equal(t, 0, l.Count())
	assertTotal(t, l, 0)

	l.ClearCart()
	assert.Equal(t, 0, l.Count())
	assertTotal(t, l, 0)
}

func TestLedger_TotalsAlwaysFresh(t *testing.T) {
	l, _ := newTestLedger()
	bread := domain.Product{ID: "bolillo", Name: "Bolillo"}
	piece := domain.ProductPrice{Size: "Pieza", Price: decimal.RequireFromString("3.50")}

	ops := []func(){
		func() { l.AddToCart(cake, medium, 2) },
		func() { l.AddToCart(bread, piece, 10) },
		func() { l.UpdateQuantity("bolillo-Pieza", 4) },
		func() { l.AddToCart(cake, large, 1) },
		func() { l.RemoveFromCart("cake1-M") },
		func() { l.AddToCart(cake, medium, 1) },
	}
	for _, op := range ops {
		op()
		st := l.State()
		wantCount := 0
		wantTotal := decimal.Zero
		for _, it := range st.Items {
			wantCount += it.Quantity
			wantTotal = wantTotal.Add(it.SelectedPrice.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
		assert.Equal(t, wantCount, st.Count)
		assert.Equal(t, wantCount, l.Count())
		assert.True(t, wantTotal.Equal(st.Total))
		assert.True(t, wantTotal.Equal(l.Total()))
	}
	assert.True(t, l.Total().Equal(decimal.RequireFromString("69")))
}

func TestLedger_NotificationExpires(t *testing.T) {
	l, clk := newTestLedger()
	l.AddToCart(cake, medium, 2)

	st := l.State()
	require.NotNil(t, st.Notification)
	assert.Equal(t, "¡Agregaste 2 × Tres leches al carrito!", st.Notification.Message)
	assert.True(t, st.Animating)

	clk.Advance(AnimationTTL)
	st = l.State()
	assert.False(t, st.Animating, "animation flag has its own, shorter expiry")
	require.NotNil(t, st.Notification)

	clk.Advance(NotificationTTL - AnimationTTL)
	assert.Nil(t, l.State().Notification)
}

func TestLedger_NewNotificationReArmsExpiry(t *testing.T) {
	l, clk := newTestLedger()
	l.AddToCart(cake, medium, 1)
	clk.Advance(2 * time.Second)
	l.AddToCart(cake, large, 1)

	// past the first notification's deadline, the second must survive
	clk.Advance(1500 * time.Millisecond)
	st := l.State()
	require.NotNil(t, st.Notification)
	assert.Equal(t, "¡Agregaste 1 × Tres leches al carrito!", st.Notification.Message)

	clk.Advance(2 * time.Second)
	assert.Nil(t, l.State().Notification)
}

func TestLedger_ToggleCartOpen(t *testing.T) {
	l, _ := newTestLedger()
	assert.False(t, l.State().Open)
	assert.True(t, l.ToggleCartOpen())
	assert.True(t, l.State().Open)
	assert.False(t, l.ToggleCartOpen())
}

func TestLedger_SubscribeNotifiesSynchronously(t *testing.T) {
	l, _ := newTestLedger()
	var counts []int
	unsubscribe := l.Subscribe(func(st State) { counts = append(counts, st.Count) })

	l.AddToCart(cake, medium, 2)
	l.UpdateQuantity("cake1-M", 3)
	l.UpdateQuantity("cake1-M", 3) // no change, no notification
	l.RemoveFromCart("missing")
	l.ClearCart()
	assert.Equal(t, []int{2, 3, 0}, counts)

	unsubscribe()
	l.AddToCart(cake, medium, 1)
	assert.Len(t, counts, 3)
}

func TestLedger_StateIsACopy(t *testing.T) {
	l, _ := newTestLedger()
	l.AddToCart(cake, medium, 2)
	st := l.State()
	st.Items[0].Quantity = 99
	assert.Equal(t, 2, l.Count())
}

func TestLedger_LastActivity(t *testing.T) {
	l, clk := newTestLedger()
	start := l.LastActivity()
	clk.Advance(time.Minute)
	l.AddToCart(cake, medium, 1)
	assert.Equal(t, start.Add(time.Minute), l.LastActivity())
}

func TestLedger_TouchKeepsItems(t *testing.T) {
	l, clk := newTestLedger()
	l.AddToCart(cake, medium, 1)
	clk.Advance(time.Hour)
	l.Touch()
	assert.Equal(t, clk.Now(), l.LastActivity())
	assert.Equal(t, 1, l.Count())
}
