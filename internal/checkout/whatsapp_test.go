package checkout

import (
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakery/internal/cart"
	"bakery/internal/domain"
)

func TestCompose(t *testing.T) {
	l := cart.NewLedger()
	l.AddToCart(domain.Product{ID: "cake1", Name: "Tres leches"}, domain.ProductPrice{Size: "M", Price: decimal.NewFromInt(20)}, 2)
	l.AddToCart(domain.Product{ID: "concha", Name: "Concha"}, domain.ProductPrice{Size: "Pieza", Price: decimal.RequireFromString("15.5")}, 1)
	st := l.State()

	msg, err := Compose(Order{Items: st.Items, Total: st.Total, CustomerName: " Ana ", Note: "Sin nuez"})
	require.NoError(t, err)
	assert.Contains(t, msg, "• 2 × Tres leches (M) — $40.00")
	assert.Contains(t, msg, "• 1 × Concha (Pieza) — $15.50")
	assert.Contains(t, msg, "Total: $55.50")
	assert.Contains(t, msg, "Nombre: Ana")
	assert.Contains(t, msg, "Nota: Sin nuez")
	assert.True(t, strings.Index(msg, "Tres leches") < strings.Index(msg, "Concha"), "lines keep cart order")
}

func TestCompose_OptionalFields(t *testing.T) {
	items := []cart.LineItem{{Name: "Bolillo", Quantity: 3, SelectedPrice: domain.ProductPrice{Size: "Pieza", Price: decimal.NewFromInt(3)}}}
	msg, err := Compose(Order{Items: items, Total: decimal.NewFromInt(9)})
	require.NoError(t, err)
	assert.NotContains(t, msg, "Nombre:")
	assert.NotContains(t, msg, "Nota:")
}

func TestCompose_EmptyCart(t *testing.T) {
	_, err := Compose(Order{})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestLink(t *testing.T) {
	link := Link("+52 (55) 1234-5678", "Hola & adiós")
	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", u.Host)
	assert.Equal(t, "/525512345678", u.Path)
	assert.Equal(t, "Hola & adiós", u.Query().Get("text"))
}
