package checkout

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"bakery/internal/cart"
)

var ErrEmptyCart = errors.New("cart is empty")

// Order то, что читает составитель сообщения: строки и итог корзины
type Order struct {
	Items        []cart.LineItem
	Total        decimal.Decimal
	CustomerName string
	Note         string
}

// Compose собирает текст заказа для WhatsApp. Заказ нигде не сохраняется.
func Compose(o Order) (string, error) {
	if len(o.Items) == 0 {
		return "", ErrEmptyCart
	}

	var b strings.Builder
	b.WriteString("¡Hola! Quiero hacer el siguiente pedido:\n\n")
	for _, it := range o.Items {
		fmt.Fprintf(&b, "• %d × %s (%s) — $%s\n", it.Quantity, it.Name, it.SelectedPrice.Size, it.Subtotal().StringFixed(2))
	}
	fmt.Fprintf(&b, "\nTotal: $%s", o.Total.StringFixed(2))

	if name := strings.TrimSpace(o.CustomerName); name != "" {
		fmt.Fprintf(&b, "\nNombre: %s", name)
	}
	if note := strings.TrimSpace(o.Note); note != "" {
		fmt.Fprintf(&b, "\nNota: %s", note)
	}
	return b.String(), nil
}

// Link wa.me deep link; non-digits are stripped from the phone number.
func Link(phone, message string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(message)
}
