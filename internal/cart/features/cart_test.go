package features

import (
	"context"
	"fmt"
	"testing"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"bakery/internal/cart"
	"bakery/internal/domain"
)

type cartTestContext struct {
	ledger *cart.Ledger
}

func (c *cartTestContext) reset() {
	c.ledger = cart.NewLedger()
}

func (c *cartTestContext) anEmptyCart() error {
	c.reset()
	return nil
}

func (c *cartTestContext) iAddOfSizePriced(qty int, productID, size string, price int) error {
	p := domain.Product{ID: productID, Name: productID}
	c.ledger.AddToCart(p, domain.ProductPrice{Size: size, Price: decimal.NewFromInt(int64(price))}, qty)
	return nil
}

func (c *cartTestContext) iRemoveLine(id string) error {
	c.ledger.RemoveFromCart(id)
	return nil
}

func (c *cartTestContext) iSetLineToQuantity(id string, qty int) error {
	c.ledger.UpdateQuantity(id, qty)
	return nil
}

func (c *cartTestContext) iClearTheCart() error {
	c.ledger.ClearCart()
	return nil
}

func (c *cartTestContext) theCartHasLines(n int) error {
	if got := len(c.ledger.State().Items); got != n {
		return fmt.Errorf("expected %d lines, got %d", n, got)
	}
	return nil
}

func (c *cartTestContext) lineHasQuantity(id string, qty int) error {
	item, ok := c.ledger.Item(id)
	if !ok {
		return fmt.Errorf("line %q not found", id)
	}
	if item.Quantity != qty {
		return fmt.Errorf("expected quantity %d on %q, got %d", qty, id, item.Quantity)
	}
	return nil
}

func (c *cartTestContext) theCartCountIs(n int) error {
	if got := c.ledger.Count(); got != n {
		return fmt.Errorf("expected count %d, got %d", n, got)
	}
	return nil
}

func (c *cartTestContext) theCartTotalIs(total int) error {
	want := decimal.NewFromInt(int64(total))
	if got := c.ledger.Total(); !got.Equal(want) {
		return fmt.Errorf("expected total %s, got %s", want, got)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &cartTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.Step(`^an empty cart$`, tc.anEmptyCart)

	ctx.Step(`^I add (\d+) of "([^"]*)" size "([^"]*)" priced (\d+)$`, tc.iAddOfSizePriced)
	ctx.Step(`^I remove line "([^"]*)"$`, tc.iRemoveLine)
	ctx.Step(`^I set line "([^"]*)" to quantity (-?\d+)$`, tc.iSetLineToQuantity)
	ctx.Step(`^I clear the cart$`, tc.iClearTheCart)

	ctx.Step(`^the cart has (\d+) lines$`, tc.theCartHasLines)
	ctx.Step(`^line "([^"]*)" has quantity (\d+)$`, tc.lineHasQuantity)
	ctx.Step(`^the cart count is (\d+)$`, tc.theCartCountIs)
	ctx.Step(`^the cart total is (\d+)$`, tc.theCartTotalIs)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"cart.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
