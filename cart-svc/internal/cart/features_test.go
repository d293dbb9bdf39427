package cart_test

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"testing"

	"overcooked-cart/cart-svc/internal/cart"
	"overcooked-cart/cart-svc/internal/domain"

	"github.com/cucumber/godog"
)

type cartTestContext struct {
	menu     map[int]domain.MenuItem
	store    *cart.MemoryStore
	engine   *cart.Engine
	reloaded *cart.Engine
}

func (c *cartTestContext) reset() {
	c.menu = make(map[int]domain.MenuItem)
	c.store = cart.NewMemoryStore()
	c.engine = nil
	c.reloaded = nil
}

func (c *cartTestContext) restaurantServesDish(restaurantID, dishID int, name string, price float64) error {
	c.menu[dishID] = domain.MenuItem{ID: dishID, RestaurantID: restaurantID, Name: name, Price: price}
	return nil
}

func (c *cartTestContext) restaurantServesDishWithLargePortion(restaurantID, dishID int, name string, price, large float64) error {
	c.menu[dishID] = domain.MenuItem{
		ID:           dishID,
		RestaurantID: restaurantID,
		Name:         name,
		Price:        price,
		PortionSizes: []domain.PortionPrice{{Size: domain.PortionLarge, Price: large}},
	}
	return nil
}

func (c *cartTestContext) dishOffersCustomization(dishID int, name, option string, price float64) error {
	item, ok := c.menu[dishID]
	if !ok {
		return fmt.Errorf("dish %d is not on the menu", dishID)
	}
	item.Customizations = append(item.Customizations, domain.CustomizationOption{Name: name, Option: option, Price: price})
	c.menu[dishID] = item
	return nil
}

func (c *cartTestContext) anEmptyCart() error {
	c.engine = cart.Load(context.Background(), c.store)
	return nil
}

func (c *cartTestContext) iAddOfDish(quantity, dishID int) error {
	return c.add(quantity, dishID, "", nil)
}

func (c *cartTestContext) iAddOfDishWithPortionAndCustomization(quantity, dishID int, portion, name, option string) error {
	item, ok := c.menu[dishID]
	if !ok {
		return fmt.Errorf("dish %d is not on the menu", dishID)
	}
	price, ok := item.CustomizationPrice(name, option)
	if !ok {
		return fmt.Errorf("dish %d has no %s %s", dishID, name, option)
	}
	return c.add(quantity, dishID, domain.PortionSize(portion), []domain.Customization{{Name: name, Option: option, Price: price}})
}

func (c *cartTestContext) add(quantity, dishID int, portion domain.PortionSize, customizations []domain.Customization) error {
	item, ok := c.menu[dishID]
	if !ok {
		return fmt.Errorf("dish %d is not on the menu", dishID)
	}
	c.engine.AddItem(context.Background(), cart.AddItem{
		MenuItem:       item,
		Quantity:       quantity,
		PortionSize:    portion,
		Customizations: customizations,
	})
	return nil
}

func (c *cartTestContext) iSetTheQuantityOfDishWithoutCustomizations(dishID, quantity int) error {
	c.engine.UpdateQuantity(context.Background(), domain.LineKey{MenuItemID: dishID}, quantity)
	return nil
}

func (c *cartTestContext) iReloadTheCart() error {
	c.reloaded = cart.Load(context.Background(), c.store)
	return nil
}

func (c *cartTestContext) iClearTheCart() error {
	c.engine.Clear(context.Background())
	return nil
}

func (c *cartTestContext) theCartHasLines(count int) error {
	if got := len(c.engine.Snapshot().Lines); got != count {
		return fmt.Errorf("expected %d lines, got %d", count, got)
	}
	return nil
}

func (c *cartTestContext) lineHasQuantity(index, quantity int) error {
	lines := c.engine.Snapshot().Lines
	if index < 1 || index > len(lines) {
		return fmt.Errorf("no line %d in a cart of %d lines", index, len(lines))
	}
	if got := lines[index-1].Quantity; got != quantity {
		return fmt.Errorf("expected line %d quantity %d, got %d", index, quantity, got)
	}
	return nil
}

func (c *cartTestContext) theCartBelongsToRestaurant(restaurantID int) error {
	if got := c.engine.Snapshot().RestaurantID; got != restaurantID {
		return fmt.Errorf("expected restaurant %d, got %d", restaurantID, got)
	}
	return nil
}

func (c *cartTestContext) theCartHasNoRestaurant() error {
	return c.theCartBelongsToRestaurant(0)
}

func (c *cartTestContext) theSubtotalIs(want float64) error {
	engine := c.engine
	if c.reloaded != nil {
		engine = c.reloaded
	}
	if got := engine.Subtotal(); math.Abs(got-want) > 1e-9 {
		return fmt.Errorf("expected subtotal %.2f, got %.2f", want, got)
	}
	return nil
}

func (c *cartTestContext) theItemCountIs(want int) error {
	if got := c.engine.ItemCount(); got != want {
		return fmt.Errorf("expected item count %d, got %d", want, got)
	}
	return nil
}

func (c *cartTestContext) theReloadedCartEqualsTheOriginal() error {
	if !reflect.DeepEqual(c.engine.Snapshot(), c.reloaded.Snapshot()) {
		return fmt.Errorf("reloaded cart %+v differs from %+v", c.reloaded.Snapshot(), c.engine.Snapshot())
	}
	if c.engine.Subtotal() != c.reloaded.Subtotal() {
		return fmt.Errorf("reloaded subtotal %.2f differs from %.2f", c.reloaded.Subtotal(), c.engine.Subtotal())
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &cartTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^restaurant (\d+) serves dish (\d+) "([^"]*)" at (\d+\.\d+) with a LARGE portion at (\d+\.\d+)$`, tc.restaurantServesDishWithLargePortion)
	ctx.Step(`^restaurant (\d+) serves dish (\d+) "([^"]*)" at (\d+\.\d+)$`, tc.restaurantServesDish)
	ctx.Step(`^dish (\d+) offers customization "([^"]*)" "([^"]*)" at (\d+\.\d+)$`, tc.dishOffersCustomization)
	ctx.Step(`^an empty cart$`, tc.anEmptyCart)

	// When steps
	ctx.Step(`^I add (\d+) of dish (\d+)$`, tc.iAddOfDish)
	ctx.Step(`^I add (\d+) of dish (\d+) with portion "([^"]*)" and customization "([^"]*)" "([^"]*)"$`, tc.iAddOfDishWithPortionAndCustomization)
	ctx.Step(`^I set the quantity of dish (\d+) without customizations to (-?\d+)$`, tc.iSetTheQuantityOfDishWithoutCustomizations)
	ctx.Step(`^I reload the cart$`, tc.iReloadTheCart)
	ctx.Step(`^I clear the cart$`, tc.iClearTheCart)

	// Then steps
	ctx.Step(`^the cart has (\d+) lines?$`, tc.theCartHasLines)
	ctx.Step(`^line (\d+) has quantity (\d+)$`, tc.lineHasQuantity)
	ctx.Step(`^the cart belongs to restaurant (\d+)$`, tc.theCartBelongsToRestaurant)
	ctx.Step(`^the cart has no restaurant$`, tc.theCartHasNoRestaurant)
	ctx.Step(`^the subtotal is (\d+\.\d+)$`, tc.theSubtotalIs)
	ctx.Step(`^the item count is (\d+)$`, tc.theItemCountIs)
	ctx.Step(`^the reloaded cart equals the original$`, tc.theReloadedCartEqualsTheOriginal)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../../../features/cart.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
