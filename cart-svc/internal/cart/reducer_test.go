package cart_test

import (
	"testing"

	"overcooked-cart/cart-svc/internal/cart"
	"overcooked-cart/cart-svc/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func burger() domain.MenuItem {
	return domain.MenuItem{
		ID:           1,
		RestaurantID: 10,
		Name:         "Burger",
		Price:        10.00,
		PortionSizes: []domain.PortionPrice{
			{Size: domain.PortionRegular, Price: 10.00},
			{Size: domain.PortionLarge, Price: 14.00},
		},
		Customizations: []domain.CustomizationOption{
			{Name: "Cheese", Option: "Cheddar", Price: 1.50},
			{Name: "Sauce", Option: "BBQ", Price: 0.50},
		},
	}
}

func salad() domain.MenuItem {
	return domain.MenuItem{ID: 2, RestaurantID: 10, Name: "Salad", Price: 7.25}
}

func sushi() domain.MenuItem {
	return domain.MenuItem{ID: 50, RestaurantID: 20, Name: "Sushi", Price: 12.00}
}

var (
	cheddar = domain.Customization{Name: "Cheese", Option: "Cheddar", Price: 1.50}
	bbq     = domain.Customization{Name: "Sauce", Option: "BBQ", Price: 0.50}
)

func reduceAll(actions ...cart.Action) domain.Cart {
	state := domain.Cart{}
	for _, a := range actions {
		state = cart.Reduce(state, a).Cart
	}
	return state
}

func TestReduce_AddItemMergesMatchingLines(t *testing.T) {
	state := reduceAll(
		cart.AddItem{MenuItem: burger(), Quantity: 1, PortionSize: domain.PortionLarge, Customizations: []domain.Customization{cheddar}},
		cart.AddItem{MenuItem: burger(), Quantity: 1, PortionSize: domain.PortionLarge, Customizations: []domain.Customization{cheddar}},
	)

	require.Len(t, state.Lines, 1)
	assert.Equal(t, 2, state.Lines[0].Quantity)
	assert.Equal(t, 10, state.RestaurantID)
}

func TestReduce_AddItemKeepsVariantsDistinct(t *testing.T) {
	tests := []struct {
		name   string
		second cart.AddItem
	}{
		{
			name:   "different customizations",
			second: cart.AddItem{MenuItem: burger(), Quantity: 1, Customizations: []domain.Customization{bbq}},
		},
		{
			name:   "customizations in another order",
			second: cart.AddItem{MenuItem: burger(), Quantity: 1, Customizations: []domain.Customization{bbq, cheddar}},
		},
		{
			name:   "different portion size",
			second: cart.AddItem{MenuItem: burger(), Quantity: 1, PortionSize: domain.PortionLarge, Customizations: []domain.Customization{cheddar, bbq}},
		},
		{
			name:   "no customizations",
			second: cart.AddItem{MenuItem: burger(), Quantity: 1},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			first := cart.AddItem{MenuItem: burger(), Quantity: 1, Customizations: []domain.Customization{cheddar, bbq}}
			state := reduceAll(first, testCase.second)

			require.Len(t, state.Lines, 2)
			assert.Equal(t, 1, state.Lines[0].Quantity)
			assert.Equal(t, 1, state.Lines[1].Quantity)

			state = cart.Reduce(state, cart.UpdateQuantity{Key: state.Lines[1].Key(), Quantity: 4}).Cart
			assert.Equal(t, 1, state.Lines[0].Quantity)
			assert.Equal(t, 4, state.Lines[1].Quantity)
		})
	}
}

func TestReduce_MergeDropsNewInstructions(t *testing.T) {
	state := reduceAll(
		cart.AddItem{MenuItem: salad(), Quantity: 1, SpecialInstructions: "no onions"},
		cart.AddItem{MenuItem: salad(), Quantity: 2, SpecialInstructions: "extra onions"},
	)

	require.Len(t, state.Lines, 1)
	assert.Equal(t, 3, state.Lines[0].Quantity)
	assert.Equal(t, "no onions", state.Lines[0].SpecialInstructions)
}

func TestReduce_AddItemFromOtherRestaurantReplacesCart(t *testing.T) {
	state := reduceAll(
		cart.AddItem{MenuItem: burger(), Quantity: 2},
		cart.AddItem{MenuItem: salad(), Quantity: 1},
	)

	result := cart.Reduce(state, cart.AddItem{MenuItem: sushi(), Quantity: 1})

	assert.True(t, result.Replaced)
	assert.True(t, result.Changed)
	assert.Equal(t, 20, result.Cart.RestaurantID)
	require.Len(t, result.Cart.Lines, 1)
	assert.Equal(t, 50, result.Cart.Lines[0].MenuItem.ID)
	assert.Len(t, state.Lines, 2, "input state must not be modified")
}

func TestReduce_AddItemToEmptyCartAdoptsRestaurant(t *testing.T) {
	state := cart.Reduce(domain.Cart{}, cart.SetRestaurant{RestaurantID: 10}).Cart

	result := cart.Reduce(state, cart.AddItem{MenuItem: sushi(), Quantity: 1})

	assert.False(t, result.Replaced)
	assert.Equal(t, 20, result.Cart.RestaurantID)
}

func TestReduce_NonPositiveDeltas(t *testing.T) {
	state := reduceAll(cart.AddItem{MenuItem: salad(), Quantity: 2})

	result := cart.Reduce(state, cart.AddItem{MenuItem: salad(), Quantity: -1})
	require.Len(t, result.Cart.Lines, 1)
	assert.Equal(t, 1, result.Cart.Lines[0].Quantity)

	result = cart.Reduce(result.Cart, cart.AddItem{MenuItem: salad(), Quantity: -5})
	assert.Empty(t, result.Cart.Lines)

	result = cart.Reduce(result.Cart, cart.AddItem{MenuItem: salad(), Quantity: 0})
	assert.Empty(t, result.Cart.Lines)
}

func TestReduce_NonPositiveDeltaForMissingLineIsNoOp(t *testing.T) {
	state := reduceAll(cart.AddItem{MenuItem: burger(), Quantity: 1})

	tests := []struct {
		name  string
		state domain.Cart
		item  domain.MenuItem
	}{
		{name: "empty cart", state: domain.Cart{}, item: salad()},
		{name: "same restaurant", state: state, item: salad()},
		{name: "other restaurant", state: state, item: sushi()},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			result := cart.Reduce(testCase.state, cart.AddItem{MenuItem: testCase.item, Quantity: -1})

			assert.False(t, result.Changed)
			assert.False(t, result.Replaced)
			assert.Equal(t, testCase.state.RestaurantID, result.Cart.RestaurantID)
			assert.Len(t, result.Cart.Lines, len(testCase.state.Lines))
		})
	}
}

func TestReduce_EmptiedCartDropsRestaurant(t *testing.T) {
	state := reduceAll(cart.AddItem{MenuItem: salad(), Quantity: 2})
	key := domain.LineKey{MenuItemID: 2, Customizations: []domain.Customization{}}

	tests := []struct {
		name   string
		action cart.Action
	}{
		{name: "remove item", action: cart.RemoveItem{MenuItemID: 2}},
		{name: "remove line", action: cart.RemoveLine{Key: key}},
		{name: "zero quantity", action: cart.UpdateQuantity{Key: key, Quantity: 0}},
		{name: "negative delta", action: cart.AddItem{MenuItem: salad(), Quantity: -2}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			result := cart.Reduce(state, testCase.action)

			assert.True(t, result.Changed)
			assert.Empty(t, result.Cart.Lines)
			assert.Zero(t, result.Cart.RestaurantID)
		})
	}

	kept := cart.Reduce(reduceAll(
		cart.AddItem{MenuItem: salad(), Quantity: 1},
		cart.AddItem{MenuItem: burger(), Quantity: 1},
	), cart.RemoveItem{MenuItemID: 2})
	assert.Equal(t, 10, kept.Cart.RestaurantID)
}

func TestReduce_RemoveItemDropsAllVariants(t *testing.T) {
	state := reduceAll(
		cart.AddItem{MenuItem: burger(), Quantity: 1},
		cart.AddItem{MenuItem: burger(), Quantity: 1, Customizations: []domain.Customization{cheddar}},
		cart.AddItem{MenuItem: salad(), Quantity: 1},
	)

	result := cart.Reduce(state, cart.RemoveItem{MenuItemID: 1})
	assert.True(t, result.Changed)
	require.Len(t, result.Cart.Lines, 1)
	assert.Equal(t, 2, result.Cart.Lines[0].MenuItem.ID)

	result = cart.Reduce(result.Cart, cart.RemoveItem{MenuItemID: 99})
	assert.False(t, result.Changed)
	assert.Len(t, result.Cart.Lines, 1)
}

func TestReduce_RemoveLineTargetsOneVariant(t *testing.T) {
	state := reduceAll(
		cart.AddItem{MenuItem: burger(), Quantity: 1},
		cart.AddItem{MenuItem: burger(), Quantity: 1, Customizations: []domain.Customization{cheddar}},
	)

	result := cart.Reduce(state, cart.RemoveLine{Key: domain.LineKey{MenuItemID: 1}})
	require.Len(t, result.Cart.Lines, 1)
	assert.Equal(t, []domain.Customization{cheddar}, result.Cart.Lines[0].Customizations)
}

func TestReduce_UpdateQuantity(t *testing.T) {
	key := domain.LineKey{MenuItemID: 1, PortionSize: domain.PortionLarge, Customizations: []domain.Customization{cheddar}}

	tests := []struct {
		name      string
		key       domain.LineKey
		quantity  int
		wantLines int
		wantCount int
		changed   bool
	}{
		{name: "set quantity", key: key, quantity: 5, wantLines: 1, wantCount: 5, changed: true},
		{name: "same quantity", key: key, quantity: 2, wantLines: 1, wantCount: 2, changed: false},
		{name: "zero removes line", key: key, quantity: 0, wantLines: 0, wantCount: 0, changed: true},
		{name: "negative removes line", key: key, quantity: -3, wantLines: 0, wantCount: 0, changed: true},
		{name: "unknown key is a no-op", key: domain.LineKey{MenuItemID: 1}, quantity: 9, wantLines: 1, wantCount: 2, changed: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			state := reduceAll(cart.AddItem{
				MenuItem:       burger(),
				Quantity:       2,
				PortionSize:    domain.PortionLarge,
				Customizations: []domain.Customization{cheddar},
			})

			result := cart.Reduce(state, cart.UpdateQuantity{Key: testCase.key, Quantity: testCase.quantity})

			assert.Equal(t, testCase.changed, result.Changed)
			assert.Len(t, result.Cart.Lines, testCase.wantLines)
			assert.Equal(t, testCase.wantCount, cart.ItemCount(result.Cart))
		})
	}
}

func TestReduce_ClearIsTotal(t *testing.T) {
	state := reduceAll(
		cart.AddItem{MenuItem: burger(), Quantity: 3},
		cart.AddItem{MenuItem: salad(), Quantity: 1},
	)

	result := cart.Reduce(state, cart.Clear{})
	assert.True(t, result.Changed)
	assert.Empty(t, result.Cart.Lines)
	assert.Zero(t, result.Cart.RestaurantID)
	assert.Zero(t, cart.Subtotal(result.Cart))
	assert.Zero(t, cart.ItemCount(result.Cart))

	again := cart.Reduce(result.Cart, cart.Clear{})
	assert.False(t, again.Changed)
}

func TestReduce_SetRestaurant(t *testing.T) {
	state := reduceAll(cart.AddItem{MenuItem: burger(), Quantity: 1})

	same := cart.Reduce(state, cart.SetRestaurant{RestaurantID: 10})
	assert.False(t, same.Changed)
	assert.Len(t, same.Cart.Lines, 1)

	other := cart.Reduce(state, cart.SetRestaurant{RestaurantID: 20})
	assert.True(t, other.Changed)
	assert.Empty(t, other.Cart.Lines)
	assert.Equal(t, 20, other.Cart.RestaurantID)
}

func TestSubtotal(t *testing.T) {
	tests := []struct {
		name string
		add  cart.AddItem
		want float64
	}{
		{
			name: "large portion with customization",
			add:  cart.AddItem{MenuItem: burger(), Quantity: 2, PortionSize: domain.PortionLarge, Customizations: []domain.Customization{cheddar}},
			want: 31.00,
		},
		{
			name: "no portion uses base price",
			add:  cart.AddItem{MenuItem: burger(), Quantity: 3},
			want: 30.00,
		},
		{
			name: "portion missing from table uses base price",
			add:  cart.AddItem{MenuItem: burger(), Quantity: 1, PortionSize: domain.PortionSmall},
			want: 10.00,
		},
		{
			name: "portion on item without a table uses base price",
			add:  cart.AddItem{MenuItem: salad(), Quantity: 2, PortionSize: domain.PortionLarge},
			want: 14.50,
		},
		{
			name: "several customizations",
			add:  cart.AddItem{MenuItem: burger(), Quantity: 1, PortionSize: domain.PortionRegular, Customizations: []domain.Customization{cheddar, bbq}},
			want: 12.00,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			state := reduceAll(testCase.add)
			assert.InDelta(t, testCase.want, cart.Subtotal(state), 1e-9)
		})
	}
}

func TestItemCountSumsQuantities(t *testing.T) {
	assert.Equal(t, 0, cart.ItemCount(domain.Cart{}))

	state := reduceAll(
		cart.AddItem{MenuItem: burger(), Quantity: 2},
		cart.AddItem{MenuItem: burger(), Quantity: 1, Customizations: []domain.Customization{bbq}},
		cart.AddItem{MenuItem: salad(), Quantity: 4},
	)
	assert.Equal(t, 7, cart.ItemCount(state))
}

func TestKeysEqual(t *testing.T) {
	a := domain.LineKey{MenuItemID: 1, PortionSize: domain.PortionLarge, Customizations: []domain.Customization{cheddar, bbq}}

	assert.True(t, cart.KeysEqual(a, domain.LineKey{MenuItemID: 1, PortionSize: domain.PortionLarge, Customizations: []domain.Customization{cheddar, bbq}}))
	assert.False(t, cart.KeysEqual(a, domain.LineKey{MenuItemID: 1, PortionSize: domain.PortionLarge, Customizations: []domain.Customization{bbq, cheddar}}))
	assert.False(t, cart.KeysEqual(a, domain.LineKey{MenuItemID: 2, PortionSize: domain.PortionLarge, Customizations: []domain.Customization{cheddar, bbq}}))
	assert.True(t, cart.CustomizationsEqual(nil, []domain.Customization{}))
}
