// Package cart implements the cart engine: a pure reducer over domain.Cart
// plus a stateful Engine that persists every change and notifies listeners.
package cart

import "overcooked-cart/cart-svc/internal/domain"

// Action is a cart state transition understood by Reduce.
type Action interface {
	name() string
}

type AddItem struct {
	MenuItem            domain.MenuItem
	Quantity            int
	PortionSize         domain.PortionSize
	Customizations      []domain.Customization
	SpecialInstructions string
}

// RemoveItem drops every line built from the menu item, whatever its variant.
type RemoveItem struct {
	MenuItemID int
}

type RemoveLine struct {
	Key domain.LineKey
}

type UpdateQuantity struct {
	Key      domain.LineKey
	Quantity int
}

type Clear struct{}

type SetRestaurant struct {
	RestaurantID int
}

func (AddItem) name() string        { return "add_item" }
func (RemoveItem) name() string     { return "remove_item" }
func (RemoveLine) name() string     { return "remove_line" }
func (UpdateQuantity) name() string { return "update_quantity" }
func (Clear) name() string          { return "clear" }
func (SetRestaurant) name() string  { return "set_restaurant" }

type Result struct {
	Cart     domain.Cart
	Changed  bool
	Replaced bool
}

// Reduce applies action to state and returns the next state. state is not modified.
func Reduce(state domain.Cart, action Action) Result {
	next := copyCart(state)

	switch a := action.(type) {
	case AddItem:
		return addItem(next, a)

	case RemoveItem:
		kept := next.Lines[:0]
		for _, line := range next.Lines {
			if line.MenuItem.ID != a.MenuItemID {
				kept = append(kept, line)
			}
		}
		if len(kept) == len(state.Lines) {
			return Result{Cart: next}
		}
		next.Lines = kept
		return Result{Cart: settle(next), Changed: true}

	case RemoveLine:
		idx := findLine(next.Lines, a.Key)
		if idx < 0 {
			return Result{Cart: next}
		}
		next.Lines = append(next.Lines[:idx], next.Lines[idx+1:]...)
		return Result{Cart: settle(next), Changed: true}

	case UpdateQuantity:
		idx := findLine(next.Lines, a.Key)
		if idx < 0 {
			return Result{Cart: next}
		}
		if a.Quantity <= 0 {
			next.Lines = append(next.Lines[:idx], next.Lines[idx+1:]...)
			return Result{Cart: settle(next), Changed: true}
		}
		changed := next.Lines[idx].Quantity != a.Quantity
		next.Lines[idx].Quantity = a.Quantity
		return Result{Cart: next, Changed: changed}

	case Clear:
		changed := next.RestaurantID != 0 || len(next.Lines) > 0
		return Result{Cart: domain.Cart{Lines: []domain.CartLine{}}, Changed: changed}

	case SetRestaurant:
		if next.RestaurantID == a.RestaurantID {
			return Result{Cart: next}
		}
		return Result{Cart: domain.Cart{RestaurantID: a.RestaurantID, Lines: []domain.CartLine{}}, Changed: true}
	}

	return Result{Cart: next}
}

func addItem(next domain.Cart, a AddItem) Result {
	var replaced bool
	restaurantID := a.MenuItem.RestaurantID

	key := domain.LineKey{
		MenuItemID:     a.MenuItem.ID,
		PortionSize:    a.PortionSize,
		Customizations: a.Customizations,
	}

	// A non-positive delta only ever adjusts an existing line.
	if a.Quantity <= 0 && (next.RestaurantID != restaurantID || findLine(next.Lines, key) < 0) {
		return Result{Cart: next}
	}

	if len(next.Lines) > 0 && next.RestaurantID != restaurantID {
		next.Lines = []domain.CartLine{}
		replaced = true
	}
	changed := replaced || next.RestaurantID != restaurantID
	next.RestaurantID = restaurantID

	if idx := findLine(next.Lines, key); idx >= 0 {
		quantity := next.Lines[idx].Quantity + a.Quantity
		if quantity <= 0 {
			next.Lines = append(next.Lines[:idx], next.Lines[idx+1:]...)
		} else {
			next.Lines[idx].Quantity = quantity
		}
		return Result{Cart: settle(next), Changed: changed || a.Quantity != 0, Replaced: replaced}
	}

	next.Lines = append(next.Lines, domain.CartLine{
		MenuItem:            copyMenuItem(a.MenuItem),
		Quantity:            a.Quantity,
		PortionSize:         a.PortionSize,
		Customizations:      copyCustomizations(a.Customizations),
		SpecialInstructions: a.SpecialInstructions,
	})
	return Result{Cart: next, Changed: true, Replaced: replaced}
}

// settle drops the restaurant once removals leave the cart without lines.
func settle(c domain.Cart) domain.Cart {
	if len(c.Lines) == 0 {
		c.RestaurantID = 0
	}
	return c
}

func findLine(lines []domain.CartLine, key domain.LineKey) int {
	for i, line := range lines {
		if KeysEqual(line.Key(), key) {
			return i
		}
	}
	return -1
}

// KeysEqual reports whether two line keys identify the same line.
func KeysEqual(a, b domain.LineKey) bool {
	return a.MenuItemID == b.MenuItemID &&
		a.PortionSize == b.PortionSize &&
		CustomizationsEqual(a.Customizations, b.Customizations)
}

// CustomizationsEqual compares two selections element by element; order matters.
func CustomizationsEqual(a, b []domain.Customization) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// EffectivePrice is the portion price when the line's size is listed for the
// item, otherwise the item's base price.
func EffectivePrice(line domain.CartLine) float64 {
	if line.PortionSize != "" {
		if price, ok := line.MenuItem.PortionPrice(line.PortionSize); ok {
			return price
		}
	}
	return line.MenuItem.Price
}

// UnitPrice is the effective price plus every selected customization.
func UnitPrice(line domain.CartLine) float64 {
	price := EffectivePrice(line)
	for _, c := range line.Customizations {
		price += c.Price
	}
	return price
}

func LineTotal(line domain.CartLine) float64 {
	return UnitPrice(line) * float64(line.Quantity)
}

func Subtotal(c domain.Cart) float64 {
	var subtotal float64
	for _, line := range c.Lines {
		subtotal += LineTotal(line)
	}
	return subtotal
}

func ItemCount(c domain.Cart) int {
	var count int
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

func copyCart(c domain.Cart) domain.Cart {
	lines := make([]domain.CartLine, len(c.Lines))
	for i, line := range c.Lines {
		line.MenuItem = copyMenuItem(line.MenuItem)
		line.Customizations = copyCustomizations(line.Customizations)
		lines[i] = line
	}
	return domain.Cart{RestaurantID: c.RestaurantID, Lines: lines}
}

func copyMenuItem(m domain.MenuItem) domain.MenuItem {
	if m.PortionSizes != nil {
		m.PortionSizes = append([]domain.PortionPrice(nil), m.PortionSizes...)
	}
	if m.Customizations != nil {
		m.Customizations = append([]domain.CustomizationOption(nil), m.Customizations...)
	}
	return m
}

func copyCustomizations(cs []domain.Customization) []domain.Customization {
	out := make([]domain.Customization, len(cs))
	copy(out, cs)
	return out
}
