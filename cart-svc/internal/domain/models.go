package domain

import "time"

type Restaurant struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type PortionSize string

const (
	PortionSmall   PortionSize = "SMALL"
	PortionRegular PortionSize = "REGULAR"
	PortionLarge   PortionSize = "LARGE"
)

type PortionPrice struct {
	Size  PortionSize `json:"size"`
	Price float64     `json:"price"`
}

type CustomizationOption struct {
	Name   string  `json:"name"`
	Option string  `json:"option"`
	Price  float64 `json:"price"`
}

// MenuItem is the catalog snapshot copied into a cart line at add time.
type MenuItem struct {
	ID             int                   `json:"dish_id"`
	RestaurantID   int                   `json:"restaurant_id"`
	Name           string                `json:"name"`
	Description    string                `json:"description,omitempty"`
	ImageURL       string                `json:"image_url,omitempty"`
	Price          float64               `json:"price"`
	PortionSizes   []PortionPrice        `json:"portion_sizes,omitempty"`
	Customizations []CustomizationOption `json:"customizations,omitempty"`
}

// PortionPrice returns the price listed for size, if the item declares it.
func (m MenuItem) PortionPrice(size PortionSize) (float64, bool) {
	for _, p := range m.PortionSizes {
		if p.Size == size {
			return p.Price, true
		}
	}
	return 0, false
}

// CustomizationPrice returns the price of the named option, if the item offers it.
func (m MenuItem) CustomizationPrice(name, option string) (float64, bool) {
	for _, c := range m.Customizations {
		if c.Name == name && c.Option == option {
			return c.Price, true
		}
	}
	return 0, false
}

type Customization struct {
	Name   string  `json:"name"`
	Option string  `json:"option"`
	Price  float64 `json:"price"`
}

type CartLine struct {
	MenuItem            MenuItem        `json:"menu_item"`
	Quantity            int             `json:"quantity"`
	PortionSize         PortionSize     `json:"portion_size,omitempty"`
	Customizations      []Customization `json:"customizations"`
	SpecialInstructions string          `json:"special_instructions,omitempty"`
}

func (l CartLine) Key() LineKey {
	return LineKey{
		MenuItemID:     l.MenuItem.ID,
		PortionSize:    l.PortionSize,
		Customizations: l.Customizations,
	}
}

// LineKey identifies a cart line: two additions with equal keys merge.
type LineKey struct {
	MenuItemID     int             `json:"dish_id"`
	PortionSize    PortionSize     `json:"portion_size,omitempty"`
	Customizations []Customization `json:"customizations"`
}

// Cart holds lines for a single restaurant. RestaurantID 0 means no restaurant.
type Cart struct {
	RestaurantID int        `json:"restaurant_id,omitempty"`
	Lines        []CartLine `json:"lines"`
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// CartView is the read-only snapshot handed to pages and checkout.
type CartView struct {
	SessionID    string     `json:"session_id"`
	RestaurantID int        `json:"restaurant_id,omitempty"`
	Lines        []CartLine `json:"lines"`
	Subtotal     float64    `json:"subtotal"`
	Tax          float64    `json:"tax"`
	Total        float64    `json:"total"`
	ItemCount    int        `json:"item_count"`
	Degraded     bool       `json:"degraded,omitempty"`
}

type Order struct {
	ID           int         `json:"id"`
	SessionID    string      `json:"session_id"`
	RestaurantID int         `json:"restaurant_id"`
	TableNumber  int         `json:"table_number,omitempty"`
	Notes        string      `json:"notes,omitempty"`
	Subtotal     float64     `json:"subtotal"`
	Tax          float64     `json:"tax"`
	TotalAmount  float64     `json:"total_amount"`
	Status       string      `json:"status"`
	QRLink       string      `json:"qr_link,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	Items        []OrderItem `json:"items"`
}

type OrderItem struct {
	DishID              int             `json:"dish_id"`
	DishName            string          `json:"dish_name"`
	Quantity            int             `json:"quantity"`
	Price               float64         `json:"price"`
	PortionSize         PortionSize     `json:"portion_size,omitempty"`
	Customizations      []Customization `json:"customizations,omitempty"`
	SpecialInstructions string          `json:"special_instructions,omitempty"`
}

type CartEvent struct {
	Type         string    `json:"type"`
	Action       string    `json:"action,omitempty"`
	SessionID    string    `json:"session_id"`
	RestaurantID int       `json:"restaurant_id"`
	OrderID      int       `json:"order_id,omitempty"`
	ItemCount    int       `json:"item_count"`
	Subtotal     float64   `json:"subtotal"`
	Timestamp    time.Time `json:"timestamp"`
}

// OrderEvent is consumed from the order topic.
type OrderEvent struct {
	Type      string    `json:"type"`
	SessionID string    `json:"session_id"`
	OrderID   int       `json:"order_id"`
	Timestamp time.Time `json:"timestamp"`
}
