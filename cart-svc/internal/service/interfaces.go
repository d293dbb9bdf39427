package service

import (
	"context"

	"overcooked-cart/cart-svc/internal/cart"
	"overcooked-cart/cart-svc/internal/domain"
	"overcooked-cart/cart-svc/internal/storage"
)

type MenuCatalog interface {
	GetMenuItem(ctx context.Context, restaurantID, dishID int) (*domain.MenuItem, error)
}

// MenuRepository is the read side of the catalog served to browsing pages.
type MenuRepository interface {
	MenuCatalog
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	ListMenu(ctx context.Context, restaurantID int) ([]domain.MenuItem, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, orderID int) (*domain.Order, error)
	SaveQRCode(ctx context.Context, orderID int, qr []byte) error
	GetQRCode(ctx context.Context, orderID int) ([]byte, error)
}

// CartStore hands out the snapshot slot for a session.
type CartStore interface {
	Session(sessionID string) cart.Store
}

type EventPublisher interface {
	PublishCartEvent(ctx context.Context, msg domain.CartEvent) error
}

type CartServiceInterface interface {
	NewSession() string
	Get(ctx context.Context, sessionID string) (domain.CartView, error)
	AddItem(ctx context.Context, sessionID string, req AddItemRequest) (domain.CartView, error)
	UpdateQuantity(ctx context.Context, sessionID string, key domain.LineKey, quantity int) (domain.CartView, error)
	RemoveLine(ctx context.Context, sessionID string, key domain.LineKey) (domain.CartView, error)
	RemoveItem(ctx context.Context, sessionID string, dishID int) (domain.CartView, error)
	SetRestaurant(ctx context.Context, sessionID string, restaurantID int) (domain.CartView, error)
	Clear(ctx context.Context, sessionID string) (domain.CartView, error)
	Checkout(ctx context.Context, sessionID string, req CheckoutRequest) (*domain.Order, error)
	Order(ctx context.Context, orderID int) (*domain.Order, error)
	OrderQRCode(ctx context.Context, orderID int) ([]byte, error)
}

type MenuServiceInterface interface {
	Restaurants(ctx context.Context) ([]domain.Restaurant, error)
	Menu(ctx context.Context, restaurantID int) ([]domain.MenuItem, error)
	MenuItem(ctx context.Context, restaurantID, dishID int) (*domain.MenuItem, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessOrderEvent(ctx context.Context, msg domain.OrderEvent)
}

var (
	_ MenuRepository  = (*storage.PostgresRepository)(nil)
	_ OrderRepository = (*storage.PostgresRepository)(nil)
	_ CartStore       = (*storage.RedisCache)(nil)
	_ CartStore       = (*cart.MemoryStores)(nil)
	_ EventPublisher  = (*storage.KafkaPublisher)(nil)
)
