package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"overcooked-cart/cart-svc/internal/cart"
	"overcooked-cart/cart-svc/internal/domain"
)

var (
	ErrMenuItemNotFound     = errors.New("menu item not found")
	ErrInvalidPortionSize   = errors.New("invalid portion size")
	ErrInvalidCustomization = errors.New("invalid customization")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrCartUnavailable      = errors.New("cart storage unavailable")
)

const (
	EventCartUpdated    = "cart_updated"
	EventCartCheckedOut = "cart_checked_out"
)

type CustomizationChoice struct {
	Name   string `json:"name"`
	Option string `json:"option"`
}

type AddItemRequest struct {
	RestaurantID        int                   `json:"restaurant_id"`
	DishID              int                   `json:"dish_id"`
	Quantity            int                   `json:"quantity"`
	PortionSize         domain.PortionSize    `json:"portion_size,omitempty"`
	Customizations      []CustomizationChoice `json:"customizations,omitempty"`
	SpecialInstructions string                `json:"special_instructions,omitempty"`
}

type CheckoutRequest struct {
	TableNumber int    `json:"table_number"`
	Notes       string `json:"notes"`
}

// CartService keeps one cart per session. Engines are rebuilt from the store
// on every call; only engines that lost their store after loading are held in
// memory, until the store takes writes again. Calls for one session run one
// at a time.
type CartService struct {
	catalog   MenuCatalog
	orders    OrderRepository
	store     CartStore
	publisher EventPublisher
	qrEncoder QRGenerator
	taxRate   float64
	logger    *zap.Logger

	mu       sync.Mutex
	degraded map[string]*cart.Engine
	sessions map[string]*sync.Mutex
}

func NewCartService(
	catalog MenuCatalog,
	orders OrderRepository,
	store CartStore,
	publisher EventPublisher,
	qr QRGenerator,
	taxRate float64,
	logger *zap.Logger,
) *CartService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if store == nil {
		store = cart.NewMemoryStores()
	}
	return &CartService{
		catalog:   catalog,
		orders:    orders,
		store:     store,
		publisher: publisher,
		qrEncoder: qr,
		taxRate:   taxRate,
		logger:    logger,
		degraded:  make(map[string]*cart.Engine),
		sessions:  make(map[string]*sync.Mutex),
	}
}

func (s *CartService) NewSession() string {
	return uuid.NewString()
}

func (s *CartService) Get(ctx context.Context, sessionID string) (domain.CartView, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	e, err := s.engine(ctx, sessionID)
	if err != nil {
		return domain.CartView{}, err
	}
	return s.view(sessionID, e), nil
}

func (s *CartService) AddItem(ctx context.Context, sessionID string, req AddItemRequest) (domain.CartView, error) {
	action, err := s.resolve(ctx, req)
	if err != nil {
		return domain.CartView{}, err
	}
	return s.mutate(ctx, sessionID, func(e *cart.Engine) {
		e.AddItem(ctx, action)
	})
}

func (s *CartService) UpdateQuantity(ctx context.Context, sessionID string, key domain.LineKey, quantity int) (domain.CartView, error) {
	return s.mutate(ctx, sessionID, func(e *cart.Engine) {
		e.UpdateQuantity(ctx, key, quantity)
	})
}

func (s *CartService) RemoveLine(ctx context.Context, sessionID string, key domain.LineKey) (domain.CartView, error) {
	return s.mutate(ctx, sessionID, func(e *cart.Engine) {
		e.RemoveLine(ctx, key)
	})
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID string, dishID int) (domain.CartView, error) {
	return s.mutate(ctx, sessionID, func(e *cart.Engine) {
		e.RemoveItem(ctx, dishID)
	})
}

func (s *CartService) SetRestaurant(ctx context.Context, sessionID string, restaurantID int) (domain.CartView, error) {
	return s.mutate(ctx, sessionID, func(e *cart.Engine) {
		e.SetRestaurant(ctx, restaurantID)
	})
}

func (s *CartService) Clear(ctx context.Context, sessionID string) (domain.CartView, error) {
	return s.mutate(ctx, sessionID, func(e *cart.Engine) {
		e.Clear(ctx)
	})
}

// Checkout turns the cart into an order and empties it. The order is the
// only thing that must succeed; QR storage and the event are best effort.
func (s *CartService) Checkout(ctx context.Context, sessionID string, req CheckoutRequest) (*domain.Order, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	e, err := s.engine(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	c := e.Snapshot()
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	subtotal := cart.Subtotal(c)
	tax := subtotal * s.taxRate
	order := &domain.Order{
		SessionID:    sessionID,
		RestaurantID: c.RestaurantID,
		TableNumber:  req.TableNumber,
		Notes:        req.Notes,
		Subtotal:     subtotal,
		Tax:          tax,
		TotalAmount:  subtotal + tax,
		Items:        make([]domain.OrderItem, 0, len(c.Lines)),
	}
	for _, line := range c.Lines {
		order.Items = append(order.Items, domain.OrderItem{
			DishID:              line.MenuItem.ID,
			DishName:            line.MenuItem.Name,
			Quantity:            line.Quantity,
			Price:               cart.UnitPrice(line),
			PortionSize:         line.PortionSize,
			Customizations:      line.Customizations,
			SpecialInstructions: line.SpecialInstructions,
		})
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.ID); err != nil {
			s.logger.Warn("failed to generate order qr code", zap.Int("order_id", order.ID), zap.Error(err))
		} else if err := s.orders.SaveQRCode(ctx, order.ID, qr); err != nil {
			s.logger.Warn("failed to save order qr code", zap.Int("order_id", order.ID), zap.Error(err))
		}
	}
	order.QRLink = s.QRLink(order.ID)

	s.publish(ctx, domain.CartEvent{
		Type:         EventCartCheckedOut,
		SessionID:    sessionID,
		RestaurantID: order.RestaurantID,
		OrderID:      order.ID,
		ItemCount:    cart.ItemCount(c),
		Subtotal:     subtotal,
		Timestamp:    time.Now().UTC(),
	})

	e.Clear(ctx)
	s.track(sessionID, e)

	s.logger.Info("cart checked out",
		zap.String("session_id", sessionID),
		zap.Int("order_id", order.ID),
		zap.Float64("total", order.TotalAmount),
	)
	return order, nil
}

// Order returns sql.ErrNoRows when the order does not exist.
func (s *CartService) Order(ctx context.Context, orderID int) (*domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order.QRLink = s.QRLink(order.ID)
	return order, nil
}

func (s *CartService) OrderQRCode(ctx context.Context, orderID int) ([]byte, error) {
	qr, err := s.orders.GetQRCode(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(orderID); err == nil {
			if err := s.orders.SaveQRCode(ctx, orderID, regenerated); err != nil {
				s.logger.Warn("failed to save regenerated qr code", zap.Int("order_id", orderID), zap.Error(err))
			}
			return regenerated, nil
		}
	}
	return qr, nil
}

func (s *CartService) QRLink(orderID int) string {
	return fmt.Sprintf("/api/orders/%d/qrcode", orderID)
}

func (s *CartService) resolve(ctx context.Context, req AddItemRequest) (cart.AddItem, error) {
	item, err := s.catalog.GetMenuItem(ctx, req.RestaurantID, req.DishID)
	if err != nil {
		return cart.AddItem{}, fmt.Errorf("get menu item: %w", err)
	}
	if item == nil {
		return cart.AddItem{}, ErrMenuItemNotFound
	}

	if req.PortionSize != "" {
		if _, ok := item.PortionPrice(req.PortionSize); !ok {
			return cart.AddItem{}, fmt.Errorf("%w: %s", ErrInvalidPortionSize, req.PortionSize)
		}
	}

	customizations := make([]domain.Customization, 0, len(req.Customizations))
	for _, choice := range req.Customizations {
		price, ok := item.CustomizationPrice(choice.Name, choice.Option)
		if !ok {
			return cart.AddItem{}, fmt.Errorf("%w: %s/%s", ErrInvalidCustomization, choice.Name, choice.Option)
		}
		customizations = append(customizations, domain.Customization{
			Name:   choice.Name,
			Option: choice.Option,
			Price:  price,
		})
	}

	return cart.AddItem{
		MenuItem:            *item,
		Quantity:            req.Quantity,
		PortionSize:         req.PortionSize,
		Customizations:      customizations,
		SpecialInstructions: req.SpecialInstructions,
	}, nil
}

func (s *CartService) mutate(ctx context.Context, sessionID string, fn func(e *cart.Engine)) (domain.CartView, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	e, err := s.engine(ctx, sessionID)
	if err != nil {
		return domain.CartView{}, err
	}
	unsubscribe := e.Subscribe(func(ev cart.Event) {
		s.publish(ctx, domain.CartEvent{
			Type:         EventCartUpdated,
			Action:       string(ev.Type),
			SessionID:    sessionID,
			RestaurantID: ev.Cart.RestaurantID,
			ItemCount:    cart.ItemCount(ev.Cart),
			Subtotal:     cart.Subtotal(ev.Cart),
			Timestamp:    time.Now().UTC(),
		})
	})
	defer unsubscribe()

	fn(e)
	s.track(sessionID, e)
	return s.view(sessionID, e), nil
}

func (s *CartService) lock(sessionID string) func() {
	s.mu.Lock()
	m, ok := s.sessions[sessionID]
	if !ok {
		m = &sync.Mutex{}
		s.sessions[sessionID] = m
	}
	s.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// engine must be called with the session lock held. A failed load returns
// ErrCartUnavailable; the stored cart is left untouched.
func (s *CartService) engine(ctx context.Context, sessionID string) (*cart.Engine, error) {
	s.mu.Lock()
	e, ok := s.degraded[sessionID]
	s.mu.Unlock()
	if ok {
		if e.Resume(ctx) {
			s.mu.Lock()
			delete(s.degraded, sessionID)
			s.mu.Unlock()
		}
		return e, nil
	}

	e = cart.Load(ctx, s.store.Session(sessionID), cart.WithLogger(s.logger.With(zap.String("session_id", sessionID))))
	if e.Degraded() {
		return nil, ErrCartUnavailable
	}
	return e, nil
}

// track keeps engines that stopped persisting after they were loaded, so the
// session carries on in memory.
func (s *CartService) track(sessionID string, e *cart.Engine) {
	if !e.Degraded() {
		return
	}
	s.mu.Lock()
	s.degraded[sessionID] = e
	s.mu.Unlock()
}

func (s *CartService) view(sessionID string, e *cart.Engine) domain.CartView {
	c := e.Snapshot()
	subtotal := cart.Subtotal(c)
	tax := subtotal * s.taxRate
	return domain.CartView{
		SessionID:    sessionID,
		RestaurantID: c.RestaurantID,
		Lines:        c.Lines,
		Subtotal:     subtotal,
		Tax:          tax,
		Total:        subtotal + tax,
		ItemCount:    cart.ItemCount(c),
		Degraded:     e.Degraded(),
	}
}

func (s *CartService) publish(ctx context.Context, msg domain.CartEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishCartEvent(ctx, msg); err != nil {
		s.logger.Warn("failed to publish cart event",
			zap.String("type", msg.Type),
			zap.String("session_id", msg.SessionID),
			zap.Error(err),
		)
	}
}

var _ CartServiceInterface = (*CartService)(nil)
