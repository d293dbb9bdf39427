package cart

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"overcooked-cart/cart-svc/internal/domain"
)

type EventType string

const (
	EventItemAdded       EventType = "item_added"
	EventCartReplaced    EventType = "cart_replaced"
	EventItemRemoved     EventType = "item_removed"
	EventLineRemoved     EventType = "line_removed"
	EventQuantityUpdated EventType = "quantity_updated"
	EventCartCleared     EventType = "cart_cleared"
	EventRestaurantSet   EventType = "restaurant_set"
)

type Event struct {
	Type                 EventType
	Cart                 domain.Cart
	PreviousRestaurantID int
	Replaced             bool
}

type Listener func(Event)

type Option func(*Engine)

func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithListener subscribes l before the engine is handed out.
func WithListener(l Listener) Option {
	return func(e *Engine) {
		e.subscribe(l)
	}
}

// Engine owns one cart. Every change is written through to its Store before
// the mutating call returns; if the store fails the engine keeps working in
// memory and stops writing.
type Engine struct {
	mu        sync.Mutex
	state     domain.Cart
	store     Store
	logger    *zap.Logger
	degraded  bool
	listeners map[int]Listener
	nextID    int
}

func NewEngine(store Store, opts ...Option) *Engine {
	e := &Engine{
		state:     domain.Cart{Lines: []domain.CartLine{}},
		store:     store,
		logger:    zap.NewNop(),
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(e)
	}
	if store == nil {
		e.degraded = true
	}
	return e
}

// Load builds an engine from whatever store holds. Missing or unreadable
// snapshots give an empty cart; a failing store gives an empty, degraded one.
func Load(ctx context.Context, store Store, opts ...Option) *Engine {
	e := NewEngine(store, opts...)
	if e.degraded {
		return e
	}

	data, err := store.Load(ctx)
	if err != nil {
		e.logger.Warn("cart store unavailable, continuing in memory", zap.Error(err))
		e.degraded = true
		return e
	}
	if data == nil {
		return e
	}

	c, err := Decode(data)
	if err != nil {
		e.logger.Warn("discarding unreadable cart snapshot", zap.Error(err))
		return e
	}
	e.state = c
	return e
}

func (e *Engine) Subscribe(l Listener) func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	id := e.subscribe(l)
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.listeners, id)
	}
}

func (e *Engine) subscribe(l Listener) int {
	id := e.nextID
	e.nextID++
	e.listeners[id] = l
	return id
}

// AddItem adds quantity units of the item; a zero quantity means one.
func (e *Engine) AddItem(ctx context.Context, a AddItem) {
	if a.Quantity == 0 {
		a.Quantity = 1
	}
	e.apply(ctx, a, EventItemAdded)
}

func (e *Engine) RemoveItem(ctx context.Context, menuItemID int) {
	e.apply(ctx, RemoveItem{MenuItemID: menuItemID}, EventItemRemoved)
}

func (e *Engine) RemoveLine(ctx context.Context, key domain.LineKey) {
	e.apply(ctx, RemoveLine{Key: key}, EventLineRemoved)
}

func (e *Engine) UpdateQuantity(ctx context.Context, key domain.LineKey, quantity int) {
	e.apply(ctx, UpdateQuantity{Key: key, Quantity: quantity}, EventQuantityUpdated)
}

func (e *Engine) Clear(ctx context.Context) {
	e.apply(ctx, Clear{}, EventCartCleared)
}

func (e *Engine) SetRestaurant(ctx context.Context, restaurantID int) {
	e.apply(ctx, SetRestaurant{RestaurantID: restaurantID}, EventRestaurantSet)
}

func (e *Engine) Snapshot() domain.Cart {
	e.mu.Lock()
	defer e.mu.Unlock()
	return copyCart(e.state)
}

func (e *Engine) Subtotal() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Subtotal(e.state)
}

func (e *Engine) ItemCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return ItemCount(e.state)
}

// Degraded reports whether the engine has stopped persisting.
func (e *Engine) Degraded() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.degraded
}

// Resume writes the in-memory state back to a store that failed earlier and,
// if that succeeds, turns persistence back on. It reports whether the engine
// is persisting again.
func (e *Engine) Resume(ctx context.Context) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.degraded {
		return true
	}
	if e.store == nil {
		return false
	}
	data, err := Encode(e.state)
	if err == nil {
		err = e.store.Save(ctx, data)
	}
	if err != nil {
		return false
	}
	e.degraded = false
	e.logger.Info("cart store reachable again, persistence resumed")
	return true
}

func (e *Engine) apply(ctx context.Context, action Action, eventType EventType) {
	e.mu.Lock()
	previous := e.state.RestaurantID
	result := Reduce(e.state, action)
	if !result.Changed {
		e.mu.Unlock()
		return
	}
	e.state = result.Cart
	e.persist(ctx, action)

	if result.Replaced {
		eventType = EventCartReplaced
		e.logger.Info("cart replaced for new restaurant",
			zap.Int("previous_restaurant_id", previous),
			zap.Int("restaurant_id", result.Cart.RestaurantID))
	}
	event := Event{
		Type:                 eventType,
		Cart:                 copyCart(e.state),
		PreviousRestaurantID: previous,
		Replaced:             result.Replaced,
	}
	listeners := make([]Listener, 0, len(e.listeners))
	for _, l := range e.listeners {
		listeners = append(listeners, l)
	}
	e.mu.Unlock()

	for _, l := range listeners {
		l(event)
	}
}

// persist must be called with e.mu held.
func (e *Engine) persist(ctx context.Context, action Action) {
	if e.degraded {
		return
	}
	data, err := Encode(e.state)
	if err == nil {
		err = e.store.Save(ctx, data)
	}
	if err != nil {
		e.degraded = true
		e.logger.Warn("cart persistence failed, continuing in memory",
			zap.String("action", action.name()),
			zap.Error(err))
	}
}
