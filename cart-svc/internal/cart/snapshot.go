package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"overcooked-cart/cart-svc/internal/domain"
)

const snapshotVersion = 1

var (
	ErrSnapshotVersion = errors.New("unsupported cart snapshot version")
	ErrSnapshotInvalid = errors.New("cart snapshot violates cart invariants")
)

// Store is the key-value slot a single cart is persisted under.
// Load returns nil, nil when nothing has been stored yet.
type Store interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

type snapshot struct {
	Version int         `json:"version"`
	State   domain.Cart `json:"state"`
}

func Encode(c domain.Cart) ([]byte, error) {
	if c.Lines == nil {
		c.Lines = []domain.CartLine{}
	}
	return json.Marshal(snapshot{Version: snapshotVersion, State: c})
}

func Decode(data []byte) (domain.Cart, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return domain.Cart{}, fmt.Errorf("decode cart snapshot: %w", err)
	}
	if snap.Version != snapshotVersion {
		return domain.Cart{}, fmt.Errorf("%w: %d", ErrSnapshotVersion, snap.Version)
	}

	c := snap.State
	if c.Lines == nil {
		c.Lines = []domain.CartLine{}
	}
	for i, line := range c.Lines {
		if line.Quantity <= 0 || line.MenuItem.RestaurantID != c.RestaurantID {
			return domain.Cart{}, ErrSnapshotInvalid
		}
		if line.Customizations == nil {
			c.Lines[i].Customizations = []domain.Customization{}
		}
		for _, earlier := range c.Lines[:i] {
			if KeysEqual(earlier.Key(), c.Lines[i].Key()) {
				return domain.Cart{}, ErrSnapshotInvalid
			}
		}
	}
	return c, nil
}

// MemoryStore keeps the snapshot in process memory.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, nil
	}
	return append([]byte(nil), s.data...), nil
}

func (s *MemoryStore) Save(ctx context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
	return nil
}

// MemoryStores hands out one MemoryStore per session. It stands in for Redis
// when no cache is configured.
type MemoryStores struct {
	mu     sync.Mutex
	stores map[string]*MemoryStore
}

func NewMemoryStores() *MemoryStores {
	return &MemoryStores{stores: make(map[string]*MemoryStore)}
}

func (m *MemoryStores) Session(sessionID string) Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.stores[sessionID]
	if !ok {
		s = NewMemoryStore()
		m.stores[sessionID] = s
	}
	return s
}
