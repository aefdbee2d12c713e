package cart

import (
	"context"
	"errors"
	"sync"
)

// ErrBadPayload marks a persisted slot whose content cannot be used
// (malformed JSON or unknown version). Readers fall back to an empty cart.
var ErrBadPayload = errors.New("cart: bad payload")

// Storage is the durable slot holding one profile's serialized cart.
type Storage interface {
	// Load returns the raw payload and whether the slot exists.
	Load(ctx context.Context) ([]byte, bool, error)
	Save(ctx context.Context, raw []byte) error
}

// MemoryStorage keeps the slot in process memory. Used in tests and
// when no Redis address is configured.
type MemoryStorage struct {
	mu     sync.RWMutex
	raw    []byte
	exists bool
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Load(_ context.Context) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.exists {
		return nil, false, nil
	}
	out := make([]byte, len(s.raw))
	copy(out, s.raw)
	return out, true, nil
}

func (s *MemoryStorage) Save(_ context.Context, raw []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.raw = make([]byte, len(raw))
	copy(s.raw, raw)
	s.exists = true
	return nil
}
