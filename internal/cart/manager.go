package cart

import (
	"context"
	"sync"
)

// Backend provides the storage slot and broadcast channel for a
// profile. Implementations: in-memory (dev, tests) and Redis.
type Backend interface {
	Storage(profile string) Storage
	Bus(profile string) Bus
}

// MemoryBackend keeps every profile's slot and bus in process memory.
type MemoryBackend struct {
	mu       sync.Mutex
	storages map[string]*MemoryStorage
	buses    map[string]*MemoryBus
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		storages: make(map[string]*MemoryStorage),
		buses:    make(map[string]*MemoryBus),
	}
}

func (b *MemoryBackend) Storage(profile string) Storage {
	b.mu.Lock()
	defer b.mu.Unlock()

	st, ok := b.storages[profile]
	if !ok {
		st = NewMemoryStorage()
		b.storages[profile] = st
	}
	return st
}

func (b *MemoryBackend) Bus(profile string) Bus {
	b.mu.Lock()
	defer b.mu.Unlock()

	bus, ok := b.buses[profile]
	if !ok {
		bus = NewMemoryBus()
		b.buses[profile] = bus
	}
	return bus
}

// Manager hands out one Store per profile within this process.
// Separate processes sharing the same backend converge through the
// storage slot and the bus.
type Manager struct {
	mu      sync.Mutex
	backend Backend
	fees    FeePolicy
	stores  map[string]*Store
}

func NewManager(backend Backend, fees FeePolicy) *Manager {
	return &Manager{
		backend: backend,
		fees:    fees,
		stores:  make(map[string]*Store),
	}
}

// Get returns the profile's store, creating and hydrating it on first
// access.
func (m *Manager) Get(ctx context.Context, profile string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.stores[profile]; ok {
		return s
	}
	s := NewStore(ctx, m.backend.Storage(profile), m.backend.Bus(profile), m.fees)
	m.stores[profile] = s
	return s
}
