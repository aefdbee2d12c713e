package cart

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// FeePolicy computes the delivery fee from the subtotal. Delivery is
// free at or above FreeThreshold; below it a flat DeliveryFee applies.
// A zero DeliveryFee makes Total equal Subtotal.
type FeePolicy struct {
	DeliveryFee   float64
	FreeThreshold float64
}

func (p FeePolicy) Fee(subtotal float64) float64 {
	if subtotal <= 0 {
		return 0
	}
	if p.FreeThreshold > 0 && subtotal >= p.FreeThreshold {
		return 0
	}
	return p.DeliveryFee
}

// Store is the authoritative view of one profile's cart. Every
// mutation persists the full state and broadcasts it on the bus;
// storage and broadcast failures are logged and swallowed, the
// in-memory state stays authoritative for the current view.
//
// Writes are last-writer-wins across views: a broadcast received from
// another view replaces the local state wholesale, no merging.
type Store struct {
	mu    sync.RWMutex
	lines []Line

	storage Storage
	bus     Bus
	fees    FeePolicy
	logger  *log.Entry
	cancel  func()
}

// NewStore loads the persisted slot (corrupt or missing data yields an
// empty cart) and subscribes to the bus.
func NewStore(ctx context.Context, storage Storage, bus Bus, fees FeePolicy) *Store {
	s := &Store{
		storage: storage,
		bus:     bus,
		fees:    fees,
		lines:   []Line{},
		logger:  log.WithField("component", "cart-store"),
	}

	raw, ok, err := storage.Load(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("cart load failed, starting empty")
	} else if ok {
		lines, err := DecodeLines(raw)
		if err != nil {
			s.logger.WithError(err).Warn("persisted cart unreadable, starting empty")
		} else {
			s.lines = lines
		}
	}

	s.cancel = bus.Subscribe(s.replace)
	return s
}

// Close detaches the store from the bus.
func (s *Store) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Add merges by book id: an existing line gets its quantity increased,
// otherwise a new line is appended. qty must be >= 1; callers enforce it.
func (s *Store) Add(ctx context.Context, item Item, qty int64) {
	s.mu.Lock()
	for i := range s.lines {
		if s.lines[i].Item.BookID == item.BookID {
			s.lines[i].Quantity += qty
			snapshot := s.copyLocked()
			s.mu.Unlock()
			s.sync(ctx, snapshot)
			return
		}
	}
	s.lines = append(s.lines, Line{Item: item, Quantity: qty})
	snapshot := s.copyLocked()
	s.mu.Unlock()
	s.sync(ctx, snapshot)
}

// Remove deletes the line for bookID. Absent id is a no-op, not an error.
func (s *Store) Remove(ctx context.Context, bookID string) {
	s.mu.Lock()
	kept := s.lines[:0]
	for _, ln := range s.lines {
		if ln.Item.BookID != bookID {
			kept = append(kept, ln)
		}
	}
	s.lines = kept
	snapshot := s.copyLocked()
	s.mu.Unlock()
	s.sync(ctx, snapshot)
}

// SetQuantity sets the absolute quantity for bookID. A quantity of
// zero or less removes the line entirely.
func (s *Store) SetQuantity(ctx context.Context, bookID string, qty int64) {
	if qty <= 0 {
		s.Remove(ctx, bookID)
		return
	}

	s.mu.Lock()
	for i := range s.lines {
		if s.lines[i].Item.BookID == bookID {
			s.lines[i].Quantity = qty
		}
	}
	snapshot := s.copyLocked()
	s.mu.Unlock()
	s.sync(ctx, snapshot)
}

// Clear empties the cart. Called after a confirmed order.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.lines = []Line{}
	snapshot := s.copyLocked()
	s.mu.Unlock()
	s.sync(ctx, snapshot)
}

// Lines returns the entries in insertion order.
func (s *Store) Lines() []Line {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyLocked()
}

// Count is the number of distinct lines, for the header badge.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lines)
}

// Subtotal is recomputed from the lines on every read.
func (s *Store) Subtotal() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum float64
	for _, ln := range s.lines {
		sum += ln.Item.UnitPrice * float64(ln.Quantity)
	}
	return sum
}

func (s *Store) DeliveryFee() float64 {
	return s.fees.Fee(s.Subtotal())
}

func (s *Store) Total() float64 {
	sub := s.Subtotal()
	return sub + s.fees.Fee(sub)
}

// sync persists and broadcasts after a local mutation. Both are best
// effort: a failure never rolls back the in-memory state.
func (s *Store) sync(ctx context.Context, lines []Line) {
	raw, err := EncodeLines(lines)
	if err != nil {
		s.logger.WithError(err).Warn("cart encode failed")
		return
	}
	if err := s.storage.Save(ctx, raw); err != nil {
		s.logger.WithError(err).Warn("cart save failed")
	}
	if err := s.bus.Publish(ctx, lines); err != nil {
		s.logger.WithError(err).Warn("cart broadcast failed")
	}
}

// replace applies a broadcast state. It neither persists nor
// re-publishes, so the writer receiving its own broadcast is idempotent
// and no feedback loop forms.
func (s *Store) replace(lines []Line) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = lines
}

func (s *Store) copyLocked() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}
