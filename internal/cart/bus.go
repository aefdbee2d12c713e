package cart

import (
	"context"
	"sync"
)

// Bus fans a full cart state out to every subscriber of the same
// profile, including the one that just published. A single signal
// covers both the same-view and the cross-view case, so no consumer
// depends on two different notification types for one logical event.
type Bus interface {
	Publish(ctx context.Context, lines []Line) error
	// Subscribe registers fn and returns a cancel func.
	Subscribe(fn func(lines []Line)) (cancel func())
}

// MemoryBus is the in-process Bus. Callbacks run synchronously on the
// publisher's goroutine.
type MemoryBus struct {
	mu   sync.RWMutex
	subs map[int]func([]Line)
	next int
}

func NewMemoryBus() *MemoryBus {
	return &MemoryBus{subs: make(map[int]func([]Line))}
}

func (b *MemoryBus) Publish(_ context.Context, lines []Line) error {
	b.mu.RLock()
	fns := make([]func([]Line), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		out := make([]Line, len(lines))
		copy(out, lines)
		fn(out)
	}
	return nil
}

func (b *MemoryBus) Subscribe(fn func(lines []Line)) func() {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}
