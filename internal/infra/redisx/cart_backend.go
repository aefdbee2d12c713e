package redisx

import (
	"context"
	"errors"
	"sync"
	"time"

	"tunitest/internal/cart"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	cartKeyPrefix     = "tunitest:cart:"
	cartChannelPrefix = "tunitest:cart:events:"

	// Abandoned carts expire server-side after a month.
	cartTTL = 30 * 24 * time.Hour
)

// CartBackend stores cart slots as Redis keys and fans state out
// through Redis pub/sub, so every instance sharing the Redis sees the
// same carts.
type CartBackend struct {
	client *redis.Client
}

func NewCartBackend(client *redis.Client) *CartBackend {
	return &CartBackend{client: client}
}

func (b *CartBackend) Storage(profile string) cart.Storage {
	return &redisStorage{client: b.client, key: cartKeyPrefix + profile}
}

func (b *CartBackend) Bus(profile string) cart.Bus {
	return &redisBus{
		client:  b.client,
		channel: cartChannelPrefix + profile,
		subs:    make(map[int]func([]cart.Line)),
		logger:  log.WithField("component", "cart-redis-bus"),
	}
}

type redisStorage struct {
	client *redis.Client
	key    string
}

func (s *redisStorage) Load(ctx context.Context) ([]byte, bool, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (s *redisStorage) Save(ctx context.Context, raw []byte) error {
	return s.client.Set(ctx, s.key, raw, cartTTL).Err()
}

// redisBus bridges the profile's pub/sub channel to local callbacks.
// Redis delivers a published message back to the publishing process
// too, which is exactly the "notify every subscriber including the
// writer" contract of cart.Bus.
type redisBus struct {
	client  *redis.Client
	channel string
	logger  *log.Entry

	mu     sync.Mutex
	subs   map[int]func([]cart.Line)
	next   int
	pubsub *redis.PubSub
}

func (b *redisBus) Publish(ctx context.Context, lines []cart.Line) error {
	raw, err := cart.EncodeLines(lines)
	if err != nil {
		return err
	}
	return b.client.Publish(ctx, b.channel, raw).Err()
}

func (b *redisBus) Subscribe(fn func(lines []cart.Line)) func() {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = fn

	if b.pubsub == nil {
		b.pubsub = b.client.Subscribe(context.Background(), b.channel)
		go b.listen(b.pubsub)
	}
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		if len(b.subs) == 0 && b.pubsub != nil {
			_ = b.pubsub.Close()
			b.pubsub = nil
		}
		b.mu.Unlock()
	}
}

func (b *redisBus) listen(pubsub *redis.PubSub) {
	for msg := range pubsub.Channel() {
		lines, err := cart.DecodeLines([]byte(msg.Payload))
		if err != nil {
			b.logger.WithError(err).Warn("dropping unreadable cart broadcast")
			continue
		}

		b.mu.Lock()
		fns := make([]func([]cart.Line), 0, len(b.subs))
		for _, fn := range b.subs {
			fns = append(fns, fn)
		}
		b.mu.Unlock()

		for _, fn := range fns {
			out := make([]cart.Line, len(lines))
			copy(out, lines)
			fn(out)
		}
	}
}
