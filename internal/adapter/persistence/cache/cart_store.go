package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"bemu_storefront/internal/domain/entities"
	"bemu_storefront/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	cartKeyPrefix = "cart:"

	// cartUpdateAttempts bounds optimistic retries when another writer touches the cart.
	cartUpdateAttempts = 10
)

var ErrCartUpdateConflict = errors.New("cart changed concurrently, retries exhausted")

// RedisCartStore keeps each cart as a JSON document under cart:<id>. Every save
// refreshes the TTL.
type RedisCartStore struct {
	redis *redis.Client
	ttl   time.Duration
}

var _ interfaces.ICartStore = (*RedisCartStore)(nil)

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{redis: client, ttl: ttl}
}

func (s *RedisCartStore) Get(ctx context.Context, id string) (entities.Cart, error) {
	cart, err := decodeCart(s.redis.Get(ctx, cartKeyPrefix+id).Bytes())
	if err != nil {
		return entities.Cart{}, fmt.Errorf("get cart %s: %w", id, err)
	}
	return cart, nil
}

func (s *RedisCartStore) Save(ctx context.Context, cart entities.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	if err := s.redis.Set(ctx, cartKeyPrefix+cart.ID, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save cart %s: %w", cart.ID, err)
	}
	return nil
}

func (s *RedisCartStore) Delete(ctx context.Context, id string) error {
	return s.redis.Del(ctx, cartKeyPrefix+id).Err()
}

// Update runs fn under WATCH so a concurrent write to the same cart aborts the
// transaction and the read-modify-write starts over.
func (s *RedisCartStore) Update(ctx context.Context, id string, fn interfaces.CartMutation) (entities.Cart, error) {
	key := cartKeyPrefix + id
	var result entities.Cart
	var fnErr error

	txf := func(tx *redis.Tx) error {
		cart, err := decodeCart(tx.Get(ctx, key).Bytes())
		if err != nil {
			return fmt.Errorf("get cart %s: %w", id, err)
		}
		result = cart
		working := cloneCart(cart)
		if fnErr = fn(&working); fnErr != nil {
			return nil
		}
		raw, err := json.Marshal(working)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, raw, s.ttl)
			return nil
		})
		if err == nil {
			result = working
		}
		return err
	}

	for i := 0; i < cartUpdateAttempts; i++ {
		fnErr = nil
		err := s.redis.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return entities.Cart{}, fmt.Errorf("update cart %s: %w", id, err)
		}
		return result, fnErr
	}
	return entities.Cart{}, fmt.Errorf("update cart %s: %w", id, ErrCartUpdateConflict)
}

func decodeCart(raw []byte, err error) (entities.Cart, error) {
	if errors.Is(err, redis.Nil) {
		return entities.Cart{}, nil
	}
	if err != nil {
		return entities.Cart{}, err
	}
	var cart entities.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return entities.Cart{}, err
	}
	return cart, nil
}

// MemoryCartStore is used when Redis is not configured. Carts do not survive a restart
// and are not shared between instances.
type MemoryCartStore struct {
	mu    sync.RWMutex
	carts map[string]entities.Cart
}

var _ interfaces.ICartStore = (*MemoryCartStore)(nil)

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[string]entities.Cart)}
}

func (s *MemoryCartStore) Get(_ context.Context, id string) (entities.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneCart(s.carts[id]), nil
}

func (s *MemoryCartStore) Save(_ context.Context, cart entities.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[cart.ID] = cloneCart(cart)
	return nil
}

func (s *MemoryCartStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, id)
	return nil
}

func (s *MemoryCartStore) Update(_ context.Context, id string, fn interfaces.CartMutation) (entities.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	loaded := s.carts[id]
	working := cloneCart(loaded)
	if err := fn(&working); err != nil {
		return cloneCart(loaded), err
	}
	s.carts[id] = cloneCart(working)
	return working, nil
}

func cloneCart(c entities.Cart) entities.Cart {
	c.Items = append([]entities.CartItem(nil), c.Items...)
	return c
}
