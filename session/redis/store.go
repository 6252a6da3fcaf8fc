// Package redis keeps client states in redis, shared by every server
// instance. Idle states expire through key TTLs.
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sirius-scholar/scholar"
)

const keyPrefix = "scholar:state:"

type Store struct {
	client *redis.Client
	ttl    time.Duration
}

var _ scholar.StateStore = (*Store)(nil)

// NewStore returns a store whose states expire after ttl without access.
// A zero ttl keeps them forever.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
	}
}

func key(id string) string {
	return keyPrefix + id
}

// Get returns the state and pushes back its expiration.
func (s *Store) Get(ctx context.Context, id string) ([]byte, error) {
	var cmd *redis.StringCmd
	if s.ttl > 0 {
		cmd = s.client.GetEx(ctx, key(id), s.ttl)
	} else {
		cmd = s.client.Get(ctx, key(id))
	}

	data, err := cmd.Bytes()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *Store) Put(ctx context.Context, id string, data []byte) error {
	return s.client.Set(ctx, key(id), data, s.ttl).Err()
}

func (s *Store) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, key(id)).Err()
}

// Sweep does nothing: redis expires idle states itself.
func (s *Store) Sweep(context.Context, time.Duration) (int, error) {
	return 0, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
