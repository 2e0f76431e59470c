package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Persister stores serialized session state outside the process.
type Persister interface {
	Save(ctx context.Context, key string, data []byte) error
	// Load returns ErrNotFound when nothing is stored under key.
	Load(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// MemoryPersister keeps nothing; state lives only in the stores.
type MemoryPersister struct{}

func (MemoryPersister) Save(context.Context, string, []byte) error { return nil }

func (MemoryPersister) Load(context.Context, string) ([]byte, error) { return nil, ErrNotFound }

func (MemoryPersister) Delete(context.Context, string) error { return nil }

// RedisPersister keeps session state in Redis so that short-lived processes
// such as floorctl share a login.
type RedisPersister struct {
	client    *redis.Client
	namespace string
	ttl       time.Duration
}

// NewRedisPersister scopes keys under namespace; ttl of zero means no expiry.
func NewRedisPersister(client *redis.Client, namespace string, ttl time.Duration) *RedisPersister {
	return &RedisPersister{client: client, namespace: namespace, ttl: ttl}
}

// Save implements Persister.
func (p *RedisPersister) Save(ctx context.Context, key string, data []byte) error {
	return p.client.Set(ctx, p.redisKey(key), data, p.ttl).Err()
}

// Load implements Persister.
func (p *RedisPersister) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := p.client.Get(ctx, p.redisKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// Delete implements Persister.
func (p *RedisPersister) Delete(ctx context.Context, key string) error {
	if err := p.client.Del(ctx, p.redisKey(key)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}

func (p *RedisPersister) redisKey(key string) string {
	return "floor:session:" + p.namespace + ":" + key
}
