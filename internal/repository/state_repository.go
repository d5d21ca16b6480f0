package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bluearc/internal/domain/gallery"
	redisapp "bluearc/internal/storage/redis"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

type RedisStateRepo struct {
	Client *redisapp.Client
}

func NewRedisStateRepo(client *redisapp.Client) *RedisStateRepo {
	return &RedisStateRepo{Client: client}
}

func (r *RedisStateRepo) Load(ctx context.Context, visitorID string) (gallery.Snapshot, error) {
	const op = "repository.RedisStateRepo.Load"

	val, err := r.Client.Get(ctx, StateKey(visitorID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return gallery.Snapshot{}, ErrStateNotFound
		}
		return gallery.Snapshot{}, fmt.Errorf("%s: %w", op, err)
	}

	var snap gallery.Snapshot
	if err := json.Unmarshal(val, &snap); err != nil {
		return gallery.Snapshot{}, fmt.Errorf("%s: %w", op, err)
	}

	return snap, nil
}

func (r *RedisStateRepo) Save(ctx context.Context, visitorID string, snap gallery.Snapshot, ttl time.Duration) error {
	const op = "repository.RedisStateRepo.Save"

	val, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := r.Client.Set(ctx, StateKey(visitorID), val, ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *RedisStateRepo) Delete(ctx context.Context, visitorID string) error {
	const op = "repository.RedisStateRepo.Delete"

	if err := r.Client.Del(ctx, StateKey(visitorID)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func StateKey(visitorID string) string {
	return "gallery:state:" + visitorID
}

// MemoryStateRepo хранит состояние посетителей в памяти процесса
type MemoryStateRepo struct {
	c *cache.Cache
}

func NewMemoryStateRepo(defaultTTL, cleanupInterval time.Duration) *MemoryStateRepo {
	return &MemoryStateRepo{
		c: cache.New(defaultTTL, cleanupInterval),
	}
}

func (r *MemoryStateRepo) Load(ctx context.Context, visitorID string) (gallery.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return gallery.Snapshot{}, err
	}

	v, ok := r.c.Get(visitorID)
	if !ok {
		return gallery.Snapshot{}, ErrStateNotFound
	}

	return v.(gallery.Snapshot), nil
}

func (r *MemoryStateRepo) Save(ctx context.Context, visitorID string, snap gallery.Snapshot, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.c.Set(visitorID, snap, ttl)
	return nil
}

func (r *MemoryStateRepo) Delete(ctx context.Context, visitorID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.c.Delete(visitorID)
	return nil
}

func (r *MemoryStateRepo) Count() int {
	return r.c.ItemCount()
}
