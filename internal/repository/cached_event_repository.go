package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/thanarat-p/eventbook/internal/domain"
	"github.com/thanarat-p/eventbook/pkg/logger"
	"github.com/thanarat-p/eventbook/pkg/redis"
	"go.uber.org/zap"
)

const (
	eventCacheKeyPrefix = "event:"
	eventCacheTTL       = 5 * time.Minute
)

// CachedEventRepository wraps an EventRepository with a read-through Redis
// cache for single-event lookups. List queries always hit the database so
// that upcoming-event filtering stays correct as time passes.
type CachedEventRepository struct {
	inner EventRepository
	cache *redis.Client
	log   *logger.Logger
}

// NewCachedEventRepository creates a new CachedEventRepository
func NewCachedEventRepository(inner EventRepository, cache *redis.Client, log *logger.Logger) *CachedEventRepository {
	return &CachedEventRepository{
		inner: inner,
		cache: cache,
		log:   log,
	}
}

// Create persists a new event and primes the cache
func (r *CachedEventRepository) Create(ctx context.Context, event *domain.Event) error {
	if err := r.inner.Create(ctx, event); err != nil {
		return err
	}
	r.setCache(ctx, event)
	return nil
}

// GetByID retrieves an event, serving from cache when possible
func (r *CachedEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	key := eventCacheKeyPrefix + id

	data, err := r.cache.Get(ctx, key).Bytes()
	if err == nil {
		event := &domain.Event{}
		if err := json.Unmarshal(data, event); err == nil {
			return event, nil
		}
		// Corrupt entry, drop it and fall through to the database
		r.cache.Del(ctx, key)
	} else if !errors.Is(err, goredis.Nil) {
		r.log.Warn("event cache read failed", zap.String("event_id", id), zap.Error(err))
	}

	event, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event != nil {
		r.setCache(ctx, event)
	}
	return event, nil
}

// ListUpcoming delegates to the underlying repository
func (r *CachedEventRepository) ListUpcoming(ctx context.Context, now time.Time, limit, offset int) ([]*domain.Event, int, error) {
	return r.inner.ListUpcoming(ctx, now, limit, offset)
}

// ListUserUpcoming delegates to the underlying repository
func (r *CachedEventRepository) ListUserUpcoming(ctx context.Context, userID string, now time.Time, limit, offset int) ([]*domain.Event, int, error) {
	return r.inner.ListUserUpcoming(ctx, userID, now, limit, offset)
}

// Invalidate drops the cached copy of an event. Called after bookings so
// the next detail read reflects the updated seat count.
func (r *CachedEventRepository) Invalidate(ctx context.Context, id string) {
	if err := r.cache.Del(ctx, eventCacheKeyPrefix+id).Err(); err != nil {
		r.log.Warn("event cache invalidation failed", zap.String("event_id", id), zap.Error(err))
	}
}

func (r *CachedEventRepository) setCache(ctx context.Context, event *domain.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := r.cache.Set(ctx, eventCacheKeyPrefix+event.ID, data, eventCacheTTL).Err(); err != nil {
		r.log.Warn("event cache write failed", zap.String("event_id", event.ID), zap.Error(err))
	}
}

var _ EventRepository = (*CachedEventRepository)(nil)
