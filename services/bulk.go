// services/bulk.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"saunascout/models"
	"saunascout/providers"
	"saunascout/utils"
)

// VenueDayStatus is one venue's open/closed summary for a single date.
type VenueDayStatus struct {
	Slug      string `json:"slug"`
	Date      string `json:"date"`
	Open      bool   `json:"open"`
	OpenSlots int    `json:"openSlots"`
	Failed    bool   `json:"failed,omitempty"`
}

// CheckCache memoizes per-(slug,date) bulk results so re-renders with the
// same parameters do not refetch. Clear drops every entry; the checker calls
// it whenever the target date changes.
type CheckCache interface {
	Get(ctx context.Context, slug, date string) (VenueDayStatus, bool)
	Set(ctx context.Context, status VenueDayStatus)
	Clear(ctx context.Context)
}

const checkCachePrefix = "availability:check:"

// RedisCheckCache is the production cache, entries expiring on their own so
// stale capacity never outlives a browsing session.
type RedisCheckCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCheckCache(client *redis.Client) *RedisCheckCache {
	return &RedisCheckCache{Client: client, TTL: 10 * time.Minute}
}

func checkKey(slug, date string) string {
	return fmt.Sprintf("%s%s:%s", checkCachePrefix, date, slug)
}

func (c *RedisCheckCache) Get(ctx context.Context, slug, date string) (VenueDayStatus, bool) {
	val, err := c.Client.Get(ctx, checkKey(slug, date)).Result()
	if err != nil {
		return VenueDayStatus{}, false
	}
	var status VenueDayStatus
	if err := json.Unmarshal([]byte(val), &status); err != nil {
		return VenueDayStatus{}, false
	}
	return status, true
}

func (c *RedisCheckCache) Set(ctx context.Context, status VenueDayStatus) {
	data, err := json.Marshal(status)
	if err != nil {
		return
	}
	if err := c.Client.Set(ctx, checkKey(status.Slug, status.Date), data, c.TTL).Err(); err != nil {
		utils.GetLogger().Warn("bulk cache set failed", zap.String("slug", status.Slug), zap.Error(err))
	}
}

func (c *RedisCheckCache) Clear(ctx context.Context) {
	keys, err := c.Client.Keys(ctx, checkCachePrefix+"*").Result()
	if err != nil || len(keys) == 0 {
		return
	}
	c.Client.Del(ctx, keys...)
}

// MemoryCheckCache is a map-backed cache for tests and redis-less runs.
type MemoryCheckCache struct {
	mu      sync.Mutex
	entries map[string]VenueDayStatus
}

func NewMemoryCheckCache() *MemoryCheckCache {
	return &MemoryCheckCache{entries: make(map[string]VenueDayStatus)}
}

func (c *MemoryCheckCache) Get(_ context.Context, slug, date string) (VenueDayStatus, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	status, ok := c.entries[checkKey(slug, date)]
	return status, ok
}

func (c *MemoryCheckCache) Set(_ context.Context, status VenueDayStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[checkKey(status.Slug, status.Date)] = status
}

func (c *MemoryCheckCache) Clear(_ context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]VenueDayStatus)
}

// BulkChecker runs the many-venues-one-date availability sweep with a fixed
// concurrency window, reading through the injected cache.
type BulkChecker struct {
	Service     AvailabilityService
	Cache       CheckCache
	Concurrency int
	Now         func() time.Time

	mu         sync.Mutex
	cachedDate string
}

// CheckMany returns a status per venue, in input order. Venues are pulled
// from a queue by a bounded pool so downstream vendors never see more than
// Concurrency requests in flight. A vendor failure marks that venue Failed
// and closed; it is cached like any result so a flapping vendor is not
// hammered on every re-render.
func (b *BulkChecker) CheckMany(ctx context.Context, venues []models.Venue, date string) []VenueDayStatus {
	b.mu.Lock()
	if date != b.cachedDate {
		b.Cache.Clear(ctx)
		b.cachedDate = date
	}
	b.mu.Unlock()

	workers := b.Concurrency
	if workers <= 0 {
		workers = 4
	}

	results := make([]VenueDayStatus, len(venues))
	queue := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range queue {
				results[i] = b.checkOne(ctx, venues[i], date)
			}
		}()
	}
	for i := range venues {
		queue <- i
	}
	close(queue)
	wg.Wait()
	return results
}

func (b *BulkChecker) checkOne(ctx context.Context, venue models.Venue, date string) VenueDayStatus {
	if cached, ok := b.Cache.Get(ctx, venue.Slug, date); ok {
		return cached
	}

	status := VenueDayStatus{Slug: venue.Slug, Date: date}
	resp, err := b.Service.FetchVenueAvailability(ctx, venue, providers.DateRange{Start: date})
	if err != nil {
		utils.GetLogger().Warn("bulk availability check failed",
			zap.String("slug", venue.Slug), zap.String("date", date), zap.Error(err))
		status.Failed = true
		b.Cache.Set(ctx, status)
		return status
	}

	now := time.Now()
	if b.Now != nil {
		now = b.Now()
	}
	for _, at := range resp.AppointmentTypes {
		slots, ok := at.Dates[date]
		if !ok {
			continue
		}
		status.OpenSlots += len(FilterOpenSlots(FilterPastSlots(slots, now)))
	}
	status.Open = status.OpenSlots > 0
	b.Cache.Set(ctx, status)
	return status
}
