package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"

	"redirector/internal/domain"
)

// RedirectCache keeps recently resolved redirects keyed by id. Only the
// fields needed for resolution are cached; access counters never are.
type RedirectCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func New(maxSizePow2 int, ttl time.Duration) (*RedirectCache, error) {
	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/100) // ~100 bytes per entry estimate

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &RedirectCache{cache: cache, ttl: ttl}, nil
}

func (c *RedirectCache) Get(id string) (domain.RedirectSummary, bool) {
	val, found := c.cache.Get(id)
	if !found {
		return domain.RedirectSummary{}, false
	}
	return val.(domain.RedirectSummary), true
}

func (c *RedirectCache) Set(r domain.RedirectSummary) {
	cost := int64(len(r.ID) + len(r.URL) + 1)
	c.cache.SetWithTTL(r.ID, r, cost, c.ttl)
}

func (c *RedirectCache) Delete(id string) {
	c.cache.Del(id)
}

// Wait blocks until buffered writes are applied.
func (c *RedirectCache) Wait() {
	c.cache.Wait()
}

func (c *RedirectCache) Close() {
	c.cache.Close()
}

func (c *RedirectCache) Stats() (hits, misses uint64, ratio float64) {
	metrics := c.cache.Metrics
	hits = metrics.Hits()
	misses = metrics.Misses()
	ratio = metrics.Ratio()
	return
}
