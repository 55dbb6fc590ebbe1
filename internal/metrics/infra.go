package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CacheStats interface {
	Stats() (hits, misses uint64, ratio float64)
}

// CollectInfra samples pool, cache and runtime statistics every interval
// until ctx is done.
func CollectInfra(ctx context.Context, r *Recorder, pool *pgxpool.Pool, cache CacheStats, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			poolStat := pool.Stat()
			hits, misses, ratio := cache.Stats()

			var memStats runtime.MemStats
			runtime.ReadMemStats(&memStats)

			r.RecordInfra(InfraMetric{
				Time:          time.Now(),
				PoolAcquired:  int(poolStat.AcquiredConns()),
				PoolIdle:      int(poolStat.IdleConns()),
				PoolTotal:     int(poolStat.TotalConns()),
				PoolMax:       int(poolStat.MaxConns()),
				CacheHits:     int64(hits),
				CacheMisses:   int64(misses),
				CacheHitRatio: ratio,
				Goroutines:    runtime.NumGoroutine(),
				HeapAllocMB:   float64(memStats.HeapAlloc) / 1024 / 1024,
			})
		}
	}
}
