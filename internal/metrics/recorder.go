package metrics

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"redirector/internal/config"
)

const drainTimeout = 5 * time.Second

// Copier is the bulk-load subset of *pgxpool.Pool.
type Copier interface {
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// sink buffers one kind of metric and knows how to lay it out as a row.
type sink[T any] struct {
	kind    string
	table   string
	columns []string
	ch      chan T
	row     func(T) []any
}

// Recorder buffers metrics in memory and writes them in batches. Recording
// never blocks; when a buffer is full the sample is dropped.
type Recorder struct {
	db           Copier
	logger       *slog.Logger
	cfg          *config.MetricsConfig
	http         *sink[HTTPMetric]
	business     *sink[BusinessMetric]
	infra        *sink[InfraMetric]
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

func NewRecorder(db Copier, cfg *config.MetricsConfig, logger *slog.Logger) *Recorder {
	return &Recorder{
		db:     db,
		logger: logger,
		cfg:    cfg,
		http: &sink[HTTPMetric]{
			kind:    "http",
			table:   "http_metrics",
			columns: []string{"time", "method", "path", "status_code", "duration_ms", "error", "request_id"},
			ch:      make(chan HTTPMetric, cfg.BufferSize),
			row: func(m HTTPMetric) []any {
				return []any{m.Time, m.Method, m.Path, m.StatusCode, m.DurationMs, m.Error, m.RequestID}
			},
		},
		business: &sink[BusinessMetric]{
			kind:    "business",
			table:   "business_metrics",
			columns: []string{"time", "metric_name", "value", "labels"},
			ch:      make(chan BusinessMetric, cfg.BufferSize),
			row: func(m BusinessMetric) []any {
				labels, _ := json.Marshal(m.Labels)
				return []any{m.Time, m.MetricName, m.Value, labels}
			},
		},
		infra: &sink[InfraMetric]{
			kind:  "infra",
			table: "infra_metrics",
			columns: []string{
				"time", "pool_acquired", "pool_idle", "pool_total", "pool_max",
				"cache_hits", "cache_misses", "cache_hit_ratio", "goroutines", "heap_alloc_mb",
			},
			ch: make(chan InfraMetric, cfg.BufferSize),
			row: func(m InfraMetric) []any {
				return []any{
					m.Time, m.PoolAcquired, m.PoolIdle, m.PoolTotal, m.PoolMax,
					m.CacheHits, m.CacheMisses, m.CacheHitRatio, m.Goroutines, m.HeapAllocMB,
				}
			},
		},
		shutdownCh: make(chan struct{}),
	}
}

func (r *Recorder) RecordHTTP(m HTTPMetric) {
	enqueue(r, r.http, m)
}

func (r *Recorder) RecordBusiness(name string, value float64, labels map[string]string) {
	enqueue(r, r.business, BusinessMetric{
		Time:       time.Now(),
		MetricName: name,
		Value:      value,
		Labels:     labels,
	})
}

func (r *Recorder) RecordInfra(m InfraMetric) {
	enqueue(r, r.infra, m)
}

func (r *Recorder) Start(ctx context.Context) {
	if !r.cfg.Enabled {
		r.logger.Info("metrics recording disabled")
		return
	}

	interval := time.Duration(r.cfg.FlushInterval) * time.Millisecond

	r.wg.Add(3)
	go flushLoop(ctx, r, r.http, interval)
	go flushLoop(ctx, r, r.business, interval)
	go flushLoop(ctx, r, r.infra, interval)

	r.logger.Info("metrics recorder started",
		slog.Int("buffer_size", r.cfg.BufferSize),
		slog.Int("flush_interval_ms", r.cfg.FlushInterval))
}

// Close stops the flush loops after writing whatever is still buffered.
func (r *Recorder) Close() {
	r.shutdownOnce.Do(func() {
		close(r.shutdownCh)
		r.wg.Wait()
	})
}

func enqueue[T any](r *Recorder, s *sink[T], m T) {
	if !r.cfg.Enabled {
		return
	}
	select {
	case s.ch <- m:
	default:
		r.logger.Warn("metrics buffer full, dropping metric", slog.String("kind", s.kind))
	}
}

func flushLoop[T any](ctx context.Context, r *Recorder, s *sink[T], interval time.Duration) {
	defer r.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	batch := make([]T, 0, r.cfg.BufferSize)

	for {
		select {
		case <-ctx.Done():
			drain(r, s, batch)
			return
		case <-r.shutdownCh:
			drain(r, s, batch)
			return
		case m := <-s.ch:
			batch = append(batch, m)
			if len(batch) >= r.cfg.FlushThreshold {
				write(ctx, r, s, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				write(ctx, r, s, batch)
				batch = batch[:0]
			}
		}
	}
}

func drain[T any](r *Recorder, s *sink[T], batch []T) {
	for {
		select {
		case m := <-s.ch:
			batch = append(batch, m)
		default:
			if len(batch) > 0 {
				ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
				write(ctx, r, s, batch)
				cancel()
			}
			return
		}
	}
}

func write[T any](ctx context.Context, r *Recorder, s *sink[T], batch []T) {
	if len(batch) == 0 {
		return
	}

	rows := make([][]any, len(batch))
	for i, m := range batch {
		rows[i] = s.row(m)
	}

	if _, err := r.db.CopyFrom(ctx, pgx.Identifier{s.table}, s.columns, pgx.CopyFromRows(rows)); err != nil {
		r.logger.Error("failed to write metrics batch",
			slog.String("kind", s.kind),
			slog.Int("size", len(batch)),
			slog.String("error", err.Error()))
	}
}
