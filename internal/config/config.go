package config

import (
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	App        AppConfig
	Cache      CacheConfig
	Submit     SubmitConfig
	Validation ValidationConfig
	Metrics    MetricsConfig
	Pprof      PprofConfig
	TLS        TLSConfig
	Log        LogConfig
}

type ServerConfig struct {
	Host           string `env:"SERVER_HOST" envDefault:"localhost"`
	Port           int    `env:"PORT" envDefault:"3478"`
	MaxConnections int    `env:"SERVER_MAX_CONNECTIONS" envDefault:"0"`
}

type DatabaseConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	DBName   string `env:"POSTGRES_DB" envDefault:"redirector"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	MaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"16"`
}

// AppConfig holds the values the core logic depends on. Token is the shared
// secret for privileged operations; leaving it empty disables them.
type AppConfig struct {
	BaseURL               string `env:"BASE_URL" envDefault:"http://localhost:3478/"`
	Token                 string `env:"TOKEN"`
	MaxAllocationAttempts int    `env:"MAX_ALLOCATION_ATTEMPTS" envDefault:"16"`
}

type CacheConfig struct {
	MaxSizePow2 int           `env:"CACHE_MAX_SIZE_POW2" envDefault:"24"`
	TTL         time.Duration `env:"CACHE_TTL" envDefault:"30s"`
}

type SubmitConfig struct {
	RPS          float64 `env:"SUBMIT_RPS" envDefault:"50"`
	Burst        int     `env:"SUBMIT_BURST" envDefault:"100"`
	BypassSecret string  `env:"SUBMIT_BYPASS_SECRET"`
}

type ValidationConfig struct {
	MaxRequestBodySize string `env:"MAX_REQUEST_BODY_SIZE" envDefault:"16K"`
}

type MetricsConfig struct {
	Enabled        bool `env:"METRICS_ENABLED" envDefault:"false"`
	BufferSize     int  `env:"METRICS_BUFFER_SIZE" envDefault:"10000"`
	FlushInterval  int  `env:"METRICS_FLUSH_INTERVAL_MS" envDefault:"1000"`
	FlushThreshold int  `env:"METRICS_FLUSH_THRESHOLD" envDefault:"1000"`
}

type PprofConfig struct {
	Enabled              bool `env:"PPROF_ENABLED" envDefault:"false"`
	BlockProfileRate     int  `env:"PPROF_BLOCK_PROFILE_RATE" envDefault:"0"`
	MutexProfileFraction int  `env:"PPROF_MUTEX_PROFILE_FRACTION" envDefault:"0"`
}

type TLSConfig struct {
	Enabled  bool   `env:"TLS_ENABLED" envDefault:"false"`
	Port     int    `env:"TLS_PORT" envDefault:"3479"`
	CertFile string `env:"TLS_CERT_FILE"`
	KeyFile  string `env:"TLS_KEY_FILE"`
}

type LogConfig struct {
	Level slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
