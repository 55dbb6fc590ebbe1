package seed

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

const bypassHeader = "X-Throttle-Bypass"

type Config struct {
	BaseURL            string
	Count              int
	Workers            int
	BypassSecret       string
	InsecureSkipVerify bool
	Timeout            time.Duration
}

type submitResponse struct {
	ID string `json:"id"`
}

// Run submits Count distinct URLs and returns the ids the service assigned.
func Run(ctx context.Context, cfg *Config) ([]string, error) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU() * 2
	}
	fmt.Printf("Seeding %d redirects (workers: %d)...\n", cfg.Count, workers)

	client := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			TLSClientConfig:     &tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify},
			MaxIdleConns:        workers * 2,
			MaxIdleConnsPerHost: workers * 2,
			IdleConnTimeout:     90 * time.Second,
			ForceAttemptHTTP2:   true,
		},
	}

	ids := make([]string, cfg.Count)
	var progress atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range cfg.Count {
		g.Go(func() error {
			id, err := submit(gctx, client, cfg, fmt.Sprintf("https://example.com/seed/%d", i))
			if err != nil {
				return fmt.Errorf("failed to seed url %d: %w", i, err)
			}
			ids[i] = id
			if done := progress.Add(1); done%1000 == 0 || int(done) == cfg.Count {
				fmt.Printf("\rProgress: %d/%d", done, cfg.Count)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	fmt.Printf("\nSeeding complete: %d ids\n", len(ids))
	return ids, nil
}

func submit(ctx context.Context, client *http.Client, cfg *Config, link string) (string, error) {
	form := url.Values{"link": {link}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.BaseURL+"/", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cfg.BypassSecret != "" {
		req.Header.Set(bypassHeader, cfg.BypassSecret)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result submitResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	return result.ID, nil
}
