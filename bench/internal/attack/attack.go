package attack

import (
	"crypto/tls"
	"fmt"
	"os"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

type Config struct {
	BaseURL            string
	IDs                []string
	Rate               int
	Duration           time.Duration
	CreateRatio        float64
	Type               string
	ThrottleBypass     string
	InsecureSkipVerify bool
	Connections        int
}

func Run(cfg *Config) error {
	var targeter vegeta.Targeter

	switch cfg.Type {
	case "create":
		targeter = CreateTargeter(cfg.BaseURL, cfg.ThrottleBypass)
	case "redirect":
		if len(cfg.IDs) == 0 {
			return fmt.Errorf("redirect attack requires seeded ids")
		}
		targeter = RedirectTargeter(cfg.BaseURL, cfg.IDs)
	case "mixed":
		if len(cfg.IDs) == 0 {
			return fmt.Errorf("mixed attack requires seeded ids")
		}
		targeter = MixedTargeter(cfg.BaseURL, cfg.IDs, cfg.CreateRatio, cfg.ThrottleBypass)
	default:
		return fmt.Errorf("unknown attack type: %s", cfg.Type)
	}

	connections := cfg.Connections
	if connections <= 0 {
		connections = vegeta.DefaultConnections
	}

	rate := vegeta.Rate{Freq: cfg.Rate, Per: time.Second}
	attacker := vegeta.NewAttacker(
		// 302 responses are the result being measured.
		vegeta.Redirects(vegeta.NoFollow),
		vegeta.KeepAlive(true),
		vegeta.Connections(connections),
		vegeta.Timeout(5*time.Second),
		vegeta.MaxBody(0),
		vegeta.HTTP2(false),
		vegeta.TLSConfig(&tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify}),
	)

	fmt.Printf("Starting %s attack: rate=%d/s duration=%s\n", cfg.Type, cfg.Rate, cfg.Duration)

	var metrics vegeta.Metrics
	for res := range attacker.Attack(targeter, rate, cfg.Duration, cfg.Type) {
		metrics.Add(res)
	}
	metrics.Close()

	reporter := vegeta.NewTextReporter(&metrics)
	return reporter.Report(os.Stdout)
}
