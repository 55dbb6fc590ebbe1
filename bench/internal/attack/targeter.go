package attack

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"sync"
	"sync/atomic"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const bypassHeader = "X-Throttle-Bypass"

var (
	urlCounter atomic.Uint64
	bodyPool   = sync.Pool{
		New: func() any {
			return make([]byte, 0, 64)
		},
	}
)

// CreateTargeter submits a fresh URL on every hit so each request allocates
// a new identifier.
func CreateTargeter(baseURL, bypassSecret string) vegeta.Targeter {
	header := http.Header{"Content-Type": []string{"application/x-www-form-urlencoded"}}
	if bypassSecret != "" {
		header.Set(bypassHeader, bypassSecret)
	}
	url := baseURL + "/"

	return func(t *vegeta.Target) error {
		t.Method = http.MethodPost
		t.URL = url
		t.Header = header

		buf := bodyPool.Get().([]byte)[:0]
		buf = fmt.Appendf(buf, "link=https://example.com/bench/%d", urlCounter.Add(1))
		t.Body = buf
		return nil
	}
}

func RedirectTargeter(baseURL string, ids []string) vegeta.Targeter {
	return func(t *vegeta.Target) error {
		t.Method = http.MethodGet
		t.URL = baseURL + "/" + ids[rand.IntN(len(ids))]
		t.Header = nil
		return nil
	}
}

func MixedTargeter(baseURL string, ids []string, createRatio float64, bypassSecret string) vegeta.Targeter {
	createTarget := CreateTargeter(baseURL, bypassSecret)
	redirectTarget := RedirectTargeter(baseURL, ids)

	return func(t *vegeta.Target) error {
		if rand.Float64() < createRatio {
			return createTarget(t)
		}
		return redirectTarget(t)
	}
}
