package domain

// Redirect is a stored mapping from a short id to a target URL. Timestamps
// are epoch milliseconds.
type Redirect struct {
	ID                  string `json:"id"`
	URL                 string `json:"url"`
	Enabled             bool   `json:"enabled"`
	IP                  string `json:"ip"`
	CreationTimestamp   int64  `json:"creation_timestamp"`
	AccessCount         int64  `json:"access_count"`
	LastAccessTimestamp *int64 `json:"last_access_timestamp,omitempty"`
}

func (r *Redirect) Summary() RedirectSummary {
	return RedirectSummary{ID: r.ID, URL: r.URL, Enabled: r.Enabled}
}

type RedirectSummary struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	Enabled bool   `json:"enabled"`
}

type RedirectState string

const (
	StateEnabled  RedirectState = "enabled"
	StateDisabled RedirectState = "disabled"
)

type BlacklistChange string

const (
	BlacklistAdded   BlacklistChange = "added"
	BlacklistRemoved BlacklistChange = "removed"
)

type SubmitRequest struct {
	Link string `json:"link" form:"link"`
}

type SubmitResponse struct {
	ID       string `json:"id"`
	ShortURL string `json:"short_url"`
	URL      string `json:"url"`
}

type ModerationRequest struct {
	Value string `json:"value" form:"value"`
}

type ModerationResponse struct {
	Value string `json:"value"`
	State string `json:"state"`
}
