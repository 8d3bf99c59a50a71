package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Loader fetches the raw data payload from a local file or an HTTP(S) URL.
// The fetch is a single shot: no retries, per the load-failure contract —
// a failed load is terminal until the next explicit reload.
type Loader struct {
	// Source is a filesystem path or an http(s) URL.
	Source string
	// Client is used for URL sources; a default client with a timeout is
	// used when nil.
	Client *http.Client
}

// Fetch returns the raw bytes of the data source. It does not parse or
// validate; that is Normalize's job.
func (l *Loader) Fetch(ctx context.Context) ([]byte, error) {
	if isURL(l.Source) {
		return l.fetchURL(ctx)
	}
	return os.ReadFile(l.Source)
}

func (l *Loader) fetchURL(ctx context.Context) ([]byte, error) {
	client := l.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.Source, nil)
	if err != nil {
		return nil, err
	}
	// Bypass intermediary caches; a stale copy served anyway is tolerated.
	req.Header.Set("Cache-Control", "no-cache")

	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: HTTP %d", l.Source, res.StatusCode)
	}
	return io.ReadAll(res.Body)
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
