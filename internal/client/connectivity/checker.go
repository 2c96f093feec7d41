// Package connectivity provides the point-in-time reachability probe used to
// route operations between the remote and local stores.
package connectivity

import (
	"context"
	"net/http"
	"time"
)

// Checker reports whether the remote store looks reachable right now. The
// answer is a snapshot, not a guarantee: the network may change between this
// call and any subsequent remote call, and callers must stay correct either
// way.
type Checker interface {
	IsOnline(ctx context.Context) bool
}

// HTTPChecker probes the server's ping endpoint. Any failure to complete the
// probe counts as offline: a local-only write is always preferable to a lost
// one.
type HTTPChecker struct {
	pingURL    string
	httpClient *http.Client
}

// NewHTTPChecker returns a checker probing baseURL's ping endpoint with the
// given timeout per probe.
func NewHTTPChecker(baseURL string, timeout time.Duration) *HTTPChecker {
	return &HTTPChecker{
		pingURL:    baseURL + "/api/v1/ping",
		httpClient: &http.Client{Timeout: timeout},
	}
}

// IsOnline performs one probe.
func (c *HTTPChecker) IsOnline(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.pingURL, nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
