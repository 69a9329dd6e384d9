// Package httpclient builds the HTTP client shared by the sibling-service
// lookups.
package httpclient

import (
	"net"
	"net/http"
	"time"
)

const (
	// DefaultConnectTimeout bounds dialing a sibling service.
	DefaultConnectTimeout = 5 * time.Second
	// DefaultRequestTimeout bounds the whole request, headers and body read
	// included.
	DefaultRequestTimeout = 10 * time.Second
)

// New returns an HTTP client with bounded connect and request timeouts.
// Non-positive values fall back to the defaults. No retries are performed;
// callers treat a single failure as fatal for the enclosing request.
func New(connectTimeout, requestTimeout time.Duration) *http.Client {
	if connectTimeout <= 0 {
		connectTimeout = DefaultConnectTimeout
	}
	if requestTimeout <= 0 {
		requestTimeout = DefaultRequestTimeout
	}
	return &http.Client{
		Timeout: requestTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{Timeout: connectTimeout}).DialContext,
		},
	}
}
