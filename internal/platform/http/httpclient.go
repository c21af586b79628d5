// Package http provides a tuned client for outbound API calls.
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient creates an HTTP client configured for outbound provider
// calls (currently the SendGrid mail API).
//
// http.DefaultClient has no timeout, so outbound calls always go through a
// client built here; the transport is set explicitly for connection reuse
// and bounded dial/handshake times.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
