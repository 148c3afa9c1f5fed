// Package mlclient provides the HTTP transport shared by clients that
// reach an external embedding or LLM-rewrite microservice — the
// suspension points the concurrency model calls out as "external
// ML-service calls": a pooled transport and a typed-error status mapper.
package mlclient

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/openreel/ratingcore/pkg/ratingerrors"
)

// sharedTransport provides connection pooling across every ML-service
// client (embedding, LLM rewrite).
var sharedTransport = &http.Transport{
	DialContext: (&net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext,
	MaxIdleConns:        100,
	MaxIdleConnsPerHost: 10,
	IdleConnTimeout:     90 * time.Second,
}

// NewHTTPClient builds an HTTP client with shared transport and the given
// timeout. All ML-service clients should use this.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: sharedTransport,
	}
}

// CheckResponse maps a non-2xx response to a typed ratingerrors.Error so
// callers can tell transient transport failures (retryable) from domain
// rejections (not retryable) without parsing status codes themselves.
func CheckResponse(resp *http.Response, service string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	msg := fmt.Sprintf("%s: HTTP %d: %s", service, resp.StatusCode, string(body))

	switch {
	case resp.StatusCode == http.StatusTooManyRequests, resp.StatusCode >= 500:
		return ratingerrors.New(ratingerrors.MLUnavailable, msg)
	case resp.StatusCode == http.StatusRequestTimeout:
		return ratingerrors.New(ratingerrors.MLTimeout, msg)
	default:
		return ratingerrors.New(ratingerrors.MLProtocolError, msg)
	}
}
