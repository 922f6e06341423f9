package http

import (
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimitedClient wraps an http.Client with a token-bucket limiter so
// upstream quotas (Yahoo throttles aggressive clients) are respected.
// Do blocks until the limiter allows the request or the request context
// is cancelled.
type RateLimitedClient struct {
	Client  *http.Client
	Limiter *rate.Limiter
}

// NewRateLimitedClient builds a RateLimitedClient allowing rps requests per
// second with a burst of burst.
func NewRateLimitedClient(client *http.Client, rps float64, burst int) *RateLimitedClient {
	return &RateLimitedClient{
		Client:  client,
		Limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Do waits for the limiter, then performs the request.
func (c *RateLimitedClient) Do(req *http.Request) (*http.Response, error) {
	if err := c.Limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return c.Client.Do(req)
}
