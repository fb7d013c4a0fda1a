package llm

import (
	"context"
	"time"
)

// TimeoutProvider is a decorator that bounds each request with
// Config.Timeout. The deadline covers the full decorated chain,
// retries included, so a wedged upstream cannot hold a caller
// that arrived with a background context.
type TimeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

// WithTimeout wraps a provider with a per-request deadline.
// A non-positive timeout returns the provider unwrapped.
func WithTimeout(inner Provider, timeout time.Duration) Provider {
	if timeout <= 0 {
		return inner
	}
	return &TimeoutProvider{inner: inner, timeout: timeout}
}

func (t *TimeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Generate(ctx, req)
}

func (t *TimeoutProvider) ModelID() string {
	return t.inner.ModelID()
}
