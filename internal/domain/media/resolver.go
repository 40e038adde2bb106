package media

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultMaxRetries = 2
	DefaultRetryWait  = 500 * time.Millisecond
)

// Resolver turns a stored image field into a source that is known to load,
// falling back to the placeholder once retries are exhausted.
type Resolver struct {
	normalizer Normalizer
	client     *resty.Client
}

// NewResolver caps maxRetries at DefaultMaxRetries.
func NewResolver(n Normalizer, maxRetries int, wait time.Duration) *Resolver {
	if maxRetries < 0 || maxRetries > DefaultMaxRetries {
		maxRetries = DefaultMaxRetries
	}
	client := resty.New().
		SetTimeout(5 * time.Second).
		SetRetryCount(maxRetries).
		SetRetryWaitTime(wait).
		SetRetryMaxWaitTime(wait).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil || resp == nil || resp.IsError()
		})

	return &Resolver{normalizer: n, client: client}
}

func (r *Resolver) Normalizer() Normalizer {
	return r.normalizer
}

// Resolve normalizes src and, for http(s) sources, checks that the resource
// answers a HEAD request. Inline data and local asset paths are returned
// without probing.
func (r *Resolver) Resolve(ctx context.Context, src string) string {
	normalized := r.normalizer.Normalize(src)
	if !hasScheme(normalized) {
		return normalized
	}

	resp, err := r.client.R().SetContext(ctx).Head(normalized)
	if err != nil || resp.IsError() {
		return r.normalizer.Placeholder
	}
	return normalized
}
