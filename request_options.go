package resourceclient

import (
	"context"

	"github.com/hashicorp/go-retryablehttp"
)

// RequestOptionFunc can be passed to all lookups to customize the request.
type RequestOptionFunc func(*retryablehttp.Request) error

// WithContext runs the request with the provided context
func WithContext(ctx context.Context) RequestOptionFunc {
	return func(req *retryablehttp.Request) error {
		*req = *req.WithContext(ctx)
		return nil
	}
}
