package upstream

import (
	"context"
	"errors"
	"time"
)

// Client defines the minimal contract the HTTP handlers need to talk to the
// payment provider's transaction API.
type Client interface {
	// FindByUser fetches one page of the current user's transactions. The
	// reply carries the upstream status and raw body for verbatim relay.
	FindByUser(ctx context.Context, page string) (*Reply, error)
	// Search submits a free-text query to the provider's search endpoint.
	Search(ctx context.Context, query string) (*Reply, error)
	// Ping reports whether the provider is reachable at all.
	Ping(ctx context.Context) error
}

// Reply is the upstream response as received: status code plus the unparsed
// body. Callers decide how to interpret or relay it.
type Reply struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the upstream accepted the request.
func (r *Reply) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Options configures an upstream client implementation.
type Options struct {
	BaseURL   string
	APIKey    string
	APISecret string
	Timeout   time.Duration
}

// ErrMissingBaseURL indicates the provider base URL is not provided.
var ErrMissingBaseURL = errors.New("upstream base URL is required")
