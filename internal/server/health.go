package server

import (
	"context"

	"github.com/mikiyas/txboard/internal/upstream"
)

// HealthService defines behaviour for readiness probes.
type HealthService interface {
	Probe(ctx context.Context) error
}

// UpstreamHealthService verifies provider reachability as part of health checks.
type UpstreamHealthService struct {
	Client upstream.Client
}

// Probe implements the HealthService interface.
func (s UpstreamHealthService) Probe(ctx context.Context) error {
	if s.Client == nil {
		return nil
	}
	return s.Client.Ping(ctx)
}
