// Package feed hosts sample sources for the q_self and q_env signals.
package feed

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hanayukiz/aifunny/internal/metrics"
	"github.com/hanayukiz/aifunny/internal/signal"
)

const (
	// ProviderStub emits deterministic synthetic samples (useful for tests/offline work).
	ProviderStub = "stub"
	// ProviderWebsocket consumes JSON sample envelopes from a websocket endpoint.
	ProviderWebsocket = "websocket"
)

// Feed represents a pluggable sample stream implementation.
type Feed struct {
	provider  string
	url       string
	log       zerolog.Logger
	interval  time.Duration
	selfDrift float64
	envDrift  float64
}

// Option configures Feed construction parameters.
type Option func(*Feed)

const defaultInterval = 500 * time.Millisecond

// WithInterval overrides the default emission cadence for the stub provider.
func WithInterval(d time.Duration) Option {
	return func(f *Feed) {
		if d > 0 {
			f.interval = d
		}
	}
}

// WithDrift sets the per-tick increments the stub provider applies to
// each synthetic signal.
func WithDrift(selfDrift, envDrift float64) Option {
	return func(f *Feed) {
		f.selfDrift = selfDrift
		f.envDrift = envDrift
	}
}

// WithURL injects the websocket endpoint for the websocket provider.
func WithURL(url string) Option {
	return func(f *Feed) {
		f.url = strings.TrimSpace(url)
	}
}

// New constructs a feed backed by the requested provider.
func New(provider string, log zerolog.Logger, opts ...Option) *Feed {
	if provider == "" {
		provider = ProviderStub
	}
	f := &Feed{
		provider:  strings.ToLower(provider),
		log:       log,
		interval:  defaultInterval,
		selfDrift: 0.05,
		envDrift:  0.08,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.interval <= 0 {
		f.interval = defaultInterval
	}
	return f
}

// Run pushes samples onto the provided channel until the context is canceled.
func (f *Feed) Run(ctx context.Context, out chan<- signal.Sample) error {
	switch f.provider {
	case ProviderWebsocket:
		return f.runWebsocket(ctx, out)
	default:
		return f.runStub(ctx, out)
	}
}

// runStub drifts both signals linearly each tick. With the default rates
// the environment pulls ahead of the self signal, so a long enough run
// settles on the evolve arm.
func (f *Feed) runStub(ctx context.Context, out chan<- signal.Sample) error {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	var selfVal, envVal float64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ts := <-ticker.C:
			selfVal += f.selfDrift
			envVal += f.envDrift
			pair := []signal.Sample{
				{Source: signal.SourceSelf, Value: selfVal, Ts: ts},
				{Source: signal.SourceEnv, Value: envVal, Ts: ts},
			}
			for _, sample := range pair {
				select {
				case out <- sample:
					metrics.SamplesTotal.WithLabelValues(sample.Source).Inc()
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		}
	}
}
