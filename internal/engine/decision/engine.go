package decision

import (
	"context"
	"slices"

	"github.com/llegomark/better-nginx-cache/internal/core/domain"
	"github.com/llegomark/better-nginx-cache/internal/core/ports"
)

// Engine evaluates transitions with exclusions and overrides taken from the event bus.
type Engine struct {
	bus     ports.EventBus
	metrics ports.Metrics
}

// NewEngine creates an Engine.
func NewEngine(bus ports.EventBus, metrics ports.Metrics) *Engine {
	return &Engine{bus: bus, metrics: metrics}
}

// Decide evaluates t. The configured excluded types are passed through the
// excluded_content_types filter and the baseline through override_should_purge.
func (e *Engine) Decide(ctx context.Context, t domain.PostStatusTransition, cfg domain.CacheConfiguration) domain.PurgeVerdict {
	excluded := e.excludedTypes(ctx, cfg.ExcludedContentTypes)

	verdict := Evaluate(t, excluded, func(baseline bool, tr domain.PostStatusTransition) bool {
		out := e.bus.ApplyFilter(ctx, domain.FilterOverrideShouldPurge, baseline, tr)
		if b, ok := out.(bool); ok {
			return b
		}
		return baseline
	})

	e.metrics.ObserveDecision(verdict)
	return verdict
}

func (e *Engine) excludedTypes(ctx context.Context, configured []string) []string {
	out := e.bus.ApplyFilter(ctx, domain.FilterExcludedContentTypes, slices.Clone(configured))
	if types, ok := out.([]string); ok {
		return types
	}
	return configured
}
