// Package registrar binds platform events on the bus to the decision engine and the executor.
package registrar

import (
	"context"
	"fmt"
	"slices"

	"github.com/llegomark/better-nginx-cache/internal/core/domain"
	"github.com/llegomark/better-nginx-cache/internal/core/ports"
	"github.com/llegomark/better-nginx-cache/internal/engine/configuration"
	"github.com/llegomark/better-nginx-cache/internal/engine/decision"
	"github.com/llegomark/better-nginx-cache/internal/engine/purger"
	"go.trai.ch/zerr"
)

// Registrar subscribes purge handlers. Handlers read the unit of work from
// the context, so every emit must happen inside one.
type Registrar struct {
	bus      ports.EventBus
	config   *configuration.Loader
	decider  *decision.Engine
	executor *purger.Executor
}

// New creates a Registrar.
func New(
	bus ports.EventBus,
	config *configuration.Loader,
	decider *decision.Engine,
	executor *purger.Executor,
) *Registrar {
	return &Registrar{
		bus:      bus,
		config:   config,
		decider:  decider,
		executor: executor,
	}
}

// Register subscribes every handler. The structural event list passes
// through the structural_events filter first.
func (r *Registrar) Register(ctx context.Context) {
	r.bus.Subscribe(domain.EventStatusTransitioned, r.onTransition)
	r.bus.Subscribe(domain.EventContentDeleted, r.onContentRemoved)
	r.bus.Subscribe(domain.EventContentTrashed, r.onContentRemoved)
	r.bus.Subscribe(domain.EventManualPurge, r.onManual)

	for _, name := range r.structuralEvents(ctx) {
		r.bus.Subscribe(name, r.onStructural)
	}
	for _, name := range domain.IgnoredEvents() {
		r.bus.Subscribe(name, r.onIgnored)
	}
}

func (r *Registrar) structuralEvents(ctx context.Context) []string {
	defaults := domain.StructuralEvents()
	out := r.bus.ApplyFilter(ctx, domain.FilterStructuralEvents, slices.Clone(defaults))
	if names, ok := out.([]string); ok {
		return names
	}
	return defaults
}

func (r *Registrar) onTransition(ctx context.Context, payload any) error {
	uow, ev, err := unpack(ctx, payload)
	if err != nil {
		return err
	}

	var tr domain.PostStatusTransition
	if ev.Transition != nil {
		tr = *ev.Transition
	}
	return r.decide(ctx, uow, ev.Name, tr)
}

// onContentRemoved treats deletion and trashing as a move to trash from the item's current status.
func (r *Registrar) onContentRemoved(ctx context.Context, payload any) error {
	uow, ev, err := unpack(ctx, payload)
	if err != nil {
		return err
	}
	return r.decide(ctx, uow, ev.Name, domain.NewTransition(domain.StatusTrash, ev.Status, ev.Item))
}

func (r *Registrar) onStructural(ctx context.Context, payload any) error {
	uow, ev, err := unpack(ctx, payload)
	if err != nil {
		return err
	}

	cfg := r.config.Load()
	if !cfg.AutoPurge || !r.purgesOn(ctx, ev) {
		uow.Record(domain.EventResult{Event: ev.Name, Ignored: true})
		return nil
	}
	return r.purge(ctx, uow, cfg, domain.EventResult{Event: ev.Name}, domain.Trigger{Event: ev.Name, UnitID: uow.ID})
}

// purgesOn reports whether a structural event purges. Site option updates
// only purge for options in the purging_site_options filter.
func (r *Registrar) purgesOn(ctx context.Context, ev domain.Event) bool {
	if ev.Name != domain.EventSiteOptionUpdated {
		return true
	}
	defaults := domain.PurgingSiteOptions()
	options := defaults
	if names, ok := r.bus.ApplyFilter(ctx, domain.FilterPurgingSiteOptions, slices.Clone(defaults), ev.Option).([]string); ok {
		options = names
	}
	return ev.Option != "" && slices.Contains(options, ev.Option)
}

// onManual purges regardless of the auto purge setting.
func (r *Registrar) onManual(ctx context.Context, payload any) error {
	uow, ev, err := unpack(ctx, payload)
	if err != nil {
		return err
	}
	return r.purge(ctx, uow, r.config.Load(), domain.EventResult{Event: ev.Name}, domain.Trigger{Event: ev.Name, UnitID: uow.ID})
}

func (r *Registrar) onIgnored(ctx context.Context, payload any) error {
	uow, ev, err := unpack(ctx, payload)
	if err != nil {
		return err
	}
	uow.Record(domain.EventResult{Event: ev.Name, Ignored: true})
	return nil
}

func (r *Registrar) decide(ctx context.Context, uow *domain.UnitOfWork, name string, tr domain.PostStatusTransition) error {
	cfg := r.config.Load()
	result := domain.EventResult{Event: name}

	if !cfg.AutoPurge {
		result.Ignored = true
		uow.Record(result)
		return nil
	}

	verdict := r.decider.Decide(ctx, tr, cfg)
	result.Verdict = &verdict
	if !verdict.Purge {
		uow.Record(result)
		return nil
	}

	return r.purge(ctx, uow, cfg, result, domain.Trigger{Event: name, UnitID: uow.ID, Transition: &tr})
}

func (r *Registrar) purge(
	ctx context.Context,
	uow *domain.UnitOfWork,
	cfg domain.CacheConfiguration,
	result domain.EventResult,
	trigger domain.Trigger,
) error {
	outcome, err := r.executor.Purge(ctx, cfg, uow.Gate, trigger)
	if err != nil {
		result.Err = err
		uow.Record(result)
		return err
	}
	result.Outcome = &outcome
	uow.Record(result)
	return nil
}

func unpack(ctx context.Context, payload any) (*domain.UnitOfWork, domain.Event, error) {
	uow, ok := domain.UnitOfWorkFrom(ctx)
	if !ok {
		return nil, domain.Event{}, domain.ErrNoUnitOfWork
	}
	ev, ok := payload.(domain.Event)
	if !ok {
		return nil, domain.Event{}, zerr.With(domain.ErrUnexpectedPayload, "type", fmt.Sprintf("%T", payload))
	}
	return uow, ev, nil
}
