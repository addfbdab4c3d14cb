package domain

import (
	"context"
	"sync"
	"time"
)

// EventResult is what happened to one event inside a unit of work.
type EventResult struct {
	Event   string
	Verdict *PurgeVerdict
	Outcome *PurgeOutcome
	Ignored bool
	Err     error
}

// UnitOfWork scopes one purge gate to one logical request.
type UnitOfWork struct {
	ID        string
	Gate      *PurgeGate
	StartedAt time.Time

	mu      sync.Mutex
	results []EventResult
}

// NewUnitOfWork creates a unit of work with a fresh gate.
func NewUnitOfWork(id string, startedAt time.Time) *UnitOfWork {
	return &UnitOfWork{
		ID:        id,
		Gate:      NewPurgeGate(),
		StartedAt: startedAt,
	}
}

// Record appends an event result.
func (u *UnitOfWork) Record(r EventResult) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.results = append(u.results, r)
}

// Report returns a snapshot of the recorded results.
func (u *UnitOfWork) Report() *DispatchReport {
	u.mu.Lock()
	defer u.mu.Unlock()

	report := &DispatchReport{
		UnitID:  u.ID,
		Results: make([]EventResult, len(u.results)),
	}
	copy(report.Results, u.results)
	for _, r := range u.results {
		if r.Outcome != nil && r.Outcome.Result == ResultPurged {
			report.Purged = true
		}
	}
	return report
}

// DispatchReport summarizes a unit of work.
type DispatchReport struct {
	UnitID  string
	Results []EventResult
	Purged  bool
}

type unitOfWorkKey struct{}

// WithUnitOfWork attaches u to ctx.
func WithUnitOfWork(ctx context.Context, u *UnitOfWork) context.Context {
	return context.WithValue(ctx, unitOfWorkKey{}, u)
}

// UnitOfWorkFrom returns the unit of work carried by ctx.
func UnitOfWorkFrom(ctx context.Context) (*UnitOfWork, bool) {
	u, ok := ctx.Value(unitOfWorkKey{}).(*UnitOfWork)
	return u, ok && u != nil
}
