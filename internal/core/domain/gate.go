package domain

import "sync/atomic"

// PurgeGate records whether the current unit of work already purged.
// A fresh gate must be created for every unit of work. The zero value is Idle.
type PurgeGate struct {
	done atomic.Bool
}

// NewPurgeGate returns an Idle gate.
func NewPurgeGate() *PurgeGate {
	return &PurgeGate{}
}

// Done reports whether a purge attempt already completed in this unit of work.
func (g *PurgeGate) Done() bool {
	return g.done.Load()
}

// MarkDone moves the gate to Done. It is never reset.
func (g *PurgeGate) MarkDone() {
	g.done.Store(true)
}
