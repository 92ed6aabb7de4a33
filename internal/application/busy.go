package application

import (
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// busyGate is the single process-wide permission to start an orchestrated
// operation. It never blocks: a second caller is turned away.
//
// sem is the only authority on who may start. held mirrors it for
// snapshots, which must not test sem: a trial TryAcquire would turn a
// real caller away. held is raised after the permit is taken and lowered
// before it is returned, so a reader never sees busy == false while an
// operation is still recording state.
type busyGate struct {
	sem  *semaphore.Weighted
	held atomic.Bool
}

func newBusyGate() *busyGate {
	return &busyGate{sem: semaphore.NewWeighted(1)}
}

func (g *busyGate) tryAcquire() bool {
	if !g.sem.TryAcquire(1) {
		return false
	}
	g.held.Store(true)
	return true
}

func (g *busyGate) release() {
	g.held.Store(false)
	g.sem.Release(1)
}

// busy is the read-only view used by snapshots. It may lag the semaphore
// for the instant between TryAcquire and the flag update.
func (g *busyGate) busy() bool {
	return g.held.Load()
}
