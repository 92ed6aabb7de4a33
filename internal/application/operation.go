package application

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/bnema/nx-sentinel/internal/domain"
	"github.com/bnema/nx-sentinel/internal/ports"
	"go.uber.org/zap"
)

const (
	DefaultStepDelay = 700 * time.Millisecond

	operationSuccessMessage = "Operation re-birth successful"
	operationFailureMessage = "Nuke protocol failure"
)

type StepUpdate struct {
	Index    int
	Total    int
	Progress int
	Line     string
}

type StepObserver func(StepUpdate)

// Operation gates and narrates the destructive operation:
// SAFE <-> ARMED via ToggleArm, ARMED -> EXECUTING via Execute, and back to
// SAFE once every step has played. A failed script request leaves it ARMED.
type Operation struct {
	session   *Session
	content   ports.ContentProvider
	clock     ports.Clock
	logger    *zap.Logger
	stepDelay time.Duration

	mu        sync.Mutex
	phase     domain.OperationPhase
	progress  int
	narrative *domain.Feed[string]
}

func NewOperation(session *Session, stepDelay time.Duration, logger *zap.Logger) *Operation {
	if stepDelay < 0 {
		stepDelay = 0
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Operation{
		session:   session,
		content:   session.content,
		clock:     session.clock,
		logger:    logger.Named("operation"),
		stepDelay: stepDelay,
		phase:     domain.PhaseSafe,
		narrative: domain.NewFeed[string](0),
	}
}

func (o *Operation) ToggleArm() (domain.OperationPhase, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch o.phase {
	case domain.PhaseExecuting:
		return o.phase, domain.ErrOperationInProgress
	case domain.PhaseArmed:
		o.phase = domain.PhaseSafe
	default:
		o.phase = domain.PhaseArmed
	}

	o.logger.Debug("toggled", zap.String("phase", string(o.phase)))
	return o.phase, nil
}

// Execute plays the script back one step at a time. Observers are called
// after each step is recorded, before the inter-step delay.
func (o *Operation) Execute(ctx context.Context, observers ...StepObserver) error {
	o.mu.Lock()
	if o.phase != domain.PhaseArmed {
		o.mu.Unlock()
		return domain.ErrNotArmed
	}
	if !o.session.busy.tryAcquire() {
		o.mu.Unlock()
		return domain.ErrBusy
	}
	o.phase = domain.PhaseExecuting
	o.progress = 0
	o.narrative.Clear()
	o.narrative.Append(domain.BootLine)
	o.mu.Unlock()

	defer o.session.busy.release()

	target := o.session.ServerName()
	if target == "" {
		target = domain.DefaultTarget
	}

	steps, err := o.content.OperationScript(ctx, target)
	if err != nil {
		return o.fail(fmt.Errorf("%w: %w", domain.ErrContentProvider, err))
	}

	total := len(steps)
	for i, step := range steps {
		update := StepUpdate{
			Index:    i,
			Total:    total,
			Progress: int(math.Round(float64(i+1) / float64(total) * 100)),
			Line:     domain.StepPrefix + step,
		}

		o.mu.Lock()
		o.narrative.Append(update.Line)
		o.progress = update.Progress
		o.mu.Unlock()

		for _, observe := range observers {
			observe(update)
		}

		if err := o.clock.Sleep(ctx, o.stepDelay); err != nil {
			return o.fail(fmt.Errorf("playback interrupted: %w", err))
		}
	}

	o.session.Log(domain.SeveritySuccess, operationSuccessMessage)

	o.mu.Lock()
	o.phase = domain.PhaseSafe
	o.mu.Unlock()

	o.logger.Info("completed", zap.String("target", target), zap.Int("steps", total))
	return nil
}

// fail keeps the operation ARMED; only a completed run disarms it.
func (o *Operation) fail(err error) error {
	o.logger.Warn("failed", zap.Error(err))
	o.session.Log(domain.SeverityError, operationFailureMessage)

	o.mu.Lock()
	o.phase = domain.PhaseArmed
	o.mu.Unlock()

	return err
}

func (o *Operation) Snapshot() domain.OperationSnapshot {
	o.mu.Lock()
	defer o.mu.Unlock()

	return domain.OperationSnapshot{
		Phase:     o.phase,
		Progress:  o.progress,
		Narrative: o.narrative.Items(),
	}
}
