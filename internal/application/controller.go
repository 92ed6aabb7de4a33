package application

import (
	"context"
	"time"

	"github.com/bnema/nx-sentinel/internal/domain"
	"go.uber.org/zap"
)

type EngineConfig struct {
	SamplerInterval time.Duration
	StepDelay       time.Duration
}

func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		SamplerInterval: DefaultSamplerInterval,
		StepDelay:       DefaultStepDelay,
	}
}

// Controller owns the session and the two timelines that act on it. Close
// ends the session: the sampler schedule is cancelled before state is
// dropped so no tick observes a stale session.
type Controller struct {
	Session   *Session
	Sampler   *Sampler
	Operation *Operation
}

func NewController(deps SessionDeps, cfg EngineConfig) *Controller {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	session := NewSession(deps)

	return &Controller{
		Session:   session,
		Sampler:   NewSampler(session, cfg.SamplerInterval, deps.Logger),
		Operation: NewOperation(session, cfg.StepDelay, deps.Logger),
	}
}

func (c *Controller) Start(ctx context.Context) error {
	return c.Sampler.Start(ctx)
}

func (c *Controller) Close() {
	c.Sampler.Stop()
	c.Session.Disconnect()
}

func (c *Controller) Connect(ctx context.Context, creds domain.Credentials) error {
	return c.Session.Connect(ctx, creds)
}

func (c *Controller) ThreatScan(ctx context.Context) error {
	return c.Session.ThreatScan(ctx)
}

func (c *Controller) ToggleArm() (domain.OperationPhase, error) {
	return c.Operation.ToggleArm()
}

func (c *Controller) Execute(ctx context.Context, observers ...StepObserver) error {
	return c.Operation.Execute(ctx, observers...)
}

func (c *Controller) Snapshot() Snapshot {
	snapshot := c.Session.Snapshot()
	snapshot.Operation = c.Operation.Snapshot()
	return snapshot
}
