package application

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/nx-sentinel/internal/domain"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const DefaultSamplerInterval = 4 * time.Second

// Sampler manufactures background activity for the connected session. Its
// schedule runs for the whole session lifetime; ticks are inert while the
// session is disconnected or has no members.
type Sampler struct {
	session  *Session
	interval time.Duration
	logger   *zap.Logger

	mu   sync.Mutex
	cron *cron.Cron
	done chan struct{}
}

func NewSampler(session *Session, interval time.Duration, logger *zap.Logger) *Sampler {
	if interval <= 0 {
		interval = DefaultSamplerInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Sampler{
		session:  session,
		interval: interval,
		logger:   logger.Named("sampler"),
	}
}

// Tick draws one member, action and channel uniformly at random and records
// the resulting event. It reports false when the tick was inert.
func (s *Sampler) Tick() (domain.LiveEvent, bool) {
	sess := s.session

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !sess.connected || len(sess.members) == 0 {
		return domain.LiveEvent{}, false
	}

	member := sess.members[sess.random.IntN(len(sess.members))]
	action := domain.Actions[sess.random.IntN(len(domain.Actions))]
	channel := domain.Channels[sess.random.IntN(len(domain.Channels))]

	event := domain.LiveEvent{
		ID:        uuid.NewString(),
		Timestamp: sess.clock.Now(),
		User:      member.Username,
		Action:    action.Text,
		Channel:   channel,
		Category:  action.Category,
	}
	sess.events.Push(event)

	switch action.Category {
	case domain.CategoryJoin:
		sess.server.Join()
	case domain.CategoryLeave:
		sess.server.Leave()
	}

	return event, true
}

// Start schedules Tick every interval until Stop is called or ctx is done.
// cron.Every has one-second granularity, so shorter intervals round up.
func (s *Sampler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil {
		return nil
	}

	if s.interval%time.Second != 0 {
		s.logger.Warn("interval rounded up to a whole second", zap.Duration("interval", s.interval))
	}

	cronLog := cronLogger{s.logger.Sugar()}
	c := cron.New(
		cron.WithLogger(cronLog),
		cron.WithChain(cron.SkipIfStillRunning(cronLog)),
	)
	c.Schedule(cron.Every(s.interval), cron.FuncJob(func() {
		if event, ok := s.Tick(); ok {
			s.logger.Debug("tick", zap.String("user", event.User), zap.String("category", string(event.Category)))
		}
	}))
	c.Start()

	done := make(chan struct{})
	s.cron = c
	s.done = done

	go func() {
		select {
		case <-ctx.Done():
			s.Stop()
		case <-done:
		}
	}()

	s.logger.Debug("started", zap.Duration("interval", s.interval))
	return nil
}

// Stop cancels the schedule and waits for a running tick to finish.
func (s *Sampler) Stop() {
	s.mu.Lock()
	c := s.cron
	done := s.done
	s.cron = nil
	s.done = nil
	s.mu.Unlock()

	if c == nil {
		return
	}

	close(done)
	<-c.Stop().Done()
	s.logger.Debug("stopped")
}

func (s *Sampler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cron != nil
}

type cronLogger struct {
	log *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
