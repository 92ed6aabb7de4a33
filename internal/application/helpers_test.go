package application

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/bnema/nx-sentinel/internal/domain"
	"github.com/bnema/nx-sentinel/internal/ports/mocks"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

type fakeClock struct {
	mu        sync.Mutex
	now       time.Time
	sleeps    []time.Duration
	sleepHook func(ctx context.Context) error
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: fixedNow}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	c.mu.Lock()
	c.sleeps = append(c.sleeps, d)
	hook := c.sleepHook
	c.mu.Unlock()

	if hook != nil {
		return hook(ctx)
	}
	return ctx.Err()
}

func (c *fakeClock) Sleeps() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]time.Duration(nil), c.sleeps...)
}

// scriptedRandom replays values in order, reduced modulo n.
type scriptedRandom struct {
	mu     sync.Mutex
	values []int
	next   int
}

func (r *scriptedRandom) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.next%len(r.values)]
	r.next++
	return v % n
}

type testHarness struct {
	platform *mocks.MockGuildPlatform
	content  *mocks.MockContentProvider
	clock    *fakeClock
	random   *scriptedRandom
	session  *Session
}

func newTestHarness(t *testing.T) *testHarness {
	t.Helper()

	h := &testHarness{
		platform: mocks.NewMockGuildPlatform(t),
		content:  mocks.NewMockContentProvider(t),
		clock:    newFakeClock(),
		random:   &scriptedRandom{},
	}
	h.session = NewSession(SessionDeps{
		Platform: h.platform,
		Content:  h.content,
		Clock:    h.clock,
		Random:   h.random,
	})

	return h
}

// seed puts the session into a connected state without a platform round trip.
func (h *testHarness) seed(memberCount int, serverMembers int) {
	members := make([]domain.MemberRecord, 0, memberCount)
	for i := 0; i < memberCount; i++ {
		members = append(members, domain.MemberRecord{
			ID:       domain.MemberID(fmt.Sprintf("%d", 1000+i)),
			Username: fmt.Sprintf("member-%d", i),
			Status:   domain.PresenceOnline,
			Threat:   domain.ThreatSafe,
		})
	}

	h.session.mu.Lock()
	defer h.session.mu.Unlock()

	h.session.connected = true
	h.session.guildID = "42"
	h.session.members = members
	h.session.server = &domain.ServerAggregate{Name: "Nexus", MemberCount: serverMembers}
}

func logsWithLevel(entries []domain.LogEntry, level domain.Severity) []domain.LogEntry {
	var out []domain.LogEntry
	for _, entry := range entries {
		if entry.Level == level {
			out = append(out, entry)
		}
	}
	return out
}

func mockAnyContext() interface{} {
	return mock.Anything
}
