package application

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/nx-sentinel/internal/domain"
	"github.com/bnema/nx-sentinel/internal/ports"
	"github.com/bnema/nx-sentinel/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestControllerSessionLifecycle(t *testing.T) {
	defer goleak.VerifyNone(t)

	platform := mocks.NewMockGuildPlatform(t)
	content := mocks.NewMockContentProvider(t)
	clock := newFakeClock()
	controller := NewController(SessionDeps{
		Platform: platform,
		Content:  content,
		Clock:    clock,
		Random:   &scriptedRandom{values: []int{1}},
	}, EngineConfig{SamplerInterval: time.Hour, StepDelay: 10 * time.Millisecond})

	require.NoError(t, controller.Start(context.Background()))
	assert.True(t, controller.Sampler.Running())

	platform.EXPECT().FetchGuild(mockAnyContext(), testCreds).Return(ports.GuildInfo{Name: "Nexus", MemberCount: 3}, nil)
	platform.EXPECT().ListMembers(mockAnyContext(), testCreds, ports.MemberPageLimit).Return([]ports.GuildMember{{ID: "1", Username: "alice"}}, nil)
	require.NoError(t, controller.Connect(context.Background(), testCreds))

	content.EXPECT().OperationScript(mockAnyContext(), "Nexus").Return([]string{"one", "two"}, nil)
	phase, err := controller.ToggleArm()
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseArmed, phase)
	require.NoError(t, controller.Execute(context.Background()))

	snapshot := controller.Snapshot()
	assert.True(t, snapshot.Connected)
	assert.Equal(t, domain.PhaseSafe, snapshot.Operation.Phase)
	assert.Equal(t, 100, snapshot.Operation.Progress)
	assert.Len(t, snapshot.Operation.Narrative, 3)
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 10 * time.Millisecond}, clock.Sleeps())

	controller.Close()
	assert.False(t, controller.Sampler.Running())
	assert.False(t, controller.Snapshot().Connected)

	_, ok := controller.Sampler.Tick()
	assert.False(t, ok)
}
