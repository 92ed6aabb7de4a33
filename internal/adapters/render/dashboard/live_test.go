package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/nx-sentinel/internal/application"
	"github.com/bnema/nx-sentinel/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiveModelArmKeyTogglesPhase(t *testing.T) {
	controller := &fakeController{snapshot: connectedSnapshot(), nextPhase: domain.PhaseArmed}
	controller.snapshot.Operation = domain.OperationSnapshot{Phase: domain.PhaseSafe}
	m := newLiveModel(context.Background(), controller, LiveOptions{})

	updated, cmd := m.Update(keyPress("a"))

	assert.Nil(t, cmd)
	assert.Equal(t, 1, controller.armCalls)
	view := updated.View()
	assert.Contains(t, view, "protocol ARMED")
	assert.Contains(t, view, "Protocol: ARMED")
}

func TestLiveModelArmKeyShowsRejection(t *testing.T) {
	controller := &fakeController{snapshot: connectedSnapshot(), armErr: domain.ErrOperationInProgress}
	m := newLiveModel(context.Background(), controller, LiveOptions{})

	updated, _ := m.Update(keyPress("a"))

	assert.Contains(t, updated.View(), "arm: "+domain.ErrOperationInProgress.Error())
}

func TestLiveModelExecuteRunsAsCommand(t *testing.T) {
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "dashboard")
	controller := &fakeController{snapshot: connectedSnapshot(), execErr: domain.ErrNotArmed}
	m := newLiveModel(ctx, controller, LiveOptions{})

	updated, cmd := m.Update(keyPress("x"))
	require.NotNil(t, cmd)
	assert.Zero(t, controller.execCalls)

	msg := cmd()
	assert.Equal(t, 1, controller.execCalls)
	assert.Equal(t, "dashboard", controller.executeCtx.Value(ctxKey{}))

	final, _ := updated.Update(msg)
	assert.Contains(t, final.View(), "execute: "+domain.ErrNotArmed.Error())
}

func TestLiveModelScanKey(t *testing.T) {
	controller := &fakeController{snapshot: connectedSnapshot()}
	m := newLiveModel(context.Background(), controller, LiveOptions{})

	_, cmd := m.Update(keyPress("s"))
	require.NotNil(t, cmd)
	msg := cmd()

	assert.Equal(t, 1, controller.scanCalls)
	assert.Equal(t, actionDoneMsg{action: "scan"}, msg)
}

func TestLiveModelRefreshPicksUpNewSnapshot(t *testing.T) {
	controller := &fakeController{snapshot: application.Snapshot{}}
	m := newLiveModel(context.Background(), controller, LiveOptions{Refresh: time.Millisecond})
	assert.Contains(t, m.View(), "status: disconnected")

	controller.snapshot = connectedSnapshot()
	updated, cmd := m.Update(refreshMsg(time.Now()))

	assert.NotNil(t, cmd)
	assert.Contains(t, updated.View(), "Nexus")
}

func TestLiveModelQuit(t *testing.T) {
	controller := &fakeController{snapshot: connectedSnapshot()}
	m := newLiveModel(context.Background(), controller, LiveOptions{})

	updated, cmd := m.Update(keyPress("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, updated.View())
}

func TestLiveModelShowsHelp(t *testing.T) {
	controller := &fakeController{snapshot: connectedSnapshot()}
	m := newLiveModel(context.Background(), controller, LiveOptions{})

	assert.Contains(t, m.View(), helpLine)
}
