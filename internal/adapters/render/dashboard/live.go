package dashboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bnema/nx-sentinel/internal/application"
	"github.com/bnema/nx-sentinel/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const DefaultRefreshInterval = 250 * time.Millisecond

const helpLine = "a arm/disarm  x execute  s threat scan  q quit"

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

// Controller is the part of the engine the interactive dashboard drives.
type Controller interface {
	Snapshot() application.Snapshot
	ToggleArm() (domain.OperationPhase, error)
	Execute(ctx context.Context, observers ...application.StepObserver) error
	ThreatScan(ctx context.Context) error
}

type LiveOptions struct {
	Refresh   time.Duration
	Render    RenderOptions
	Input     io.Reader
	Output    io.Writer
	AltScreen bool
}

type refreshMsg time.Time

type frameMsg struct{}

type actionDoneMsg struct {
	action string
	err    error
}

type liveModel struct {
	ctx        context.Context
	controller Controller
	opts       LiveOptions
	styles     styles
	spinner    spinner.Model
	snapshot   application.Snapshot
	notice     string
	quitting   bool

	// A model without a controller draws one frame of snapshot and quits.
	frame string
}

func newLiveModel(ctx context.Context, controller Controller, opts LiveOptions) liveModel {
	if opts.Refresh <= 0 {
		opts.Refresh = DefaultRefreshInterval
	}

	return liveModel{
		ctx:        ctx,
		controller: controller,
		opts:       opts,
		styles:     newStyles(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		snapshot: controller.Snapshot(),
	}
}

func newFrameModel(snapshot application.Snapshot, opts RenderOptions) liveModel {
	return liveModel{
		opts:     LiveOptions{Render: opts},
		styles:   newStyles(),
		snapshot: snapshot,
	}
}

func (m liveModel) static() bool {
	return m.controller == nil
}

func (m liveModel) refresh() tea.Cmd {
	return tea.Tick(m.opts.Refresh, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

func (m liveModel) Init() tea.Cmd {
	if m.static() {
		return func() tea.Msg {
			return frameMsg{}
		}
	}
	return tea.Batch(m.spinner.Tick, m.refresh())
}

func (m liveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.frame = renderView(m.snapshot, m.opts.Render, m.styles)
		return m, tea.Quit
	case tea.KeyMsg:
		if m.static() {
			return m, nil
		}
		return m.handleKey(msg)
	case refreshMsg:
		m.snapshot = m.controller.Snapshot()
		return m, m.refresh()
	case actionDoneMsg:
		m.snapshot = m.controller.Snapshot()
		if msg.err != nil {
			m.notice = fmt.Sprintf("%s: %v", msg.action, msg.err)
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m liveModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "a":
		phase, err := m.controller.ToggleArm()
		if err != nil {
			m.notice = fmt.Sprintf("arm: %v", err)
		} else {
			m.notice = fmt.Sprintf("protocol %s", phase)
		}
		m.snapshot = m.controller.Snapshot()
		return m, nil
	case "x":
		return m, m.run("execute", func(ctx context.Context) error {
			return m.controller.Execute(ctx)
		})
	case "s":
		return m, m.run("scan", m.controller.ThreatScan)
	default:
		return m, nil
	}
}

// run executes a long action off the update loop. The refresh tick keeps
// rendering its progress while it runs.
func (m liveModel) run(action string, fn func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return actionDoneMsg{action: action, err: fn(ctx)}
	}
}

func (m liveModel) View() string {
	if m.static() {
		return m.frame
	}
	if m.quitting {
		return ""
	}

	footer := m.styles.help.Render(helpLine)
	if m.snapshot.Busy || m.snapshot.Operation.Executing() {
		footer = m.spinner.View() + " " + footer
	}
	if m.notice != "" {
		footer = lipgloss.JoinVertical(lipgloss.Left, m.styles.notice.Render(m.notice), footer)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		renderView(m.snapshot, m.opts.Render, m.styles),
		m.styles.section.Render(footer),
	)
}

// Render produces a static rendering of snapshot: the dashboard without its
// key bindings, drawn once.
func Render(snapshot application.Snapshot, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newFrameModel(snapshot, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(liveModel)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}

// Run blocks on the interactive dashboard until the user quits or ctx ends.
func Run(ctx context.Context, controller Controller, opts LiveOptions) error {
	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	p := tea.NewProgram(newLiveModel(ctx, controller, opts), programOpts...)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run dashboard: %w", err)
	}

	return nil
}
