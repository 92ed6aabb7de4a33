package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/nx-sentinel/internal/application"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// taskProgress is what a long-running command reports while it works.
// Percent below zero means the task has no measurable progress yet.
type taskProgress struct {
	Label   string
	Percent int
}

func stepProgress(update application.StepUpdate) taskProgress {
	return taskProgress{
		Label:   fmt.Sprintf("step %d/%d", update.Index+1, update.Total),
		Percent: update.Progress,
	}
}

type taskDoneMsg struct {
	err error
}

type progressMsg taskProgress

type progressSpinnerModel struct {
	spinner  spinner.Model
	label    string
	progress taskProgress
	start    tea.Cmd
	err      error
	done     bool
	percent  lipgloss.Style
	faint    lipgloss.Style
}

func newProgressSpinnerModel(label string, start tea.Cmd) progressSpinnerModel {
	return progressSpinnerModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("203"))),
		),
		label:    label,
		progress: taskProgress{Percent: -1},
		start:    start,
		percent:  lipgloss.NewStyle().Bold(true),
		faint:    lipgloss.NewStyle().Faint(true),
	}
}

func (m progressSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.start)
}

func (m progressSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.progress = taskProgress(msg)
		return m, nil
	case taskDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m progressSpinnerModel) View() string {
	if m.done {
		return ""
	}

	line := m.spinner.View() + " " + m.label
	if m.progress.Percent >= 0 {
		line += " " + m.percent.Render(fmt.Sprintf("%3d%%", m.progress.Percent))
	}
	if m.progress.Label != "" {
		line += " " + m.faint.Render(m.progress.Label)
	}

	return line
}

// runWithProgress draws a spinner on output while task runs. Calls to the
// report function passed to task update the line in place.
func runWithProgress(ctx context.Context, output io.Writer, label string, task func(context.Context, func(taskProgress)) error) error {
	var p *tea.Program
	report := func(progress taskProgress) {
		p.Send(progressMsg(progress))
	}
	start := func() tea.Msg {
		return taskDoneMsg{err: task(ctx, report)}
	}

	p = tea.NewProgram(
		newProgressSpinnerModel(label, start),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(progressSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
