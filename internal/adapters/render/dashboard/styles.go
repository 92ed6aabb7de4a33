package dashboard

import (
	"github.com/bnema/nx-sentinel/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	server     lipgloss.Style
	detail     lipgloss.Style
	section    lipgloss.Style
	heading    lipgloss.Style
	empty      lipgloss.Style
	timestamp  lipgloss.Style
	channel    lipgloss.Style
	narrative  lipgloss.Style
	report     lipgloss.Style
	help       lipgloss.Style
	notice     lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
	phases     map[domain.OperationPhase]lipgloss.Style
	severities map[domain.Severity]lipgloss.Style
	categories map[domain.ActionCategory]lipgloss.Style
	threats    map[domain.ThreatLevel]lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		server:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		section:    lipgloss.NewStyle().MarginTop(1),
		heading:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
		empty:      lipgloss.NewStyle().Faint(true),
		timestamp:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		channel:    lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
		narrative:  lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		report:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Italic(true),
		help:       lipgloss.NewStyle().Faint(true),
		notice:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		phases: map[domain.OperationPhase]lipgloss.Style{
			domain.PhaseSafe:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
			domain.PhaseArmed:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
			domain.PhaseExecuting: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")).Blink(true),
		},
		severities: map[domain.Severity]lipgloss.Style{
			domain.SeverityInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
			domain.SeverityWarn:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			domain.SeverityError:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
			domain.SeveritySuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		},
		categories: map[domain.ActionCategory]lipgloss.Style{
			domain.CategoryMessage: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			domain.CategoryVoice:   lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
			domain.CategoryJoin:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			domain.CategoryLeave:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
		threats: map[domain.ThreatLevel]lipgloss.Style{
			domain.ThreatSafe:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			domain.ThreatSuspicious: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			domain.ThreatDanger:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		},
	}
}

func pick[K comparable](m map[K]lipgloss.Style, key K, fallback lipgloss.Style) lipgloss.Style {
	if style, ok := m[key]; ok {
		return style
	}
	return fallback
}
