package dashboard

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/nx-sentinel/internal/application"
	"github.com/bnema/nx-sentinel/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultMemberRows = 10
	progressBarWidth  = 30
	clockFormat       = "15:04:05"
)

type RenderOptions struct {
	// MemberRows caps the member table; zero means defaultMemberRows and a
	// negative value shows every member.
	MemberRows int
	// Sections limits the output to the named panels. Empty renders all.
	Sections []Section
}

type Section string

const (
	SectionServer    Section = "server"
	SectionMembers   Section = "members"
	SectionThreats   Section = "threats"
	SectionFeed      Section = "feed"
	SectionConsole   Section = "console"
	SectionOperation Section = "operation"
)

func (o RenderOptions) wants(section Section) bool {
	if len(o.Sections) == 0 {
		return true
	}
	for _, s := range o.Sections {
		if s == section {
			return true
		}
	}
	return false
}

func renderView(snapshot application.Snapshot, opts RenderOptions, s styles) string {
	lines := []string{s.title.Render("NX Sentinel")}

	if opts.wants(SectionServer) {
		lines = append(lines, renderServer(snapshot, s))
	}
	if opts.wants(SectionMembers) {
		lines = append(lines, s.section.Render(renderMembers(snapshot.Members, opts.MemberRows, s)))
	}
	if opts.wants(SectionThreats) && snapshot.ThreatReport != "" {
		lines = append(lines, s.section.Render(renderThreats(snapshot.ThreatReport, s)))
	}
	if opts.wants(SectionFeed) {
		lines = append(lines, s.section.Render(renderFeed(snapshot.Events, s)))
	}
	if opts.wants(SectionConsole) {
		lines = append(lines, s.section.Render(renderConsole(snapshot.Logs, s)))
	}
	if opts.wants(SectionOperation) {
		lines = append(lines, s.section.Render(renderOperation(snapshot.Operation, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderServer(snapshot application.Snapshot, s styles) string {
	if !snapshot.Connected || snapshot.Server == nil {
		return s.header.Render("status: disconnected")
	}

	parts := []string{
		s.server.Render(snapshot.Server.Name),
		s.header.Render(fmt.Sprintf("guild: %s  members: %d", snapshot.GuildID, snapshot.Server.MemberCount)),
	}
	if snapshot.Busy {
		parts = append(parts, s.notice.Render("working..."))
	}

	return strings.Join(parts, "  ")
}

func renderMembers(members []domain.MemberRecord, rows int, s styles) string {
	lines := []string{s.heading.Render(fmt.Sprintf("Members (%d)", len(members)))}
	if len(members) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append(lines, s.empty.Render("No members loaded."))...)
	}

	if rows == 0 {
		rows = defaultMemberRows
	}
	shown := members
	if rows > 0 && len(shown) > rows {
		shown = shown[:rows]
	}

	width := 0
	for _, member := range shown {
		width = max(width, lipgloss.Width(member.Username))
	}

	for _, member := range shown {
		threat := pick(s.threats, member.Threat, s.detail).Render(string(member.Threat))
		lines = append(lines, fmt.Sprintf(
			"%s  %s  %s  %s  %s",
			s.detail.Render(padRight(member.Username, width)),
			s.header.Render(fmt.Sprintf("%4d msgs %3d min", member.Messages, member.VoiceMinutes)),
			s.header.Render(padRight(string(member.Status), len(domain.PresenceOffline))),
			s.timestamp.Render(member.JoinedDate),
			threat,
		))
	}
	if hidden := len(members) - len(shown); hidden > 0 {
		lines = append(lines, s.empty.Render(fmt.Sprintf("... %d more", hidden)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderThreats(report string, s styles) string {
	return lipgloss.JoinVertical(lipgloss.Left, s.heading.Render("Threat report"), s.report.Render(report))
}

func renderFeed(events []domain.LiveEvent, s styles) string {
	lines := []string{s.heading.Render("Live feed")}
	if len(events) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append(lines, s.empty.Render("Waiting for activity..."))...)
	}

	for _, event := range events {
		action := pick(s.categories, event.Category, s.detail).Render(event.Action)
		lines = append(lines, fmt.Sprintf(
			"%s %s %s %s",
			s.timestamp.Render(event.Timestamp.Format(clockFormat)),
			s.detail.Render(event.User),
			action,
			s.channel.Render(event.Channel),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderConsole(logs []domain.LogEntry, s styles) string {
	lines := []string{s.heading.Render("Console")}
	if len(logs) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append(lines, s.empty.Render("No log entries."))...)
	}

	for _, entry := range logs {
		level := pick(s.severities, entry.Level, s.detail).Render(padRight(strings.ToUpper(string(entry.Level)), len(domain.SeveritySuccess)))
		lines = append(lines, fmt.Sprintf(
			"%s %s %s",
			s.timestamp.Render(entry.Timestamp.Format(clockFormat)),
			level,
			s.detail.Render(entry.Message),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderOperation(op domain.OperationSnapshot, s styles) string {
	phase := op.Phase
	if phase == "" {
		phase = domain.PhaseSafe
	}

	header := fmt.Sprintf(
		"%s %s %s %s",
		s.heading.Render("Protocol:"),
		pick(s.phases, phase, s.detail).Render(string(phase)),
		renderProgressBar(op.Progress, progressBarWidth, s),
		s.detail.Render(fmt.Sprintf("%3d%%", clampPercent(op.Progress))),
	)

	lines := []string{header}
	for _, line := range op.Narrative {
		lines = append(lines, s.narrative.Render(line))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderProgressBar(progress int, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	fraction := float64(clampPercent(progress)) / 100.0
	filled := int(math.Round(float64(width) * fraction))
	filled = min(max(filled, 0), width)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("#", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v int) int {
	return min(max(v, 0), 100)
}

func padRight(value string, width int) string {
	if gap := width - lipgloss.Width(value); gap > 0 {
		return value + strings.Repeat(" ", gap)
	}
	return value
}
