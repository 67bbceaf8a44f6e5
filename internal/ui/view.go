package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/awshell/internal/logging"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	pane := m.styles.Pane.Render(m.logViewport.View())
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), pane, m.renderFooter())
}

func (m Model) renderHeader() string {
	p := m.snapshot.Profile
	s := m.styles

	title := s.Title.Render("aw-shell")
	if p.Version != "" {
		title += " " + s.Label.Render(p.Version)
	}
	if p.Testing {
		title += " " + s.Badge.Render("TESTING")
	}

	field := func(label, value string) string {
		return s.Label.Render(label+" ") + s.Value.Render(value)
	}
	summary := strings.Join([]string{
		field("mode", p.Mode()),
		field("port", fmt.Sprintf("%d (%s)", p.Port, p.PortFrom)),
		field("log level", logging.Level(p.Verbose).String()),
		field("theme", m.theme.Name),
	}, "   ")

	lines := []string{
		title,
		summary,
		field("data", p.StorePath),
		field("log ", p.LogPath),
	}
	if err := m.snapshot.LastError; err != nil {
		msg := "log unavailable: " + err.Error()
		if m.snapshot.IsStale() {
			msg = fmt.Sprintf("%s (%d failed reads)", msg, m.snapshot.ConsecutiveFailures)
		}
		lines = append(lines, s.Error.Render(msg))
	}
	return s.Header.Width(m.width).Render(strings.Join(lines, "\n"))
}

func (m Model) renderFooter() string {
	status := "follow"
	if !m.follow {
		status = "paused"
	}
	return m.styles.Footer.Render(m.styles.Label.Render("["+status+"] ") + m.help.View(m.keys))
}

func (m Model) renderLogLines() string {
	lines := m.snapshot.LogLines
	if len(lines) == 0 {
		return m.styles.Label.Render("No log output yet.")
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = colorizeLine(line, m.styles)
	}
	return strings.Join(out, "\n")
}

// colorizeLine styles a tint-formatted line: "<date> <time> <LVL> message attrs".
func colorizeLine(line string, s Styles) string {
	fields := strings.SplitN(line, " ", 4)
	if len(fields) < 4 {
		return s.Value.Render(line)
	}
	level := fields[2]
	if _, ok := s.levels[level]; !ok {
		return s.Value.Render(line)
	}
	return s.Label.Render(fields[0]+" "+fields[1]) + " " +
		s.LevelStyle(level).Render(level) + " " +
		s.Value.Render(fields[3])
}
