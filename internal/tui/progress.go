// Package tui renders a live progress view for a running sweep.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"schedbench/internal/cli"
	"schedbench/internal/sweep"
)

// PointMsg reports one completed client invocation.
type PointMsg struct {
	Index int
	Total int
	Point sweep.Point
	Err   error
}

// DoneMsg ends the program once the sweep has finished.
type DoneMsg struct {
	Err error
}

var (
	titleStyle  = lipgloss.NewStyle().Foreground(cli.ColorPrimary).Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(cli.ColorSuccess)
	failStyle   = lipgloss.NewStyle().Foreground(cli.ColorError)
	subtleStyle = lipgloss.NewStyle().Foreground(cli.ColorSubtle)
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			Padding(1, 2)
)

type Model struct {
	progress progress.Model

	algorithm string
	total     int
	done      int
	failed    int
	current   string
	lastErr   error
	start     time.Time
	finished  bool
	width     int
}

func NewModel(algorithm string, total int) Model {
	return Model{
		progress:  progress.New(progress.WithDefaultGradient()),
		algorithm: algorithm,
		total:     total,
		start:     time.Now(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PointMsg:
		m.done = msg.Index
		m.current = fmt.Sprintf("n=%d slow=%s fast=%s percent=%d",
			msg.Point.TotRequests, msg.Point.SlowInterval, msg.Point.FastInterval, msg.Point.SlowPercent)
		if msg.Err != nil {
			m.failed++
			m.lastErr = msg.Err
		}
		cmd := m.progress.SetPercent(float64(msg.Index) / float64(msg.Total))
		return m, cmd

	case DoneMsg:
		m.finished = true
		if msg.Err != nil {
			m.lastErr = msg.Err
		}
		return m, tea.Quit

	case progress.FrameMsg:
		pm, cmd := m.progress.Update(msg)
		m.progress = pm.(progress.Model)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = msg.Width - 12
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	status := okStyle.Render(fmt.Sprintf("%d ok", m.done-m.failed))
	if m.failed > 0 {
		status += "  " + failStyle.Render(fmt.Sprintf("%d failed", m.failed))
	}

	body := titleStyle.Render(fmt.Sprintf("Sweep: %s", m.algorithm)) + "\n\n" +
		m.progress.View() + "\n\n" +
		fmt.Sprintf("%d/%d points  %s  %s", m.done, m.total, status,
			subtleStyle.Render(time.Since(m.start).Round(time.Second).String()))

	if m.current != "" {
		body += "\n" + subtleStyle.Render("current: "+m.current)
	}
	if m.lastErr != nil {
		body += "\n" + failStyle.Render("last error: "+m.lastErr.Error())
	}
	if m.finished {
		body += "\n\n" + subtleStyle.Render("done")
	}
	return panelStyle.Render(body) + "\n"
}
