package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	statsdto "studytimer/internal/modules/stats/dto"
	"studytimer/internal/ui/theme"
)

type Port interface {
	Summary(ctx context.Context, recent int) (statsdto.SummaryOutput, error)
}

type LoadedMsg struct {
	Summary statsdto.SummaryOutput
	Err     error
}

const (
	recentLimit = 8
	barWidth    = 30
)

// weekOrder lists buckets Monday first, the day the week rolls over.
var weekOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

type Model struct {
	port    Port
	summary statsdto.SummaryOutput
	loaded  bool
	err     string
	width   int
	height  int
}

func New(port Port) Model {
	return Model{port: port}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case LoadedMsg:
		if msg.Err != nil {
			m.err = msg.Err.Error()
			return m, nil
		}
		m.err = ""
		m.loaded = true
		m.summary = msg.Summary
	case tea.KeyMsg:
		if msg.String() == "r" {
			return m, m.Reload()
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.err != "" {
		return theme.Hot.Render("stats: " + m.err)
	}
	if !m.loaded {
		return theme.Muted.Render("loading…")
	}
	s := m.summary

	totals := theme.Pane.Render(lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render("Totals"),
		fmt.Sprintf("%s %s", theme.Muted.Render("all time "), formatMinutes(s.CumulativeMinutes)),
		fmt.Sprintf("%s %s", theme.Muted.Render("this week"), formatMinutes(s.WeeklyMinutes)),
	))

	peak := 1
	for _, v := range s.DailyMinutes {
		peak = max(peak, v)
	}
	var days strings.Builder
	days.WriteString(theme.Title.Render("This week") + "\n")
	for _, d := range weekOrder {
		v := s.DailyMinutes[d]
		bar := strings.Repeat("█", v*barWidth/peak)
		days.WriteString(fmt.Sprintf("%s %s %s\n",
			theme.Muted.Render(d.String()[:3]),
			lipgloss.NewStyle().Foreground(theme.Peach).Render(bar),
			formatMinutes(v)))
	}

	var recent strings.Builder
	recent.WriteString(theme.Title.Render("Recent") + "\n")
	if len(s.Recent) == 0 {
		recent.WriteString(theme.Muted.Render("no completed study phases yet"))
	}
	for _, c := range s.Recent {
		recent.WriteString(fmt.Sprintf("%s  %d min\n",
			theme.Muted.Render(c.CompletedAt.Local().Format("Mon 01-02 15:04")), c.StudyMinutes))
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, totals, theme.Pane.Render(days.String()))
	return lipgloss.JoinVertical(lipgloss.Left, top, theme.Pane.Render(recent.String()),
		theme.Muted.Render("r: refresh"))
}

func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		summary, err := m.port.Summary(context.Background(), recentLimit)
		return LoadedMsg{Summary: summary, Err: err}
	}
}

func formatMinutes(total int) string {
	if total < 60 {
		return fmt.Sprintf("%d min", total)
	}
	return fmt.Sprintf("%dh %02dm", total/60, total%60)
}
