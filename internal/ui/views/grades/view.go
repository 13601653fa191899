package grades

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	gradedto "studytimer/internal/modules/grade/dto"
	"studytimer/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	Add(ctx context.Context, value float64) (gradedto.EntryOutput, error)
	List(ctx context.Context) ([]gradedto.EntryOutput, error)
	Chart(ctx context.Context, width, height int) (gradedto.ChartOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Entries []gradedto.EntryOutput
	Chart   gradedto.ChartOutput
	Err     error
}

type AddedMsg struct {
	Entry gradedto.EntryOutput
	Err   error
}

// ─── model ───────────────────────────────────────────────────────────────────

const timeLayout = "2006-01-02 15:04"

type Model struct {
	port    Port
	input   textinput.Model
	list    viewport.Model
	entries []gradedto.EntryOutput
	chart   []string
	err     string
	width   int
	height  int
}

func New(port Port) Model {
	ti := textinput.New()
	ti.Prompt = "grade "
	ti.Placeholder = "e.g. 72.5"
	ti.CharLimit = 16
	ti.Width = 12

	vp := viewport.New(0, 0)
	return Model{port: port, input: ti, list: vp}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

// Editing reports whether the grade input has focus, in which case global
// key bindings must yield.
func (m Model) Editing() bool { return m.input.Focused() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.Width = m.listWidth()
		m.list.Height = max(m.height-4, 1)
		return m, m.Reload()

	case LoadedMsg:
		if msg.Err != nil {
			m.err = msg.Err.Error()
			return m, nil
		}
		m.err = ""
		m.entries = msg.Entries
		m.chart = msg.Chart.Lines
		m.list.SetContent(m.renderList())
		m.list.GotoBottom()

	case AddedMsg:
		if msg.Err != nil {
			m.err = "add: " + msg.Err.Error()
			return m, nil
		}
		return m, m.Reload()

	case tea.KeyMsg:
		if m.input.Focused() {
			switch msg.String() {
			case "esc":
				m.input.Blur()
				return m, nil
			case "enter":
				raw := strings.TrimSpace(m.input.Value())
				m.input.SetValue("")
				m.input.Blur()
				if raw == "" {
					return m, nil
				}
				return m, m.AddCmd(raw)
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		if msg.String() == "a" {
			cmd := m.input.Focus()
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render("Grades"),
		m.list.View(),
		m.input.View(),
	)
	chart := theme.Muted.Render("no grades yet")
	if len(m.chart) > 0 {
		chart = lipgloss.NewStyle().Foreground(theme.Sapphire).Render(strings.Join(m.chart, "\n"))
	}
	right := theme.Pane.Render(lipgloss.JoinVertical(lipgloss.Left, theme.Title.Render("Progress"), chart))

	footer := theme.Muted.Render("a: add grade  enter: save  esc: cancel")
	if m.err != "" {
		footer = theme.Hot.Render(m.err)
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(m.listWidth()).Render(left), right)
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

// AddCmd parses raw as a number and stores it. Unparsable input is reported
// without touching the store.
func (m Model) AddCmd(raw string) tea.Cmd {
	return func() tea.Msg {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return AddedMsg{Err: fmt.Errorf("%q is not a number", raw)}
		}
		entry, err := m.port.Add(context.Background(), value)
		return AddedMsg{Entry: entry, Err: err}
	}
}

// Reload re-reads the grades and redraws the chart.
func (m Model) Reload() tea.Cmd {
	w, h := m.chartSize()
	return func() tea.Msg {
		ctx := context.Background()
		entries, err := m.port.List(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		chart, err := m.port.Chart(ctx, w, h)
		return LoadedMsg{Entries: entries, Chart: chart, Err: err}
	}
}

func (m Model) listWidth() int {
	return max(m.width*35/100, 24)
}

func (m Model) chartSize() (int, int) {
	return max(m.width-m.listWidth()-16, 20), max(m.height-8, 6)
}

func (m Model) renderList() string {
	if len(m.entries) == 0 {
		return theme.Muted.Render("none")
	}
	var sb strings.Builder
	for _, e := range m.entries {
		sb.WriteString(fmt.Sprintf("%s : %s\n",
			theme.Muted.Render(e.Date.Local().Format(timeLayout)),
			strconv.FormatFloat(e.Value, 'f', -1, 64)))
	}
	return sb.String()
}
