package timer

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	timerdto "studytimer/internal/modules/timer/dto"
	"studytimer/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

// Port is the minimal interface this view needs from the timer use-case.
// Calls are made from Update so the countdown is only ever touched by the
// Bubble Tea event loop.
type Port interface {
	Start(ctx context.Context, studyMinutes, breakMinutes int) (timerdto.StatusOutput, error)
	Tick(ctx context.Context) (timerdto.TickOutput, error)
	Restore(ctx context.Context) (timerdto.RestoreOutput, error)
	ResumeRestored(ctx context.Context, restored timerdto.StatusOutput) (timerdto.StatusOutput, error)
	Status(ctx context.Context) timerdto.StatusOutput
}

// ─── messages ────────────────────────────────────────────────────────────────

// TickMsg is the one-second heartbeat of a running countdown.
type TickMsg struct{ At time.Time }

// RestoreMsg triggers the one-time restore of a persisted session.
type RestoreMsg struct{}

// PhaseCompletedMsg is emitted after a phase reaches zero so other tabs can
// refresh.
type PhaseCompletedMsg struct {
	Out timerdto.TickOutput
	Err error
}

// ─── model ───────────────────────────────────────────────────────────────────

const (
	fieldStudy = iota
	fieldBreak
	fieldCount
)

type Model struct {
	port    Port
	inputs  [fieldCount]textinput.Model
	focus   int
	status  timerdto.StatusOutput
	paused  *timerdto.StatusOutput
	ticking bool
	note    string
	width   int
	height  int
}

func New(port Port, studyMinutes, breakMinutes int) Model {
	m := Model{port: port}
	labels := [fieldCount]string{"study min ", "break min "}
	defaults := [fieldCount]int{studyMinutes, breakMinutes}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = labels[i]
		ti.CharLimit = 4
		ti.Width = 6
		ti.Validate = digitsOnly
		if defaults[i] > 0 {
			ti.SetValue(strconv.Itoa(defaults[i]))
		}
		m.inputs[i] = ti
	}
	m.inputs[fieldStudy].Focus()
	return m
}

// Init restores a persisted session. It runs as the first message through
// Update rather than in a command goroutine.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return RestoreMsg{} }
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	ctx := context.Background()
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case RestoreMsg:
		out, err := m.port.Restore(ctx)
		if err != nil {
			m.note = "restore: " + err.Error()
			return m, nil
		}
		if out.Restored {
			restored := out.Status
			m.paused = &restored
			m.status = restored
			m.setDurations(restored.StudyMinutes, restored.BreakMinutes)
			m.note = "paused session found"
		}

	case TickMsg:
		if !m.status.Active {
			m.ticking = false
			return m, nil
		}
		out, err := m.port.Tick(ctx)
		m.status = out.Status
		var cmds []tea.Cmd
		if m.status.Active {
			cmds = append(cmds, tickCmd())
		} else {
			m.ticking = false
		}
		if out.Completed {
			m.note = completionNote(out)
			cmds = append(cmds, func() tea.Msg { return PhaseCompletedMsg{Out: out, Err: err} })
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m.Press()
		case "up", "down":
			if !m.showingCountdown() {
				m.inputs[m.focus].Blur()
				m.focus = (m.focus + 1) % fieldCount
				cmd := m.inputs[m.focus].Focus()
				return m, cmd
			}
		}
		if !m.showingCountdown() {
			var cmd tea.Cmd
			m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// Press is the Start/Resume button.
func (m Model) Press() (Model, tea.Cmd) {
	ctx := context.Background()
	if m.paused != nil {
		status, err := m.port.ResumeRestored(ctx, *m.paused)
		if err != nil {
			m.note = "resume: " + err.Error()
			m.paused = nil
			m.status = m.port.Status(ctx)
			return m, nil
		}
		m.paused = nil
		m.status = status
		m.note = ""
		cmd := m.ensureTicking()
		return m, cmd
	}
	if m.status.Active {
		return m, nil
	}
	study, _ := strconv.Atoi(m.inputs[fieldStudy].Value())
	brk, _ := strconv.Atoi(m.inputs[fieldBreak].Value())
	status, err := m.port.Start(ctx, study, brk)
	if err != nil {
		m.note = "start: " + err.Error()
		return m, nil
	}
	m.status = status
	if !status.Active {
		return m, nil
	}
	m.note = ""
	cmd := m.ensureTicking()
	return m, cmd
}

func (m *Model) ensureTicking() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return tickCmd()
}

// SetDurations prefills the entry screen. It is ignored while a countdown is
// shown.
func (m *Model) SetDurations(studyMinutes, breakMinutes int) bool {
	if m.showingCountdown() {
		return false
	}
	m.setDurations(studyMinutes, breakMinutes)
	return true
}

func (m *Model) setDurations(studyMinutes, breakMinutes int) {
	m.inputs[fieldStudy].SetValue(strconv.Itoa(studyMinutes))
	m.inputs[fieldBreak].SetValue(strconv.Itoa(breakMinutes))
}

// Durations returns the entry screen values; unparsable fields are zero.
func (m Model) Durations() (int, int) {
	study, _ := strconv.Atoi(m.inputs[fieldStudy].Value())
	brk, _ := strconv.Atoi(m.inputs[fieldBreak].Value())
	return study, brk
}

// StartWith fills the entry screen and presses Start.
func (m Model) StartWith(studyMinutes, breakMinutes int) (Model, tea.Cmd) {
	if !m.SetDurations(studyMinutes, breakMinutes) {
		m.note = "a countdown is already shown"
		return m, nil
	}
	return m.Press()
}

// Status is the countdown as last seen by the view.
func (m Model) Status() timerdto.StatusOutput { return m.status }

// Paused reports whether a restored session is waiting for Resume.
func (m Model) Paused() bool { return m.paused != nil }

func (m Model) View() string {
	var sb strings.Builder
	label := m.status.Label
	if m.paused != nil {
		label += " (paused)"
	}
	if label == "" {
		label = "Ready"
	}
	color := theme.PhaseColor(m.status.Phase)
	sb.WriteString(lipgloss.NewStyle().Foreground(color).Bold(true).Render(label) + "\n\n")
	sb.WriteString(lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(1, 4).
		Bold(true).
		Render(m.status.Display) + "\n\n")

	if !m.showingCountdown() {
		for i := range m.inputs {
			sb.WriteString(m.inputs[i].View() + "\n")
		}
		sb.WriteString("\n")
	}
	if button := m.buttonLabel(); button != "" {
		sb.WriteString(theme.Button.Render(button) + "\n")
	}
	if m.note != "" {
		sb.WriteString("\n" + theme.Muted.Render(m.note) + "\n")
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, sb.String())
}

func (m Model) showingCountdown() bool {
	return m.paused != nil || m.status.Active
}

// buttonLabel is empty while a countdown runs.
func (m Model) buttonLabel() string {
	switch {
	case m.paused != nil:
		return "Resume"
	case m.status.Active:
		return ""
	default:
		return "Start"
	}
}

func completionNote(out timerdto.TickOutput) string {
	if out.FinishedPhase == "study" {
		if out.RecordedMinutes > 0 {
			return fmt.Sprintf("study done, +%d min recorded", out.RecordedMinutes)
		}
		return "study done"
	}
	return "break over"
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return TickMsg{At: t} })
}

func digitsOnly(s string) error {
	for _, r := range s {
		if r < '0' || r > '9' {
			return fmt.Errorf("digits only")
		}
	}
	return nil
}
