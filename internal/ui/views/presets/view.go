package presets

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	presetdto "studytimer/internal/modules/preset/dto"
	"studytimer/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	List(ctx context.Context) ([]presetdto.PresetOutput, error)
	Save(ctx context.Context, name string, studyMinutes, breakMinutes, position int) (presetdto.PresetOutput, error)
	Delete(ctx context.Context, position int) (presetdto.PresetOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Presets []presetdto.PresetOutput
	Err     error
}

// ChangedMsg reports the outcome of a save or delete.
type ChangedMsg struct {
	Verb   string
	Preset presetdto.PresetOutput
	Err    error
}

// UseMsg asks the timer to prefill its entry screen.
type UseMsg struct {
	Preset presetdto.PresetOutput
}

// ─── list item ───────────────────────────────────────────────────────────────

type presetItem struct {
	preset presetdto.PresetOutput
}

func (i presetItem) Title() string {
	return fmt.Sprintf("%d. %s", i.preset.Index+1, i.preset.Name)
}

func (i presetItem) Description() string {
	return fmt.Sprintf("study %d min + break %d min", i.preset.StudyMinutes, i.preset.BreakMinutes)
}

func (i presetItem) FilterValue() string { return i.preset.Name }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port   Port
	list   list.Model
	err    string
	width  int
	height int
}

func New(port Port) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Presets"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return Model{port: port, list: l}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width, m.height-2)

	case LoadedMsg:
		if msg.Err != nil {
			m.err = msg.Err.Error()
			return m, nil
		}
		m.err = ""
		items := make([]list.Item, len(msg.Presets))
		for i, p := range msg.Presets {
			items[i] = presetItem{preset: p}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case ChangedMsg:
		if msg.Err != nil {
			m.err = msg.Verb + ": " + msg.Err.Error()
			return m, nil
		}
		return m, m.Reload()

	case tea.KeyMsg:
		if m.Filtering() {
			break
		}
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(presetItem); ok {
				return m, func() tea.Msg { return UseMsg{Preset: item.preset} }
			}
		case "x", "delete":
			if item, ok := m.list.SelectedItem().(presetItem); ok {
				return m, m.DeleteCmd(item.preset.Index + 1)
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	footer := theme.Muted.Render("enter: use  x: delete  /: filter  :preset:save <name> <study> <break> [pos]")
	if m.err != "" {
		footer = theme.Hot.Render(m.err)
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.list.View(), footer)
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Selected returns the highlighted preset, if any.
func (m Model) Selected() (presetdto.PresetOutput, bool) {
	if item, ok := m.list.SelectedItem().(presetItem); ok {
		return item.preset, true
	}
	return presetdto.PresetOutput{}, false
}

func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		presets, err := m.port.List(context.Background())
		return LoadedMsg{Presets: presets, Err: err}
	}
}

// SaveCmd appends, or overwrites position (1-based) when positive.
func (m Model) SaveCmd(name string, studyMinutes, breakMinutes, position int) tea.Cmd {
	return func() tea.Msg {
		p, err := m.port.Save(context.Background(), name, studyMinutes, breakMinutes, position)
		return ChangedMsg{Verb: "save", Preset: p, Err: err}
	}
}

func (m Model) DeleteCmd(position int) tea.Cmd {
	return func() tea.Msg {
		p, err := m.port.Delete(context.Background(), position)
		return ChangedMsg{Verb: "delete", Preset: p, Err: err}
	}
}
