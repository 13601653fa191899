package app

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	presetdto "studytimer/internal/modules/preset/dto"
	timerdto "studytimer/internal/modules/timer/dto"
	"studytimer/internal/platform/logging"
	"studytimer/internal/ui/components"
	"studytimer/internal/ui/theme"
	gradesview "studytimer/internal/ui/views/grades"
	presetsview "studytimer/internal/ui/views/presets"
	statsview "studytimer/internal/ui/views/stats"
	timerview "studytimer/internal/ui/views/timer"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type timerPort interface {
	timerview.Port
	Snapshot(ctx context.Context) (timerdto.SnapshotOutput, error)
}

type presetPort interface {
	presetsview.Port
	Get(ctx context.Context, ref string) (presetdto.PresetOutput, error)
}

// Options carries the entry screen defaults.
type Options struct {
	StudyMinutes int
	BreakMinutes int
	Logger       *slog.Logger
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabTimer tabID = iota
	tabPresets
	tabGrades
	tabStats
	tabCount
)

var tabLabels = [tabCount]string{
	"Timer", "Presets", "Grades", "Stats",
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Menu    key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Enter   key.Binding
	Focus   key.Binding
	Delete  key.Binding
	Add     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Menu:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit (saves a running countdown)")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start/resume, use preset")),
		Focus:   key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "switch field")),
		Delete:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete preset")),
		Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add grade")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Menu, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Menu, k.Enter, k.Focus},
		{k.Delete, k.Add},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the menu and help
// overlays, the command palette, and the snapshot taken on quit. All business
// logic is delegated to port interfaces; all rendering is delegated to
// sub-views.
type Model struct {
	timer   timerPort
	presets presetPort
	logger  *slog.Logger

	timerView  timerview.Model
	presetView presetsview.Model
	gradeView  gradesview.Model
	statsView  statsview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	menu      components.Menu
	palette   components.Palette
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(timer timerPort, presets presetPort, grades gradesview.Port, stats statsview.Port, opts Options) Model {
	return Model{
		timer:      timer,
		presets:    presets,
		logger:     logging.OrDefault(opts.Logger),
		timerView:  timerview.New(timer, opts.StudyMinutes, opts.BreakMinutes),
		presetView: presetsview.New(presets),
		gradeView:  gradesview.New(grades),
		statsView:  statsview.New(stats),
		activeTab:  tabTimer,
		keys:       defaultKeys(),
		help:       help.New(),
		menu:       components.NewMenu(tabLabels[:]),
		palette:    components.NewPalette(paletteCommands),
		status:     "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.timerView.Init(),
		m.presetView.Init(),
		m.gradeView.Init(),
		m.statsView.Init(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The palette and the menu intercept all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		if _, isKey := msg.(tea.KeyMsg); isKey {
			return m, cmd
		}
		return m.route(msg, cmd)
	}
	if m.menu.Visible() {
		if _, isKey := msg.(tea.KeyMsg); isKey {
			var cmd tea.Cmd
			m.menu, cmd = m.menu.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		cmd := m.propagateSize()
		return m, cmd

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case components.MenuSelectMsg:
		m.activeTab = tabID(msg.Index)
		return m, nil

	case presetsview.UseMsg:
		if m.timerView.SetDurations(msg.Preset.StudyMinutes, msg.Preset.BreakMinutes) {
			m.activeTab = tabTimer
			m.status = fmt.Sprintf("preset %q loaded", msg.Preset.Name)
		} else {
			m.status = "finish the current countdown before loading a preset"
		}
		return m, nil

	case presetsview.ChangedMsg:
		if msg.Err == nil {
			m.status = fmt.Sprintf("preset %s: %s", msg.Verb, msg.Preset.Name)
		}

	case timerview.PhaseCompletedMsg:
		if msg.Err != nil {
			m.status = "record: " + msg.Err.Error()
		}
		return m, m.statsView.Reload()

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		if msg.String() == "ctrl+c" {
			m.snapshot()
			return m, tea.Quit
		}
		// Yield to sub-view while it captures text.
		if m.subViewCapturing() {
			break
		}

		switch msg.String() {
		case "q":
			m.snapshot()
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case "m":
			m.menu.Toggle(int(m.activeTab))
			return m, nil
		case ":":
			cmd := m.palette.Open()
			return m, cmd
		}
	}

	return m.route(msg, nil)
}

// route hands view-owned messages to their view and key presses to the
// active tab.
func (m Model) route(msg tea.Msg, extra tea.Cmd) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.(type) {
	case timerview.TickMsg, timerview.RestoreMsg:
		m.timerView, cmd = m.timerView.Update(msg)
	case presetsview.LoadedMsg, presetsview.ChangedMsg:
		m.presetView, cmd = m.presetView.Update(msg)
	case gradesview.LoadedMsg, gradesview.AddedMsg:
		m.gradeView, cmd = m.gradeView.Update(msg)
	case statsview.LoadedMsg:
		m.statsView, cmd = m.statsView.Update(msg)
	default:
		switch m.activeTab {
		case tabTimer:
			m.timerView, cmd = m.timerView.Update(msg)
		case tabPresets:
			m.presetView, cmd = m.presetView.Update(msg)
		case tabGrades:
			m.gradeView, cmd = m.gradeView.Update(msg)
		case tabStats:
			m.statsView, cmd = m.statsView.Update(msg)
		}
	}
	return m, tea.Batch(cmd, extra)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := max(m.height-lipgloss.Height(tabBar)-lipgloss.Height(statusBar), 1)

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	case m.menu.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.menu.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabTimer:
		return m.timerView.View()
	case tabPresets:
		return m.presetView.View()
	case tabGrades:
		return m.gradeView.View()
	case tabStats:
		return m.statsView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "studytimer  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if st := m.timerView.Status(); st.Active {
		dot := lipgloss.NewStyle().Foreground(theme.PhaseColor(st.Phase)).Bold(true)
		left = dot.Render("● "+st.Label+" "+st.Display) + "  " + left
	}
	right := theme.Muted.Render("?:help  m:menu  :::palette  q:quit")
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

// paletteCommands are the usage hints for executePalette, one per case.
var paletteCommands = []string{
	"timer:start <study> <break>",
	"timer:resume",
	"preset:use <pos|name>",
	"preset:save <name> <study> <break> [pos]",
	"preset:overwrite <pos>",
	"preset:delete <pos>",
	"grade:add <value>",
	"stats:refresh",
}

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)
	args := parts[1:]

	switch parts[0] {
	case "timer:start":
		if len(args) != 2 {
			m.status = "usage: timer:start <study> <break>"
			return m, nil
		}
		study, _ := strconv.Atoi(args[0])
		brk, _ := strconv.Atoi(args[1])
		m.activeTab = tabTimer
		var cmd tea.Cmd
		m.timerView, cmd = m.timerView.StartWith(study, brk)
		return m, cmd

	case "timer:resume":
		if !m.timerView.Paused() {
			m.status = "no paused session"
			return m, nil
		}
		m.activeTab = tabTimer
		var cmd tea.Cmd
		m.timerView, cmd = m.timerView.Press()
		return m, cmd

	case "preset:use":
		if len(args) == 0 {
			m.status = "usage: preset:use <pos|name>"
			return m, nil
		}
		return m, m.usePresetCmd(strings.Join(args, " "))

	case "preset:save":
		name, study, brk, pos, ok := parsePresetArgs(args)
		if !ok {
			m.status = "usage: preset:save <name> <study> <break> [pos]"
			return m, nil
		}
		m.activeTab = tabPresets
		return m, m.presetView.SaveCmd(name, study, brk, pos)

	case "preset:overwrite":
		pos := 0
		if len(args) == 1 {
			pos, _ = strconv.Atoi(args[0])
		}
		if pos <= 0 {
			m.status = "usage: preset:overwrite <pos>"
			return m, nil
		}
		study, brk := m.timerView.Durations()
		m.activeTab = tabPresets
		return m, m.overwritePresetCmd(pos, study, brk)

	case "preset:delete":
		pos := 0
		if len(args) == 1 {
			pos, _ = strconv.Atoi(args[0])
		}
		if pos <= 0 {
			m.status = "usage: preset:delete <pos>"
			return m, nil
		}
		m.activeTab = tabPresets
		return m, m.presetView.DeleteCmd(pos)

	case "grade:add":
		if len(args) != 1 {
			m.status = "usage: grade:add <value>"
			return m, nil
		}
		m.activeTab = tabGrades
		return m, m.gradeView.AddCmd(args[0])

	case "stats:refresh":
		m.activeTab = tabStats
		return m, m.statsView.Reload()

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// parsePresetArgs reads "<name...> <study> <break> [pos]". A trailing
// position is recognised when the last three fields are all numbers.
func parsePresetArgs(args []string) (string, int, int, int, bool) {
	nums := func(fields []string) ([]int, bool) {
		out := make([]int, len(fields))
		for i, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, false
			}
			out[i] = n
		}
		return out, true
	}
	if len(args) >= 4 {
		if v, ok := nums(args[len(args)-3:]); ok {
			return strings.Join(args[:len(args)-3], " "), v[0], v[1], v[2], true
		}
	}
	if len(args) >= 3 {
		if v, ok := nums(args[len(args)-2:]); ok {
			return strings.Join(args[:len(args)-2], " "), v[0], v[1], 0, true
		}
	}
	return "", 0, 0, 0, false
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewCapturing reports whether the active tab is taking free text, in
// which case global key bindings must yield.
func (m Model) subViewCapturing() bool {
	switch m.activeTab {
	case tabPresets:
		return m.presetView.Filtering()
	case tabGrades:
		return m.gradeView.Editing()
	}
	return false
}

func (m *Model) propagateSize() tea.Cmd {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	var cmds [4]tea.Cmd
	m.timerView, cmds[0] = m.timerView.Update(sz)
	m.presetView, cmds[1] = m.presetView.Update(sz)
	m.gradeView, cmds[2] = m.gradeView.Update(sz)
	m.statsView, cmds[3] = m.statsView.Update(sz)
	return tea.Batch(cmds[:]...)
}

// snapshot persists a running countdown before the program exits.
func (m Model) snapshot() {
	out, err := m.timer.Snapshot(context.Background())
	if err != nil {
		m.logger.Error("snapshot on quit", "error", err)
		return
	}
	m.logger.Info("snapshot on quit", "saved", out.Saved, "reason", out.Reason)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) usePresetCmd(ref string) tea.Cmd {
	return func() tea.Msg {
		p, err := m.presets.Get(context.Background(), ref)
		if err != nil {
			return presetsview.ChangedMsg{Verb: "use", Err: err}
		}
		return presetsview.UseMsg{Preset: p}
	}
}

// overwritePresetCmd keeps the preset's name and replaces its durations.
func (m Model) overwritePresetCmd(pos, study, brk int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		current, err := m.presets.Get(ctx, strconv.Itoa(pos))
		if err != nil {
			return presetsview.ChangedMsg{Verb: "overwrite", Err: err}
		}
		saved, err := m.presets.Save(ctx, current.Name, study, brk, pos)
		return presetsview.ChangedMsg{Verb: "overwrite", Preset: saved, Err: err}
	}
}
