package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"studytimer/internal/ui/theme"
)

// PaletteSubmitMsg is emitted when the user confirms a command.
type PaletteSubmitMsg struct{ Input string }

// PaletteCancelMsg is emitted when the user presses esc.
type PaletteCancelMsg struct{}

const maxPaletteMatches = 5

var (
	paletteStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Peach).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().Foreground(theme.Subtext0)
)

// Palette is the ":" command line. Hints are usage strings whose first field
// is the command name; tab completes the name and up/down walk the commands
// submitted earlier in the session.
type Palette struct {
	input   textinput.Model
	hints   []string
	history []string
	recall  int
	visible bool
	width   int
}

func NewPalette(hints []string) Palette {
	ti := textinput.New()
	ti.Placeholder = "type a command…"
	ti.CharLimit = 256
	return Palette{input: ti, hints: hints}
}

func (p Palette) Visible() bool { return p.visible }

// Value is the text typed so far.
func (p Palette) Value() string { return p.input.Value() }

// Open shows an empty palette and returns the focus command.
func (p *Palette) Open() tea.Cmd {
	p.visible = true
	p.recall = len(p.history)
	p.input.SetValue("")
	return p.input.Focus()
}

func (p *Palette) SetWidth(w int) { p.width = w }

// Matches returns up to five hints whose command name starts with the typed
// command name.
func (p Palette) Matches() []string {
	typed := strings.ToLower(strings.TrimSpace(p.input.Value()))
	name, _, _ := strings.Cut(typed, " ")
	var out []string
	for _, h := range p.hints {
		hintName, _, _ := strings.Cut(h, " ")
		if strings.HasPrefix(hintName, name) {
			out = append(out, h)
			if len(out) == maxPaletteMatches {
				break
			}
		}
	}
	return out
}

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			p.visible = false
			p.input.Blur()
			return p, func() tea.Msg { return PaletteCancelMsg{} }
		case "enter":
			val := strings.TrimSpace(p.input.Value())
			p.visible = false
			p.input.Blur()
			if val != "" {
				p.history = append(p.history, val)
			}
			return p, func() tea.Msg { return PaletteSubmitMsg{Input: val} }
		case "tab":
			p.complete()
			return p, nil
		case "up":
			if p.recall > 0 {
				p.recall--
				p.setValue(p.history[p.recall])
			}
			return p, nil
		case "down":
			if p.recall < len(p.history) {
				p.recall++
				if p.recall == len(p.history) {
					p.setValue("")
				} else {
					p.setValue(p.history[p.recall])
				}
			}
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// complete replaces the command name with the first matching one while no
// arguments have been typed.
func (p *Palette) complete() {
	if strings.Contains(strings.TrimSpace(p.input.Value()), " ") {
		return
	}
	matches := p.Matches()
	if len(matches) == 0 {
		return
	}
	name, _, _ := strings.Cut(matches[0], " ")
	p.setValue(name + " ")
}

func (p *Palette) setValue(v string) {
	p.input.SetValue(v)
	p.input.CursorEnd()
}

func (p Palette) View() string {
	if !p.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Command Palette") + "\n")
	sb.WriteString(": " + p.input.View() + "\n")
	if matches := p.Matches(); len(matches) > 0 {
		sb.WriteString("\n")
		for _, h := range matches {
			sb.WriteString(hintStyle.Render("  "+h) + "\n")
		}
	}

	w := p.width
	if w < 20 {
		w = 64
	}
	return paletteStyle.Width(w - 2).Render(sb.String())
}
