package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"studytimer/internal/ui/theme"
)

// MenuSelectMsg is emitted when the user picks a menu entry.
type MenuSelectMsg struct{ Index int }

var menuStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(theme.Lavender).
	Background(theme.Mantle).
	Foreground(theme.Text).
	Padding(1, 3)

// Menu is the navigation overlay. It is either open or closed.
type Menu struct {
	items   []string
	cursor  int
	visible bool
}

func NewMenu(items []string) Menu {
	return Menu{items: append([]string(nil), items...)}
}

func (m Menu) Visible() bool { return m.visible }

// Toggle opens a closed menu at entry current, or closes an open one.
func (m *Menu) Toggle(current int) {
	m.visible = !m.visible
	if m.visible && current >= 0 && current < len(m.items) {
		m.cursor = current
	}
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	if !m.visible {
		return m, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "esc", "m":
		m.visible = false
	case "up", "k":
		m.cursor = (m.cursor + len(m.items) - 1) % len(m.items)
	case "down", "j":
		m.cursor = (m.cursor + 1) % len(m.items)
	case "enter":
		m.visible = false
		idx := m.cursor
		return m, func() tea.Msg { return MenuSelectMsg{Index: idx} }
	}
	return m, nil
}

func (m Menu) View() string {
	if !m.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Menu") + "\n\n")
	for i, item := range m.items {
		if i == m.cursor {
			sb.WriteString(theme.Hot.Render("› "+item) + "\n")
			continue
		}
		sb.WriteString("  " + item + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("enter: open  esc: close"))
	return menuStyle.Render(sb.String())
}
