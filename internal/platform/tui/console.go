package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const consoleHistory = 6

var (
	consoleBox = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	consoleErr = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4d4d"))
	consoleOut = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// consoleOverlay is the command line drawn over the bottom of the game
// while the developer console is open.
type consoleOverlay struct {
	input   textinput.Model
	history []string
	open    bool
}

func newConsoleOverlay() consoleOverlay {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "help"
	ti.CharLimit = 64
	return consoleOverlay{input: ti}
}

func (c *consoleOverlay) show() tea.Cmd {
	c.open = true
	c.input.Reset()
	return c.input.Focus()
}

func (c *consoleOverlay) hide() {
	c.open = false
	c.input.Blur()
}

// submit takes the current line and clears the prompt.
func (c *consoleOverlay) submit() string {
	line := strings.TrimSpace(c.input.Value())
	c.input.Reset()
	return line
}

func (c *consoleOverlay) print(line string) {
	c.history = append(c.history, line)
	if n := len(c.history); n > consoleHistory {
		c.history = c.history[n-consoleHistory:]
	}
}

func (c *consoleOverlay) printErr(err error) {
	c.print(consoleErr.Render(err.Error()))
}

func (c *consoleOverlay) clearHistory() {
	c.history = c.history[:0]
}

func (c consoleOverlay) update(msg tea.Msg) (consoleOverlay, tea.Cmd) {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c consoleOverlay) view(width int) string {
	lines := make([]string, 0, len(c.history)+1)
	for _, h := range c.history {
		lines = append(lines, consoleOut.Render(h))
	}
	lines = append(lines, c.input.View())

	w := width - consoleBox.GetHorizontalFrameSize()
	if w < 10 {
		w = 10
	}
	return consoleBox.Width(w).Render(strings.Join(lines, "\n"))
}

// overlayBottom replaces the last rows of base with panel.
func overlayBottom(base, panel string) string {
	rows := strings.Split(base, "\n")
	p := strings.Split(panel, "\n")
	if len(p) >= len(rows) {
		return panel
	}
	copy(rows[len(rows)-len(p):], p)
	return strings.Join(rows, "\n")
}
