package model

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearScreen = "\033[H\033[2J"
)

var (
	aliveStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// TerminalRenderer draws a grid to a terminal
type TerminalRenderer struct {
	out io.Writer
}

// NewTerminalRenderer returns a renderer writing to out
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{out: out}
}

// Frame builds the boxed board for g without writing it
func (r *TerminalRenderer) Frame(g *Grid) string {
	var sb strings.Builder
	block := aliveStyle.Render(gridPosBlock)
	for y := range g.height {
		for x := range g.width {
			if alive, _ := g.IsAliveAt(x, y); alive {
				sb.WriteString(block)
			} else {
				sb.WriteString(gridPosEmpty)
			}
		}
		if y < g.height-1 {
			sb.WriteByte('\n')
		}
	}
	return borderStyle.Render(sb.String())
}

// Display renders the grid followed by a status line
func (r *TerminalRenderer) Display(g *Grid, status string) {
	fmt.Fprintln(r.out, r.Frame(g))
	if status != "" {
		fmt.Fprintln(r.out, statusStyle.Render(status))
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	fmt.Fprint(r.out, clearScreen)
}
