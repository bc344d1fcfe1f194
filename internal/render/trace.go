// Package render formats engine runs for terminal output.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/danmuck/scramblectl/internal/scramble"
)

// opWidth keeps every instruction shape with two-digit operands on one line.
const opWidth = 44

// Style controls trace rendering.
type Style struct {
	Index  lipgloss.Style
	Op     lipgloss.Style
	Before lipgloss.Style
	After  lipgloss.Style
	Arrow  lipgloss.Style
}

func DefaultStyle() Style {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Index:  dim.Width(5).Align(lipgloss.Right),
		Op:     lipgloss.NewStyle().Width(opWidth).PaddingLeft(2),
		Before: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		After:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Arrow:  dim,
	}
}

// Step renders one step on a single line.
func (s Style) Step(step scramble.Step) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		s.Index.Render(strconv.Itoa(step.Index)),
		s.Op.Render(step.Op.String()),
		s.Before.Render(step.Before),
		s.Arrow.Render(" -> "),
		s.After.Render(step.After),
	)
}

// Tracer writes each observed step to w. Its Observe method is meant for
// scramble.Executor.Observer.
type Tracer struct {
	W     io.Writer
	Style Style
}

func NewTracer(w io.Writer) *Tracer {
	return &Tracer{W: w, Style: DefaultStyle()}
}

func (t *Tracer) Observe(step scramble.Step) {
	fmt.Fprintln(t.W, t.Style.Step(step))
}
