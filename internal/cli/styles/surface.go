package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/smartkeys/internal/textunit"
)

// SurfaceView describes one editable surface for rendering.
type SurfaceView struct {
	Label   string
	Text    string
	Caret   int
	Focused bool
	Width   int
}

// RenderSurface renders a bordered surface with its label above it. The
// focused surface shows the caret as a reversed cell.
func (t *Theme) RenderSurface(v SurfaceView) string {
	var b strings.Builder
	graphemes := textunit.Split(v.Text)
	for i, g := range graphemes {
		if v.Focused && i == v.Caret {
			if g == "\n" {
				b.WriteString(t.Caret.Render(" "))
				b.WriteString("\n")
				continue
			}
			b.WriteString(t.Caret.Render(g))
			continue
		}
		b.WriteString(g)
	}
	if v.Focused && v.Caret >= len(graphemes) {
		b.WriteString(t.Caret.Render(" "))
	}

	style := t.Input
	label := t.Subtle.Render(v.Label)
	if v.Focused {
		style = t.InputFocused
		label = t.Highlight.Render(v.Label)
	}
	if v.Width > 0 {
		style = style.Width(v.Width)
	}

	return lipgloss.JoinVertical(lipgloss.Left, label, style.Render(b.String()))
}
