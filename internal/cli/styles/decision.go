package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/smartkeys/internal/domain/entity"
	"github.com/bnema/smartkeys/internal/textunit"
)

// DecisionView is the input and outcome of one rules-engine decision.
type DecisionView struct {
	Press        entity.KeyPress
	Typing       entity.TypingContext
	Substitution entity.Substitution
	Fired        bool
}

// RenderDecision renders what the rules engine decided for a keypress.
func (t *Theme) RenderDecision(v DecisionView) string {
	label := lipgloss.NewStyle().Foreground(t.Muted).Width(11)
	row := func(name, value string) string {
		return label.Render(name) + value
	}

	key := t.Normal.Render(DisplayChar(v.Press.Char))
	if v.Press.Modifiers != entity.ModNone {
		key += " " + t.MutedBadge(v.Press.Modifiers.String())
	}

	lookback := t.Subtle.Render("start of text")
	if lb := v.Typing.Lookback(); lb != "" {
		lookback = t.Normal.Render(DisplayText(lb))
	}

	lines := []string{
		row("key", key),
		row("lookback", lookback),
	}

	if !v.Fired {
		lines = append(lines, row("rule", t.Subtle.Render("none, inserted as typed")))
		return strings.Join(lines, "\n")
	}

	sub := v.Substitution
	lines = append(lines,
		row("rule", t.AccentBadge(string(sub.Rule))),
		row("insert", t.Highlight.Render(sub.Replacement)+" "+t.Subtle.Render(codepoints(sub.Replacement))),
		row("backspace", t.Normal.Render(fmt.Sprintf("%d", sub.Backspace))),
		row("result", t.Normal.Render(DisplayText(preview(v.Typing, sub)))),
	)
	return strings.Join(lines, "\n")
}

// DisplayChar renders a typed rune, naming control characters.
func DisplayChar(r rune) string {
	switch {
	case r == entity.CharCodeUnitSeparator:
		return "US (0x1f)"
	case r < 0x20 || r == 0x7f:
		return fmt.Sprintf("0x%02x", r)
	case r == ' ':
		return "space"
	}
	return string(r)
}

// DisplayText makes whitespace visible.
func DisplayText(s string) string {
	return strings.NewReplacer("\n", "⏎", "\t", "⇥").Replace(s)
}

func codepoints(s string) string {
	parts := make([]string, 0, len(s))
	for _, r := range s {
		parts = append(parts, fmt.Sprintf("U+%04X", r))
	}
	return strings.Join(parts, " ")
}

// preview is the text a plain field would hold after the substitution.
func preview(typing entity.TypingContext, sub entity.Substitution) string {
	caret := min(max(typing.Caret, 0), textunit.Count(typing.Text))
	from := max(caret-sub.Backspace, 0)
	return textunit.Splice(typing.Text, from, caret, sub.Replacement)
}
