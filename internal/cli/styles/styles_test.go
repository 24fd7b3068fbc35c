package styles

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/smartkeys/internal/domain/entity"
)

func TestRenderDecision_Fired(t *testing.T) {
	theme := NewTheme()
	typing := entity.TypingContext{Text: "Wait..", Caret: 6}
	press := entity.NewKeyPress('.', entity.ModNone)
	sub, ok := entity.Decide(press, typing)

	out := theme.RenderDecision(DecisionView{Press: press, Typing: typing, Substitution: sub, Fired: ok})

	assert.Contains(t, out, "ellipsis")
	assert.Contains(t, out, "U+2026")
	assert.Contains(t, out, "Wait…")
}

func TestRenderDecision_NotFired(t *testing.T) {
	theme := NewTheme()
	out := theme.RenderDecision(DecisionView{
		Press:  entity.NewKeyPress('a', entity.ModCtrl),
		Typing: entity.TypingContext{},
	})

	assert.Contains(t, out, "start of text")
	assert.Contains(t, out, "none, inserted as typed")
	assert.Contains(t, out, "Ctrl")
}

func TestDisplayChar(t *testing.T) {
	assert.Equal(t, "US (0x1f)", DisplayChar(entity.CharCodeUnitSeparator))
	assert.Equal(t, "0x0d", DisplayChar('\r'))
	assert.Equal(t, "space", DisplayChar(' '))
	assert.Equal(t, "'", DisplayChar('\''))
}

func TestPreview(t *testing.T) {
	sub := entity.Substitution{Rule: entity.RuleEmDash, Replacement: entity.EmDash, Backspace: 1}
	assert.Equal(t, "a—b", preview(entity.TypingContext{Text: "a-b", Caret: 2}, sub))
	assert.Equal(t, "—", preview(entity.TypingContext{Text: "", Caret: 0}, sub))
}

func TestRenderSurface_ShowsTextAndLabel(t *testing.T) {
	theme := NewTheme()
	out := theme.RenderSurface(SurfaceView{Label: "field", Text: "Hello’", Caret: 6, Focused: true, Width: 20})

	assert.Contains(t, out, "field")
	assert.Contains(t, out, "Hello’")
	assert.GreaterOrEqual(t, len(strings.Split(out, "\n")), 4)
}
