package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAcceptableTarget(t *testing.T) {
	tests := []struct {
		name            string
		nodeName        string
		contentEditable bool
		want            bool
	}{
		{"input", "INPUT", false, true},
		{"textarea", "TEXTAREA", false, true},
		{"lowercase textarea", "textarea", false, true},
		{"contenteditable div", "DIV", true, true},
		{"span inside editable region", "SPAN", true, true},
		{"button", "BUTTON", false, false},
		{"static paragraph", "P", false, false},
		{"plain div", "DIV", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAcceptableTarget(tt.nodeName, tt.contentEditable))
		})
	}
}

func TestCaretPolicy_FlatCaret(t *testing.T) {
	ellipsis := Substitution{Replacement: Ellipsis, Backspace: 2}
	quote := Substitution{Replacement: CloseSingleQuote}
	straight := Substitution{Replacement: `"`}

	assert.Equal(t, 5, CaretAfterReplacement.FlatCaret(6, ellipsis))
	assert.Equal(t, 6, CaretAfterReplacement.FlatCaret(5, quote))
	assert.Equal(t, 1, CaretAfterReplacement.FlatCaret(0, straight))

	// Legacy always advances one position from the prior start.
	assert.Equal(t, 7, CaretLegacy.FlatCaret(6, ellipsis))
	assert.Equal(t, 6, CaretLegacy.FlatCaret(5, quote))
}

func TestParseCaretPolicy(t *testing.T) {
	assert.Equal(t, CaretLegacy, ParseCaretPolicy(" Legacy "))
	assert.Equal(t, CaretAfterReplacement, ParseCaretPolicy("after-replacement"))
	assert.Equal(t, CaretAfterReplacement, ParseCaretPolicy("bogus"))
	assert.True(t, CaretLegacy.IsValid())
	assert.False(t, CaretPolicy("bogus").IsValid())
}

func TestSurfaceKind_String(t *testing.T) {
	assert.Equal(t, "flat", SurfaceFlat.String())
	assert.Equal(t, "tree", SurfaceTree.String())
	assert.Equal(t, "none", SurfaceNone.String())
}

func TestModifier_String(t *testing.T) {
	assert.Equal(t, "", ModNone.String())
	assert.Equal(t, "Ctrl+Shift", (ModShift | ModCtrl).String())
	assert.True(t, (ModCtrl | ModShift).HasShift())
	assert.False(t, ModShift.HasCtrl())
}

func TestKeyPress_IsControl(t *testing.T) {
	assert.True(t, NewKeyPress(CharCodeUnitSeparator, ModCtrl).IsControl())
	assert.False(t, NewKeyPress('a', ModNone).IsControl())
	assert.Equal(t, "a", NewKeyPress('a', ModNone).Text())
}
