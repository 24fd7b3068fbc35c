package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpensQuote(t *testing.T) {
	tests := []struct {
		name     string
		lookback string
		want     bool
	}{
		{"start of text", "", true},
		{"space", " ", true},
		{"tab", "\t", true},
		{"newline", "\n", true},
		{"no-break space", "\u00a0", true},
		{"byte order mark", "\ufeff", true},
		{"paren", "(", true},
		{"brace", "{", true},
		{"bracket", "[", true},
		{"angle", "<", true},
		{"guillemet", "«", true},
		{"single guillemet", "‹", true},
		{"corner bracket", "【", true},
		{"tortoise shell", "〔", true},
		{"letter", "o", false},
		{"digit", "7", false},
		{"closing paren", ")", false},
		{"period", ".", false},
		{"closing quote", "”", false},
		{"closing guillemet", "»", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OpensQuote(tt.lookback))
		})
	}
}

func TestOpensQuote_EveryTriggerOpens(t *testing.T) {
	triggers := OpenQuoteTriggers()
	require.Len(t, triggers, 24)
	for _, r := range triggers {
		assert.True(t, OpensQuote(string(r)), "trigger %q should open a quote", r)
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name    string
		press   KeyPress
		text    string
		caret   int
		wantOK  bool
		wantSub Substitution
	}{
		{
			name:    "single quote at start opens",
			press:   NewKeyPress('\'', ModNone),
			wantOK:  true,
			wantSub: Substitution{Rule: RuleSingleQuote, Replacement: OpenSingleQuote},
		},
		{
			name:    "single quote after word closes",
			press:   NewKeyPress('\'', ModNone),
			text:    "Hello",
			caret:   5,
			wantOK:  true,
			wantSub: Substitution{Rule: RuleSingleQuote, Replacement: CloseSingleQuote},
		},
		{
			name:    "single quote after space opens",
			press:   NewKeyPress('\'', ModNone),
			text:    "say ",
			caret:   4,
			wantOK:  true,
			wantSub: Substitution{Rule: RuleSingleQuote, Replacement: OpenSingleQuote},
		},
		{
			name:    "single quote with shift only is still smart",
			press:   NewKeyPress('\'', ModShift),
			text:    "it",
			caret:   2,
			wantOK:  true,
			wantSub: Substitution{Rule: RuleSingleQuote, Replacement: CloseSingleQuote},
		},
		{
			name:    "ctrl single quote is straight",
			press:   NewKeyPress('\'', ModCtrl),
			text:    "x",
			caret:   1,
			wantOK:  true,
			wantSub: Substitution{Rule: RuleSingleQuote, Replacement: "'"},
		},
		{
			name:    "ctrl shift single quote is straight double",
			press:   NewKeyPress('\'', ModCtrl|ModShift),
			wantOK:  true,
			wantSub: Substitution{Rule: RuleSingleQuote, Replacement: `"`},
		},
		{
			name:    "double quote after paren opens",
			press:   NewKeyPress('"', ModShift),
			text:    "(",
			caret:   1,
			wantOK:  true,
			wantSub: Substitution{Rule: RuleDoubleQuote, Replacement: OpenDoubleQuote},
		},
		{
			name:    "double quote after word closes",
			press:   NewKeyPress('"', ModShift),
			text:    "no",
			caret:   2,
			wantOK:  true,
			wantSub: Substitution{Rule: RuleDoubleQuote, Replacement: CloseDoubleQuote},
		},
		{
			name:    "double quote ignores ctrl",
			press:   NewKeyPress('"', ModCtrl|ModShift),
			wantOK:  true,
			wantSub: Substitution{Rule: RuleDoubleQuote, Replacement: OpenDoubleQuote},
		},
		{
			name:    "double quote looks before caret not at end",
			press:   NewKeyPress('"', ModNone),
			text:    "a b",
			caret:   2,
			wantOK:  true,
			wantSub: Substitution{Rule: RuleDoubleQuote, Replacement: OpenDoubleQuote},
		},
		{
			name:    "third period makes ellipsis",
			press:   NewKeyPress('.', ModNone),
			text:    "Wait..",
			caret:   6,
			wantOK:  true,
			wantSub: Substitution{Rule: RuleEllipsis, Replacement: Ellipsis, Backspace: 2},
		},
		{
			name:    "ctrl third period stays literal",
			press:   NewKeyPress('.', ModCtrl),
			text:    "Wait..",
			caret:   6,
			wantOK:  true,
			wantSub: Substitution{Rule: RuleEllipsis, Replacement: ".", Backspace: 2},
		},
		{
			name:   "second period passes through",
			press:  NewKeyPress('.', ModNone),
			text:   "Wait.",
			caret:  5,
			wantOK: false,
		},
		{
			name:   "periods after caret do not count",
			press:  NewKeyPress('.', ModNone),
			text:   "a..",
			caret:  1,
			wantOK: false,
		},
		{
			name:   "period at caret one",
			press:  NewKeyPress('.', ModNone),
			text:   ".",
			caret:  1,
			wantOK: false,
		},
		{
			name:    "second hyphen makes em dash",
			press:   NewKeyPress('-', ModNone),
			text:    "words-",
			caret:   6,
			wantOK:  true,
			wantSub: Substitution{Rule: RuleEmDash, Replacement: EmDash, Backspace: 1},
		},
		{
			name:    "ctrl second hyphen stays literal",
			press:   NewKeyPress('-', ModCtrl),
			text:    "words-",
			caret:   6,
			wantOK:  true,
			wantSub: Substitution{Rule: RuleEmDash, Replacement: "-", Backspace: 1},
		},
		{
			name:   "first hyphen passes through",
			press:  NewKeyPress('-', ModNone),
			text:   "words",
			caret:  5,
			wantOK: false,
		},
		{
			name:   "hyphen at start passes through",
			press:  NewKeyPress('-', ModNone),
			wantOK: false,
		},
		{
			name:    "ctrl hyphen control character",
			press:   NewKeyPress(CharCodeUnitSeparator, ModCtrl),
			text:    "a-",
			caret:   2,
			wantOK:  true,
			wantSub: Substitution{Rule: RuleLiteralHyphen, Replacement: "-"},
		},
		{
			name:   "ctrl shift hyphen control character passes",
			press:  NewKeyPress(CharCodeUnitSeparator, ModCtrl|ModShift),
			wantOK: false,
		},
		{
			name:   "unit separator without ctrl passes",
			press:  NewKeyPress(CharCodeUnitSeparator, ModNone),
			wantOK: false,
		},
		{
			name:   "plain letter passes",
			press:  NewKeyPress('a', ModNone),
			text:   "--..",
			caret:  4,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, ok := Decide(tt.press, TypingContext{Text: tt.text, Caret: tt.caret})
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantSub, sub)
		})
	}
}

func TestDecide_IsPure(t *testing.T) {
	press := NewKeyPress('\'', ModNone)
	typing := TypingContext{Text: "Hello", Caret: 5}

	first, ok := Decide(press, typing)
	require.True(t, ok)
	for i := 0; i < 10; i++ {
		again, ok := Decide(press, typing)
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}

func TestTypingContext_LookbackUsesGraphemes(t *testing.T) {
	typing := TypingContext{Text: "ae\u0301", Caret: 2}
	assert.Equal(t, "e\u0301", typing.Lookback())
	assert.Equal(t, "", TypingContext{Text: "abc"}.Lookback())
}

func TestSubstitution_ReplacementLen(t *testing.T) {
	assert.Equal(t, 1, Substitution{Replacement: Ellipsis}.ReplacementLen())
	assert.Equal(t, 0, Substitution{}.ReplacementLen())
}
