package entity

import (
	"unicode"
	"unicode/utf8"

	"github.com/bnema/smartkeys/internal/textunit"
)

// Typographic glyphs produced by substitutions.
const (
	OpenSingleQuote  = "‘"
	CloseSingleQuote = "’"
	OpenDoubleQuote  = "“"
	CloseDoubleQuote = "”"
	Ellipsis         = "…"
	EmDash           = "—"
)

// openQuoteTriggers are the opening brackets after which a quote opens.
// Whitespace triggers too and is checked separately.
var openQuoteTriggers = map[rune]struct{}{
	'(': {}, '{': {}, '[': {}, '<': {},
	'\u2039': {}, '\u00ab': {}, '\u27e8': {}, '\u27ea': {},
	'\u2768': {}, '\u276e': {}, '\u3014': {}, '\u3010': {},
	'\u3016': {}, '\u276a': {}, '\u2774': {}, '\u2772': {},
	'\u276c': {}, '\u23a7': {}, '\u23a1': {}, '\u239b': {},
	'\u23a8': {}, '\u23a3': {}, '\u239d': {}, '\u23a9': {},
}

// OpensQuote reports whether a quote typed after lookback should open.
// An empty lookback (start of text) opens. For a multi-rune cluster only the
// first rune counts.
func OpensQuote(lookback string) bool {
	if lookback == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(lookback)
	if unicode.IsSpace(r) || r == '\ufeff' {
		return true
	}
	_, ok := openQuoteTriggers[r]
	return ok
}

// OpenQuoteTriggers returns the opening punctuation that makes the next
// quote open, excluding whitespace.
func OpenQuoteTriggers() []rune {
	out := make([]rune, 0, len(openQuoteTriggers))
	for r := range openQuoteTriggers {
		out = append(out, r)
	}
	return out
}

// Rule names the decision-table row that produced a substitution.
type Rule string

const (
	RuleSingleQuote   Rule = "single-quote"
	RuleDoubleQuote   Rule = "double-quote"
	RuleEllipsis      Rule = "ellipsis"
	RuleEmDash        Rule = "em-dash"
	RuleLiteralHyphen Rule = "literal-hyphen"
)

// Substitution replaces the typed character, and Backspace characters
// before the caret, with Replacement.
type Substitution struct {
	Rule        Rule
	Replacement string
	Backspace   int
}

// ReplacementLen returns the replacement length in characters.
func (s Substitution) ReplacementLen() int {
	return textunit.Count(s.Replacement)
}

// TypingContext is the surface state seen by the rules: its full text and
// the caret offset in characters.
type TypingContext struct {
	Text  string
	Caret int
}

// Lookback returns the character immediately before the caret, or "" at the
// start of the text.
func (c TypingContext) Lookback() string {
	if c.Caret <= 0 {
		return ""
	}
	return textunit.At(c.Text, c.Caret-1)
}

// Before returns the n characters immediately before the caret.
func (c TypingContext) Before(n int) string {
	start := c.Caret - n
	if start < 0 {
		start = 0
	}
	return textunit.Slice(c.Text, start, c.Caret)
}

// Decide returns the substitution for press in the given context, or false
// when the host should insert the character unchanged. It is pure.
func Decide(press KeyPress, typing TypingContext) (Substitution, bool) {
	ctrl := press.Modifiers.HasCtrl()
	shift := press.Modifiers.HasShift()

	switch press.Char {
	case '\'':
		// With ctrl held the host reports ' even when shift is down.
		switch {
		case ctrl && shift:
			return Substitution{Rule: RuleSingleQuote, Replacement: `"`}, true
		case ctrl:
			return Substitution{Rule: RuleSingleQuote, Replacement: `'`}, true
		case OpensQuote(typing.Lookback()):
			return Substitution{Rule: RuleSingleQuote, Replacement: OpenSingleQuote}, true
		default:
			return Substitution{Rule: RuleSingleQuote, Replacement: CloseSingleQuote}, true
		}

	case '"':
		if OpensQuote(typing.Lookback()) {
			return Substitution{Rule: RuleDoubleQuote, Replacement: OpenDoubleQuote}, true
		}
		return Substitution{Rule: RuleDoubleQuote, Replacement: CloseDoubleQuote}, true

	case '.':
		if typing.Caret < 2 || typing.Before(2) != ".." {
			return Substitution{}, false
		}
		if ctrl {
			return Substitution{Rule: RuleEllipsis, Replacement: ".", Backspace: 2}, true
		}
		return Substitution{Rule: RuleEllipsis, Replacement: Ellipsis, Backspace: 2}, true

	case '-':
		if typing.Caret < 1 || typing.Before(1) != "-" {
			return Substitution{}, false
		}
		if ctrl {
			return Substitution{Rule: RuleEmDash, Replacement: "-", Backspace: 1}, true
		}
		return Substitution{Rule: RuleEmDash, Replacement: EmDash, Backspace: 1}, true

	case CharCodeUnitSeparator:
		if ctrl && !shift {
			return Substitution{Rule: RuleLiteralHyphen, Replacement: "-"}, true
		}
	}

	return Substitution{}, false
}
