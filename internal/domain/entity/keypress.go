package entity

import "strings"

// Modifier is a bit set of keyboard modifier keys held during a key press.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModMeta indicates the Meta key (Cmd on macOS).
	ModMeta
)

// Has returns true if m contains mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasShift returns true if Shift is held.
func (m Modifier) HasShift() bool { return m.Has(ModShift) }

// HasCtrl returns true if Control is held.
func (m Modifier) HasCtrl() bool { return m.Has(ModCtrl) }

// String returns a form like "Ctrl+Shift".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}
	var parts []string
	if m.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.HasShift() {
		parts = append(parts, "Shift")
	}
	if m.Has(ModMeta) {
		parts = append(parts, "Meta")
	}
	return strings.Join(parts, "+")
}

// CharCodeUnitSeparator is the control character some hosts deliver for
// ctrl+hyphen instead of the hyphen itself.
const CharCodeUnitSeparator rune = 31

// KeyPress is one character-insertion event as delivered by the host.
type KeyPress struct {
	// Char is the character produced by the key, already reflecting shift.
	Char rune
	// Modifiers holds the modifier keys active during the press.
	Modifiers Modifier
}

// NewKeyPress creates a key press for char with the given modifiers.
func NewKeyPress(char rune, mods Modifier) KeyPress {
	return KeyPress{Char: char, Modifiers: mods}
}

// Text returns the character as a string.
func (k KeyPress) Text() string {
	return string(k.Char)
}

// IsControl reports whether the press produced a C0 control character,
// which hosts never insert as text.
func (k KeyPress) IsControl() bool {
	return k.Char < 32 || k.Char == 127
}
