package entity

import (
	"errors"
	"strings"
)

// ErrNoSelectionRange reports that a tree surface was asked for its caret
// while it had no selection range. Callers only act during live typing in a
// focused region, where a range always exists.
var ErrNoSelectionRange = errors.New("surface has no selection range")

// SurfaceKind tags the two editable surface variants.
type SurfaceKind uint8

const (
	// SurfaceNone is any element that does not accept direct text input.
	SurfaceNone SurfaceKind = iota
	// SurfaceFlat owns a flat string value and a linear selection range.
	SurfaceFlat
	// SurfaceTree owns a node tree and a selection of anchor/focus points.
	SurfaceTree
)

func (k SurfaceKind) String() string {
	switch k {
	case SurfaceFlat:
		return "flat"
	case SurfaceTree:
		return "tree"
	default:
		return "none"
	}
}

// Node names of flat editable elements.
const (
	NodeNameInput    = "INPUT"
	NodeNameTextarea = "TEXTAREA"
)

// IsAcceptableTarget reports whether an element with the given node name and
// contenteditable state is eligible for substitution.
func IsAcceptableTarget(nodeName string, contentEditable bool) bool {
	return IsFlatNodeName(nodeName) || contentEditable
}

// IsFlatNodeName reports whether nodeName is a plain text field.
func IsFlatNodeName(nodeName string) bool {
	switch strings.ToUpper(nodeName) {
	case NodeNameInput, NodeNameTextarea:
		return true
	}
	return false
}

// CaretPolicy decides where a flat surface places its caret after a
// substitution.
type CaretPolicy string

const (
	// CaretAfterReplacement places the caret right after the inserted text.
	CaretAfterReplacement CaretPolicy = "after-replacement"
	// CaretLegacy advances the caret by exactly one position from the prior
	// selection start, whatever the replacement length. Multi-character
	// substitutions leave the caret misplaced under this policy.
	CaretLegacy CaretPolicy = "legacy"
)

// ParseCaretPolicy returns the policy named s, defaulting to
// CaretAfterReplacement for unknown values.
func ParseCaretPolicy(s string) CaretPolicy {
	switch CaretPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case CaretLegacy:
		return CaretLegacy
	default:
		return CaretAfterReplacement
	}
}

// IsValid reports whether p is a known policy.
func (p CaretPolicy) IsValid() bool {
	return p == CaretAfterReplacement || p == CaretLegacy
}

// FlatCaret returns the caret position after replacing
// [start-sub.Backspace, end) with sub.Replacement.
func (p CaretPolicy) FlatCaret(start int, sub Substitution) int {
	if p == CaretLegacy {
		return start + 1
	}
	pos := start - sub.Backspace
	if pos < 0 {
		pos = 0
	}
	return pos + sub.ReplacementLen()
}
