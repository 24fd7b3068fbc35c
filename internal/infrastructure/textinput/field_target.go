// Package textinput provides the editable surfaces and focus tracking.
package textinput

import (
	"context"
	"strings"

	"github.com/bnema/smartkeys/internal/application/port"
	"github.com/bnema/smartkeys/internal/domain/entity"
	"github.com/bnema/smartkeys/internal/logging"
	"github.com/bnema/smartkeys/internal/textunit"
)

// Field is a plain single-line (INPUT) or multi-line (TEXTAREA) text field.
// It owns a flat string value and a linear selection [start, end) measured
// in characters.
type Field struct {
	nodeName string
	value    string

	selStart int
	selEnd   int
}

// Compile-time interface check.
var _ port.EditableSurface = (*Field)(nil)

// NewInput creates a single-line field holding value, caret at the end.
func NewInput(value string) *Field {
	return newField(entity.NodeNameInput, value)
}

// NewTextarea creates a multi-line field holding value, caret at the end.
func NewTextarea(value string) *Field {
	return newField(entity.NodeNameTextarea, value)
}

func newField(nodeName, value string) *Field {
	f := &Field{nodeName: nodeName}
	f.SetValue(value)
	return f
}

// NodeName returns INPUT or TEXTAREA.
func (f *Field) NodeName() string { return f.nodeName }

// IsContentEditable is always false for plain fields.
func (f *Field) IsContentEditable() bool { return false }

// Kind returns entity.SurfaceFlat.
func (f *Field) Kind() entity.SurfaceKind { return entity.SurfaceFlat }

// Text returns the current value.
func (f *Field) Text() string { return f.value }

// Value is an alias of Text matching the form-field vocabulary.
func (f *Field) Value() string { return f.value }

// SetValue replaces the value and moves the caret to its end, as assigning
// a field's value does.
func (f *Field) SetValue(value string) {
	if f.nodeName == entity.NodeNameInput {
		value = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(value)
	}
	f.value = value
	n := textunit.Count(value)
	f.selStart, f.selEnd = n, n
}

// CaretOffset returns the selection start.
func (f *Field) CaretOffset() (int, error) {
	return f.selStart, nil
}

// Selection returns the selection range [start, end).
func (f *Field) Selection() (start, end int) {
	return f.selStart, f.selEnd
}

// SetSelectionRange sets the selection, clamping both ends to the value and
// ordering them.
func (f *Field) SetSelectionRange(start, end int) {
	n := textunit.Count(f.value)
	start = clamp(start, 0, n)
	end = clamp(end, 0, n)
	if end < start {
		start, end = end, start
	}
	f.selStart, f.selEnd = start, end
}

// ApplySubstitution replaces [start-backspace, end) with the replacement and
// places the caret according to policy.
func (f *Field) ApplySubstitution(ctx context.Context, sub entity.Substitution, policy entity.CaretPolicy) error {
	log := logging.FromContext(ctx)

	start, end := f.selStart, f.selEnd
	from := start - sub.Backspace
	if from < 0 {
		from = 0
	}

	f.value = textunit.Splice(f.value, from, end, sub.Replacement)
	caret := policy.FlatCaret(start, sub)
	f.SetSelectionRange(caret, caret)

	log.Trace().
		Int("from", from).
		Int("to", end).
		Int("caret", f.selStart).
		Msg("replaced text in field")

	return nil
}

// InsertText replaces the selection with text and collapses the caret
// after it.
func (f *Field) InsertText(_ context.Context, text string) error {
	if f.nodeName == entity.NodeNameInput {
		text = strings.NewReplacer("\r\n", "", "\n", "", "\r", "").Replace(text)
	}
	f.value = textunit.Splice(f.value, f.selStart, f.selEnd, text)
	caret := f.selStart + textunit.Count(text)
	f.SetSelectionRange(caret, caret)
	return nil
}

// DeleteBeforeCursor deletes n characters before the caret, or the
// selection when one is active.
func (f *Field) DeleteBeforeCursor(_ context.Context, n int) error {
	start, end := f.selStart, f.selEnd
	if start == end {
		start -= n
		if start < 0 {
			start = 0
		}
	}
	if start == end {
		return nil
	}
	f.value = textunit.Splice(f.value, start, end, "")
	f.SetSelectionRange(start, start)
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
