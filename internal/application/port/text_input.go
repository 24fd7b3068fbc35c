package port

import (
	"context"

	"github.com/bnema/smartkeys/internal/domain/entity"
)

// EventTarget is an element of the host document that can receive key
// events.
type EventTarget interface {
	// NodeName returns the upper-case element name (INPUT, TEXTAREA, DIV...).
	NodeName() string

	// IsContentEditable reports whether the element is, or sits inside, a
	// rich editable region.
	IsContentEditable() bool
}

// EditableSurface is an element accepting direct text input.
// Implementations are the flat field and the tree-structured region.
type EditableSurface interface {
	EventTarget

	// Kind returns the surface variant tag.
	Kind() entity.SurfaceKind

	// Text returns the full text content of the surface.
	Text() string

	// CaretOffset returns the number of characters before the start of the
	// selection. Tree surfaces return entity.ErrNoSelectionRange when no
	// range exists.
	CaretOffset() (int, error)

	// ApplySubstitution removes sub.Backspace characters before the
	// selection, replaces the selection with sub.Replacement and collapses
	// the caret after it.
	ApplySubstitution(ctx context.Context, sub entity.Substitution, policy entity.CaretPolicy) error

	// InsertText performs the host's default insertion of typed text,
	// replacing the selection.
	InsertText(ctx context.Context, text string) error
}

// FocusedSurfaceProvider tracks which editable surface currently has focus.
type FocusedSurfaceProvider interface {
	// FocusedSurface returns the focused surface, or nil if none has focus.
	FocusedSurface() EditableSurface
}
