package port

import (
	"context"

	"github.com/bnema/smartkeys/internal/domain/entity"
)

// KeyEvent is a character-insertion event delivered by the host document.
type KeyEvent interface {
	// Target returns the element the event was dispatched to.
	Target() EventTarget

	// Press returns the typed character and modifier state.
	Press() entity.KeyPress

	// PreventDefault suppresses the host's default insertion.
	PreventDefault()

	// DefaultPrevented reports whether PreventDefault was called.
	DefaultPrevented() bool
}

// KeyListener handles a keypress event.
type KeyListener func(ctx context.Context, ev KeyEvent)

// ListenerID identifies a registered listener.
type ListenerID uint64

// KeyEventSource delivers document-wide keypress events to listeners.
type KeyEventSource interface {
	// AddKeypressListener registers fn and returns its id.
	AddKeypressListener(fn KeyListener) ListenerID

	// RemoveKeypressListener unregisters the listener with id.
	// Unknown ids are ignored.
	RemoveKeypressListener(id ListenerID)
}
