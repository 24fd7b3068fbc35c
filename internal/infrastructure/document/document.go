// Package document models the host document: its elements, focus, and the
// document-wide keypress event stream.
package document

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/smartkeys/internal/application/port"
	"github.com/bnema/smartkeys/internal/domain/entity"
	"github.com/bnema/smartkeys/internal/infrastructure/textinput"
	"github.com/bnema/smartkeys/internal/logging"
	"github.com/bnema/smartkeys/internal/textunit"
)

// ErrNoActiveElement is returned when typing with nothing focused.
var ErrNoActiveElement = errors.New("document has no active element")

type listenerEntry struct {
	id port.ListenerID
	fn port.KeyListener
}

// Document is an in-memory host document. It delivers keypress events to
// listeners in registration order and then performs the default insertion
// unless a listener prevented it.
type Document struct {
	focus    *textinput.FocusProvider
	active   port.EventTarget
	elements []port.EventTarget

	listeners []listenerEntry
	nextID    port.ListenerID

	mu sync.Mutex
}

// Compile-time interface checks.
var (
	_ port.KeyEventSource         = (*Document)(nil)
	_ port.FocusedSurfaceProvider = (*Document)(nil)
)

// New creates an empty document.
func New() *Document {
	return &Document{focus: textinput.NewFocusProvider()}
}

// Add attaches el to the document.
func (d *Document) Add(el port.EventTarget) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.elements = append(d.elements, el)
}

// Elements returns the attached elements in insertion order.
func (d *Document) Elements() []port.EventTarget {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]port.EventTarget, len(d.elements))
	copy(out, d.elements)
	return out
}

// Focus makes el the active element. Editable surfaces also become the
// focused surface; other elements clear it.
func (d *Document) Focus(el port.EventTarget) {
	d.mu.Lock()
	d.active = el
	d.mu.Unlock()

	if s, ok := el.(port.EditableSurface); ok {
		d.focus.SetFocusedSurface(s)
		return
	}
	d.focus.SetFocusedSurface(nil)
}

// Blur clears the active element.
func (d *Document) Blur() {
	d.mu.Lock()
	d.active = nil
	d.mu.Unlock()
	d.focus.SetFocusedSurface(nil)
}

// ActiveElement returns the focused element, or nil.
func (d *Document) ActiveElement() port.EventTarget {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active
}

// FocusedSurface returns the focused editable surface, or nil.
func (d *Document) FocusedSurface() port.EditableSurface {
	return d.focus.FocusedSurface()
}

// AddKeypressListener registers fn and returns its id.
func (d *Document) AddKeypressListener(fn port.KeyListener) port.ListenerID {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.nextID++
	d.listeners = append(d.listeners, listenerEntry{id: d.nextID, fn: fn})
	return d.nextID
}

// RemoveKeypressListener unregisters the listener with id.
func (d *Document) RemoveKeypressListener(id port.ListenerID) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, l := range d.listeners {
		if l.id == id {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			return
		}
	}
}

// ListenerCount returns the number of registered listeners.
func (d *Document) ListenerCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners)
}

// Result reports what happened to a dispatched keypress.
type Result struct {
	// Prevented is true when a listener suppressed the default insertion.
	Prevented bool
	// Inserted is true when the default insertion ran.
	Inserted bool
}

// Dispatch delivers press to every listener with target as the event
// target, then performs the default insertion unless it was prevented.
func (d *Document) Dispatch(ctx context.Context, target port.EventTarget, press entity.KeyPress) (Result, error) {
	ev := &keyEvent{target: target, press: press}

	d.mu.Lock()
	listeners := make([]listenerEntry, len(d.listeners))
	copy(listeners, d.listeners)
	d.mu.Unlock()

	for _, l := range listeners {
		l.fn(ctx, ev)
	}

	if ev.DefaultPrevented() {
		return Result{Prevented: true}, nil
	}

	inserted, err := d.defaultAction(ctx, target, press)
	if err != nil {
		return Result{}, err
	}
	return Result{Inserted: inserted}, nil
}

// Press dispatches press to the active element.
func (d *Document) Press(ctx context.Context, press entity.KeyPress) (Result, error) {
	target := d.ActiveElement()
	if target == nil {
		return Result{}, ErrNoActiveElement
	}
	return d.Dispatch(ctx, target, press)
}

// Type dispatches one unmodified keypress per character of text to the
// active element.
func (d *Document) Type(ctx context.Context, text string) error {
	for _, g := range textunit.Split(text) {
		r := []rune(g)
		if len(r) != 1 {
			// Clusters that no single key produces are inserted as typed.
			if err := d.insertCluster(ctx, g); err != nil {
				return err
			}
			continue
		}
		if _, err := d.Press(ctx, entity.NewKeyPress(r[0], entity.ModNone)); err != nil {
			return fmt.Errorf("type %q: %w", g, err)
		}
	}
	return nil
}

func (d *Document) insertCluster(ctx context.Context, g string) error {
	target := d.ActiveElement()
	if target == nil {
		return ErrNoActiveElement
	}
	surface := d.surfaceFor(target)
	if surface == nil {
		return nil
	}
	return surface.InsertText(ctx, g)
}

func (d *Document) defaultAction(ctx context.Context, target port.EventTarget, press entity.KeyPress) (bool, error) {
	text := press.Text()
	switch press.Char {
	case '\r', '\n':
		text = "\n"
	default:
		if press.IsControl() {
			return false, nil
		}
	}

	surface := d.surfaceFor(target)
	if surface == nil {
		return false, nil
	}

	log := logging.FromContext(ctx)
	if err := surface.InsertText(ctx, text); err != nil {
		return false, fmt.Errorf("default insertion: %w", err)
	}
	log.Trace().Str("text", text).Str("surface", surface.Kind().String()).Msg("default insertion")
	return true, nil
}

func (d *Document) surfaceFor(target port.EventTarget) port.EditableSurface {
	if target == nil {
		return nil
	}
	if s, ok := target.(port.EditableSurface); ok {
		return s
	}
	if target.IsContentEditable() {
		return d.FocusedSurface()
	}
	return nil
}

type keyEvent struct {
	target    port.EventTarget
	press     entity.KeyPress
	prevented bool
}

func (e *keyEvent) Target() port.EventTarget { return e.target }
func (e *keyEvent) Press() entity.KeyPress   { return e.press }
func (e *keyEvent) PreventDefault()          { e.prevented = true }
func (e *keyEvent) DefaultPrevented() bool   { return e.prevented }
