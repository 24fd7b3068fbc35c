package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/smartkeys/internal/application/port"
	"github.com/bnema/smartkeys/internal/domain/entity"
	"github.com/bnema/smartkeys/internal/logging"
)

var (
	// ErrAlreadyInstalled is returned by Install when a listener is already registered.
	ErrAlreadyInstalled = errors.New("smart keys listener already installed")
	// ErrNoSurface is returned when an acceptable target has no editable surface behind it.
	ErrNoSurface = errors.New("no focused editable surface")
)

// SmartKeysUseCase substitutes typed quotes, periods and hyphens with their
// typographic forms in the focused editable surface.
//
// Every keypress is handled synchronously: the target is classified, the
// surface is read, the rules decide, and when a substitution fires the
// default insertion is suppressed and the surface is mutated instead.
type SmartKeysUseCase struct {
	focusProvider port.FocusedSurfaceProvider
	caretPolicy   entity.CaretPolicy

	source     port.KeyEventSource
	listenerID port.ListenerID
	installed  bool

	mu sync.Mutex
}

// NewSmartKeysUseCase creates the use case. focusProvider resolves the
// surface behind rich-region targets.
func NewSmartKeysUseCase(focusProvider port.FocusedSurfaceProvider, caretPolicy entity.CaretPolicy) *SmartKeysUseCase {
	if !caretPolicy.IsValid() {
		caretPolicy = entity.CaretAfterReplacement
	}
	return &SmartKeysUseCase{
		focusProvider: focusProvider,
		caretPolicy:   caretPolicy,
	}
}

// CaretPolicy returns the caret policy used for flat surfaces.
func (uc *SmartKeysUseCase) CaretPolicy() entity.CaretPolicy {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.caretPolicy
}

// SetCaretPolicy changes the caret policy, e.g. after a config reload.
func (uc *SmartKeysUseCase) SetCaretPolicy(p entity.CaretPolicy) {
	if !p.IsValid() {
		return
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.caretPolicy = p
}

// Install registers the keypress listener on source.
func (uc *SmartKeysUseCase) Install(ctx context.Context, source port.KeyEventSource) error {
	log := logging.FromContext(ctx)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.installed {
		return ErrAlreadyInstalled
	}

	uc.listenerID = source.AddKeypressListener(uc.listen)
	uc.source = source
	uc.installed = true

	log.Debug().Uint64("listener_id", uint64(uc.listenerID)).Msg("smart keys listener installed")
	return nil
}

// Uninstall removes the keypress listener. It is a no-op when not installed.
func (uc *SmartKeysUseCase) Uninstall() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.installed {
		return
	}
	uc.source.RemoveKeypressListener(uc.listenerID)
	uc.source = nil
	uc.listenerID = 0
	uc.installed = false
}

// Installed reports whether the listener is registered.
func (uc *SmartKeysUseCase) Installed() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.installed
}

func (uc *SmartKeysUseCase) listen(ctx context.Context, ev port.KeyEvent) {
	if _, err := uc.OnKeyPress(ctx, ev); err != nil {
		logging.FromContext(ctx).Error().
			Err(err).
			Str("char", ev.Press().Text()).
			Msg("smart keys substitution failed")
	}
}

// OnKeyPress handles a keypress event.
// Returns true if a substitution fired and the default insertion was suppressed.
func (uc *SmartKeysUseCase) OnKeyPress(ctx context.Context, ev port.KeyEvent) (bool, error) {
	target := ev.Target()
	if target == nil || !IsAcceptableTarget(target) {
		return false, nil
	}

	surface := uc.surfaceFor(target)
	if surface == nil {
		return false, ErrNoSurface
	}

	ctx = logging.WithSurface(ctx, surface.Kind().String(), target.NodeName())
	log := logging.FromContext(ctx)

	// Reading the caret of a region without a range is a precondition
	// violation; it is reported, not recovered.
	caret, err := surface.CaretOffset()
	if err != nil {
		return false, fmt.Errorf("read caret offset: %w", err)
	}

	press := ev.Press()
	sub, ok := entity.Decide(press, entity.TypingContext{Text: surface.Text(), Caret: caret})
	if !ok {
		return false, nil
	}

	ev.PreventDefault()

	policy := uc.CaretPolicy()
	if err := surface.ApplySubstitution(ctx, sub, policy); err != nil {
		return true, fmt.Errorf("apply %s substitution: %w", sub.Rule, err)
	}

	log.Debug().
		Str("rule", string(sub.Rule)).
		Str("char", press.Text()).
		Str("modifiers", press.Modifiers.String()).
		Str("replacement", sub.Replacement).
		Int("backspace", sub.Backspace).
		Int("caret", caret).
		Msg("substituted typed character")

	return true, nil
}

// Text returns the full text of the surface behind target, or "" when the
// target is not editable.
func (uc *SmartKeysUseCase) Text(target port.EventTarget) string {
	surface := uc.surfaceFor(target)
	if surface == nil {
		return ""
	}
	return surface.Text()
}

// CaretOffset returns the caret offset of the surface behind target, or 0
// when the target is not editable.
func (uc *SmartKeysUseCase) CaretOffset(target port.EventTarget) (int, error) {
	surface := uc.surfaceFor(target)
	if surface == nil {
		return 0, nil
	}
	return surface.CaretOffset()
}

// surfaceFor resolves the editable surface for target. Flat targets are
// their own surface; rich targets may be nested elements, so the focused
// surface is used.
func (uc *SmartKeysUseCase) surfaceFor(target port.EventTarget) port.EditableSurface {
	if target == nil {
		return nil
	}
	if s, ok := target.(port.EditableSurface); ok && s.Kind() == entity.SurfaceFlat {
		return s
	}
	if !target.IsContentEditable() || uc.focusProvider == nil {
		return nil
	}
	focused := uc.focusProvider.FocusedSurface()
	if focused == nil || focused.Kind() != entity.SurfaceTree {
		return nil
	}
	return focused
}

// IsAcceptableTarget reports whether target is a plain text field or a rich
// editable region.
func IsAcceptableTarget(target port.EventTarget) bool {
	return entity.IsAcceptableTarget(target.NodeName(), target.IsContentEditable())
}
