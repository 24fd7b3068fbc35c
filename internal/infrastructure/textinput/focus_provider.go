package textinput

import (
	"sync"

	"github.com/bnema/smartkeys/internal/application/port"
)

// FocusProvider tracks which editable surface currently has focus.
// It implements port.FocusedSurfaceProvider.
type FocusProvider struct {
	surface port.EditableSurface
	mu      sync.RWMutex
}

// Compile-time interface check.
var _ port.FocusedSurfaceProvider = (*FocusProvider)(nil)

// NewFocusProvider creates a new focus provider.
func NewFocusProvider() *FocusProvider {
	return &FocusProvider{}
}

// FocusedSurface returns the currently focused surface.
// Returns nil if no surface has focus.
func (fp *FocusProvider) FocusedSurface() port.EditableSurface {
	fp.mu.RLock()
	defer fp.mu.RUnlock()
	return fp.surface
}

// SetFocusedSurface sets the currently focused surface.
// Pass nil to clear focus.
func (fp *FocusProvider) SetFocusedSurface(surface port.EditableSurface) {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	fp.surface = surface
}
