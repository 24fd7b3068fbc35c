package textinput

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/bnema/smartkeys/internal/application/port"
)

// Element is a non-surface element of the host document: a button, a
// static paragraph, or an element nested inside a rich region.
type Element struct {
	node     *html.Node
	name     string
	editable bool
}

// Compile-time interface check.
var _ port.EventTarget = (*Element)(nil)

// NewStatic creates a non-editable element with the given node name.
func NewStatic(nodeName string) *Element {
	return &Element{name: strings.ToUpper(nodeName)}
}

// NodeName returns the upper-case element name.
func (e *Element) NodeName() string {
	if e.node != nil {
		return strings.ToUpper(e.node.Data)
	}
	return e.name
}

// IsContentEditable reports whether the element sits inside a rich region.
func (e *Element) IsContentEditable() bool { return e.editable }
