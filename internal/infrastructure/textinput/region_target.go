package textinput

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/bnema/smartkeys/internal/application/port"
	"github.com/bnema/smartkeys/internal/domain/entity"
	"github.com/bnema/smartkeys/internal/logging"
	"github.com/bnema/smartkeys/internal/textunit"
)

// Point is a boundary point in a region's node tree. In a text node Offset
// counts characters; in an element it is a child index.
type Point struct {
	Node   *html.Node
	Offset int
}

// Selection is a range expressed as anchor and focus points. The focus may
// come before the anchor.
type Selection struct {
	Anchor Point
	Focus  Point
}

// Region is a rich editable region (a contenteditable element). It owns an
// HTML node tree and at most one selection range.
type Region struct {
	root *html.Node
	sel  *Selection
}

// Compile-time interface check.
var _ port.EditableSurface = (*Region)(nil)

// NewRegion creates a contenteditable div holding markup, caret collapsed at
// the end of its text.
func NewRegion(markup string) (*Region, error) {
	root := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
		Attr:     []html.Attribute{{Key: "contenteditable", Val: "true"}},
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	})
	if err != nil {
		return nil, fmt.Errorf("parse region markup: %w", err)
	}
	for _, n := range nodes {
		root.AppendChild(n)
	}

	r := &Region{root: root}
	r.SetCaret(textunit.Count(r.Text()))
	return r, nil
}

// NodeName returns the element name of the region root.
func (r *Region) NodeName() string { return strings.ToUpper(r.root.Data) }

// IsContentEditable is always true for regions.
func (r *Region) IsContentEditable() bool { return true }

// Kind returns entity.SurfaceTree.
func (r *Region) Kind() entity.SurfaceKind { return entity.SurfaceTree }

// Text returns the text content of the region.
func (r *Region) Text() string {
	var sb strings.Builder
	walkText(r.root, func(t *html.Node) bool {
		sb.WriteString(t.Data)
		return true
	})
	return sb.String()
}

// InnerHTML renders the region's children.
func (r *Region) InnerHTML() string {
	var buf bytes.Buffer
	for c := r.root.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&buf, c)
	}
	return buf.String()
}

// Root returns the region's root element.
func (r *Region) Root() *html.Node { return r.root }

// CaretOffset returns the number of characters between the start of the
// region and the start of the selection.
func (r *Region) CaretOffset() (int, error) {
	start, _, ok := r.Selection()
	if !ok {
		return 0, entity.ErrNoSelectionRange
	}
	return start, nil
}

// Selection returns the selection as ordered character offsets.
func (r *Region) Selection() (start, end int, ok bool) {
	if r.sel == nil {
		return 0, 0, false
	}
	a := r.offsetOf(r.sel.Anchor)
	f := r.offsetOf(r.sel.Focus)
	if f < a {
		a, f = f, a
	}
	return a, f, true
}

// SelectionPoints returns the raw anchor and focus points.
func (r *Region) SelectionPoints() (Selection, bool) {
	if r.sel == nil {
		return Selection{}, false
	}
	return *r.sel, true
}

// SetCaret collapses the selection at the given character offset.
func (r *Region) SetCaret(offset int) {
	p := r.pointAt(offset)
	r.sel = &Selection{Anchor: p, Focus: p}
}

// Select sets the selection between two character offsets. focus may be
// before anchor.
func (r *Region) Select(anchor, focus int) {
	r.sel = &Selection{Anchor: r.pointAt(anchor), Focus: r.pointAt(focus)}
}

// RemoveAllRanges clears the selection.
func (r *Region) RemoveAllRanges() {
	r.sel = nil
}

// ApplySubstitution moves the selection start back by sub.Backspace
// characters, deletes the range, inserts the replacement as a new text node
// and collapses the selection right after that node. The caret policy only
// applies to flat surfaces.
func (r *Region) ApplySubstitution(ctx context.Context, sub entity.Substitution, _ entity.CaretPolicy) error {
	log := logging.FromContext(ctx)

	start, end, ok := r.Selection()
	if !ok {
		return entity.ErrNoSelectionRange
	}
	from := start - sub.Backspace
	if from < 0 {
		from = 0
	}

	r.deleteChars(from, end)

	node := &html.Node{Type: html.TextNode, Data: sub.Replacement}
	insertNodeAt(r.pointAt(from), node)

	after := Point{Node: node.Parent, Offset: childIndex(node) + 1}
	r.sel = &Selection{Anchor: after, Focus: after}

	log.Trace().
		Int("from", from).
		Int("to", end).
		Msg("replaced text in region")

	return nil
}

// InsertText performs a default insertion: the selection is replaced and
// text is merged into the text node at the caret when there is one.
func (r *Region) InsertText(_ context.Context, text string) error {
	start, end, ok := r.Selection()
	if !ok {
		return entity.ErrNoSelectionRange
	}
	r.deleteChars(start, end)

	p := r.pointAt(start)
	if p.Node.Type == html.TextNode {
		p.Node.Data = textunit.Splice(p.Node.Data, p.Offset, p.Offset, text)
		caret := Point{Node: p.Node, Offset: p.Offset + textunit.Count(text)}
		r.sel = &Selection{Anchor: caret, Focus: caret}
		return nil
	}

	node := &html.Node{Type: html.TextNode, Data: text}
	insertNodeAt(p, node)
	caret := Point{Node: node, Offset: textunit.Count(text)}
	r.sel = &Selection{Anchor: caret, Focus: caret}
	return nil
}

// DeleteBeforeCursor deletes n characters before the caret, or the
// selection when one is active.
func (r *Region) DeleteBeforeCursor(_ context.Context, n int) error {
	start, end, ok := r.Selection()
	if !ok {
		return entity.ErrNoSelectionRange
	}
	if start == end {
		start = max(0, start-n)
	}
	if start == end {
		return nil
	}
	r.deleteChars(start, end)
	r.SetCaret(start)
	return nil
}

// Descendant returns the first element below the root named tag, as an
// event target inside the region.
func (r *Region) Descendant(tag string) (*Element, bool) {
	var found *html.Node
	var find func(n *html.Node)
	find = func(n *html.Node) {
		for c := n.FirstChild; c != nil && found == nil; c = c.NextSibling {
			if c.Type == html.ElementNode && strings.EqualFold(c.Data, tag) {
				found = c
				return
			}
			find(c)
		}
	}
	find(r.root)
	if found == nil {
		return nil, false
	}
	return &Element{node: found, editable: true}, true
}

// offsetOf counts the characters that precede p inside the region.
func (r *Region) offsetOf(p Point) int {
	total := 0
	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		if n == p.Node {
			if n.Type == html.TextNode {
				total += min(p.Offset, textunit.Count(n.Data))
				return true
			}
			i := 0
			for c := n.FirstChild; c != nil && i < p.Offset; c = c.NextSibling {
				total += textLen(c)
				i++
			}
			return true
		}
		if n.Type == html.TextNode {
			total += textunit.Count(n.Data)
			return false
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(r.root)
	return total
}

// pointAt maps a character offset to a boundary point, preferring the end
// of the earlier text node at node boundaries.
func (r *Region) pointAt(offset int) Point {
	if offset < 0 {
		offset = 0
	}
	var found *Point
	var last *html.Node
	cum := 0
	walkText(r.root, func(t *html.Node) bool {
		n := textunit.Count(t.Data)
		if offset <= cum+n {
			found = &Point{Node: t, Offset: offset - cum}
			return false
		}
		cum += n
		last = t
		return true
	})
	if found != nil {
		return *found
	}
	if last != nil {
		return Point{Node: last, Offset: textunit.Count(last.Data)}
	}
	return Point{Node: r.root, Offset: childCount(r.root)}
}

// deleteChars removes characters [from, to) across text nodes and drops
// text nodes left empty.
func (r *Region) deleteChars(from, to int) {
	if to <= from {
		return
	}
	var emptied []*html.Node
	cum := 0
	walkText(r.root, func(t *html.Node) bool {
		n := textunit.Count(t.Data)
		s, e := cum, cum+n
		cum = e
		if e <= from {
			return true
		}
		if s >= to {
			return false
		}
		t.Data = textunit.Splice(t.Data, max(from, s)-s, min(to, e)-s, "")
		if t.Data == "" {
			emptied = append(emptied, t)
		}
		return true
	})
	for _, t := range emptied {
		t.Parent.RemoveChild(t)
	}
}

// insertNodeAt inserts n at p, splitting a text node when p falls inside it.
func insertNodeAt(p Point, n *html.Node) {
	if p.Node.Type != html.TextNode {
		p.Node.InsertBefore(n, childAt(p.Node, p.Offset))
		return
	}

	t := p.Node
	at := textunit.ByteOffset(t.Data, p.Offset)
	switch {
	case at == 0:
		t.Parent.InsertBefore(n, t)
	case at >= len(t.Data):
		t.Parent.InsertBefore(n, t.NextSibling)
	default:
		tail := &html.Node{Type: html.TextNode, Data: t.Data[at:]}
		t.Data = t.Data[:at]
		t.Parent.InsertBefore(n, t.NextSibling)
		t.Parent.InsertBefore(tail, n.NextSibling)
	}
}

func walkText(n *html.Node, fn func(t *html.Node) bool) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			if !fn(c) {
				return false
			}
			continue
		}
		if !walkText(c, fn) {
			return false
		}
	}
	return true
}

func textLen(n *html.Node) int {
	if n.Type == html.TextNode {
		return textunit.Count(n.Data)
	}
	total := 0
	walkText(n, func(t *html.Node) bool {
		total += textunit.Count(t.Data)
		return true
	})
	return total
}

func childAt(n *html.Node, i int) *html.Node {
	c := n.FirstChild
	for ; c != nil && i > 0; c = c.NextSibling {
		i--
	}
	return c
}

func childCount(n *html.Node) int {
	i := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		i++
	}
	return i
}

func childIndex(n *html.Node) int {
	i := 0
	for c := n.PrevSibling; c != nil; c = c.PrevSibling {
		i++
	}
	return i
}
