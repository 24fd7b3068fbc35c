// Package textunit counts and slices text in user-perceived characters.
//
// A character is one extended grapheme cluster as segmented by uniseg. Every
// caret offset, lookback and backspace count in smartkeys is expressed in
// these units so flat and tree surfaces agree on positions.
package textunit

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text in order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Slice returns the substring covering clusters [start, end).
// Out-of-range bounds are clamped.
func Slice(text string, start, end int) string {
	if text == "" {
		return ""
	}
	if start < 0 {
		start = 0
	}
	if end <= start {
		return ""
	}

	g := uniseg.NewGraphemes(text)
	idx := 0
	var sb strings.Builder
	for g.Next() {
		if idx >= end {
			break
		}
		if idx >= start {
			sb.WriteString(g.Str())
		}
		idx++
	}
	return sb.String()
}

// ByteOffset returns the byte index of cluster n in text, clamped to
// [0, len(text)].
func ByteOffset(text string, n int) int {
	if n <= 0 || text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	idx := 0
	for g.Next() {
		if idx == n {
			from, _ := g.Positions()
			return from
		}
		idx++
	}
	return len(text)
}

// At returns cluster n of text, or "" when n is out of range.
func At(text string, n int) string {
	if n < 0 {
		return ""
	}
	return Slice(text, n, n+1)
}

// Splice replaces clusters [start, end) of text with repl.
func Splice(text string, start, end int, repl string) string {
	if end < start {
		end = start
	}
	from := ByteOffset(text, start)
	to := ByteOffset(text, end)
	return text[:from] + repl + text[to:]
}
