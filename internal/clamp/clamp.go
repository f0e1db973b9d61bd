// Package clamp ellipsizes a document tree after a number of words.
package clamp

import (
	"strings"

	"github.com/dgallion1/docclamp/internal/doctree"
)

// Ellipsis marks the point where content was cut.
const Ellipsis = "…"

// ByWords cuts the tree rooted at n down to wordsLeft words, in place.
//
// Text is consumed in document order. The text node where the budget runs
// out keeps its leading words followed by Ellipsis, and every node after it
// is removed from its parent. A text node reached with a budget of zero
// becomes Ellipsis alone. Callers that need the original should clone it
// first.
//
// The result is the unused budget, or a negative number if anything was cut.
// A negative wordsLeft means the cut already happened before n.
func ByWords(n doctree.Node, wordsLeft int) int {
	remaining := wordsLeft

	if t, ok := n.(*doctree.Text); ok && t.Data != "" {
		words := doctree.Words(t.Data)
		switch {
		case remaining < 0:
			t.Data = ""
		case remaining >= len(words):
			remaining -= len(words)
		default:
			t.Data = strings.Join(words[:remaining], " ") + Ellipsis
			remaining = -1
		}
	}

	p, ok := n.(doctree.Parent)
	if !ok {
		return remaining
	}
	children := p.Nodes()
	for i, child := range children {
		if remaining < 0 {
			clear(children[i:])
			p.SetNodes(children[:i])
			break
		}
		remaining = ByWords(child, remaining)
	}
	return remaining
}

// Truncated reports whether a ByWords result means content was cut.
func Truncated(remaining int) bool {
	return remaining < 0
}
