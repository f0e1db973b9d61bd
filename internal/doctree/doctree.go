package doctree

import "strings"

// Node is a member of a document tree. Concrete nodes are *Text, *Element,
// *Comment and *DocTree.
type Node interface {
	node()
}

// Parent is implemented by nodes that own an ordered list of children.
type Parent interface {
	Node
	Nodes() []Node
	SetNodes([]Node)
}

// DocTree is the root of a parsed document.
type DocTree struct {
	Title    string // Document title (from metadata or filename)
	Children []Node // Top-level content in document order
}

// Text is a leaf holding character data.
type Text struct {
	Data string
}

// Element is a tagged node with attributes and ordered children.
type Element struct {
	Tag      string
	Attr     []Attr
	Children []Node
}

// Attr is a single element attribute.
type Attr struct {
	Key string
	Val string
}

// Comment is carried through untouched; it holds no words.
type Comment struct {
	Data string
}

func (*DocTree) node() {}
func (*Text) node()    {}
func (*Element) node() {}
func (*Comment) node() {}

func (t *DocTree) Nodes() []Node     { return t.Children }
func (t *DocTree) SetNodes(n []Node) { t.Children = n }
func (e *Element) Nodes() []Node     { return e.Children }
func (e *Element) SetNodes(n []Node) { e.Children = n }

// NewText returns a text node.
func NewText(data string) *Text {
	return &Text{Data: data}
}

// NewElement returns an element with the given children.
func NewElement(tag string, children ...Node) *Element {
	return &Element{Tag: tag, Children: children}
}

// Append adds children to the end of e and returns e.
func (e *Element) Append(children ...Node) *Element {
	e.Children = append(e.Children, children...)
	return e
}

// Get returns the value of the named attribute.
func (e *Element) Get(key string) (string, bool) {
	for _, a := range e.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Words splits s on runs of whitespace, dropping empty tokens.
func Words(s string) []string {
	return strings.Fields(s)
}

// Walk visits n and its descendants in document order. Returning false from
// fn skips the children of the visited node.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	if p, ok := n.(Parent); ok {
		for _, c := range p.Nodes() {
			Walk(c, fn)
		}
	}
}

// CountWords returns the number of words across all text nodes under n.
func CountWords(n Node) int {
	total := 0
	Walk(n, func(n Node) bool {
		if t, ok := n.(*Text); ok {
			total += len(Words(t.Data))
		}
		return true
	})
	return total
}

// TextContent concatenates every text payload under n.
func TextContent(n Node) string {
	var buf strings.Builder
	Walk(n, func(n Node) bool {
		if t, ok := n.(*Text); ok {
			buf.WriteString(t.Data)
		}
		return true
	})
	return buf.String()
}
