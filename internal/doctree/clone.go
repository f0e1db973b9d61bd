package doctree

// Clone returns a deep copy of n. Nodes of unknown concrete type are
// returned as-is.
func Clone(n Node) Node {
	switch v := n.(type) {
	case *Text:
		return &Text{Data: v.Data}
	case *Comment:
		return &Comment{Data: v.Data}
	case *Element:
		e := &Element{Tag: v.Tag, Children: cloneNodes(v.Children)}
		if v.Attr != nil {
			e.Attr = append([]Attr(nil), v.Attr...)
		}
		return e
	case *DocTree:
		return v.Clone()
	}
	return n
}

// Clone returns a deep copy of the document.
func (t *DocTree) Clone() *DocTree {
	return &DocTree{Title: t.Title, Children: cloneNodes(t.Children)}
}

func cloneNodes(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, c := range nodes {
		out[i] = Clone(c)
	}
	return out
}
