// Package render turns doctree nodes back into HTML or plain text.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dgallion1/docclamp/internal/doctree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML serializes n. A DocTree renders as the concatenation of its children.
func HTML(n doctree.Node) (string, error) {
	var buf bytes.Buffer
	for _, hn := range toHTML(n) {
		if err := html.Render(&buf, hn); err != nil {
			return "", fmt.Errorf("render html: %w", err)
		}
	}
	return buf.String(), nil
}

// ToHTMLNodes converts n into equivalent x/net/html nodes.
func ToHTMLNodes(n doctree.Node) []*html.Node {
	return toHTML(n)
}

func toHTML(n doctree.Node) []*html.Node {
	switch v := n.(type) {
	case *doctree.Text:
		return []*html.Node{{Type: html.TextNode, Data: v.Data}}
	case *doctree.Comment:
		return []*html.Node{{Type: html.CommentNode, Data: v.Data}}
	case *doctree.Element:
		el := &html.Node{
			Type:     html.ElementNode,
			Data:     v.Tag,
			DataAtom: atom.Lookup([]byte(v.Tag)),
		}
		for _, a := range v.Attr {
			el.Attr = append(el.Attr, html.Attribute{Key: a.Key, Val: a.Val})
		}
		for _, c := range v.Children {
			for _, hc := range toHTML(c) {
				el.AppendChild(hc)
			}
		}
		return []*html.Node{el}
	case *doctree.DocTree:
		var out []*html.Node
		for _, c := range v.Children {
			out = append(out, toHTML(c)...)
		}
		return out
	}
	return nil
}

var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"dd": true, "div": true, "dl": true, "dt": true, "figcaption": true,
	"figure": true, "footer": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "header": true, "hr": true,
	"li": true, "main": true, "nav": true, "ol": true, "p": true,
	"pre": true, "section": true, "table": true, "tr": true, "ul": true,
}

// Text renders n as plain text. Block elements are separated by a blank
// line; whitespace inside a block is collapsed to single spaces.
func Text(n doctree.Node) string {
	var blocks []string
	var cur strings.Builder

	flush := func() {
		if t := strings.Join(strings.Fields(cur.String()), " "); t != "" {
			blocks = append(blocks, t)
		}
		cur.Reset()
	}

	var walk func(doctree.Node)
	walk = func(n doctree.Node) {
		switch v := n.(type) {
		case *doctree.Text:
			cur.WriteString(v.Data)
		case *doctree.Element:
			block := blockTags[v.Tag]
			if block {
				flush()
			}
			switch v.Tag {
			case "br":
				cur.WriteString(" ")
			case "td", "th":
				cur.WriteString(" ")
			}
			for _, c := range v.Children {
				walk(c)
			}
			if block {
				flush()
			}
		case *doctree.DocTree:
			for _, c := range v.Children {
				walk(c)
			}
		}
	}
	walk(n)
	flush()
	return strings.Join(blocks, "\n\n")
}
