package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/docclamp/internal/doctree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// HTMLParser handles HTML files and fragments.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	// Sniff <meta charset> / BOM so legacy encodings are decoded to UTF-8.
	utf8Reader, err := charset.NewReader(r, "text/html")
	if err != nil {
		return nil, fmt.Errorf("detect charset: %w", err)
	}
	doc, err := html.Parse(utf8Reader)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	tree := &doctree.DocTree{
		Title: strings.TrimSuffix(strings.TrimSuffix(filename, ".html"), ".htm"),
	}

	// Extract title from <title> tag if present.
	if title := findTitle(doc); title != "" {
		tree.Title = title
	}

	// Find <body> or use whole document.
	root := findBody(doc)
	if root == nil {
		root = doc
	}
	tree.Children = convertChildren(root)
	return tree, nil
}

// FromHTML converts a parsed x/net/html node's children into doctree nodes.
func FromHTML(n *html.Node) []doctree.Node {
	return convertChildren(n)
}

func convertChildren(n *html.Node) []doctree.Node {
	var out []doctree.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if dn := convert(c); dn != nil {
			out = append(out, dn)
		}
	}
	return out
}

func convert(n *html.Node) doctree.Node {
	switch n.Type {
	case html.TextNode:
		return doctree.NewText(n.Data)
	case html.CommentNode:
		return &doctree.Comment{Data: n.Data}
	case html.ElementNode:
		// Skip non-content elements.
		switch n.Data {
		case "script", "style", "noscript", "template":
			return nil
		}
		el := &doctree.Element{Tag: n.Data}
		for _, a := range n.Attr {
			key := a.Key
			if a.Namespace != "" {
				key = a.Namespace + ":" + a.Key
			}
			el.Attr = append(el.Attr, doctree.Attr{Key: key, Val: a.Val})
		}
		el.Children = convertChildren(n)
		return el
	}
	// Doctype, document and raw nodes carry no content of their own.
	return nil
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return textContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
