package parser

import (
	"strings"
	"testing"

	"github.com/dgallion1/docclamp/internal/doctree"
)

func TestHTMLParser_BodyContent(t *testing.T) {
	input := `<!DOCTYPE html>
<html><head><title> Welcome back </title><style>p { color: red }</style></head>
<body><div class="msg"><p>Hello <a href="/courses">learner</a>!</p><!-- note --><script>var x = "ignored words";</script></div></body></html>`

	p := &HTMLParser{}
	tree, err := p.Parse(strings.NewReader(input), "welcome.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Title != "Welcome back" {
		t.Errorf("expected title %q, got %q", "Welcome back", tree.Title)
	}

	blocks := elements(tree.Children)
	if len(blocks) != 1 || blocks[0].Tag != "div" {
		t.Fatalf("expected single <div>, got %d elements", len(blocks))
	}
	div := blocks[0]
	if v, _ := div.Get("class"); v != "msg" {
		t.Errorf("expected class %q, got %q", "msg", v)
	}

	if len(div.Children) != 2 {
		t.Fatalf("expected <p> and comment in div, got %d children", len(div.Children))
	}
	if c, ok := div.Children[1].(*doctree.Comment); !ok || c.Data != " note " {
		t.Errorf("expected comment %q, got %#v", " note ", div.Children[1])
	}

	para := div.Children[0].(*doctree.Element)
	link := elements(para.Children)
	if len(link) != 1 {
		t.Fatalf("expected one link, got %d", len(link))
	}
	if v, _ := link[0].Get("href"); v != "/courses" {
		t.Errorf("expected href %q, got %q", "/courses", v)
	}

	if got := doctree.CountWords(tree); got != 3 {
		t.Errorf("expected 3 words (script skipped), got %d", got)
	}
}

func TestHTMLParser_FragmentWithoutTitle(t *testing.T) {
	p := &HTMLParser{}
	tree, err := p.Parse(strings.NewReader("<p>Hi</p><p>there</p>"), "snippet.htm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Title != "snippet" {
		t.Errorf("expected title %q, got %q", "snippet", tree.Title)
	}
	if len(tree.Children) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(tree.Children))
	}
	if got := paragraphText(t, tree.Children[1]); got != "there" {
		t.Errorf("expected %q, got %q", "there", got)
	}
}

func TestHTMLParser_DecodesLegacyCharset(t *testing.T) {
	// "café" in ISO-8859-1.
	input := "<html><head><meta charset=\"iso-8859-1\"></head><body><p>caf\xe9</p></body></html>"
	p := &HTMLParser{}
	tree, err := p.Parse(strings.NewReader(input), "latin.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := doctree.TextContent(tree); got != "café" {
		t.Errorf("expected %q, got %q", "café", got)
	}
}
