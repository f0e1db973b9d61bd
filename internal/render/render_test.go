package render

import (
	"testing"

	"github.com/dgallion1/docclamp/internal/doctree"
)

func TestHTML(t *testing.T) {
	tree := &doctree.DocTree{Children: []doctree.Node{
		&doctree.Element{
			Tag:  "p",
			Attr: []doctree.Attr{{Key: "class", Val: "lead"}},
			Children: []doctree.Node{
				doctree.NewText("Fish & chips <now>"),
				doctree.NewElement("br"),
				doctree.NewElement("a", doctree.NewText("more")),
			},
		},
		&doctree.Comment{Data: "end"},
	}}

	got, err := HTML(tree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<p class="lead">Fish &amp; chips &lt;now&gt;<br/><a>more</a></p><!--end-->`
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestHTML_Empty(t *testing.T) {
	got, err := HTML(&doctree.DocTree{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestToHTMLNodes_Detached(t *testing.T) {
	nodes := ToHTMLNodes(&doctree.DocTree{Children: []doctree.Node{
		doctree.NewElement("p", doctree.NewText("a")),
		doctree.NewElement("p", doctree.NewText("b")),
	}})
	if len(nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(nodes))
	}
	for i, n := range nodes {
		if n.Parent != nil {
			t.Errorf("node %d: expected no parent", i)
		}
	}
}

func TestText(t *testing.T) {
	tree := &doctree.DocTree{Children: []doctree.Node{
		doctree.NewElement("h1", doctree.NewText("Title")),
		doctree.NewText("\n"),
		doctree.NewElement("p",
			doctree.NewText("Hello\n  "),
			doctree.NewElement("em", doctree.NewText("big")),
			doctree.NewText(" world"),
		),
		doctree.NewElement("ul",
			doctree.NewElement("li", doctree.NewText("one")),
			doctree.NewElement("li", doctree.NewText("two")),
		),
	}}

	want := "Title\n\nHello big world\n\none\n\ntwo"
	if got := Text(tree); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
