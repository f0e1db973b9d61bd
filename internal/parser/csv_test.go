package parser

import (
	"strings"
	"testing"

	"github.com/dgallion1/docclamp/internal/doctree"
)

func TestCSVParser_Table(t *testing.T) {
	input := "name,role\nAda,engineer\nGrace,admiral\n"
	p := &CSVParser{}
	tree, err := p.Parse(strings.NewReader(input), "people.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Title != "people" {
		t.Errorf("expected title %q, got %q", "people", tree.Title)
	}
	if len(tree.Children) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tree.Children))
	}
	table := tree.Children[0].(*doctree.Element)
	if table.Tag != "table" || len(table.Children) != 2 {
		t.Fatalf("expected <table> with thead and tbody, got <%s> with %d children", table.Tag, len(table.Children))
	}
	body := table.Children[1].(*doctree.Element)
	if len(body.Children) != 2 {
		t.Errorf("expected 2 body rows, got %d", len(body.Children))
	}
	if got := doctree.CountWords(tree); got != 6 {
		t.Errorf("expected 6 words, got %d", got)
	}
}

func TestCSVParser_Empty(t *testing.T) {
	p := &CSVParser{}
	tree, err := p.Parse(strings.NewReader(""), "empty.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Children) != 0 {
		t.Errorf("expected no children, got %d", len(tree.Children))
	}
}
