package preview

import (
	"errors"
	"strings"
	"testing"

	"github.com/dgallion1/docclamp/internal/doctree"
)

func message() *doctree.DocTree {
	return &doctree.DocTree{
		Title: "Welcome",
		Children: []doctree.Node{
			doctree.NewElement("p", doctree.NewText("Welcome to the course, we are glad you are here.")),
			doctree.NewElement("p", doctree.NewText("Check the updates page often.")),
		},
	}
}

func TestBuild_Truncated(t *testing.T) {
	tree := message()
	p, err := Build(tree, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !p.Truncated {
		t.Fatal("expected truncated preview")
	}
	if p.Remaining != -1 {
		t.Errorf("expected remaining -1, got %d", p.Remaining)
	}
	if p.Words != 15 {
		t.Errorf("expected 15 words, got %d", p.Words)
	}
	if want := "<p>Welcome to the course,…</p>"; p.Short != want {
		t.Errorf("expected short %q, got %q", want, p.Short)
	}
	if p.ShortText != "Welcome to the course,…" {
		t.Errorf("unexpected short text %q", p.ShortText)
	}
	if !strings.Contains(p.Long, "Check the updates page often.") {
		t.Errorf("expected long form to hold the full message, got %q", p.Long)
	}

	// The caller's tree is left intact.
	if got := doctree.CountWords(tree); got != 15 {
		t.Errorf("expected original tree untouched, got %d words", got)
	}
}

func TestBuild_Fits(t *testing.T) {
	p, err := Build(message(), DefaultWordLimit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Truncated {
		t.Error("expected no truncation")
	}
	if p.Remaining != DefaultWordLimit-15 {
		t.Errorf("expected remaining %d, got %d", DefaultWordLimit-15, p.Remaining)
	}
	if p.Long != "" {
		t.Errorf("expected no long form, got %q", p.Long)
	}
	if p.Title != "Welcome" || p.Limit != DefaultWordLimit {
		t.Errorf("unexpected metadata: %+v", p)
	}
}

func TestBuild_ZeroLimit(t *testing.T) {
	p, err := Build(message(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Short != "<p>…</p>" {
		t.Errorf("expected ellipsis-only short form, got %q", p.Short)
	}
}

func TestBuild_NegativeLimit(t *testing.T) {
	_, err := Build(message(), -1)
	if !errors.Is(err, ErrInvalidLimit) {
		t.Fatalf("expected ErrInvalidLimit, got %v", err)
	}
}
