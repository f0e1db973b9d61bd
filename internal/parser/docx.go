package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dgallion1/docclamp/internal/doctree"
	"github.com/fumiama/go-docx"
)

// DOCXParser handles .docx files. Body paragraphs and tables are kept;
// other body items such as section properties carry no text.
type DOCXParser struct{}

func (p *DOCXParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	// go-docx needs a ReadSeeker+size, so write to temp file.
	tmp, err := os.CreateTemp("", "docclamp-docx-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("seek temp file: %w", err)
	}

	doc, err := docx.Parse(tmp, int64(size))
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	tree := &doctree.DocTree{
		Title: strings.TrimSuffix(filename, ".docx"),
	}

	for _, item := range doc.Document.Body.Items {
		if n := docxItem(item); n != nil {
			tree.Children = append(tree.Children, n)
		}
	}

	return tree, nil
}

// docxItem converts a body item. Paragraphs become headings or <p>, tables
// become <table>; anything else yields nil.
func docxItem(item any) doctree.Node {
	switch v := item.(type) {
	case *docx.Paragraph:
		return docxParagraph(v)
	case *docx.Table:
		return docxTable(v)
	}
	return nil
}

func docxParagraph(para *docx.Paragraph) doctree.Node {
	if para == nil {
		return nil
	}
	text := docxParagraphText(para)
	if text == "" {
		return nil
	}
	tag := "p"
	if level := docxHeadingLevel(para); level > 0 {
		tag = fmt.Sprintf("h%d", level)
	}
	return doctree.NewElement(tag, doctree.NewText(text))
}

func docxTable(tbl *docx.Table) doctree.Node {
	if tbl == nil || len(tbl.TableRows) == 0 {
		return nil
	}
	body := doctree.NewElement("tbody")
	for _, r := range tbl.TableRows {
		if r == nil {
			continue
		}
		tr := doctree.NewElement("tr")
		for _, cell := range r.TableCells {
			if cell == nil {
				continue
			}
			td := doctree.NewElement("td")
			for _, para := range cell.Paragraphs {
				if n := docxParagraph(para); n != nil {
					td.Append(n)
				}
			}
			// Nested tables stay inside their cell.
			for _, nested := range cell.Tables {
				if n := docxTable(nested); n != nil {
					td.Append(n)
				}
			}
			tr.Append(td)
		}
		body.Append(tr)
	}
	return doctree.NewElement("table", body)
}

func docxHeadingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := strings.ToLower(strings.ReplaceAll(para.Properties.Style.Val, " ", ""))
	if !strings.HasPrefix(style, "heading") {
		return 0
	}
	switch strings.TrimPrefix(style, "heading") {
	case "1":
		return 1
	case "2":
		return 2
	case "3":
		return 3
	case "4":
		return 4
	case "5":
		return 5
	case "6":
		return 6
	}
	return 0
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
