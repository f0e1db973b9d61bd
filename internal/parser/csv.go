package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/docclamp/internal/doctree"
)

// CSVParser handles CSV files. The first row becomes the table header.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	tree := &doctree.DocTree{
		Title: strings.TrimSuffix(filename, ".csv"),
	}

	if len(records) == 0 {
		return tree, nil
	}

	table := doctree.NewElement("table")
	table.Append(doctree.NewElement("thead", row("th", records[0])))

	if len(records) > 1 {
		body := doctree.NewElement("tbody")
		for _, rec := range records[1:] {
			body.Append(row("td", rec))
		}
		table.Append(body)
	}

	tree.Children = []doctree.Node{table}
	return tree, nil
}

func row(cellTag string, cells []string) *doctree.Element {
	tr := doctree.NewElement("tr")
	for _, cell := range cells {
		tr.Append(doctree.NewElement(cellTag, doctree.NewText(cell)))
	}
	return tr
}
