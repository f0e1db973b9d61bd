package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dgallion1/docclamp/internal/doctree"
	"github.com/dgallion1/docclamp/internal/parser"
	"github.com/dgallion1/docclamp/internal/preview"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "docclamp",
		Short:         "Clamp documents to a maximum word count",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.AddCommand(newClampCmd(out))
	root.AddCommand(newCountCmd(out))
	return root
}

type clampOptions struct {
	words     int
	format    string
	inputType string
	long      bool
	pdftotext bool
}

func newClampCmd(out io.Writer) *cobra.Command {
	opts := clampOptions{}
	cmd := &cobra.Command{
		Use:   "clamp FILE",
		Short: "Print the first N words of a document, ending in an ellipsis when cut",
		Long: "Parses FILE (html, md, txt, csv, pdf, docx; \"-\" reads stdin) and prints\n" +
			"the short form. Exits 0 whether or not content was cut; use --format json\n" +
			"to inspect the truncated flag.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := loadTree(args[0], opts.inputType, opts.pdftotext)
			if err != nil {
				return err
			}
			pv, err := preview.Build(tree, opts.words)
			if err != nil {
				return err
			}
			return writePreview(out, pv, opts)
		},
	}
	cmd.Flags().IntVarP(&opts.words, "words", "w", preview.DefaultWordLimit, "maximum number of words to keep")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "html", "output format: html, text or json")
	cmd.Flags().StringVarP(&opts.inputType, "input", "i", "", "input format override: html, markdown or text")
	cmd.Flags().BoolVar(&opts.long, "long", false, "also print the full document when it was cut (html format only)")
	cmd.Flags().BoolVar(&opts.pdftotext, "pdftotext", true, "fall back to pdftotext for PDFs the Go reader cannot handle")
	return cmd
}

func newCountCmd(out io.Writer) *cobra.Command {
	var inputType string
	cmd := &cobra.Command{
		Use:   "count FILE",
		Short: "Print the number of words in a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := loadTree(args[0], inputType, true)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, doctree.CountWords(tree))
			return err
		},
	}
	cmd.Flags().StringVarP(&inputType, "input", "i", "", "input format override: html, markdown or text")
	return cmd
}

func loadTree(path, inputType string, pdftotext bool) (*doctree.DocTree, error) {
	var (
		p   parser.Parser
		err error
	)
	switch {
	case inputType != "":
		p, err = parser.ForFormat(inputType)
	case path == "-":
		p, err = parser.ForFormat("text")
	default:
		p, err = parser.ForFile(path, parser.Options{PDFFallbackPdftotext: pdftotext})
	}
	if err != nil {
		return nil, err
	}

	var r io.Reader = os.Stdin
	name := "stdin"
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
		name = filepath.Base(path)
	}

	tree, err := p.Parse(r, name)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return tree, nil
}

func writePreview(out io.Writer, pv preview.Preview, opts clampOptions) error {
	switch opts.format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(pv)
	case "text":
		_, err := fmt.Fprintln(out, pv.ShortText)
		return err
	case "html":
		if _, err := fmt.Fprintln(out, pv.Short); err != nil {
			return err
		}
		if opts.long && pv.Truncated {
			_, err := fmt.Fprintln(out, pv.Long)
			return err
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", opts.format)
	}
}
