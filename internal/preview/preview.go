// Package preview builds short, word-clamped versions of documents along
// with the full version to show behind a "show more" toggle.
package preview

import (
	"errors"
	"fmt"

	"github.com/dgallion1/docclamp/internal/clamp"
	"github.com/dgallion1/docclamp/internal/doctree"
	"github.com/dgallion1/docclamp/internal/render"
)

// DefaultWordLimit matches the welcome-message excerpt length.
const DefaultWordLimit = 100

// ErrInvalidLimit is returned for negative word limits.
var ErrInvalidLimit = errors.New("word limit must not be negative")

// Preview is the result of clamping a document.
type Preview struct {
	Title     string `json:"title"`
	Limit     int    `json:"limit"`
	Words     int    `json:"words"`
	Remaining int    `json:"remaining"`
	Truncated bool   `json:"truncated"`
	Short     string `json:"short"`
	Long      string `json:"long,omitempty"`
	ShortText string `json:"short_text"`
}

// Build clamps a copy of tree to limit words. tree itself is not modified.
// Long holds the full document only when the short form was cut.
func Build(tree *doctree.DocTree, limit int) (Preview, error) {
	if limit < 0 {
		return Preview{}, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	short := tree.Clone()
	remaining := clamp.ByWords(short, limit)

	p := Preview{
		Title:     tree.Title,
		Limit:     limit,
		Words:     doctree.CountWords(tree),
		Remaining: remaining,
		Truncated: clamp.Truncated(remaining),
		ShortText: render.Text(short),
	}

	var err error
	if p.Short, err = render.HTML(short); err != nil {
		return Preview{}, fmt.Errorf("render short: %w", err)
	}
	if p.Truncated {
		if p.Long, err = render.HTML(tree); err != nil {
			return Preview{}, fmt.Errorf("render long: %w", err)
		}
	}
	return p, nil
}
