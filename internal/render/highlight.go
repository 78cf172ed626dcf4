package render

import (
	"io"
	"strings"

	"github.com/donaldgifford/diffmark/pkg/diff"
)

// Highlight prints both texts in full with unmatched runs decorated, A first,
// then the divider, then B.
type Highlight struct{}

// Name implements Renderer.
func (Highlight) Name() string { return "highlight" }

// Render implements Renderer.
func (Highlight) Render(w io.Writer, r *diff.Result, opts *Options) error {
	var b strings.Builder
	writeSpans(&b, r.SpansA(), opts)
	b.WriteString(opts.divider())
	b.WriteString(opts.Config.LineBreak)
	writeSpans(&b, r.SpansB(), opts)
	b.WriteString(opts.Config.LineBreak)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeSpans(b *strings.Builder, spans []diff.Span, opts *Options) {
	for _, sp := range spans {
		if sp.Matched {
			b.WriteString(sp.Text)
			continue
		}
		b.WriteString(opts.unmatched(sp.Text))
	}
}
