package render

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/donaldgifford/diffmark/pkg/diff"
)

// Caret prints each line of a side followed, when the line has unmatched
// text, by a marker line pointing at the unmatched columns. It never uses
// color, which makes it suitable for logs and plain terminals.
type Caret struct{}

// Name implements Renderer.
func (Caret) Name() string { return "caret" }

// Render implements Renderer.
func (Caret) Render(w io.Writer, r *diff.Result, opts *Options) error {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = opts.Config.Caret.EastAsianWidth

	var b strings.Builder
	cw := &caretWriter{out: &b, cond: cond, cfg: opts}
	cw.spans(r.SpansA())
	b.WriteString(strings.TrimPrefix(opts.divider(), opts.Config.LineBreak))
	if opts.Config.Divider.Rows > 0 {
		b.WriteString(opts.Config.LineBreak)
	}
	cw.spans(r.SpansB())

	_, err := io.WriteString(w, b.String())
	return err
}

// caretWriter accumulates one line of text and its marker line.
type caretWriter struct {
	out    *strings.Builder
	cond   *runewidth.Condition
	cfg    *Options
	line   strings.Builder
	marker strings.Builder
	marked bool
	cr     bool // An unmatched '\r' awaits its mark at the end of the line.
}

func (c *caretWriter) spans(spans []diff.Span) {
	for _, sp := range spans {
		for _, r := range sp.Text {
			c.rune(r, !sp.Matched)
		}
	}
	if c.cr {
		c.mark(1)
	}
	if c.line.Len() > 0 || c.marked {
		c.flush()
	}
}

func (c *caretWriter) rune(r rune, unmatched bool) {
	switch r {
	case '\n':
		// An unmatched line break is marked one column past the text.
		if unmatched || c.cr {
			c.mark(1)
		}
		c.flush()
		return
	case '\r':
		// A carriage return has no column; its mark joins the line break's.
		c.cr = c.cr || unmatched
		return
	case '\t':
		c.line.WriteRune(r)
		if unmatched {
			c.mark(1)
		} else {
			c.marker.WriteRune('\t')
		}
		return
	}

	// Zero-width runes (combining marks) take no column of their own.
	c.line.WriteRune(r)
	width := c.cond.RuneWidth(r)
	if unmatched && width > 0 {
		c.mark(width)
	} else {
		c.marker.WriteString(strings.Repeat(" ", width))
	}
}

func (c *caretWriter) mark(width int) {
	c.marker.WriteString(strings.Repeat(c.cfg.Config.Caret.Marker, width))
	c.marked = true
}

func (c *caretWriter) flush() {
	lb := c.cfg.Config.LineBreak
	c.out.WriteString(c.line.String())
	c.out.WriteString(lb)
	if c.marked {
		c.out.WriteString(strings.TrimRight(c.marker.String(), " \t"))
		c.out.WriteString(lb)
	}
	c.line.Reset()
	c.marker.Reset()
	c.marked = false
	c.cr = false
}
