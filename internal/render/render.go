// Package render turns a diff.Result into output: the renderer interface,
// its registry, and color handling shared by the renderers.
package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/donaldgifford/diffmark/internal/config"
	"github.com/donaldgifford/diffmark/pkg/diff"
)

// Renderer writes a diff result in one output format.
type Renderer interface {
	// Name returns the format name used in config and on the command line
	// (e.g., "highlight").
	Name() string

	// Render writes r to w. Renderers must not modify r.
	Render(w io.Writer, r *diff.Result, opts *Options) error
}

// Options carries the resolved render settings.
type Options struct {
	Config  *config.RenderConfig
	Profile termenv.Profile // termenv.Ascii disables color.
}

// ErrUnknownRenderer is returned by Lookup for an unregistered name.
var ErrUnknownRenderer = errors.New("unknown format")

var renderers []Renderer

// Register adds a renderer to the registry. Names must be unique.
func Register(r Renderer) {
	for _, existing := range renderers {
		if existing.Name() == r.Name() {
			panic(fmt.Sprintf("render: duplicate renderer %q", r.Name()))
		}
	}
	renderers = append(renderers, r)
}

// Lookup returns the renderer registered under name.
func Lookup(name string) (Renderer, error) {
	for _, r := range renderers {
		if r.Name() == name {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownRenderer, name, strings.Join(Names(), ", "))
}

// Names returns the registered format names in registration order.
func Names() []string {
	names := make([]string, 0, len(renderers))
	for _, r := range renderers {
		names = append(names, r.Name())
	}
	return names
}

// Profile resolves a color mode for output written to w. In auto mode color
// is used only when w is a terminal and NO_COLOR is unset.
func Profile(mode string, w io.Writer) termenv.Profile {
	switch mode {
	case config.ColorAlways:
		return termenv.TrueColor
	case config.ColorNever:
		return termenv.Ascii
	}

	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return termenv.Ascii
	}
	return termenv.NewOutput(f).EnvColorProfile()
}

// unmatched decorates text exclusive to one side: styled when color is on,
// wrapped in the plain delimiters otherwise.
func (o *Options) unmatched(s string) string {
	if o.Profile == termenv.Ascii {
		return o.Config.Plain.Open + s + o.Config.Plain.Close
	}

	h := o.Config.Highlight
	style := o.Profile.String(s).Foreground(o.Profile.Color(h.Color))
	if h.Reverse {
		style = style.Reverse()
	}
	if h.Bold {
		style = style.Bold()
	}
	return style.String()
}

// divider returns the separator rows, each preceded by a line break.
func (o *Options) divider() string {
	d := o.Config.Divider
	row := strings.Repeat(d.Char, d.Width)

	var b strings.Builder
	for range d.Rows {
		b.WriteString(o.Config.LineBreak)
		b.WriteString(row)
	}
	return b.String()
}
