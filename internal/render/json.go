package render

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/donaldgifford/diffmark/pkg/diff"
)

// JSON prints masks, spans and stats as one indented JSON document.
type JSON struct{}

// Name implements Renderer.
func (JSON) Name() string { return "json" }

type jsonResult struct {
	Unit       string    `json:"unit"`
	Identical  bool      `json:"identical"`
	Similarity float64   `json:"similarity"`
	A          jsonSide  `json:"a"`
	B          jsonSide  `json:"b"`
	Stats      jsonStats `json:"stats"`
}

type jsonSide struct {
	Mask  string     `json:"mask"` // One '1' (matched) or '0' per unit.
	Spans []jsonSpan `json:"spans"`
}

type jsonSpan struct {
	Matched bool   `json:"matched"`
	Text    string `json:"text"`
}

type jsonStats struct {
	Windows  int `json:"windows"`
	Matches  int `json:"matches"`
	MaxStack int `json:"max_stack"`
	Matched  int `json:"matched"`
}

// Render implements Renderer.
func (JSON) Render(w io.Writer, r *diff.Result, _ *Options) error {
	out := jsonResult{
		Unit:       r.Unit.String(),
		Identical:  r.Identical(),
		Similarity: r.Similarity(),
		A:          newJSONSide(r.MarkA, r.SpansA()),
		B:          newJSONSide(r.MarkB, r.SpansB()),
		Stats: jsonStats{
			Windows:  r.Stats.Windows,
			Matches:  r.Stats.Matches,
			MaxStack: r.Stats.MaxStack,
			Matched:  r.Stats.Matched,
		},
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func newJSONSide(mask []bool, spans []diff.Span) jsonSide {
	var b strings.Builder
	for _, m := range mask {
		if m {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}

	side := jsonSide{Mask: b.String(), Spans: make([]jsonSpan, 0, len(spans))}
	for _, sp := range spans {
		side.Spans = append(side.Spans, jsonSpan{Matched: sp.Matched, Text: sp.Text})
	}
	return side
}
