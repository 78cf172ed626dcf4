package diff

// Result is the marking of two texts together with the texts themselves, so
// callers can render it without re-segmenting.
type Result struct {
	A, B  string
	Unit  Unit
	MarkA []bool // One entry per unit of A.
	MarkB []bool // One entry per unit of B.
	Stats Stats

	ta, tb *text
}

// Compute segments a and b by unit and marks their shared units.
func Compute(a, b string, unit Unit) (*Result, error) {
	ta, tb, err := segment(a, b, unit)
	if err != nil {
		return nil, err
	}

	markA, markB, st := mark(ta.keys, tb.keys)
	return &Result{
		A:     a,
		B:     b,
		Unit:  unit,
		MarkA: markA,
		MarkB: markB,
		Stats: st,
		ta:    ta,
		tb:    tb,
	}, nil
}

// MarkStrings marks the code points of a and b. It is Compute with UnitRune,
// reduced to the two masks.
func MarkStrings(a, b string) (markA, markB []bool) {
	r, err := Compute(a, b, UnitRune)
	if err != nil {
		// UnitRune always segments.
		panic(err)
	}
	return r.MarkA, r.MarkB
}

// Identical reports whether every unit on both sides is shared.
func (r *Result) Identical() bool {
	return r.Stats.Matched == len(r.MarkA) && r.Stats.Matched == len(r.MarkB)
}

// Similarity returns the share of units, over both sides, that are matched:
// 2*matched / (len(MarkA)+len(MarkB)). Two empty inputs are fully similar.
func (r *Result) Similarity() float64 {
	total := len(r.MarkA) + len(r.MarkB)
	if total == 0 {
		return 1
	}
	return float64(2*r.Stats.Matched) / float64(total)
}

// Span is a run of consecutive display pieces with the same match state.
type Span struct {
	Matched bool
	Text    string
}

// SpansA groups A into matched and unmatched runs. See spans.
func (r *Result) SpansA() []Span {
	return spans(r.ta, r.MarkA)
}

// SpansB groups B into matched and unmatched runs. See spans.
func (r *Result) SpansB() []Span {
	return spans(r.tb, r.MarkB)
}

// spans walks t's display pieces. A piece counts as matched only if every
// unit it covers is matched, so a character split by byte or UTF-16 units
// is shown as changed. Concatenating the span texts yields t.s.
func spans(t *text, mask []bool) []Span {
	var out []Span
	for _, p := range t.pieces {
		matched := true
		for _, m := range mask[p.from:p.to] {
			matched = matched && m
		}

		if n := len(out); n > 0 && out[n-1].Matched == matched {
			out[n-1].Text += t.s[p.start:p.end]
			continue
		}
		out = append(out, Span{Matched: matched, Text: t.s[p.start:p.end]})
	}
	return out
}
