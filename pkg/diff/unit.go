package diff

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/graphemes"
)

// Unit selects what one mask entry stands for.
type Unit int

const (
	// UnitRune compares Unicode code points. It is the default.
	UnitRune Unit = iota
	// UnitByte compares UTF-8 bytes; a multi-byte character can be split.
	UnitByte
	// UnitUTF16 compares UTF-16 code units; surrogate pairs can be split.
	UnitUTF16
	// UnitGrapheme compares extended grapheme clusters (user-perceived
	// characters, e.g. a letter with its combining marks).
	UnitGrapheme
)

// ErrUnknownUnit is returned by ParseUnit for an unrecognized name.
var ErrUnknownUnit = errors.New("unknown unit")

var unitNames = [...]string{
	UnitRune:     "rune",
	UnitByte:     "byte",
	UnitUTF16:    "utf16",
	UnitGrapheme: "grapheme",
}

// String returns the name accepted by ParseUnit.
func (u Unit) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitNames[u]
}

// ParseUnit parses a unit name. The empty string selects UnitRune.
func ParseUnit(s string) (Unit, error) {
	if s == "" {
		return UnitRune, nil
	}
	for u, name := range unitNames {
		if strings.EqualFold(s, name) {
			return Unit(u), nil
		}
	}
	return 0, fmt.Errorf("%w %q (want one of %s)", ErrUnknownUnit, s, strings.Join(unitNames[:], ", "))
}

// UnitNames lists the valid unit names.
func UnitNames() []string {
	return slices.Clone(unitNames[:])
}

// piece is the smallest span rendered as a whole: a code point, or a grapheme
// cluster in grapheme mode. It covers units [from, to) and bytes s[start:end].
type piece struct {
	from, to   int
	start, end int
}

// Keys of bytes that are not valid UTF-8 sit above every code point (rune
// unit) or code unit (utf16 unit), one key per byte value, so two different
// invalid bytes never compare equal.
const (
	invalidRuneKey  = utf8.MaxRune + 1
	invalidUTF16Key = 0x10000
)

// decodeRune decodes the rune at s[i:]. An invalid byte yields ok == false
// and size 1.
func decodeRune(s string, i int) (r rune, size int, ok bool) {
	r, size = utf8.DecodeRuneInString(s[i:])
	return r, size, r != utf8.RuneError || size > 1
}

// text is one input split into comparison keys and display pieces.
type text struct {
	s      string
	unit   Unit
	keys   []int32
	starts []int // Byte offset of each unit, plus len(s); unused for UnitUTF16.
	pieces []piece
}

// slice returns the text of units [from, to).
func (t *text) slice(from, to int) string {
	if t.unit == UnitUTF16 {
		var b strings.Builder
		units := make([]uint16, 0, to-from)
		for _, k := range t.keys[from:to] {
			if k < invalidUTF16Key {
				units = append(units, uint16(k))
				continue
			}
			for _, r := range utf16.Decode(units) {
				b.WriteRune(r)
			}
			units = units[:0]
			b.WriteByte(byte(k - invalidUTF16Key))
		}
		for _, r := range utf16.Decode(units) {
			b.WriteRune(r)
		}
		return b.String()
	}
	return t.s[t.starts[from]:t.starts[to]]
}

// segment splits both inputs by unit. Both sides are segmented together so
// that grapheme keys share one ranking.
func segment(a, b string, unit Unit) (ta, tb *text, err error) {
	switch unit {
	case UnitRune:
		return segmentRunes(a), segmentRunes(b), nil
	case UnitByte:
		return segmentBytes(a), segmentBytes(b), nil
	case UnitUTF16:
		return segmentUTF16(a), segmentUTF16(b), nil
	case UnitGrapheme:
		ta, tb = segmentGraphemes(a, b)
		return ta, tb, nil
	default:
		return nil, nil, fmt.Errorf("%w %s", ErrUnknownUnit, unit)
	}
}

func segmentRunes(s string) *text {
	t := &text{s: s, unit: UnitRune}
	for i := 0; i < len(s); {
		r, size, ok := decodeRune(s, i)
		if !ok {
			r = invalidRuneKey + rune(s[i])
		}
		t.pieces = append(t.pieces, piece{from: len(t.keys), to: len(t.keys) + 1, start: i, end: i + size})
		t.keys = append(t.keys, r)
		t.starts = append(t.starts, i)
		i += size
	}
	t.starts = append(t.starts, len(s))
	return t
}

func segmentBytes(s string) *text {
	t := &text{s: s, unit: UnitByte}
	t.keys = make([]int32, len(s))
	t.starts = make([]int, len(s)+1)
	for i := range len(s) {
		t.keys[i] = int32(s[i])
		t.starts[i] = i
	}
	t.starts[len(s)] = len(s)
	for i := range s {
		_, size := utf8.DecodeRuneInString(s[i:])
		t.pieces = append(t.pieces, piece{from: i, to: i + size, start: i, end: i + size})
	}
	return t
}

func segmentUTF16(s string) *text {
	t := &text{s: s, unit: UnitUTF16}
	var buf []uint16
	for i := 0; i < len(s); {
		r, size, ok := decodeRune(s, i)
		from := len(t.keys)
		if ok {
			buf = utf16.AppendRune(buf[:0], r)
			for _, u := range buf {
				t.keys = append(t.keys, int32(u))
			}
		} else {
			t.keys = append(t.keys, invalidUTF16Key+int32(s[i]))
		}
		t.pieces = append(t.pieces, piece{from: from, to: len(t.keys), start: i, end: i + size})
		i += size
	}
	return t
}

// segmentGraphemes keys each cluster by its rank among the distinct clusters
// of both inputs, so key order follows the clusters' byte order.
func segmentGraphemes(a, b string) (ta, tb *text) {
	split := func(s string) (clusters []string, starts []int) {
		iter := graphemes.FromString(s)
		for iter.Next() {
			clusters = append(clusters, iter.Value())
			starts = append(starts, iter.Start())
		}
		return clusters, append(starts, len(s))
	}
	ca, sa := split(a)
	cb, sb := split(b)

	distinct := slices.Concat(ca, cb)
	slices.Sort(distinct)
	distinct = slices.Compact(distinct)
	rank := make(map[string]int32, len(distinct))
	for i, c := range distinct {
		rank[c] = int32(i)
	}

	build := func(s string, clusters []string, starts []int) *text {
		t := &text{s: s, unit: UnitGrapheme, starts: starts}
		t.keys = make([]int32, len(clusters))
		t.pieces = make([]piece, len(clusters))
		for i, c := range clusters {
			t.keys[i] = rank[c]
			t.pieces[i] = piece{from: i, to: i + 1, start: starts[i], end: starts[i+1]}
		}
		return t
	}
	return build(a, ca, sa), build(b, cb, sb)
}
