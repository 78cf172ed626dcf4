package diff

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bools parses a mask written as "1" (matched) and "0" (unmatched).
func bools(s string) []bool {
	out := make([]bool, len(s))
	for i := range len(s) {
		out[i] = s[i] == '1'
	}
	return out
}

// matchedUnits returns the units of s whose mask entry is true.
func matchedUnits(s []byte, mask []bool) string {
	var b strings.Builder
	for i, m := range mask {
		if m {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func TestMarkScenarios(t *testing.T) {
	tests := []struct {
		name         string
		a, b         string
		wantA, wantB string
	}{
		{"identical", "abc", "abc", "111", "111"},
		{"disjoint", "abc", "xyz", "000", "000"},
		{"embedded", "abcdef", "xxabcxx", "111000", "0011100"},
		{"a empty", "", "anything", "", "00000000"},
		{"b empty", "anything", "", "00000000", ""},
		{"both empty", "", "", "", ""},
		// "ababab" is found whole inside b at offset 1; both flanks of b
		// are left with an empty partner.
		{"periodic", "ababab", "babababa", "111111", "01111110"},
		// The first maximal match in merge order is a[1:3] / b[0:2].
		{"repeated symbol", "aaa", "aa", "011", "11"},
		// "ab" wins the tie with "cd" and leaves "cd" on opposite flanks.
		{"greedy tie", "abXcd", "cdYab", "11000", "00011"},
		{"two matches", "abcXdef", "abcYYdef", "1110111", "11100111"},
		{"single shared", "xay", "bac", "010", "010"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			markA, markB := Mark([]byte(tt.a), []byte(tt.b))
			assert.Equal(t, bools(tt.wantA), markA, "markA")
			assert.Equal(t, bools(tt.wantB), markB, "markB")
		})
	}
}

func TestMarkProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))
	gen := func(alphabet string, n int) string {
		var b strings.Builder
		for range n {
			b.WriteByte(alphabet[rng.IntN(len(alphabet))])
		}
		return b.String()
	}

	for _, alphabet := range []string{"a", "ab", "abc", "acgt", "abcdefghijklmnop"} {
		for range 100 {
			a := gen(alphabet, rng.IntN(60))
			b := gen(alphabet, rng.IntN(60))

			markA, markB := Mark([]byte(a), []byte(b))
			require.Len(t, markA, len(a))
			require.Len(t, markB, len(b))

			// Matched units read in order are the same sequence on both sides.
			assert.Equal(t, matchedUnits([]byte(a), markA), matchedUnits([]byte(b), markB), "a=%q b=%q", a, b)

			// Marking is deterministic.
			againA, againB := Mark([]byte(a), []byte(b))
			assert.Equal(t, markA, againA)
			assert.Equal(t, markB, againB)
		}
	}
}

func TestMarkSelfIsFullyMatched(t *testing.T) {
	for _, s := range []string{"a", "abc", "aaaa", "mississippi", "转租杭州/滨江/湘云雅苑/主卧/1600\n"} {
		r, err := Compute(s, s, UnitRune)
		require.NoError(t, err)

		assert.True(t, r.Identical(), "%q", s)
		assert.Equal(t, 1, r.Stats.Matches, "%q should be consumed in one step", s)
		assert.InDelta(t, 1.0, r.Similarity(), 1e-9)
	}
}

func TestMarkDisjointAlphabets(t *testing.T) {
	markA, markB := Mark([]rune("αβγαβγ"), []rune("xyzzy"))
	assert.NotContains(t, markA, true)
	assert.NotContains(t, markB, true)
}

func TestMarkManyShortMatches(t *testing.T) {
	// Shared symbols are unique and separated by a symbol the other side
	// lacks, so every shared symbol is its own one-unit match.
	const n = 300
	var a, b []int
	for i := range n {
		a = append(a, i, -1)
		b = append(b, i, -2)
	}

	markA, markB, st := mark(a, b)
	assert.Equal(t, n, st.Matched)
	assert.Equal(t, n, st.Matches)
	assert.LessOrEqual(t, st.MaxStack, 2)
	for i := range a {
		assert.Equal(t, i%2 == 0, markA[i], "a[%d]", i)
		assert.Equal(t, i%2 == 0, markB[i], "b[%d]", i)
	}
}

func TestMarkCommonPanicsOnOverlap(t *testing.T) {
	markA := make([]bool, 4)
	markB := make([]bool, 4)
	markCommon(markA, markB, 0, 0, 2)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(*InvariantError)
		require.True(t, ok, "panic value %T", r)
		assert.Contains(t, err.Error(), "marked twice")
	}()
	markCommon(markA, markB, 1, 2, 2)
}

func TestWindowCheckPanics(t *testing.T) {
	assert.Panics(t, func() { window{aFrom: 2, aTo: 1}.check(3, 3) })
	assert.Panics(t, func() { window{aTo: 4}.check(3, 3) })
	assert.Panics(t, func() { window{bFrom: -1}.check(3, 3) })
	assert.NotPanics(t, func() { window{aFrom: 3, aTo: 3, bFrom: 0, bTo: 3}.check(3, 3) })
}

func TestMarkStrings(t *testing.T) {
	markA, markB := MarkStrings("朝南，阳光", "朝南，阳光透气。")
	assert.Equal(t, bools("11111"), markA)
	assert.Equal(t, bools("11111000"), markB)
}

func FuzzMark(f *testing.F) {
	seeds := [][2]string{
		{"abc", "abc"},
		{"abc", "xyz"},
		{"abcdef", "xxabcxx"},
		{"", "anything"},
		{"ababab", "babababa"},
		{"aaa", "aa"},
		{"朝向：朝南", "朝向：朝南。"},
	}
	for _, s := range seeds {
		f.Add(s[0], s[1])
	}

	f.Fuzz(func(t *testing.T, a, b string) {
		markA, markB := Mark([]byte(a), []byte(b))
		if len(markA) != len(a) || len(markB) != len(b) {
			t.Fatalf("mask lengths %d/%d for inputs %d/%d", len(markA), len(markB), len(a), len(b))
		}
		if matchedUnits([]byte(a), markA) != matchedUnits([]byte(b), markB) {
			t.Fatalf("matched sequences differ for a=%q b=%q", a, b)
		}
		if a == b {
			for i, m := range markA {
				if !m {
					t.Fatalf("identical input left a[%d] unmatched", i)
				}
			}
		}
	})
}
