package suffixarray

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// offsets returns the full sorted order held by x.
func offsets(x *Index) []int {
	out := make([]int, x.Len())
	for i := range out {
		out[i] = x.Offset(i)
	}
	return out
}

// naiveOrder sorts suffix offsets by comparing the suffixes as strings.
func naiveOrder(s string) []int {
	order := make([]int, len(s))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(x, y int) int {
		return strings.Compare(s[x:], s[y:])
	})
	return order
}

func TestNewKnownOrders(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{"empty", "", []int{}},
		{"single", "a", []int{0}},
		{"banana", "banana", []int{5, 3, 1, 0, 4, 2}},
		{"all identical", "aaaa", []int{3, 2, 1, 0}},
		{"mississippi", "mississippi", []int{10, 7, 4, 1, 0, 9, 8, 6, 3, 5, 2}},
		{"ababab", "ababab", []int{4, 2, 0, 5, 3, 1}},
		{"babababa", "babababa", []int{7, 5, 3, 1, 6, 4, 2, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := New([]byte(tt.input))
			require.Equal(t, len(tt.input), x.Len())
			assert.Equal(t, tt.want, offsets(x))
		})
	}
}

func TestNewRunes(t *testing.T) {
	s := []rune("朝南，朝北，朝南")
	x := New(s)

	got := offsets(x)
	for i := 1; i < len(got); i++ {
		assert.Negative(t, Compare(s, got[i-1], s, got[i]),
			"suffix %d (%q) should sort before suffix %d (%q)",
			got[i-1], string(s[got[i-1]:]), got[i], string(s[got[i]:]))
	}
}

func TestNewMatchesNaiveSort(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	alphabets := []string{"a", "ab", "abc", "acgt", "abcdefghij"}

	for _, alphabet := range alphabets {
		for range 50 {
			n := rng.IntN(40)
			var b strings.Builder
			for range n {
				b.WriteByte(alphabet[rng.IntN(len(alphabet))])
			}
			s := b.String()

			assert.Equal(t, naiveOrder(s), offsets(New([]byte(s))), "input %q", s)
		}
	}
}

func TestNewIsPermutation(t *testing.T) {
	s := []uint16{3, 1, 3, 1, 3, 1, 0, 65535}
	got := offsets(New(s))

	seen := make([]bool, len(s))
	for _, off := range got {
		require.False(t, seen[off], "offset %d repeated", off)
		seen[off] = true
	}
	assert.Len(t, got, len(s))
}

func TestOffsetOutOfRangePanics(t *testing.T) {
	x := New([]byte("abc"))
	assert.Panics(t, func() { x.Offset(3) })
	assert.Panics(t, func() { x.Offset(-1) })
}
