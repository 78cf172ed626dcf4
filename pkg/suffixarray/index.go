// Package suffixarray builds suffix arrays over sequences of ordered symbols
// and compares suffixes taken from two different sequences.
//
// Unlike index/suffixarray in the standard library, an Index exposes the
// sorted order itself, and works over any integer symbol type (bytes, UTF-16
// code units, runes, or interned token ids).
package suffixarray

import (
	"cmp"
	"slices"
)

// Symbol is the element type an Index can be built over.
type Symbol interface {
	~uint8 | ~uint16 | ~int32 | ~int
}

// Index is the suffix array of a sequence.
type Index struct {
	order []int // order[i] is the start of the i-th smallest suffix.
}

// New builds the suffix array of s using prefix doubling: suffixes are
// ranked by their first k symbols, then re-sorted on (rank[i], rank[i+k])
// pairs with k doubling until every rank is distinct. A suffix that runs out
// of symbols ranks below any suffix that continues, so a proper prefix sorts
// first.
func New[E Symbol](s []E) *Index {
	n := len(s)
	order := make([]int, n)
	if n == 0 {
		return &Index{order: order}
	}
	for i := range order {
		order[i] = i
	}

	// Initial ranks are dense ranks of the symbols themselves.
	slices.SortFunc(order, func(x, y int) int {
		return cmp.Compare(s[x], s[y])
	})
	rank := make([]int, n)
	for i := 1; i < n; i++ {
		rank[order[i]] = rank[order[i-1]]
		if s[order[i]] != s[order[i-1]] {
			rank[order[i]]++
		}
	}

	next := make([]int, n)
	for k := 1; rank[order[n-1]] < n-1; k *= 2 {
		byPair := func(x, y int) int {
			if c := cmp.Compare(rank[x], rank[y]); c != 0 {
				return c
			}
			return cmp.Compare(rankAt(rank, x+k), rankAt(rank, y+k))
		}
		slices.SortFunc(order, byPair)

		next[order[0]] = 0
		for i := 1; i < n; i++ {
			next[order[i]] = next[order[i-1]]
			if byPair(order[i-1], order[i]) < 0 {
				next[order[i]]++
			}
		}
		copy(rank, next)
	}

	return &Index{order: order}
}

// rankAt returns rank[i], or -1 past the end of the sequence.
func rankAt(rank []int, i int) int {
	if i < len(rank) {
		return rank[i]
	}
	return -1
}

// Len returns the number of suffixes in the index.
func (x *Index) Len() int {
	return len(x.order)
}

// Offset returns the start offset of the rank-th smallest suffix.
// It panics unless 0 <= rank < Len().
func (x *Index) Offset(rank int) int {
	return x.order[rank]
}
