// Package lcs finds the longest common substring of two sequences by merging
// their suffix arrays.
package lcs

import "github.com/donaldgifford/diffmark/pkg/suffixarray"

// Match is a common substring: s[A:A+Len] == t[B:B+Len].
type Match struct {
	A   int // Offset into the first sequence.
	B   int // Offset into the second sequence.
	Len int
}

// Empty reports whether the match has no length.
func (m Match) Empty() bool {
	return m.Len == 0
}

// Longest returns the longest substring common to s and t. It returns an
// empty Match if s and t share no symbol.
func Longest[E suffixarray.Symbol](s, t []E) Match {
	return Scan(s, suffixarray.New(s), t, suffixarray.New(t))
}

// Scan finds the longest common substring of s and t given their suffix
// arrays si and ti.
//
// The two sorted suffix sequences are walked in lock-step like a merge: at
// each step the common prefix of the current pair is measured, and the cursor
// pointing at the smaller suffix advances. Any pair of suffixes sharing a long
// prefix is adjacent somewhere in the merged order, so inspecting adjacent
// pairs is enough. Among equally long candidates the first one met in merge
// order wins.
func Scan[E suffixarray.Symbol](s []E, si *suffixarray.Index, t []E, ti *suffixarray.Index) Match {
	var best Match
	i, j := 0, 0
	for i < si.Len() && j < ti.Len() {
		p := si.Offset(i)
		q := ti.Offset(j)
		if l := len(suffixarray.LCP(s, p, t, q)); l > best.Len {
			best = Match{A: p, B: q, Len: l}
		}
		if suffixarray.Compare(s, p, t, q) < 0 {
			i++
		} else {
			j++
		}
	}
	return best
}
