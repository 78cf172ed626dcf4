// Package diff marks which units of two texts are shared and which are
// exclusive to one side.
//
// The marking is built greedily: the longest common substring of the two
// texts is found and marked, then the regions to its left and to its right
// are resolved the same way, until no region pair shares a unit. The result
// is a left-to-right chain of non-overlapping common substrings. It is fast
// but not an optimal alignment: taking the longest match first can rule out
// a larger total of smaller matches.
package diff

import (
	"fmt"

	"github.com/donaldgifford/diffmark/pkg/lcs"
	"github.com/donaldgifford/diffmark/pkg/suffixarray"
)

// InvariantError is the panic value raised when the marking state becomes
// inconsistent. It indicates a bug, not a property of the input.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return "diff: invariant violated: " + e.Msg
}

func invariant(format string, args ...any) {
	panic(&InvariantError{Msg: fmt.Sprintf(format, args...)})
}

// Stats describes the work done by one marking.
type Stats struct {
	Windows  int // Windows taken off the work stack, including empty ones.
	Matches  int // Common substrings found and marked.
	MaxStack int // Deepest the work stack grew.
	Matched  int // Units marked on each side (equal for both sides).
}

// window is a pair of half-open ranges a[aFrom:aTo], b[bFrom:bTo] that is
// still unresolved.
type window struct {
	aFrom, aTo int
	bFrom, bTo int
}

func (w window) empty() bool {
	return w.aFrom >= w.aTo || w.bFrom >= w.bTo
}

func (w window) check(lenA, lenB int) {
	if w.aFrom < 0 || w.aFrom > w.aTo || w.aTo > lenA ||
		w.bFrom < 0 || w.bFrom > w.bTo || w.bTo > lenB {
		invariant("window a[%d:%d] b[%d:%d] outside a[0:%d] b[0:%d]",
			w.aFrom, w.aTo, w.bFrom, w.bTo, lenA, lenB)
	}
}

// Mark returns one mask per input. markA[i] is true when a[i] belongs to a
// common substring chosen by the greedy matching, likewise for markB. The
// masks have len(a) and len(b) elements; the result depends only on the
// inputs.
func Mark[E suffixarray.Symbol](a, b []E) (markA, markB []bool) {
	markA, markB, _ = mark(a, b)
	return markA, markB
}

// mark resolves windows from an explicit stack so that inputs with many
// short matches cannot exhaust the goroutine stack. The right remainder is
// pushed before the left one, giving the same visiting order as recursing
// left first.
func mark[E suffixarray.Symbol](a, b []E) (markA, markB []bool, st Stats) {
	markA = make([]bool, len(a))
	markB = make([]bool, len(b))

	stack := []window{{aFrom: 0, aTo: len(a), bFrom: 0, bTo: len(b)}}
	for len(stack) > 0 {
		st.MaxStack = max(st.MaxStack, len(stack))
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		st.Windows++

		w.check(len(a), len(b))
		if w.empty() {
			continue
		}

		// Indices are rebuilt over the window so that every suffix
		// comparison is relative to the window's own content.
		m := lcs.Longest(a[w.aFrom:w.aTo], b[w.bFrom:w.bTo])
		if m.Empty() {
			continue
		}

		aAt, bAt := w.aFrom+m.A, w.bFrom+m.B
		markCommon(markA, markB, aAt, bAt, m.Len)
		st.Matches++
		st.Matched += m.Len

		stack = append(stack,
			window{aFrom: aAt + m.Len, aTo: w.aTo, bFrom: bAt + m.Len, bTo: w.bTo},
			window{aFrom: w.aFrom, aTo: aAt, bFrom: w.bFrom, bTo: bAt},
		)
	}

	return markA, markB, st
}

// markCommon sets markA[aAt:aAt+n] and markB[bAt:bAt+n]. Matched ranges
// never overlap, so finding a unit already set is an invariant violation.
func markCommon(markA, markB []bool, aAt, bAt, n int) {
	for i := range n {
		if markA[aAt+i] || markB[bAt+i] {
			invariant("unit a[%d] or b[%d] marked twice", aAt+i, bAt+i)
		}
		markA[aAt+i] = true
		markB[bAt+i] = true
	}
}
