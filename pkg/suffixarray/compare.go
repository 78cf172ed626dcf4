package suffixarray

import "cmp"

// LCP returns the longest common prefix of the suffixes s[p:] and t[q:], as a
// sub-slice of s. The result is empty when the first symbols differ or either
// suffix is empty.
func LCP[E Symbol](s []E, p int, t []E, q int) []E {
	n := min(len(s)-p, len(t)-q)
	for i := range n {
		if s[p+i] != t[q+i] {
			return s[p : p+i]
		}
	}
	return s[p : p+n]
}

// Compare orders the suffixes s[p:] and t[q:] by symbol value. When one
// suffix is a proper prefix of the other, the shorter one is smaller. The
// result is 0 exactly when both suffixes are equal, i.e. when LCP spans both.
func Compare[E Symbol](s []E, p int, t []E, q int) int {
	n := min(len(s)-p, len(t)-q)
	for i := range n {
		if c := cmp.Compare(s[p+i], t[q+i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(s)-p, len(t)-q)
}
