package diff

// OpKind classifies an Op.
type OpKind int

const (
	OpEqual  OpKind = iota
	OpInsert        // Text exists only in B.
	OpDelete        // Text exists only in A.
)

func (k OpKind) String() string {
	switch k {
	case OpEqual:
		return "equal"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	}
	return "unknown"
}

// Op is one step of an edit script from A to B.
type Op struct {
	Kind OpKind
	Text string
}

// Ops converts the masks into an edit script. Matched units of A and B,
// read left to right, form the same sequence, so both masks can be walked in
// lock step: unmatched units of A become deletes, unmatched units of B become
// inserts, and runs matched on both sides become equal ops. A delete is
// emitted before the insert at the same position.
//
// Concatenating equal and delete texts gives A; equal and insert texts give
// B. For UnitUTF16 this holds only when no surrogate pair is split.
func (r *Result) Ops() []Op {
	markA, markB := r.MarkA, r.MarkB
	var ops []Op
	i, j := 0, 0
	for i < len(markA) || j < len(markB) {
		switch {
		case i < len(markA) && !markA[i]:
			k := i
			for k < len(markA) && !markA[k] {
				k++
			}
			ops = append(ops, Op{Kind: OpDelete, Text: r.ta.slice(i, k)})
			i = k

		case j < len(markB) && !markB[j]:
			k := j
			for k < len(markB) && !markB[k] {
				k++
			}
			ops = append(ops, Op{Kind: OpInsert, Text: r.tb.slice(j, k)})
			j = k

		default:
			if i >= len(markA) || j >= len(markB) {
				invariant("matched units left over at a[%d] b[%d]", i, j)
			}
			n := 0
			for i+n < len(markA) && j+n < len(markB) && markA[i+n] && markB[j+n] {
				if r.ta.keys[i+n] != r.tb.keys[j+n] {
					invariant("matched units a[%d] and b[%d] differ", i+n, j+n)
				}
				n++
			}
			ops = append(ops, Op{Kind: OpEqual, Text: r.ta.slice(i, i+n)})
			i += n
			j += n
		}
	}
	return ops
}
