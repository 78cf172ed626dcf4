package render

import (
	"io"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/donaldgifford/diffmark/pkg/diff"
)

// Patch prints the edit script as a diff-match-patch patch, which any
// diff-match-patch port can apply to A to obtain B.
type Patch struct{}

// Name implements Renderer.
func (Patch) Name() string { return "patch" }

// Render implements Renderer.
func (Patch) Render(w io.Writer, r *diff.Result, _ *Options) error {
	dmp := diffmatchpatch.New()
	patches := dmp.PatchMake(r.A, toDMP(r.Ops()))
	_, err := io.WriteString(w, dmp.PatchToText(patches))
	return err
}

// toDMP converts an edit script to diff-match-patch diffs.
func toDMP(ops []diff.Op) []diffmatchpatch.Diff {
	diffs := make([]diffmatchpatch.Diff, 0, len(ops))
	for _, op := range ops {
		var t diffmatchpatch.Operation
		switch op.Kind {
		case diff.OpEqual:
			t = diffmatchpatch.DiffEqual
		case diff.OpInsert:
			t = diffmatchpatch.DiffInsert
		case diff.OpDelete:
			t = diffmatchpatch.DiffDelete
		}
		diffs = append(diffs, diffmatchpatch.Diff{Type: t, Text: op.Text})
	}
	return diffs
}
