package explode

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/matzehuels/nbexplode/pkg/notebook"
)

// TestExplodeGolden pins the on-disk layout. Regenerate with:
//
//	go test ./pkg/explode -run TestExplodeGolden -update
func TestExplodeGolden(t *testing.T) {
	nb := notebook.New(notebook.Document{
		"language_info": map[string]any{"name": "python", "file_extension": ".py"},
	})

	intro := notebook.NewMarkdownCell("# Title")
	intro.ID = "intro"

	code := notebook.NewCodeCell("print(1)")
	code.Outputs = append(code.Outputs,
		notebook.NewStream("stdout", "1\n"),
		notebook.NewExecuteResult(7, notebook.MimeBundle{"text/plain": "7"}),
	)

	notes := notebook.NewRawCell("raw text")
	notes.ID = "notes"
	notes.Metadata["format"] = "text/plain"

	nb.Cells = append(nb.Cells, intro, code, notes)

	fs := newFs(t)
	explodeNotebook(t, fs, nb, root, WithIDGenerator(seqIDs()))

	g := goldie.New(t)
	g.Assert(t, "tree", dumpTree(t, fs, root))
}
