package explode

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/nbexplode/pkg/notebook"
)

const root = "/work/nb.ipynb.exploded"

// pngBytes is a PNG signature followed by a few arbitrary bytes.
var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0x00, 0xff, 0x10}

// seqIDs returns a generator minting cell-1, cell-2, ...
func seqIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("cell-%d", n)
	}
}

func newFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(root, 0o755))
	return fs
}

func explodeNotebook(t *testing.T, fs afero.Fs, nb *notebook.Notebook, dir string, opts ...Option) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(dir, 0o755))
	require.NoError(t, Explode(context.Background(), fs, nb, dir, opts...))
}

func readString(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

func writeTree(t *testing.T, fs afero.Fs, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
}

// dumpTree renders every file under dir, in lexical order, as
// "== relative/path\n<content>\n".
func dumpTree(t *testing.T, fs afero.Fs, dir string) []byte {
	t.Helper()
	var paths []string
	err := afero.Walk(fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			paths = append(paths, path)
		}
		return nil
	})
	require.NoError(t, err)
	sort.Strings(paths)

	var b strings.Builder
	for _, path := range paths {
		rel, err := filepath.Rel(dir, path)
		require.NoError(t, err)
		fmt.Fprintf(&b, "== %s\n%s\n", rel, readString(t, fs, path))
	}
	return []byte(b.String())
}

// sampleNotebook covers every cell type and output variant. Metadata values
// use json.Number and map[string]any so they compare equal after a trip
// through JSON.
func sampleNotebook() *notebook.Notebook {
	nb := notebook.New(notebook.Document{
		"language_info": map[string]any{"name": "python", "file_extension": ".py"},
		"kernelspec":    map[string]any{"name": "python3", "display_name": "Python 3"},
	})

	md := notebook.NewMarkdownCell("# Heading\n\nSome *text* & <html>\n")

	code := notebook.NewCodeCell("import sys\nprint(1)\nprint('warn', file=sys.stderr)")
	code.Metadata["collapsed"] = false
	display := notebook.NewDisplayData(notebook.MimeBundle{
		"text/plain": "<Figure size 640x480>",
		"image/png":  base64.StdEncoding.EncodeToString(pngBytes),
	})
	display.Metadata["image/png"] = map[string]any{"width": json.Number("640")}
	code.Outputs = append(code.Outputs,
		notebook.NewStream("stdout", "1\n"),
		notebook.NewStream("stderr", "warn\n"),
		display,
		notebook.NewExecuteResult(7, notebook.MimeBundle{
			"text/plain": "7",
			"text/html":  "<b>7</b>",
			"text/latex": "$7$",
		}),
		notebook.NewError("ZeroDivisionError", "division by zero", []string{"Traceback", "  line 1"}),
	)

	raw := notebook.NewRawCell("raw\ntext")
	raw.Metadata["format"] = "text/latex"

	quiet := notebook.NewCodeCell("x = 1")
	quiet.Metadata["tags"] = []any{"skip"}

	nb.Cells = append(nb.Cells, md, code, raw, quiet)
	return nb
}
