package explode

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	nberrors "github.com/matzehuels/nbexplode/pkg/errors"
	"github.com/matzehuels/nbexplode/pkg/notebook"
	"github.com/matzehuels/nbexplode/pkg/observability"
)

// Recombine rebuilds a notebook from a tree written by [Explode].
//
// Cell order comes from cells_sequence only. Every cell gets its directory
// name back as [notebook.Cell.ID], which is what keeps ids stable across
// cycles. Any inconsistency in the tree aborts the whole run; no partial
// notebook is ever returned.
func Recombine(ctx context.Context, afs afero.Fs, dir string) (nb *notebook.Notebook, err error) {
	start := time.Now()
	hooks := observability.Transform()
	hooks.OnRecombineStart(ctx, dir)
	defer func() {
		cells := 0
		if nb != nil {
			cells = len(nb.Cells)
		}
		hooks.OnRecombineComplete(ctx, dir, cells, time.Since(start), err)
	}()

	var meta notebook.Document
	if err := readJSON(afs, filepath.Join(dir, MetadataFile), &meta); err != nil {
		return nil, err
	}

	lines, err := readLines(afs, filepath.Join(dir, CellsSequenceFile))
	if err != nil {
		return nil, err
	}

	out := notebook.New(meta)
	seen := make(map[string]bool, len(lines))
	for _, id := range lines {
		if strings.TrimSpace(id) == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := nberrors.ValidateCellID(id); err != nil {
			return nil, fmt.Errorf("%s: %w", CellsSequenceFile, err)
		}
		if seen[id] {
			return nil, nberrors.New(nberrors.ErrCodeInvalidCellID, "%s lists %q twice", CellsSequenceFile, id)
		}
		seen[id] = true

		c, err := recombineCell(afs, filepath.Join(dir, id))
		if err != nil {
			return nil, fmt.Errorf("cell %s: %w", id, err)
		}
		c.ID = id
		out.Cells = append(out.Cells, c)
		hooks.OnCellRecombined(ctx, id, len(c.Outputs))
	}
	return out, nil
}

func recombineCell(afs afero.Fs, dir string) (*notebook.Cell, error) {
	srcPath, err := findSource(afs, dir)
	if err != nil {
		return nil, err
	}
	src, err := readFile(afs, srcPath)
	if err != nil {
		return nil, err
	}

	var c *notebook.Cell
	switch typeForExt(filepath.Ext(srcPath)) {
	case notebook.Markdown:
		c = notebook.NewMarkdownCell(string(src))
	case notebook.Raw:
		c = notebook.NewRawCell(string(src))
	default:
		c = notebook.NewCodeCell(string(src))
	}

	mdPath := filepath.Join(dir, MetadataFile)
	ok, err := exists(afs, mdPath)
	if err != nil {
		return nil, err
	}
	if ok {
		if err := readJSON(afs, mdPath, &c.Metadata); err != nil {
			return nil, err
		}
		if c.Metadata == nil {
			c.Metadata = notebook.Document{}
		}
	}

	seqPath := filepath.Join(dir, OutputsSequenceFile)
	ok, err = exists(afs, seqPath)
	if err != nil || !ok {
		return c, err
	}
	if c.CellType != notebook.Code {
		return nil, nberrors.New(nberrors.ErrCodeInvalidNotebook, "%s cell cannot have %s", c.CellType, OutputsSequenceFile)
	}

	lines, err := readLines(afs, seqPath)
	if err != nil {
		return nil, err
	}
	for i, line := range lines {
		d, err := ParseDescriptor(line)
		if err != nil {
			return nil, fmt.Errorf("output %d: %w", i+1, err)
		}
		o, err := decodeOutput(afs, dir, i+1, d)
		if err != nil {
			return nil, fmt.Errorf("output %d: %w", i+1, err)
		}
		c.Outputs = append(c.Outputs, o)
	}
	return c, nil
}

// findSource returns the path of the single source.* file in dir.
func findSource(afs afero.Fs, dir string) (string, error) {
	entries, err := afero.ReadDir(afs, dir)
	if err != nil {
		return "", openError(err, dir)
	}
	var matches []string
	for _, fi := range entries {
		if !fi.IsDir() && strings.HasPrefix(fi.Name(), sourceStem+".") {
			matches = append(matches, fi.Name())
		}
	}
	switch len(matches) {
	case 0:
		return "", nberrors.New(nberrors.ErrCodeSourceFile, "no %s.* file in %s", sourceStem, dir)
	case 1:
		return filepath.Join(dir, matches[0]), nil
	}
	return "", nberrors.New(nberrors.ErrCodeSourceFile, "multiple source files in %s: %s", dir, strings.Join(matches, ", "))
}
