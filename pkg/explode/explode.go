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

// Layout file names.
const (
	MetadataFile        = "metadata.json"
	CellsSequenceFile   = "cells_sequence"
	OutputsSequenceFile = "outputs_sequence"
	sourceStem          = "source"
)

// Source file extensions of non-code cells.
const (
	markdownExt = ".md"
	rawExt      = ".txt"
)

type exploder struct {
	ctx  context.Context
	fs   afero.Fs
	opts Options

	codeExt    string
	codeExtErr error
	resolved   bool
}

// Explode writes nb as a directory tree under dir, which must already exist
// and be empty. nb is not modified.
//
// Cells keep their [notebook.Cell.ID] as directory name; cells without one
// get a new id from the configured [IDGenerator]. Any failure aborts the run
// and leaves a partial tree that callers must discard.
func Explode(ctx context.Context, afs afero.Fs, nb *notebook.Notebook, dir string, opts ...Option) (err error) {
	start := time.Now()
	hooks := observability.Transform()
	hooks.OnExplodeStart(ctx, dir, len(nb.Cells))
	defer func() {
		hooks.OnExplodeComplete(ctx, dir, len(nb.Cells), time.Since(start), err)
	}()

	e := &exploder{ctx: ctx, fs: afs, opts: newOptions(opts)}

	ids, err := assignIDs(nb.Cells, e.opts.NewID)
	if err != nil {
		return err
	}

	if err := e.writeJSON(filepath.Join(dir, MetadataFile), nb.Metadata.Clone()); err != nil {
		return err
	}

	for i, c := range nb.Cells {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.explodeCell(nb.Metadata, c, filepath.Join(dir, ids[i])); err != nil {
			return fmt.Errorf("cell %s: %w", ids[i], err)
		}
		hooks.OnCellExploded(ctx, ids[i], len(c.Outputs))
	}

	return e.writeLines(filepath.Join(dir, CellsSequenceFile), ids)
}

func (e *exploder) explodeCell(nbMeta notebook.Document, c *notebook.Cell, dir string) error {
	if err := e.fs.Mkdir(dir, 0o755); err != nil {
		return nberrors.Wrap(nberrors.ErrCodeIO, err, "create %s", dir)
	}

	ext, err := e.sourceExt(nbMeta, c.CellType)
	if err != nil {
		return err
	}
	if err := e.writeFile(filepath.Join(dir, sourceStem+ext), []byte(c.Source)); err != nil {
		return err
	}

	if len(c.Metadata) > 0 {
		if err := e.writeJSON(filepath.Join(dir, MetadataFile), c.Metadata); err != nil {
			return err
		}
	}

	if c.CellType != notebook.Code || len(c.Outputs) == 0 {
		return nil
	}

	descriptors := make([]string, len(c.Outputs))
	for i, out := range c.Outputs {
		d, err := e.encodeOutput(dir, i+1, out)
		if err != nil {
			return fmt.Errorf("output %d: %w", i+1, err)
		}
		descriptors[i] = d.String()
	}
	return e.writeLines(filepath.Join(dir, OutputsSequenceFile), descriptors)
}

func (e *exploder) sourceExt(nbMeta notebook.Document, t notebook.CellType) (string, error) {
	switch t {
	case notebook.Markdown:
		return markdownExt, nil
	case notebook.Raw:
		return rawExt, nil
	case notebook.Code:
		if !e.resolved {
			e.codeExt, e.codeExtErr = codeExtension(nbMeta, e.opts.CodeExtension)
			e.resolved = true
		}
		return e.codeExt, e.codeExtErr
	}
	return "", nberrors.New(nberrors.ErrCodeInvalidNotebook, "unknown cell type %q", t)
}

// codeExtension returns metadata.language_info.file_extension, or fallback
// when the notebook does not declare one.
func codeExtension(nbMeta notebook.Document, fallback string) (string, error) {
	ext := fallback
	var info map[string]any
	switch li := nbMeta["language_info"].(type) {
	case map[string]any:
		info = li
	case notebook.Document:
		info = li
	}
	if s, ok := info["file_extension"].(string); ok && s != "" {
		ext = s
	}
	return ext, validateCodeExt(ext)
}

func validateCodeExt(ext string) error {
	if !strings.HasPrefix(ext, ".") || len(ext) < 2 || strings.ContainsAny(ext, "/\\") {
		return nberrors.New(nberrors.ErrCodeInvalidExtension, "code extension %q must be a dot followed by a name", ext)
	}
	if ext == markdownExt || ext == rawExt {
		return nberrors.New(nberrors.ErrCodeInvalidExtension, "code extension %q is reserved for %s cells", ext, typeForExt(ext))
	}
	return nil
}

// typeForExt maps a source file extension back to its cell type.
func typeForExt(ext string) notebook.CellType {
	switch ext {
	case markdownExt:
		return notebook.Markdown
	case rawExt:
		return notebook.Raw
	}
	return notebook.Code
}
