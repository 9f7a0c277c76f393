package cli

import (
	"context"
	"path/filepath"
	"strings"

	nberrors "github.com/matzehuels/nbexplode/pkg/errors"
	"github.com/matzehuels/nbexplode/pkg/explode"
	"github.com/matzehuels/nbexplode/pkg/notebook"
)

const (
	notebookSuffix = ".ipynb"
	explodedSuffix = ".exploded"
)

// runExplode explodes the notebook at path into path.exploded, replacing any
// tree left there by an earlier run.
func (c *CLI) runExplode(ctx context.Context, path, codeExt string) error {
	if err := nberrors.ValidateSuffix(path, notebookSuffix); err != nil {
		return err
	}
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	nb, err := notebook.ReadFile(c.FS, path)
	if err != nil {
		return err
	}

	dir := path + explodedSuffix
	if err := c.resetDir(dir); err != nil {
		return err
	}
	logger.Debug("Output directory", "path", dir)

	if err := explode.Explode(ctx, c.FS, nb, dir, explode.WithCodeExtension(codeExt)); err != nil {
		return err
	}

	prog.done("Exploded " + path)
	c.printSuccess("Exploded %s", path)
	c.printFile(dir)
	c.printStats(len(nb.Cells), countOutputs(nb))
	return nil
}

// runRecombine rebuilds the notebook for the tree at path and writes it next
// to the tree, without the .exploded suffix.
func (c *CLI) runRecombine(ctx context.Context, path string) error {
	path = filepath.Clean(path)
	if err := nberrors.ValidateSuffix(path, notebookSuffix+explodedSuffix); err != nil {
		return err
	}
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	nb, err := explode.Recombine(ctx, c.FS, path)
	if err != nil {
		return err
	}

	out := strings.TrimSuffix(path, explodedSuffix)
	if err := notebook.WriteFile(c.FS, out, nb); err != nil {
		return err
	}

	prog.done("Recombined " + path)
	c.printSuccess("Recombined %s", path)
	c.printFile(out)
	c.printStats(len(nb.Cells), countOutputs(nb))
	return nil
}

// resetDir removes dir when it is a directory and creates it empty.
func (c *CLI) resetDir(dir string) error {
	info, err := c.FS.Stat(dir)
	switch {
	case err == nil && !info.IsDir():
		return nberrors.New(nberrors.ErrCodeInvalidPath, "%s exists and is not a directory", dir)
	case err == nil:
		if err := c.FS.RemoveAll(dir); err != nil {
			return nberrors.Wrap(nberrors.ErrCodeIO, err, "remove %s", dir)
		}
	}
	if err := c.FS.MkdirAll(dir, 0o755); err != nil {
		return nberrors.Wrap(nberrors.ErrCodeIO, err, "create %s", dir)
	}
	return nil
}

func countOutputs(nb *notebook.Notebook) int {
	n := 0
	for _, cell := range nb.Cells {
		n += len(cell.Outputs)
	}
	return n
}
