// Package pkg provides the core libraries for nbexplode.
//
// # Overview
//
// nbexplode turns a Jupyter notebook into a directory tree with one
// directory per cell, and back again, so notebooks can be reviewed and
// merged with line-based tools. The pkg directory is organized into:
//
//  1. [notebook] - The nbformat v4 document model (read, write, construct)
//  2. [explode] - The tree layout (explode, recombine, output descriptors)
//  3. [errors] - Coded errors and path/id validation
//  4. [observability] - Hooks for progress reporting
//  5. [buildinfo] - Version information set at build time
//
// # Architecture
//
//	nb.ipynb
//	   ↓ notebook.ReadFile
//	*notebook.Notebook
//	   ↓ explode.Explode
//	nb.ipynb.exploded/
//	   ↓ explode.Recombine
//	*notebook.Notebook
//	   ↓ notebook.WriteFile
//	nb.ipynb
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/spf13/afero"
//	    "github.com/matzehuels/nbexplode/pkg/explode"
//	    "github.com/matzehuels/nbexplode/pkg/notebook"
//	)
//
//	fs := afero.NewOsFs()
//	nb, _ := notebook.ReadFile(fs, "analysis.ipynb")
//	_ = fs.Mkdir("analysis.ipynb.exploded", 0o755)
//	_ = explode.Explode(context.Background(), fs, nb, "analysis.ipynb.exploded")
//
//	back, _ := explode.Recombine(context.Background(), fs, "analysis.ipynb.exploded")
//	_ = notebook.WriteFile(fs, "analysis.ipynb", back)
//
// [notebook]: github.com/matzehuels/nbexplode/pkg/notebook
// [explode]: github.com/matzehuels/nbexplode/pkg/explode
// [errors]: github.com/matzehuels/nbexplode/pkg/errors
// [observability]: github.com/matzehuels/nbexplode/pkg/observability
// [buildinfo]: github.com/matzehuels/nbexplode/pkg/buildinfo
package pkg
