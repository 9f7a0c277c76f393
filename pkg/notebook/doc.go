// Package notebook provides an in-memory model of Jupyter notebooks
// (nbformat v4) together with a reader and writer for .ipynb files.
//
// # Model
//
// A [Notebook] is an opaque metadata [Document] plus an ordered list of
// [Cell] values. Each cell has a [CellType], a source text, its own metadata
// and, for code cells, an ordered list of [Output] values. Output is a sealed
// interface implemented by [Stream], [Error], [DisplayData] and
// [ExecuteResult].
//
// # Cell Identity
//
// [Cell.ID] is the identifier nbexplode uses to name cell directories. In
// memory it is a plain struct field, never an entry in [Cell.Metadata]. On
// disk it is persisted in the cell metadata under [ReservedIDKey]: [Read]
// lifts the key out of the metadata into the field and [Write] puts it back.
// This keeps the reserved key confined to the file boundary so it can never
// collide with genuine user metadata inside the program.
//
// # Numbers
//
// Opaque documents are decoded with json.Number so that integers and floats
// written by other tools survive a read/write cycle byte-for-byte.
//
// # Example
//
//	nb, err := notebook.ReadFile(afero.NewOsFs(), "analysis.ipynb")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, c := range nb.Cells {
//	    fmt.Println(c.CellType, len(c.Outputs))
//	}
package notebook
