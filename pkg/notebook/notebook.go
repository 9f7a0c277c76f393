package notebook

import "maps"

// ReservedIDKey is the cell metadata key under which [Cell.ID] is stored in
// .ipynb files.
const ReservedIDKey = "nbexplode_cell_id"

// Format versions emitted for notebooks built with [New].
const (
	FormatMajor = 4
	FormatMinor = 4
)

// CellType is the kind of a notebook cell.
type CellType string

const (
	Markdown CellType = "markdown"
	Raw      CellType = "raw"
	Code     CellType = "code"
)

// Valid reports whether t is one of the cell types defined by nbformat v4.
func (t CellType) Valid() bool {
	switch t {
	case Markdown, Raw, Code:
		return true
	}
	return false
}

// Document is an opaque JSON object. Nested objects are map[string]any and
// numbers are json.Number.
type Document map[string]any

// Clone returns a shallow copy of d. A nil Document clones to an empty one.
func (d Document) Clone() Document {
	if d == nil {
		return Document{}
	}
	return maps.Clone(d)
}

// Notebook is a parsed nbformat v4 document.
type Notebook struct {
	Metadata      Document
	Cells         []*Cell
	NBFormat      int
	NBFormatMinor int
}

// Cell is a single notebook cell.
type Cell struct {
	// ID is the stable identity of the cell across explode/recombine
	// cycles. Empty means the cell has never been exploded.
	ID string

	CellType CellType
	Source   string
	Metadata Document

	// Outputs and ExecutionCount are only meaningful for code cells.
	Outputs        []Output
	ExecutionCount *int

	// Attachments holds inline attachments of markdown and raw cells.
	Attachments Document
}

// New creates an empty notebook with the given metadata.
func New(metadata Document) *Notebook {
	if metadata == nil {
		metadata = Document{}
	}
	return &Notebook{
		Metadata:      metadata,
		Cells:         []*Cell{},
		NBFormat:      FormatMajor,
		NBFormatMinor: FormatMinor,
	}
}

// NewMarkdownCell creates a markdown cell with empty metadata.
func NewMarkdownCell(source string) *Cell {
	return &Cell{CellType: Markdown, Source: source, Metadata: Document{}}
}

// NewRawCell creates a raw cell with empty metadata.
func NewRawCell(source string) *Cell {
	return &Cell{CellType: Raw, Source: source, Metadata: Document{}}
}

// NewCodeCell creates a code cell with empty metadata and no outputs.
func NewCodeCell(source string) *Cell {
	return &Cell{CellType: Code, Source: source, Metadata: Document{}, Outputs: []Output{}}
}
