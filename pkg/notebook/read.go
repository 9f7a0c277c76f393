package notebook

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/afero"

	nberrors "github.com/matzehuels/nbexplode/pkg/errors"
)

type rawNotebook struct {
	Metadata      Document  `json:"metadata"`
	NBFormat      int       `json:"nbformat"`
	NBFormatMinor int       `json:"nbformat_minor"`
	Cells         []rawCell `json:"cells"`
}

type rawCell struct {
	CellType       string      `json:"cell_type"`
	Source         multiline   `json:"source"`
	Metadata       Document    `json:"metadata"`
	Outputs        []rawOutput `json:"outputs"`
	ExecutionCount *int        `json:"execution_count"`
	Attachments    Document    `json:"attachments"`
}

type rawOutput struct {
	OutputType     string     `json:"output_type"`
	Name           string     `json:"name"`
	Text           multiline  `json:"text"`
	EName          string     `json:"ename"`
	EValue         string     `json:"evalue"`
	Traceback      []string   `json:"traceback"`
	Data           MimeBundle `json:"data"`
	Metadata       Document   `json:"metadata"`
	ExecutionCount *int       `json:"execution_count"`
}

// Read decodes an nbformat v4 notebook from r.
//
// Multiline strings may be given either as a string or as a list of strings.
// The reserved cell metadata key [ReservedIDKey] is moved into [Cell.ID].
// Notebooks older than nbformat 4 are rejected with UNSUPPORTED.
func Read(r io.Reader) (*Notebook, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw rawNotebook
	if err := dec.Decode(&raw); err != nil {
		return nil, nberrors.Wrap(nberrors.ErrCodeInvalidNotebook, err, "decode notebook")
	}
	if raw.NBFormat == 0 {
		return nil, nberrors.New(nberrors.ErrCodeInvalidNotebook, "missing nbformat version")
	}
	if raw.NBFormat < FormatMajor {
		return nil, nberrors.New(nberrors.ErrCodeUnsupported, "nbformat %d is not supported (need %d)", raw.NBFormat, FormatMajor)
	}

	nb := &Notebook{
		Metadata:      raw.Metadata.Clone(),
		Cells:         make([]*Cell, 0, len(raw.Cells)),
		NBFormat:      raw.NBFormat,
		NBFormatMinor: raw.NBFormatMinor,
	}
	for i, rc := range raw.Cells {
		c, err := rc.cell()
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i+1, err)
		}
		nb.Cells = append(nb.Cells, c)
	}
	return nb, nil
}

// ReadFile reads the notebook at path on fs.
func ReadFile(fs afero.Fs, path string) (*Notebook, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, nberrors.Wrap(nberrors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	return Read(f)
}

func (rc rawCell) cell() (*Cell, error) {
	c := &Cell{
		CellType: CellType(rc.CellType),
		Source:   string(rc.Source),
		Metadata: rc.Metadata.Clone(),
	}
	if !c.CellType.Valid() {
		return nil, nberrors.New(nberrors.ErrCodeInvalidNotebook, "unknown cell type %q", rc.CellType)
	}

	if v, ok := c.Metadata[ReservedIDKey]; ok {
		id, ok := v.(string)
		if !ok {
			return nil, nberrors.New(nberrors.ErrCodeInvalidCellID, "metadata %s must be a string", ReservedIDKey)
		}
		c.ID = id
		delete(c.Metadata, ReservedIDKey)
	}

	if c.CellType != Code {
		if len(rc.Attachments) > 0 {
			c.Attachments = rc.Attachments
		}
		return c, nil
	}

	c.ExecutionCount = rc.ExecutionCount
	c.Outputs = make([]Output, 0, len(rc.Outputs))
	for i, ro := range rc.Outputs {
		out, err := ro.output()
		if err != nil {
			return nil, fmt.Errorf("output %d: %w", i+1, err)
		}
		c.Outputs = append(c.Outputs, out)
	}
	return c, nil
}

func (ro rawOutput) output() (Output, error) {
	switch OutputType(ro.OutputType) {
	case OutputStream:
		return NewStream(ro.Name, string(ro.Text)), nil
	case OutputError:
		return NewError(ro.EName, ro.EValue, ro.Traceback), nil
	case OutputDisplayData:
		return &DisplayData{Data: ro.bundle(), Metadata: ro.Metadata.Clone()}, nil
	case OutputExecuteResult:
		if ro.ExecutionCount == nil {
			return nil, nberrors.New(nberrors.ErrCodeInvalidNotebook, "execute_result without execution_count")
		}
		return &ExecuteResult{Data: ro.bundle(), Metadata: ro.Metadata.Clone(), ExecutionCount: *ro.ExecutionCount}, nil
	}
	return nil, nberrors.New(nberrors.ErrCodeUnsupported, "unknown output type %q", ro.OutputType)
}

func (ro rawOutput) bundle() MimeBundle {
	data := make(MimeBundle, len(ro.Data))
	for mime, v := range ro.Data {
		data[mime] = joinPayload(mime, v)
	}
	return data
}
