package notebook

import (
	"io"

	"github.com/spf13/afero"

	nberrors "github.com/matzehuels/nbexplode/pkg/errors"
)

// Write encodes nb as nbformat v4 JSON: keys sorted, one-space indent,
// multiline strings split into lines and a trailing newline. A non-empty
// [Cell.ID] is stored in the cell metadata under [ReservedIDKey].
func Write(w io.Writer, nb *Notebook) error {
	data, err := MarshalIndent(nb.document(), " ")
	if err != nil {
		return nberrors.Wrap(nberrors.ErrCodeInvalidNotebook, err, "encode notebook")
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return nberrors.Wrap(nberrors.ErrCodeIO, err, "write notebook")
	}
	return nil
}

// WriteFile writes nb to path on fs, replacing any existing file.
func WriteFile(fs afero.Fs, path string, nb *Notebook) error {
	f, err := fs.Create(path)
	if err != nil {
		return nberrors.Wrap(nberrors.ErrCodeIO, err, "create %s", path)
	}
	defer f.Close()
	if err := Write(f, nb); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return nberrors.Wrap(nberrors.ErrCodeIO, err, "close %s", path)
	}
	return nil
}

func (nb *Notebook) document() map[string]any {
	major, minor := nb.NBFormat, nb.NBFormatMinor
	if major == 0 {
		major, minor = FormatMajor, FormatMinor
	}
	cells := make([]any, len(nb.Cells))
	for i, c := range nb.Cells {
		cells[i] = c.document()
	}
	return map[string]any{
		"cells":          cells,
		"metadata":       nb.Metadata.Clone(),
		"nbformat":       major,
		"nbformat_minor": minor,
	}
}

func (c *Cell) document() map[string]any {
	md := c.Metadata.Clone()
	if c.ID != "" {
		md[ReservedIDKey] = c.ID
	}
	doc := map[string]any{
		"cell_type": string(c.CellType),
		"metadata":  md,
		"source":    splitLines(c.Source),
	}
	if c.CellType != Code {
		if len(c.Attachments) > 0 {
			doc["attachments"] = c.Attachments
		}
		return doc
	}

	if c.ExecutionCount != nil {
		doc["execution_count"] = *c.ExecutionCount
	} else {
		doc["execution_count"] = nil
	}
	outputs := make([]any, len(c.Outputs))
	for i, out := range c.Outputs {
		outputs[i] = outputDocument(out)
	}
	doc["outputs"] = outputs
	return doc
}

func outputDocument(out Output) map[string]any {
	doc := map[string]any{"output_type": string(out.OutputType())}
	switch o := out.(type) {
	case *Stream:
		doc["name"] = o.Name
		doc["text"] = splitLines(o.Text)
	case *Error:
		doc["ename"] = o.EName
		doc["evalue"] = o.EValue
		doc["traceback"] = nonNil(o.Traceback)
	case *DisplayData:
		doc["data"] = bundleDocument(o.Data)
		doc["metadata"] = o.Metadata.Clone()
	case *ExecuteResult:
		doc["data"] = bundleDocument(o.Data)
		doc["metadata"] = o.Metadata.Clone()
		doc["execution_count"] = o.ExecutionCount
	}
	return doc
}

func bundleDocument(data MimeBundle) map[string]any {
	doc := make(map[string]any, len(data))
	for mime, v := range data {
		if s, ok := v.(string); ok && !isJSONMime(mime) {
			doc[mime] = splitLines(s)
			continue
		}
		doc[mime] = v
	}
	return doc
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
