package explode

import (
	"encoding/base64"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"

	nberrors "github.com/matzehuels/nbexplode/pkg/errors"
	"github.com/matzehuels/nbexplode/pkg/notebook"
)

func streamFile(i int) string             { return fmt.Sprintf("output%d.txt", i) }
func errorFile(i int) string              { return fmt.Sprintf("error%d.json", i) }
func bundleFile(i int, ext string) string { return fmt.Sprintf("output%d%s", i, ext) }
func bundleMetadataFile(i int) string     { return fmt.Sprintf("output%d-metadata.json", i) }

// errorDocument is the on-disk shape of an error output.
type errorDocument struct {
	EName     string   `json:"ename"`
	EValue    string   `json:"evalue"`
	Traceback []string `json:"traceback"`
}

// encodeOutput writes the files of the i-th (1-based) output into dir and
// returns its descriptor.
func (e *exploder) encodeOutput(dir string, i int, out notebook.Output) (Descriptor, error) {
	switch o := out.(type) {
	case *notebook.Stream:
		if o.Name != streamStdout && o.Name != streamStderr {
			return Descriptor{}, nberrors.New(nberrors.ErrCodeUnsupported, "stream name %q", o.Name)
		}
		if err := e.writeFile(filepath.Join(dir, streamFile(i)), []byte(o.Text)); err != nil {
			return Descriptor{}, err
		}
		return Descriptor{Kind: KindStream, Stream: o.Name}, nil

	case *notebook.Error:
		doc := errorDocument{EName: o.EName, EValue: o.EValue, Traceback: o.Traceback}
		if doc.Traceback == nil {
			doc.Traceback = []string{}
		}
		if err := e.writeJSON(filepath.Join(dir, errorFile(i)), doc); err != nil {
			return Descriptor{}, err
		}
		return Descriptor{Kind: KindError}, nil

	case *notebook.DisplayData:
		return e.encodeBundle(dir, i, o.Data, o.Metadata, nil)

	case *notebook.ExecuteResult:
		count := o.ExecutionCount
		return e.encodeBundle(dir, i, o.Data, o.Metadata, &count)
	}
	return Descriptor{}, nberrors.New(nberrors.ErrCodeUnsupported, "output type %T", out)
}

func (e *exploder) encodeBundle(dir string, i int, data notebook.MimeBundle, md notebook.Document, count *int) (Descriptor, error) {
	if len(data) == 0 {
		return Descriptor{}, nberrors.New(nberrors.ErrCodeDescriptor, "empty mimebundle")
	}

	mimes := make([]string, 0, len(data))
	for name := range data {
		if _, ok := LookupMime(name); !ok {
			return Descriptor{}, nberrors.New(nberrors.ErrCodeMimeType, "unknown mime type %q", name)
		}
		mimes = append(mimes, name)
	}
	slices.Sort(mimes)

	if err := e.writeJSON(filepath.Join(dir, bundleMetadataFile(i)), md.Clone()); err != nil {
		return Descriptor{}, err
	}

	for _, name := range mimes {
		mime, _ := LookupMime(name)
		payload, ok := data[name].(string)
		if !ok {
			return Descriptor{}, nberrors.New(nberrors.ErrCodeMimeType, "%s payload must be a string, got %T", name, data[name])
		}
		raw := []byte(payload)
		if mime.Binary {
			b, err := base64.StdEncoding.DecodeString(stripSpace(payload))
			if err != nil {
				return Descriptor{}, nberrors.Wrap(nberrors.ErrCodeMimeType, err, "decode %s payload", name)
			}
			raw = b
		}
		if err := e.writeFile(filepath.Join(dir, bundleFile(i, mime.Ext)), raw); err != nil {
			return Descriptor{}, err
		}
	}

	return Descriptor{Kind: KindBundle, Mimes: mimes, ExecutionCount: count}, nil
}

// decodeOutput rebuilds the i-th (1-based) output of the cell in dir.
func decodeOutput(afs afero.Fs, dir string, i int, d Descriptor) (notebook.Output, error) {
	switch d.Kind {
	case KindStream:
		text, err := readFile(afs, filepath.Join(dir, streamFile(i)))
		if err != nil {
			return nil, err
		}
		return notebook.NewStream(d.Stream, string(text)), nil

	case KindError:
		var doc errorDocument
		if err := readJSON(afs, filepath.Join(dir, errorFile(i)), &doc); err != nil {
			return nil, err
		}
		return notebook.NewError(doc.EName, doc.EValue, doc.Traceback), nil
	}

	data := make(notebook.MimeBundle, len(d.Mimes))
	for _, name := range d.Mimes {
		mime, ok := LookupMime(name)
		if !ok {
			return nil, nberrors.New(nberrors.ErrCodeMimeType, "unknown mime type %q", name)
		}
		raw, err := readFile(afs, filepath.Join(dir, bundleFile(i, mime.Ext)))
		if err != nil {
			return nil, err
		}
		if mime.Binary {
			data[name] = base64.StdEncoding.EncodeToString(raw)
		} else {
			data[name] = string(raw)
		}
	}

	md := notebook.Document{}
	mdPath := filepath.Join(dir, bundleMetadataFile(i))
	ok, err := exists(afs, mdPath)
	if err != nil {
		return nil, err
	}
	if ok {
		if err := readJSON(afs, mdPath, &md); err != nil {
			return nil, err
		}
		if md == nil {
			md = notebook.Document{}
		}
	}

	if d.ExecutionCount != nil {
		return &notebook.ExecuteResult{Data: data, Metadata: md, ExecutionCount: *d.ExecutionCount}, nil
	}
	return &notebook.DisplayData{Data: data, Metadata: md}, nil
}

// stripSpace removes the line breaks nbformat writers insert into long
// base64 payloads.
func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
