package explode

import (
	"bufio"
	"encoding/json"
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/afero"

	nberrors "github.com/matzehuels/nbexplode/pkg/errors"
	"github.com/matzehuels/nbexplode/pkg/notebook"
	"github.com/matzehuels/nbexplode/pkg/observability"
)

const jsonIndent = "  "

func (e *exploder) writeFile(path string, data []byte) error {
	if err := afero.WriteFile(e.fs, path, data, 0o644); err != nil {
		return nberrors.Wrap(nberrors.ErrCodeIO, err, "write %s", path)
	}
	observability.Transform().OnFileWritten(e.ctx, path, len(data))
	return nil
}

func (e *exploder) writeJSON(path string, v any) error {
	data, err := notebook.MarshalIndent(v, jsonIndent)
	if err != nil {
		return nberrors.Wrap(nberrors.ErrCodeInternal, err, "encode %s", path)
	}
	return e.writeFile(path, data)
}

// writeLines writes each line followed by a newline.
func (e *exploder) writeLines(path string, lines []string) error {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return e.writeFile(path, []byte(b.String()))
}

func readFile(afs afero.Fs, path string) ([]byte, error) {
	data, err := afero.ReadFile(afs, path)
	if err != nil {
		return nil, openError(err, path)
	}
	return data, nil
}

func readJSON(afs afero.Fs, path string, v any) error {
	f, err := afs.Open(path)
	if err != nil {
		return openError(err, path)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return nberrors.Wrap(nberrors.ErrCodeInvalidNotebook, err, "decode %s", path)
	}
	return nil
}

// readLines returns the lines of a sequence file. Both LF and CRLF line
// endings are accepted.
func readLines(afs afero.Fs, path string) ([]string, error) {
	f, err := afs.Open(path)
	if err != nil {
		return nil, openError(err, path)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, nberrors.Wrap(nberrors.ErrCodeIO, err, "read %s", path)
	}
	return lines, nil
}

func exists(afs afero.Fs, path string) (bool, error) {
	ok, err := afero.Exists(afs, path)
	if err != nil {
		return false, nberrors.Wrap(nberrors.ErrCodeIO, err, "stat %s", path)
	}
	return ok, nil
}

func openError(err error, path string) error {
	if errors.Is(err, fs.ErrNotExist) {
		return nberrors.Wrap(nberrors.ErrCodeMissingFile, err, "%s not found", path)
	}
	return nberrors.Wrap(nberrors.ErrCodeIO, err, "read %s", path)
}
