package explode

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	nberrors "github.com/matzehuels/nbexplode/pkg/errors"
	"github.com/matzehuels/nbexplode/pkg/notebook"
)

// DescriptorKind tells which output variant a descriptor line stands for.
type DescriptorKind int

const (
	KindStream DescriptorKind = iota
	KindError
	KindBundle
)

const (
	streamStdout = "stdout"
	streamStderr = "stderr"
	errorTag     = "error"
	mimeSep      = ", "
)

// Descriptor is the parsed form of one outputs_sequence line:
//
//	descriptor := "stdout" | "stderr" | "error" | bundle
//	bundle     := mimelist [ " (" digits ")" ]
//	mimelist   := mime { ", " mime }
//
// A bundle with an execution count is an execute_result, without one it is
// display_data.
type Descriptor struct {
	Kind DescriptorKind

	// Stream is the stream name for KindStream.
	Stream string

	// Mimes is the sorted mime list for KindBundle.
	Mimes []string

	// ExecutionCount is set for execute_result bundles.
	ExecutionCount *int
}

// String renders the descriptor line.
func (d Descriptor) String() string {
	switch d.Kind {
	case KindStream:
		return d.Stream
	case KindError:
		return errorTag
	}
	s := strings.Join(d.Mimes, mimeSep)
	if d.ExecutionCount != nil {
		s += fmt.Sprintf(" (%d)", *d.ExecutionCount)
	}
	return s
}

// OutputType returns the notebook output variant the descriptor decodes to.
func (d Descriptor) OutputType() notebook.OutputType {
	switch d.Kind {
	case KindStream:
		return notebook.OutputStream
	case KindError:
		return notebook.OutputError
	}
	if d.ExecutionCount != nil {
		return notebook.OutputExecuteResult
	}
	return notebook.OutputDisplayData
}

// ParseDescriptor parses one outputs_sequence line. Unknown mime types fail
// with MIME_TYPE; every other grammar violation fails with DESCRIPTOR.
func ParseDescriptor(line string) (Descriptor, error) {
	switch line {
	case "":
		return Descriptor{}, nberrors.New(nberrors.ErrCodeDescriptor, "empty descriptor")
	case streamStdout, streamStderr:
		return Descriptor{Kind: KindStream, Stream: line}, nil
	case errorTag:
		return Descriptor{Kind: KindError}, nil
	}

	d := Descriptor{Kind: KindBundle}
	list := line
	if strings.HasSuffix(line, ")") {
		open := strings.LastIndex(line, " (")
		if open < 0 {
			return Descriptor{}, nberrors.New(nberrors.ErrCodeDescriptor, "descriptor %q: unbalanced execution count", line)
		}
		count, err := parseCount(line[open+2 : len(line)-1])
		if err != nil {
			return Descriptor{}, nberrors.Wrap(nberrors.ErrCodeDescriptor, err, "descriptor %q", line)
		}
		d.ExecutionCount = &count
		list = line[:open]
	}

	mimes, err := parseMimeList(list)
	if err != nil {
		return Descriptor{}, fmt.Errorf("descriptor %q: %w", line, err)
	}
	d.Mimes = mimes
	return d, nil
}

func parseCount(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty execution count")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("execution count %q is not a number", s)
		}
	}
	return strconv.Atoi(s)
}

func parseMimeList(list string) ([]string, error) {
	if list == "" {
		return nil, nberrors.New(nberrors.ErrCodeDescriptor, "empty mime list")
	}
	mimes := strings.Split(list, mimeSep)
	for i, m := range mimes {
		if m == "" {
			return nil, nberrors.New(nberrors.ErrCodeDescriptor, "empty mime type at position %d", i+1)
		}
		if _, ok := LookupMime(m); !ok {
			return nil, nberrors.New(nberrors.ErrCodeMimeType, "unknown mime type %q", m)
		}
	}
	slices.Sort(mimes)
	if len(slices.Compact(slices.Clone(mimes))) != len(mimes) {
		return nil, nberrors.New(nberrors.ErrCodeDescriptor, "duplicate mime type")
	}
	return mimes, nil
}
