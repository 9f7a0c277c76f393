package notebook

import (
	"bytes"
	"encoding/json"
	"strings"
)

// MarshalIndent encodes v as JSON with object keys sorted, one level of
// nesting per indent and HTML characters left unescaped. The result has no
// trailing newline.
func MarshalIndent(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// multiline is an nbformat multiline string: either a JSON string or a list
// of strings that are concatenated.
type multiline string

func (m *multiline) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*m = multiline(s)
		return nil
	}
	var lines []string
	if err := json.Unmarshal(b, &lines); err != nil {
		return err
	}
	*m = multiline(strings.Join(lines, ""))
	return nil
}

// splitLines splits s after every newline, keeping the terminators, the way
// nbformat stores multiline strings.
func splitLines(s string) []string {
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// isJSONMime reports whether payloads of mime are JSON values rather than
// multiline strings.
func isJSONMime(mime string) bool {
	return mime == "application/json" ||
		(strings.HasPrefix(mime, "application/") && strings.HasSuffix(mime, "+json"))
}

// joinPayload turns a list-of-strings payload into a single string.
func joinPayload(mime string, v any) any {
	list, ok := v.([]any)
	if !ok || isJSONMime(mime) {
		return v
	}
	var b strings.Builder
	for _, e := range list {
		s, ok := e.(string)
		if !ok {
			return v
		}
		b.WriteString(s)
	}
	return b.String()
}
