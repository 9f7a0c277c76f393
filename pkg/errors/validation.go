package errors

import (
	"strings"
	"unicode"
)

// ValidateCellID validates a cell identifier before it is used as a
// directory name inside an exploded notebook.
//
// Cell ids come from notebook metadata and from cells_sequence, both of
// which are user-editable, so they are checked for anything that would
// escape or alias the exploded directory:
//   - No empty ids
//   - Maximum length of 255 characters
//   - No control characters, path separators or leading dot
//   - No surrounding whitespace
func ValidateCellID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidCellID, "cell id cannot be empty")
	}

	if len(id) > 255 {
		return New(ErrCodeInvalidCellID, "cell id too long (max 255 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidCellID, "cell id %q contains control characters", id)
		}
	}

	if strings.ContainsAny(id, "/\\") {
		return New(ErrCodeInvalidCellID, "cell id %q cannot contain path separators", id)
	}

	if strings.HasPrefix(id, ".") {
		return New(ErrCodeInvalidCellID, "cell id %q cannot start with a dot", id)
	}

	if strings.TrimSpace(id) != id {
		return New(ErrCodeInvalidCellID, "cell id %q has surrounding whitespace", id)
	}

	return nil
}

// ValidateSuffix checks that path ends with suffix and has a non-empty stem.
// It is the precondition check run before any filesystem access.
func ValidateSuffix(path, suffix string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}
	if !strings.HasSuffix(path, suffix) || len(path) == len(suffix) {
		return New(ErrCodeInvalidPath, "%q must end with %s", path, suffix)
	}
	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidPath, "path contains invalid characters")
	}
	return nil
}
