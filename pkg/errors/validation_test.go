package errors

import (
	"strings"
	"testing"
)

func TestValidateCellID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"uuid", "0f8fad5b-d9cb-469f-a165-70867728950e", false},
		{"human name", "intro", false},
		{"with dot inside", "cell.1", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 300), true},
		{"slash", "a/b", true},
		{"backslash", "a\\b", true},
		{"dot dir", "..", true},
		{"hidden", ".git", true},
		{"newline", "a\nb", true},
		{"null byte", "a\x00b", true},
		{"leading space", " abc", true},
		{"trailing space", "abc ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCellID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCellID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidCellID) {
				t.Errorf("ValidateCellID(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidCellID)
			}
		})
	}
}

func TestValidateSuffix(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		suffix  string
		wantErr bool
	}{
		{"notebook", "analysis.ipynb", ".ipynb", false},
		{"nested notebook", "dir/analysis.ipynb", ".ipynb", false},
		{"exploded", "analysis.ipynb.exploded", ".ipynb.exploded", false},

		{"empty", "", ".ipynb", true},
		{"suffix only", ".ipynb", ".ipynb", true},
		{"wrong suffix", "analysis.py", ".ipynb", true},
		{"exploded given to explode", "analysis.ipynb.exploded", ".ipynb", true},
		{"notebook given to recombine", "analysis.ipynb", ".ipynb.exploded", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSuffix(tt.path, tt.suffix)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSuffix(%q, %q) error = %v, wantErr %v", tt.path, tt.suffix, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}
