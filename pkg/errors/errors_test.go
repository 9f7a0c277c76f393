package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeMimeType, "unknown mime type %q", "application/x-unknown")

	if err.Code != ErrCodeMimeType {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeMimeType)
	}

	if err.Message != `unknown mime type "application/x-unknown"` {
		t.Errorf("Message = %v", err.Message)
	}

	expected := `MIME_TYPE: unknown mime type "application/x-unknown"`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(ErrCodeIO, cause, "write output1.txt")

	if err.Code != ErrCodeIO {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeIO)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "IO: write output1.txt: disk full"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeDescriptor, "test"),
			code:     ErrCodeDescriptor,
			expected: true,
		},
		{
			name:     "different code",
			err:      New(ErrCodeDescriptor, "test"),
			code:     ErrCodeMimeType,
			expected: false,
		},
		{
			name:     "wrapped by fmt",
			err:      fmt.Errorf("cell abc: %w", New(ErrCodeSourceFile, "test")),
			code:     ErrCodeSourceFile,
			expected: true,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			code:     ErrCodeIO,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeIO,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeMissingFile, "x")); got != ErrCodeMissingFile {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeMissingFile)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode() = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"coded", New(ErrCodeInvalidPath, "bad path"), "bad path"},
		{"coded with cause", Wrap(ErrCodeIO, errors.New("denied"), "open x"), "open x: denied"},
		{"plain", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
