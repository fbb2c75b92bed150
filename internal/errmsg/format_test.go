//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpMediaLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpPlayerStart,
			err:      errors.New("mpv not found"),
			expected: "Failed to start player: mpv not found",
		},
		{
			name:     "state operation",
			op:       OpStateOpen,
			err:      errors.New("disk full"),
			expected: "Failed to open state database: disk full",
		},
		{
			name:     "wrapped error keeps chain text",
			op:       OpConfigLoad,
			err:      errors.Join(errors.New("parse"), errors.New("line 3")),
			expected: "Failed to load config: parse\nline 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpMediaLoad,
			context:  "a.mp4",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpMediaLoad,
			context:  "a.mp4",
			err:      errors.New("no such file"),
			expected: "Failed to load media 'a.mp4': no such file",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpMediaLoad,
			context:  "",
			err:      errors.New("no such file"),
			expected: "Failed to load media: no such file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}
