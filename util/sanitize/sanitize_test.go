package sanitize

import (
	"strings"
	"testing"

	"github.com/grovetools/envbackup/errors"
)

func TestForSnapshotLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"simple string", "before-bashrc", "before-bashrc"},
		{"with spaces", "before bashrc edit", "before-bashrc-edit"},
		{"keeps dots and underscores", "v1.2_final", "v1.2_final"},
		{"parent traversal", "../../etc/passwd", "etc-passwd"},
		{"absolute path", "/tmp/evil", "tmp-evil"},
		{"hidden prefix", ".secret", "secret"},
		{"only separators", "../", ""},
		{"multiple hyphens", "a---b", "a-b"},
		{"special characters", "hello@world#foo", "hello-world-foo"},
		{"trailing junk", "label!!", "label"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ForSnapshotLabel(tt.input)
			if result != tt.expected {
				t.Errorf("ForSnapshotLabel(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestForSnapshotLabelTruncates(t *testing.T) {
	result := ForSnapshotLabel(strings.Repeat("a", 100))
	if len(result) != maxLabelLength {
		t.Errorf("expected length %d, got %d", maxLabelLength, len(result))
	}
}

func TestValidateName(t *testing.T) {
	valid := []string{"2024-05-01T10-00-00", "2024-05-01T10-00-00_before-edit", "a..b"}
	for _, name := range valid {
		if err := ValidateName(name); err != nil {
			t.Errorf("ValidateName(%q) unexpected error: %v", name, err)
		}
	}

	invalid := []string{"", ".", "..", "../x", "a/b", "x\x00y"}
	for _, name := range invalid {
		err := ValidateName(name)
		if err == nil {
			t.Errorf("ValidateName(%q) expected error", name)
			continue
		}
		if !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("ValidateName(%q) code = %s, want %s", name, errors.GetCode(err), errors.ErrCodeInvalidInput)
		}
	}
}
