package sanitize

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/grovetools/envbackup/errors"
)

// maxLabelLength bounds the label part of a snapshot name.
const maxLabelLength = 64

var (
	// labelInvalidRegex matches characters not allowed in a snapshot label
	labelInvalidRegex = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

	// multiDashRegex matches multiple consecutive dashes
	multiDashRegex = regexp.MustCompile(`-+`)
)

// ForSnapshotLabel sanitizes a free-text label for use as the suffix of a
// snapshot directory name. Path separators and other unsafe characters become
// hyphens, and leading dots are stripped so the result can never name a
// parent or hidden directory.
func ForSnapshotLabel(s string) string {
	if s == "" {
		return ""
	}

	s = strings.TrimSpace(s)

	// Replace anything outside the safe set with hyphens
	s = labelInvalidRegex.ReplaceAllString(s, "-")

	// Collapse multiple hyphens
	s = multiDashRegex.ReplaceAllString(s, "-")

	s = strings.TrimLeft(s, ".-")
	s = strings.TrimRight(s, "-")

	if len(s) > maxLabelLength {
		s = strings.TrimRight(s[:maxLabelLength], "-")
	}

	return s
}

// ValidateName checks that name can be used as a single directory entry
// inside the store root.
func ValidateName(name string) error {
	switch {
	case name == "":
		return errors.InvalidName(name, "name is empty")
	case name == "." || name == "..":
		return errors.InvalidName(name, "name refers to a relative directory")
	case strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator):
		return errors.InvalidName(name, "name must not contain path separators")
	case strings.ContainsRune(name, 0):
		return errors.InvalidName(name, "name must not contain NUL bytes")
	}
	return nil
}
