package snapshot

import (
	"fmt"

	"github.com/moby/patternmatcher"
)

// Denylist decides which variables are never captured or restored.
type Denylist struct {
	names   map[string]bool
	matcher *patternmatcher.PatternMatcher
}

// NewDenylist builds a denylist from exact names and glob patterns.
func NewDenylist(names, patterns []string) (*Denylist, error) {
	d := &Denylist{names: make(map[string]bool, len(names))}
	for _, name := range names {
		d.names[name] = true
	}

	if len(patterns) > 0 {
		pm, err := patternmatcher.New(patterns)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern: %w", err)
		}
		d.matcher = pm
	}

	return d, nil
}

// Excludes reports whether key must be left out.
func (d *Denylist) Excludes(key string) bool {
	if d.names[key] {
		return true
	}
	if d.matcher == nil {
		return false
	}
	matched, err := d.matcher.MatchesOrParentMatches(key)
	return err == nil && matched
}

// Filter returns a copy of vars without excluded keys.
func (d *Denylist) Filter(vars map[string]string) map[string]string {
	kept := make(map[string]string, len(vars))
	for k, v := range vars {
		if !d.Excludes(k) {
			kept[k] = v
		}
	}
	return kept
}
