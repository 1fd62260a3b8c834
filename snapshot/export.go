package snapshot

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// exportableKey matches names a POSIX shell or fish can assign.
var exportableKey = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ExportScript renders vars as shell statements the calling shell can eval,
// since a child process cannot change its parent's environment. Keys that
// are not valid shell identifiers are skipped. Output is sorted by key.
func ExportScript(vars map[string]string, shell ShellKind) string {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		if exportableKey.MatchString(k) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		switch shell {
		case ShellFish:
			fmt.Fprintf(&b, "set -gx %s %s\n", k, fishQuote(vars[k]))
		default:
			fmt.Fprintf(&b, "export %s=%s\n", k, posixQuote(vars[k]))
		}
	}
	return b.String()
}

// posixQuote single-quotes s, closing and reopening around embedded quotes.
func posixQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// fishQuote single-quotes s; fish only treats \\ and \' as escapes inside.
func fishQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)
	return "'" + s + "'"
}

// Restorable returns the variables of state that Restore would apply.
func (s *Store) Restorable(state *State) map[string]string {
	return s.denylist.Filter(state.EnvVars)
}
