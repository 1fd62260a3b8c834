package snapshot

import "strings"

// fishCmdPrefix starts each entry in fish's history file.
const fishCmdPrefix = "- cmd: "

// parseHistoryLines splits a bash/zsh history file into commands, dropping
// empty lines and '#' comment lines (bash timestamps included).
func parseHistoryLines(content string) []string {
	lines := make([]string, 0)
	for _, line := range strings.Split(content, "\n") {
		if keepHistoryLine(line) {
			lines = append(lines, line)
		}
	}
	return lines
}

func keepHistoryLine(line string) bool {
	return line != "" && !strings.HasPrefix(line, "#")
}

// parseFishHistory extracts commands from fish's history file. Each entry
// starts with a "- cmd: " line holding the command unquoted, with newlines
// and backslashes escaped. Other lines (when, paths) are ignored.
func parseFishHistory(content string) []string {
	lines := make([]string, 0)
	for _, line := range strings.Split(content, "\n") {
		if cmd, ok := strings.CutPrefix(line, fishCmdPrefix); ok {
			cmd = unescapeFish(cmd)
			if keepHistoryLine(cmd) {
				lines = append(lines, cmd)
			}
		}
	}
	return lines
}

// unescapeFish reverses fish's history escaping of "\\" and "\n".
func unescapeFish(s string) string {
	if !strings.Contains(s, "\\") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case '\\':
				b.WriteByte('\\')
				i++
				continue
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// parseHistory dispatches on shell kind.
func parseHistory(kind ShellKind, content string) []string {
	if kind == ShellFish {
		return parseFishHistory(content)
	}
	return parseHistoryLines(content)
}
