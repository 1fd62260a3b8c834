package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHistoryLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"comment dropped", "echo hi\n# comment\nls -la", []string{"echo hi", "ls -la"}},
		{"trailing newline", "pwd\n", []string{"pwd"}},
		{"bash timestamps", "#1700000000\ngit push\n#1700000060\ngit pull\n", []string{"git push", "git pull"}},
		{"empty lines", "\n\na\n\nb\n", []string{"a", "b"}},
		{"indented hash kept", "  # not a comment line\n", []string{"  # not a comment line"}},
		{"zsh extended history kept verbatim", ": 1700000000:0;make\n", []string{": 1700000000:0;make"}},
		{"empty file", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseHistoryLines(tt.content))
		})
	}
}

func TestParseFishHistory(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "entries in order",
			content: "- cmd: cd src\n  when: 1\n- cmd: go test ./...\n  when: 2\n",
			want:    []string{"cd src", "go test ./..."},
		},
		{
			name:    "unquoted colon",
			content: "- cmd: echo \"a: b\" c: d\n  when: 1\n- cmd: ls\n  when: 2\n",
			want:    []string{"echo \"a: b\" c: d", "ls"},
		},
		{
			name:    "hash inside command kept",
			content: "- cmd: git commit -m fix #123\n  when: 1\n- cmd: echo hi # note\n  when: 2\n",
			want:    []string{"git commit -m fix #123", "echo hi # note"},
		},
		{
			name:    "tilde kept",
			content: "- cmd: ~\n  when: 3\n- cmd: cd ~\n  when: 4\n",
			want:    []string{"~", "cd ~"},
		},
		{
			name:    "escaped newline and backslash",
			content: "- cmd: echo a\\nb\n  when: 1\n- cmd: printf '\\\\t'\n  when: 2\n",
			want:    []string{"echo a\nb", "printf '\\t'"},
		},
		{
			name:    "paths and when lines ignored",
			content: "- cmd: vim notes.md\n  when: 1\n  paths:\n    - notes.md\n",
			want:    []string{"vim notes.md"},
		},
		{
			name:    "empty",
			content: "",
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseFishHistory(tt.content))
		})
	}
}

func TestParseHistoryDispatch(t *testing.T) {
	assert.Equal(t, []string{"ls"}, parseHistory(ShellFish, "- cmd: ls\n"))
	assert.Equal(t, []string{"- cmd: ls"}, parseHistory(ShellBash, "- cmd: ls\n"))
}
