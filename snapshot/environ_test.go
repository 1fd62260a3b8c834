package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnviron(t *testing.T) {
	got := parseEnviron([]string{"A=1", "B=x=y", "EMPTY=", "NOEQUALS", "=C:=C:\\", "A=2"})
	assert.Equal(t, map[string]string{"A": "2", "B": "x=y", "EMPTY": ""}, got)
}

func TestProcessEnviron(t *testing.T) {
	t.Setenv("ENV_BACKUP_TEST_VAR", "before")
	env := NewProcessEnviron()

	assert.Equal(t, "before", env.Environ()["ENV_BACKUP_TEST_VAR"])
	require.NoError(t, env.Setenv("ENV_BACKUP_TEST_VAR", "after"))
	assert.Equal(t, "after", env.Environ()["ENV_BACKUP_TEST_VAR"])
}

func TestMapEnvironCopies(t *testing.T) {
	env := MapEnviron{"A": "1"}
	snapshot := env.Environ()
	snapshot["A"] = "changed"
	assert.Equal(t, "1", env["A"])
}
