package cli

import (
	"bytes"
	"fmt"
	"io/fs"
	"testing"

	"github.com/grovetools/envbackup/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "snapshot not found",
			err:  errors.SnapshotNotFound("2024-05-01T10-00-00"),
			want: []string{"Snapshot '2024-05-01T10-00-00' not found", "env-backup list"},
		},
		{
			name: "invalid snapshot suggests force delete",
			err:  errors.SnapshotNotFound("broken").WithDetail("reason", "missing state.json"),
			want: []string{"Reason: missing state.json", "delete --force broken"},
		},
		{
			name: "permission failure",
			err:  errors.IOFailure("read store directory", "/root/.env-backup", fs.ErrPermission),
			want: []string{"failed to read store directory", "Check permissions on /root/.env-backup"},
		},
		{
			name: "invalid input",
			err:  errors.InvalidName("../x", "contains a path separator"),
			want: []string{"invalid snapshot name", "env-backup list"},
		},
		{
			name: "plain error",
			err:  fmt.Errorf("boom"),
			want: []string{"Error: boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			h := &ErrorHandler{Out: &out}

			returned := h.Handle(tt.err)
			assert.Equal(t, tt.err, returned)
			for _, want := range tt.want {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestErrorHandlerVerboseShowsDetails(t *testing.T) {
	var out bytes.Buffer
	h := &ErrorHandler{Verbose: true, Out: &out}

	h.Handle(errors.SnapshotNotFound("gone"))
	assert.Contains(t, out.String(), "Error details:")
	assert.Contains(t, out.String(), `"SNAPSHOT_NOT_FOUND"`)
}

func TestErrorHandlerNil(t *testing.T) {
	var out bytes.Buffer
	assert.NoError(t, (&ErrorHandler{Out: &out}).Handle(nil))
	assert.Empty(t, out.String())
}
