package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStyledTableRendersRows(t *testing.T) {
	tbl := NewStyledTable().
		Headers("NAME", "SIZE").
		Row("2024-05-01T10-00-00", "4.1 kB")

	out := tbl.Render()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "2024-05-01T10-00-00")
	assert.Contains(t, out, "4.1 kB")
	assert.True(t, strings.Contains(out, "╭"), "bordered table uses rounded corners")
}

func TestUnborderedTable(t *testing.T) {
	opts := DefaultOptions()
	opts.Bordered = false
	opts.RightAligned = []int{1}

	out := NewStyledTableWithOptions(opts).
		Headers("NAME", "VARS").
		Row("a", "3").
		Render()

	assert.NotContains(t, out, "╭")
	assert.Contains(t, out, "VARS")
}
