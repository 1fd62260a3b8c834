package table

import (
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/grovetools/envbackup/tui/theme"
)

// Options configures a styled table.
type Options struct {
	Bordered bool
	// RightAligned lists column indexes rendered flush right (e.g. sizes).
	RightAligned []int
	Theme        *theme.Theme
}

// DefaultOptions returns the default table options.
func DefaultOptions() Options {
	return Options{
		Bordered: true,
		Theme:    theme.DefaultTheme,
	}
}

// NewStyledTable creates a lipgloss table with the default styling.
func NewStyledTable() *ltable.Table {
	return NewStyledTableWithOptions(DefaultOptions())
}

// NewStyledTableWithOptions creates a table with custom options.
func NewStyledTableWithOptions(opts Options) *ltable.Table {
	t := opts.Theme
	if t == nil {
		t = theme.DefaultTheme
	}

	right := make(map[int]bool, len(opts.RightAligned))
	for _, col := range opts.RightAligned {
		right[col] = true
	}

	table := ltable.New()
	if opts.Bordered {
		table = table.
			Border(lipgloss.RoundedBorder()).
			BorderStyle(t.TableBorder)
	} else {
		table = table.
			Border(lipgloss.HiddenBorder()).
			BorderTop(false).
			BorderBottom(false).
			BorderLeft(false).
			BorderRight(false)
	}

	return table.StyleFunc(func(row, col int) lipgloss.Style {
		style := t.TableRow
		if row == ltable.HeaderRow {
			style = t.TableHeader
		}
		if right[col] {
			style = style.Align(lipgloss.Right)
		}
		return style
	})
}
