package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/envbackup/errors"
	"github.com/grovetools/envbackup/tui/theme"
)

// ErrorHandler prints user-friendly messages for BackupErrors.
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates a handler writing to stderr.
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Out:     os.Stderr,
	}
}

// Handle prints err with a hint chosen by its error code and returns it
// unchanged.
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}

	t := theme.DefaultTheme
	red := lipgloss.NewStyle().Bold(true).Foreground(t.Colors.Red)
	prefix := red.Render(theme.IconError)
	hint := func(format string, args ...interface{}) {
		fmt.Fprintln(h.Out, t.Muted.Render(fmt.Sprintf(format, args...)))
	}

	backupErr, ok := errors.As(err)
	switch errors.GetCode(err) {
	case errors.ErrCodeSnapshotNotFound:
		name := ""
		if ok {
			name = fmt.Sprint(backupErr.Details["snapshot"])
		}
		fmt.Fprintf(h.Out, "%s Snapshot '%s' not found\n", prefix, name)
		if ok && backupErr.Details["reason"] != nil {
			hint("Reason: %v", backupErr.Details["reason"])
			hint("Remove it anyway with 'env-backup delete --force %s'.", name)
		} else {
			hint("Run 'env-backup list' to see available snapshots.")
		}

	case errors.ErrCodeIOFailure:
		fmt.Fprintf(h.Out, "%s %v\n", prefix, err)
		if ok && backupErr.Details["permission"] == true {
			hint("Check permissions on %v.", backupErr.Details["path"])
		}

	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(h.Out, "%s %v\n", prefix, err)
		hint("Run 'env-backup paths' to see where configuration is read from.")

	case errors.ErrCodeConfigInvalid:
		fmt.Fprintf(h.Out, "%s %v\n", prefix, err)
		hint("Run 'env-backup config' to inspect the effective configuration.")

	case errors.ErrCodeInvalidInput:
		fmt.Fprintf(h.Out, "%s %v\n", prefix, err)
		hint("Snapshot names are plain directory names as shown by 'env-backup list'.")

	default:
		fmt.Fprintf(h.Out, "%s Error: %v\n", prefix, err)
	}

	if h.Verbose && ok {
		fmt.Fprintf(h.Out, "\nError details:\n%s\n", backupErr.ToJSON())
	}
	return err
}
