package profiling

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/spf13/cobra"
)

// CobraProfiler binds --timing and --cpu-profile to a command tree.
type CobraProfiler struct {
	cpuProfilePath string
	cpuProfileFile *os.File
	timing         bool
}

// NewCobraProfiler returns a profiler with both features off.
func NewCobraProfiler() *CobraProfiler {
	return &CobraProfiler{}
}

// AddFlags registers the profiling flags as hidden persistent flags.
func (p *CobraProfiler) AddFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.BoolVar(&p.timing, "timing", false, "Print a timing summary to stderr on exit")
	flags.StringVar(&p.cpuProfilePath, "cpu-profile", "", "Write a CPU profile to file")
	_ = flags.MarkHidden("timing")
	_ = flags.MarkHidden("cpu-profile")
}

// PreRun starts whatever the flags asked for. Use as PersistentPreRunE.
func (p *CobraProfiler) PreRun(cmd *cobra.Command, _ []string) error {
	if p.timing {
		Enable()
	}
	if p.cpuProfilePath == "" {
		return nil
	}

	f, err := os.Create(p.cpuProfilePath)
	if err != nil {
		return fmt.Errorf("could not create CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return fmt.Errorf("could not start CPU profile: %w", err)
	}
	p.cpuProfileFile = f
	return nil
}

// PostRun stops profiling and prints the timing summary to the command's
// stderr. Use as PersistentPostRun.
func (p *CobraProfiler) PostRun(cmd *cobra.Command, _ []string) {
	if p.cpuProfileFile != nil {
		pprof.StopCPUProfile()
		p.cpuProfileFile.Close()
		p.cpuProfileFile = nil
		fmt.Fprintf(cmd.ErrOrStderr(), "CPU profile written to %s\n", p.cpuProfilePath)
	}
	if p.timing {
		Summarize(cmd.ErrOrStderr())
		Disable()
	}
}
