package cli

import (
	"diffsteg/internal/logging"
	"errors"
	"log/slog"
	"os"
	"sync"

	"github.com/spf13/cobra"
)

type rootOpts struct {
	cpuProfile    string
	memProfileDir string
	logLevel      string
}

// Profilers are the profilers started by the root command, stopped once the command completes or from a signal
// handler
type Profilers struct {
	mu  sync.Mutex
	cpu *CPUProfiler
	mem *MemProfiler
}

func (p *Profilers) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	if p.cpu != nil {
		errs = append(errs, p.cpu.Stop())
		p.cpu = nil
	}
	errs = append(errs, p.mem.Stop())
	return errors.Join(errs...)
}

func RootCommand(profilers *Profilers) *cobra.Command {
	opts := rootOpts{}

	rootCmd := &cobra.Command{
		Use:           "diffsteg",
		Short:         "Hides text in images by nudging color channels, and recovers it by diffing against the original",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(opts.logLevel)); err != nil {
				return err
			}
			logging.SetLevel(level)
			logging.SetOutput(os.Stderr)

			if opts.cpuProfile != "" {
				cpuProfiler, err := StartCPUProfiler(opts.cpuProfile)
				if err != nil {
					return err
				}
				profilers.mu.Lock()
				profilers.cpu = cpuProfiler
				profilers.mu.Unlock()
			}
			if opts.memProfileDir != "" {
				memProfiler := StartMemoryProfiler(opts.memProfileDir)
				profilers.mu.Lock()
				profilers.mem = memProfiler
				profilers.mu.Unlock()
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return profilers.Stop()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cpuProfile, "cpu-profile", "", "Dump CPU profile into the supplied file")
	rootCmd.PersistentFlags().StringVar(&opts.memProfileDir, "mem-profile-dir", "", "Dump memory profiles into the supplied directory")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level. Options are debug, info, warn, error")

	rootCmd.AddCommand(ImageCommands(), ServeAppCommand())
	return rootCmd
}
