package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/heshpdx/cppcheck/internal/diag"
	"github.com/heshpdx/cppcheck/internal/diagfmt"
	"github.com/heshpdx/cppcheck/internal/driver"
	"github.com/heshpdx/cppcheck/internal/observ"
	"github.com/heshpdx/cppcheck/internal/prof"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] dir",
	Short: "Analyze every C/C++ source file under a directory",
	Long:  `Check tokenizes all sources under the directory in parallel and reports the findings`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Bool("quiet", false, "print only the summary line")
	checkCmd.Flags().Bool("timings", false, "print per-phase timings")
	checkCmd.Flags().String("cpu-profile", "", "write a CPU profile to the given file")
	checkCmd.Flags().String("mem-profile", "", "write a heap profile to the given file")
	checkCmd.Flags().String("exec-trace", "", "write a runtime trace to the given file")
}

func runCheck(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(settings)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if path, _ := cmd.Flags().GetString("cpu-profile"); path != "" {
		stop, err := prof.StartCPU(path)
		if err != nil {
			return fmt.Errorf("failed to start CPU profile: %w", err)
		}
		defer stop()
	}
	if path, _ := cmd.Flags().GetString("exec-trace"); path != "" {
		stop, err := prof.StartTrace(path)
		if err != nil {
			return fmt.Errorf("failed to start trace: %w", err)
		}
		defer stop()
	}

	timer := observ.NewTimer()

	phase := timer.Begin(observ.PhaseTokenize)
	fileSet, results, err := driver.TokenizeDir(context.Background(), args[0], settings, log)
	timer.End(phase, fmt.Sprintf("%d files", len(results)))
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Fprintf(os.Stdout, "no source files under %s\n", args[0])
		return nil
	}

	phase = timer.Begin(observ.PhaseReport)
	merged := diag.NewBag(settings.MaxDiagnostics)
	failed := 0
	for i := range results {
		if results[i].Err != nil {
			failed++
		}
		merged.Merge(results[i].Bag)
	}
	merged.Sort()

	quiet, _ := cmd.Flags().GetBool("quiet")
	if !quiet && merged.Len() > 0 {
		opts := diagfmt.PrettyOpts{
			Color:   useColor(cmd, os.Stdout),
			Context: 2,
		}
		diagfmt.Pretty(os.Stdout, merged, fileSet, opts)
	}
	timer.End(phase, "")

	fmt.Fprintf(os.Stdout, "%d files, %d findings\n", len(results), merged.Len())
	if withTimings, _ := cmd.Flags().GetBool("timings"); withTimings {
		fmt.Fprint(os.Stdout, timer.Summary())
	}
	if path, _ := cmd.Flags().GetString("mem-profile"); path != "" {
		if err := prof.WriteMem(path); err != nil {
			return fmt.Errorf("failed to write heap profile: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	if merged.HasErrors() {
		// findings already printed; a bare error keeps the exit code
		// nonzero without repeating them
		cmd.SilenceUsage = true
		return fmt.Errorf("found errors")
	}
	return nil
}
