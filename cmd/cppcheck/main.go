package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/heshpdx/cppcheck/internal/config"
	"github.com/heshpdx/cppcheck/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "cppcheck",
	Short: "C/C++ static analysis toolchain",
	Long:  `cppcheck tokenizes and analyzes C/C++ sources without running them`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("settings", "", "path to a TOML settings file")
	rootCmd.PersistentFlags().String("std", "", "language standard (c99, c11, c++17, c++20, ...)")
	rootCmd.PersistentFlags().Int("jobs", 0, "number of files analyzed in parallel (0 = all CPUs)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the tri-state --color flag against the output stream.
func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}

// loadSettings builds Settings from the optional TOML file and the flags
// that override it.
func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	flags := cmd.Root().PersistentFlags()

	settings := config.Default()
	if path, _ := flags.GetString("settings"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
		settings = loaded
	}

	if std, _ := flags.GetString("std"); std != "" {
		settings.Std = std
	}
	if jobs, _ := flags.GetInt("jobs"); jobs != 0 {
		settings.Jobs = jobs
	}
	if maxDiag, _ := flags.GetInt("max-diagnostics"); maxDiag != 100 {
		settings.MaxDiagnostics = maxDiag
	}
	if debug, _ := flags.GetBool("debug"); debug {
		settings.Debug = true
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// newLogger builds the process logger; debug mode switches to the
// development config.
func newLogger(settings *config.Settings) (*zap.Logger, error) {
	if settings.Debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}
