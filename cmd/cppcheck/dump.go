package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/heshpdx/cppcheck/internal/diagfmt"
	"github.com/heshpdx/cppcheck/internal/driver"
	"github.com/heshpdx/cppcheck/internal/token"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [flags] file.cpp",
	Short: "Dump the token stream of a source file",
	Long:  `Dump tokenizes one source file and prints the classified token stream`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().String("format", "debug", "output format (debug|pretty|json)")
	dumpCmd.Flags().Bool("ast", false, "also print expression trees")
	dumpCmd.Flags().Bool("values", false, "also print value-flow facts")
}

func runDump(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Tokenize(args[0], settings)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	if result.Err != nil {
		return result.Err
	}

	if result.Bag.Len() > 0 {
		result.Bag.Sort()
		opts := diagfmt.PrettyOpts{
			Color:   useColor(cmd, os.Stderr),
			Context: 2,
		}
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	switch format {
	case "debug":
		if front := result.List.Front(); front != nil {
			fmt.Fprintln(os.Stdout, front.StringifyList(token.ForPrintOut(), result.List.Files(), nil))
		}
	case "pretty":
		if err := diagfmt.FormatTokensPretty(os.Stdout, result.List); err != nil {
			return err
		}
	case "json":
		if err := diagfmt.FormatTokensJSON(os.Stdout, result.List); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if front := result.List.Front(); front != nil {
		if withAst, _ := cmd.Flags().GetBool("ast"); withAst {
			front.PrintAst(os.Stdout, result.List.Files())
		}
		if withValues, _ := cmd.Flags().GetBool("values"); withValues {
			front.PrintValueFlow(os.Stdout, result.List.Files())
		}
	}
	return nil
}
