package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"sbx/internal/compiler"
	"sbx/internal/driver"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] <file.sb>",
	Short: "Compile and execute a Small Basic program",
	Long:  `Compile a Small Basic source file with the external compiler and execute the produced program, forwarding standard input and output`,
	Args:  cobra.ExactArgs(1),
	RunE:  runExecution,
}

func init() {
	runCmd.Flags().Bool("no-cache", false, "bypass the compile result cache")
}

func runExecution(cmd *cobra.Command, args []string) error {
	sourcePath := args[0]

	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}

	opts, err := buildOptions(cmd, sourcePath)
	if err != nil {
		return err
	}
	opts.NoCache = noCache

	result, err := driver.BuildFile(cmd.Context(), sourcePath, opts)
	if err != nil {
		return err
	}

	// Сборочный отчёт без строки "built ...": дальше запускается программа
	exitCode, err := reportBuild(cmd, result, buildReport{
		maxDiagnostics: opts.MaxDiagnostics,
		quiet:          true,
	})
	if err != nil {
		return err
	}
	if exitCode != 0 {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}

	if err := compiler.RunProgram(cmd.Context(), result.Compile.ExePath, os.Stdin, os.Stdout, os.Stderr); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Программа сама сообщила о проблеме своим кодом выхода
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			return fmt.Errorf("")
		}
		return fmt.Errorf("program failed: %w", err)
	}
	return nil
}
