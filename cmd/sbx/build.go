package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"sbx/internal/compiler"
	"sbx/internal/diagfmt"
	"sbx/internal/driver"
	"sbx/internal/project"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] <file.sb>",
	Short: "Compile a Small Basic program with the external compiler",
	Long:  `Check block balance, invoke the external Small Basic compiler and report interpreted errors or the produced artifact`,
	Args:  cobra.ExactArgs(1),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().Bool("raw", false, "include raw compiler output on failure")
	buildCmd.Flags().Bool("no-cache", false, "bypass the compile result cache")
	buildCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	sourcePath := args[0]

	raw, err := cmd.Flags().GetBool("raw")
	if err != nil {
		return fmt.Errorf("failed to get raw flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	uiModeValue, err := readUIMode(uiValue)
	if err != nil {
		return err
	}
	quiet, err := readQuiet(cmd)
	if err != nil {
		return err
	}

	opts, err := buildOptions(cmd, sourcePath)
	if err != nil {
		return err
	}
	opts.NoCache = noCache

	var result driver.BuildResult
	if shouldUseTUI(uiModeValue) {
		result, err = runBuildWithUI(cmd.Context(), "sbx build", sourcePath, opts)
	} else {
		result, err = driver.BuildFile(cmd.Context(), sourcePath, opts)
	}
	if err != nil {
		return err
	}

	exitCode, err := reportBuild(cmd, result, buildReport{
		maxDiagnostics: opts.MaxDiagnostics,
		raw:            raw,
		quiet:          quiet,
	})
	if err != nil {
		return err
	}
	if exitCode != 0 {
		// Ошибки уже напечатаны
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}
	return nil
}

// buildOptions собирает настройки конвейера из манифеста проекта и флагов.
func buildOptions(cmd *cobra.Command, sourcePath string) (driver.BuildOptions, error) {
	manifest, err := project.LoadFromDir(filepath.Dir(sourcePath))
	if err != nil {
		return driver.BuildOptions{}, err
	}
	maxDiagnostics, err := effectiveMaxDiagnostics(cmd, manifest)
	if err != nil {
		return driver.BuildOptions{}, err
	}
	compilerPath, flags, outputDir := manifest.CompilerSettings()
	return driver.BuildOptions{
		MaxDiagnostics: maxDiagnostics,
		Runner: compiler.Runner{
			CompilerPath: compilerPath,
			Flags:        flags,
			OutputDir:    outputDir,
		},
	}, nil
}

type buildReport struct {
	maxDiagnostics int
	raw            bool
	quiet          bool
}

// reportBuild печатает итог сборки и возвращает 1, когда она не удалась.
// Ошибки компилятора рендерятся тем же pretty-форматтером, что и балансные
// диагностики.
func reportBuild(cmd *cobra.Command, result driver.BuildResult, report buildReport) (int, error) {
	useColor, err := readUseColor(cmd)
	if err != nil {
		return 0, err
	}
	prettyOpts := diagfmt.PrettyOpts{
		Color:     useColor,
		PathMode:  diagfmt.PathModeAuto,
		ShowFixes: true,
	}

	if result.CheckFailed() {
		diagfmt.Pretty(os.Stdout, result.Check.Bag, result.Check.FileSet, prettyOpts)
		return 1, nil
	}

	compiled := result.Compile
	if !compiled.Success {
		// Порядок интерпретатора сохраняется: он повторяет вывод компилятора
		bag := result.CompileDiagnostics(report.maxDiagnostics)
		diagfmt.Pretty(os.Stdout, bag, result.Check.FileSet, prettyOpts)
		if report.raw && compiled.RawOutput != "" {
			fmt.Fprintln(os.Stdout, "== compiler output ==")
			fmt.Fprint(os.Stdout, compiled.RawOutput)
			if !strings.HasSuffix(compiled.RawOutput, "\n") {
				fmt.Fprintln(os.Stdout)
			}
		}
		return 1, nil
	}

	if !report.quiet {
		note := ""
		if result.Cached {
			note = " (cached)"
		}
		fmt.Fprintf(os.Stdout, "built %s%s\n", compiled.ExePath, note)
	}
	return 0, nil
}
