package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"sbx/internal/diag"
	"sbx/internal/diagfmt"
	"sbx/internal/driver"
	"sbx/internal/project"
	"sbx/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.sb|directory>",
	Short: "Check Small Basic sources for unbalanced blocks",
	Long:  `Check a Small Basic source file, or every *.sb file within a directory, for control blocks without a matching closer`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

// init registers CLI flags for the check command used by runCheck.
func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().String("ui", "auto", "progress UI for directory processing (auto|on|off)")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	checkCmd.Flags().Bool("suggest", false, "include fix suggestions in output")
}

// checkRender объединяет настройки вывода, общие для файла и директории.
type checkRender struct {
	format    string
	withNotes bool
	suggest   bool
	useColor  bool
	quiet     bool
}

func (r checkRender) prettyOpts() diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{
		Color:     r.useColor,
		PathMode:  diagfmt.PathModeAuto,
		ShowNotes: r.withNotes,
		ShowFixes: r.suggest,
	}
}

func (r checkRender) jsonOpts() diagfmt.JSONOpts {
	return diagfmt.JSONOpts{
		IncludePositions: true,
		PathMode:         diagfmt.PathModeAuto,
		IncludeNotes:     r.withNotes,
		IncludeFixes:     r.suggest,
	}
}

// runCheck executes the "check" command: it runs the block balance analyzer
// over the provided path (single file or directory), renders the diagnostics
// in the chosen format, and exits with a non-zero status when any diagnostics
// contain errors.
func runCheck(cmd *cobra.Command, args []string) error {
	targetPath := args[0]

	// Получаем флаги
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	suggest, err := cmd.Flags().GetBool("suggest")
	if err != nil {
		return fmt.Errorf("failed to get suggest flag: %w", err)
	}
	useColor, err := readUseColor(cmd)
	if err != nil {
		return err
	}
	quiet, err := readQuiet(cmd)
	if err != nil {
		return err
	}

	switch format {
	case "pretty", "json", "short":
		// поддерживается
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	render := checkRender{
		format:    format,
		withNotes: withNotes,
		suggest:   suggest,
		useColor:  useColor,
		quiet:     quiet,
	}

	st, err := os.Stat(targetPath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	var exitCode int
	if st.IsDir() {
		exitCode, err = checkDirectory(cmd, targetPath, render)
	} else {
		exitCode, err = checkSingleFile(cmd, targetPath, render)
	}
	if err != nil {
		return err
	}
	if exitCode != 0 {
		// Диагностики уже напечатаны, служебный вывод cobra не нужен
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}
	return nil
}

func checkSingleFile(cmd *cobra.Command, path string, render checkRender) (int, error) {
	manifest, err := project.LoadFromDir(filepath.Dir(path))
	if err != nil {
		return 0, err
	}
	maxDiagnostics, err := effectiveMaxDiagnostics(cmd, manifest)
	if err != nil {
		return 0, err
	}

	result, err := driver.CheckFile(path, maxDiagnostics)
	if err != nil {
		return 0, fmt.Errorf("check failed: %w", err)
	}

	switch render.format {
	case "pretty":
		diagfmt.Pretty(os.Stdout, result.Bag, result.FileSet, render.prettyOpts())
	case "short":
		if output := diag.FormatShortDiagnostics(result.Bag.Items(), result.FileSet, render.withNotes); output != "" {
			fmt.Fprintln(os.Stdout, output)
		}
	case "json":
		if err := diagfmt.JSON(os.Stdout, result.Bag, result.FileSet, render.jsonOpts()); err != nil {
			return 0, fmt.Errorf("failed to format diagnostics: %w", err)
		}
	}

	if result.Bag.HasErrors() {
		return 1, nil
	}
	return 0, nil
}

func checkDirectory(cmd *cobra.Command, dir string, render checkRender) (int, error) {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return 0, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return 0, fmt.Errorf("failed to get ui flag: %w", err)
	}
	uiModeValue, err := readUIMode(uiValue)
	if err != nil {
		return 0, err
	}

	manifest, err := project.LoadFromDir(dir)
	if err != nil {
		return 0, err
	}
	maxDiagnostics, err := effectiveMaxDiagnostics(cmd, manifest)
	if err != nil {
		return 0, err
	}

	opts := driver.CheckDirOptions{
		MaxDiagnostics: maxDiagnostics,
		Jobs:           jobs,
	}

	var (
		fs      *source.FileSet
		results []driver.FileCheck
	)
	// TUI имеет смысл только для человекочитаемого формата на терминале
	if render.format == "pretty" && shouldUseTUI(uiModeValue) {
		files, listErr := driver.ListSBFiles(dir)
		if listErr != nil {
			return 0, fmt.Errorf("check failed: %w", listErr)
		}
		if len(files) > 0 {
			fs, results, err = runCheckWithUI(cmd.Context(), "sbx check", files, dir, opts)
		} else {
			fs, results, err = driver.CheckDir(cmd.Context(), dir, opts)
		}
	} else {
		fs, results, err = driver.CheckDir(cmd.Context(), dir, opts)
	}
	if err != nil {
		return 0, fmt.Errorf("check failed: %w", err)
	}

	exit := 0
	for _, r := range results {
		if r.Bag.HasErrors() {
			exit = 1
			break
		}
	}

	switch render.format {
	case "pretty":
		problems := 0
		shown := 0
		for _, r := range results {
			problems += r.Bag.Len()
			if r.Bag.Len() == 0 {
				continue
			}
			if shown > 0 {
				fmt.Fprintln(os.Stdout)
			}
			fmt.Fprintf(os.Stdout, "== %s ==\n", displayPathFor(fs, r.Path))
			diagfmt.Pretty(os.Stdout, r.Bag, fs, render.prettyOpts())
			shown++
		}
		if !render.quiet {
			if shown > 0 {
				fmt.Fprintln(os.Stdout)
			}
			fmt.Fprintf(os.Stdout, "checked %d files: %d problems\n", len(results), problems)
		}
	case "short":
		all := make([]diag.Diagnostic, 0, len(results))
		for _, r := range results {
			all = append(all, r.Bag.Items()...)
		}
		if output := diag.FormatShortDiagnostics(all, fs, render.withNotes); output != "" {
			fmt.Fprintln(os.Stdout, output)
		}
	case "json":
		output := make(map[string]diagfmt.DiagnosticsOutput, len(results))
		for _, r := range results {
			output[displayPathFor(fs, r.Path)] = diagfmt.BuildDiagnosticsOutput(r.Bag, fs, render.jsonOpts())
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(output); err != nil {
			return 0, fmt.Errorf("failed to encode diagnostics output: %w", err)
		}
	}

	return exit, nil
}

// displayPathFor показывает путь так, как его знает FileSet (относительно
// базовой директории), с fallback на путь обхода.
func displayPathFor(fs *source.FileSet, path string) string {
	if f, ok := fs.GetByPath(path); ok {
		return f.FormatPath("auto", fs.BaseDir())
	}
	return path
}
