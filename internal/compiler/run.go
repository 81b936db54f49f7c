package compiler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// EnvCompilerPath — переменная окружения с путём к компилятору; имеет
// приоритет над поиском в PATH, но уступает явной настройке манифеста.
const EnvCompilerPath = "SBX_COMPILER"

// Имена, под которыми компилятор ищется в PATH.
var compilerNames = []string{"SmallBasicCompiler.exe", "smallbasiccompiler"}

var (
	// ErrCompilerNotFound — компилятор не найден ни по одному из источников.
	ErrCompilerNotFound = errors.New("small basic compiler not found")
	// ErrSourceNotFound — исходный файл отсутствует на диске.
	ErrSourceNotFound = errors.New("source file not found")
)

// Runner invokes the external Small Basic compiler. Zero value is usable:
// the compiler is then resolved through the environment and PATH, and
// artifacts are expected next to the source file.
type Runner struct {
	CompilerPath string   // явный путь (из манифеста); пусто — окружение/PATH
	Flags        []string // дополнительные аргументы перед путём исходника
	OutputDir    string   // каталог артефактов; пусто — каталог исходника
}

// LocateCompiler resolves the compiler executable. Missing compiler is a
// hard tooling failure: no meaningful analysis can proceed without it.
func (r *Runner) LocateCompiler() (string, error) {
	if r.CompilerPath != "" {
		if _, err := os.Stat(r.CompilerPath); err != nil {
			return "", fmt.Errorf("%w: %s", ErrCompilerNotFound, r.CompilerPath)
		}
		return r.CompilerPath, nil
	}
	if env := os.Getenv(EnvCompilerPath); env != "" {
		if _, err := os.Stat(env); err != nil {
			return "", fmt.Errorf("%w: %s (from %s)", ErrCompilerNotFound, env, EnvCompilerPath)
		}
		return env, nil
	}
	for _, name := range compilerNames {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", ErrCompilerNotFound
}

// ArtifactPath returns the path where the compiler is expected to drop the
// produced executable for sourcePath.
func (r *Runner) ArtifactPath(sourcePath string) string {
	base := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath)) + ".exe"
	dir := filepath.Dir(sourcePath)
	if r.OutputDir != "" {
		dir = r.OutputDir
	}
	return filepath.Join(dir, base)
}

// Compile запускает компилятор над sourcePath, собирает stdout и stderr
// (stderr дописывается после stdout через перевод строки) и строит итог
// через AssembleResult. Ошибкой возвращаются только жёсткие сбои: нет
// исходника, нет компилятора, процесс не смог стартовать или был отменён.
func (r *Runner) Compile(ctx context.Context, sourcePath string, keepRaw bool) (CompilationResult, error) {
	if _, err := os.Stat(sourcePath); err != nil {
		return CompilationResult{}, fmt.Errorf("%w: %s", ErrSourceNotFound, sourcePath)
	}
	compilerPath, err := r.LocateCompiler()
	if err != nil {
		return CompilationResult{}, err
	}

	args := append(append([]string{}, r.Flags...), sourcePath)
	cmd := exec.CommandContext(ctx, compilerPath, args...)
	cmd.Dir = filepath.Dir(sourcePath)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	exitCode := 0
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return CompilationResult{}, ctx.Err()
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return CompilationResult{}, fmt.Errorf("run compiler: %w", err)
		}
		exitCode = exitErr.ExitCode()
	}

	raw := stdout.String()
	if s := stderr.String(); s != "" {
		if raw != "" {
			raw += "\n"
		}
		raw += s
	}
	return AssembleResult(exitCode, raw, sourcePath, r.ArtifactPath(sourcePath), keepRaw), nil
}

// RunProgram executes a produced artifact, forwarding the standard streams.
func RunProgram(ctx context.Context, exePath string, stdin io.Reader, stdout, stderr io.Writer) error {
	if _, err := os.Stat(exePath); err != nil {
		return fmt.Errorf("program artifact: %w", err)
	}
	cmd := exec.CommandContext(ctx, exePath)
	cmd.Dir = filepath.Dir(exePath)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}
