package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"sbx/internal/compiler"
	"sbx/internal/diag"
	"sbx/internal/driver"
)

func writeCompilerScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fakesbc")
	if err := os.WriteFile(path, []byte(body), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script compiler stub")
	}
}

func TestBuildFileStopsOnBalanceErrors(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir := t.TempDir()
	src := writeSource(t, dir, "prog.sb", "If x > 0 Then\n")

	// компилятор намеренно отсутствует: до него дойти не должны
	opts := driver.BuildOptions{
		MaxDiagnostics: 10,
		Runner:         compiler.Runner{CompilerPath: filepath.Join(dir, "absent")},
	}
	result, err := driver.BuildFile(context.Background(), src, opts)
	if err != nil {
		t.Fatalf("BuildFile: %v", err)
	}
	if !result.CheckFailed() {
		t.Fatal("expected balance failure")
	}
	if result.Compile.Success || result.Compile.ExePath != "" {
		t.Fatalf("compiler must not run after failed check: %+v", result.Compile)
	}
}

func TestBuildFileCompilesAndCaches(t *testing.T) {
	skipOnWindows(t)
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir := t.TempDir()
	src := writeSource(t, dir, "prog.sb", "x = 1\n")
	marker := filepath.Join(t.TempDir(), "invocations")
	bin := writeCompilerScript(t,
		"#!/bin/sh\necho run >> "+marker+"\necho \"prog.sb: 0 errors.\"\ntouch \"$(dirname \"$1\")/prog.exe\"\n")

	opts := driver.BuildOptions{MaxDiagnostics: 10, Runner: compiler.Runner{CompilerPath: bin}}

	first, err := driver.BuildFile(context.Background(), src, opts)
	if err != nil {
		t.Fatalf("first BuildFile: %v", err)
	}
	if !first.Compile.Success {
		t.Fatalf("compile failed: %+v", first.Compile.Errors)
	}
	if first.Cached {
		t.Fatal("first build must not come from the cache")
	}

	second, err := driver.BuildFile(context.Background(), src, opts)
	if err != nil {
		t.Fatalf("second BuildFile: %v", err)
	}
	if !second.Cached {
		t.Fatal("second build should reuse the cache")
	}

	data, err := os.ReadFile(marker)
	if err != nil {
		t.Fatalf("read marker: %v", err)
	}
	if got := strings.Count(string(data), "run"); got != 1 {
		t.Fatalf("compiler invoked %d times, want 1", got)
	}
}

func TestBuildFileNoCache(t *testing.T) {
	skipOnWindows(t)
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir := t.TempDir()
	src := writeSource(t, dir, "prog.sb", "x = 1\n")
	marker := filepath.Join(t.TempDir(), "invocations")
	bin := writeCompilerScript(t,
		"#!/bin/sh\necho run >> "+marker+"\necho \"prog.sb: 0 errors.\"\ntouch \"$(dirname \"$1\")/prog.exe\"\n")

	opts := driver.BuildOptions{MaxDiagnostics: 10, NoCache: true, Runner: compiler.Runner{CompilerPath: bin}}

	for i := 0; i < 2; i++ {
		result, err := driver.BuildFile(context.Background(), src, opts)
		if err != nil {
			t.Fatalf("BuildFile #%d: %v", i+1, err)
		}
		if result.Cached {
			t.Fatalf("build #%d used the cache despite NoCache", i+1)
		}
	}

	data, err := os.ReadFile(marker)
	if err != nil {
		t.Fatalf("read marker: %v", err)
	}
	if got := strings.Count(string(data), "run"); got != 2 {
		t.Fatalf("compiler invoked %d times, want 2", got)
	}
}

func TestBuildFileCompileFailure(t *testing.T) {
	skipOnWindows(t)
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir := t.TempDir()
	src := writeSource(t, dir, "prog.sb", "x = 1\nIf x > 0 Then\nEndIf\n")
	bin := writeCompilerScript(t, "#!/bin/sh\necho \"Error: unexpected token at line 2\"\nexit 1\n")

	opts := driver.BuildOptions{MaxDiagnostics: 10, Runner: compiler.Runner{CompilerPath: bin}}

	sink := &recordingSink{}
	opts.Progress = sink

	result, err := driver.BuildFile(context.Background(), src, opts)
	if err != nil {
		t.Fatalf("BuildFile: %v", err)
	}
	if result.CheckFailed() {
		t.Fatal("balance check should pass")
	}
	if result.Compile.Success {
		t.Fatal("compile should fail")
	}
	if len(result.Compile.Errors) != 1 {
		t.Fatalf("got %d errors, want 1: %+v", len(result.Compile.Errors), result.Compile.Errors)
	}
	if got := result.Compile.Errors[0]; got.Message != "unexpected token" || got.Line != 2 {
		t.Fatalf("unexpected error record: %+v", got)
	}

	var sawCompileError bool
	for _, ev := range sink.snapshot() {
		if ev.Stage == driver.StageCompile && ev.Status == driver.StatusError {
			sawCompileError = true
		}
	}
	if !sawCompileError {
		t.Fatal("expected a compile-stage error event")
	}
}

func TestBuildFileMissingCompiler(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv(compiler.EnvCompilerPath, "")
	t.Setenv("PATH", t.TempDir())
	dir := t.TempDir()
	src := writeSource(t, dir, "prog.sb", "x = 1\n")

	_, err := driver.BuildFile(context.Background(), src, driver.BuildOptions{MaxDiagnostics: 10})
	if err == nil {
		t.Fatal("expected hard failure for missing compiler")
	}
}

func TestCompileDiagnosticsSpans(t *testing.T) {
	check := driver.CheckSource("prog.sb", []byte("If x Then\nTextWindow.WriteLine(1)\nEndIf\n"), 10)
	result := driver.BuildResult{
		Check: check,
		Compile: compiler.CompilationResult{
			Errors: []compiler.CompilationError{
				{Message: "unexpected token", Line: 2, Column: 5},
				{Message: compiler.UnclosedStringMessage},
				{Message: "prog: 2 errors.", Line: 0},
			},
		},
	}

	bag := result.CompileDiagnostics(10)
	items := bag.Items()
	if len(items) != 3 {
		t.Fatalf("got %d diagnostics, want 3", len(items))
	}

	if items[0].Code != diag.CmpReported {
		t.Fatalf("code[0] = %v, want CmpReported", items[0].Code)
	}
	// строка 2 начинается с байта 10, колонка 5 указывает на байт 14
	if items[0].Primary.Start != 14 || items[0].Primary.End != 15 {
		t.Fatalf("span[0] = %v, want 14-15", items[0].Primary)
	}

	if items[1].Code != diag.CmpUnclosedString {
		t.Fatalf("code[1] = %v, want CmpUnclosedString", items[1].Code)
	}
	if !items[1].Primary.Empty() {
		t.Fatalf("span[1] = %v, want empty", items[1].Primary)
	}

	if items[2].Code != diag.CmpSummary {
		t.Fatalf("code[2] = %v, want CmpSummary", items[2].Code)
	}
}

func TestCompileDiagnosticsLineOutOfRange(t *testing.T) {
	check := driver.CheckSource("prog.sb", []byte("x = 1\n"), 10)
	result := driver.BuildResult{
		Check: check,
		Compile: compiler.CompilationResult{
			Errors: []compiler.CompilationError{{Message: "boom", Line: 99}},
		},
	}

	items := result.CompileDiagnostics(10).Items()
	if len(items) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(items))
	}
	if !items[0].Primary.Empty() {
		t.Fatalf("span = %v, want empty for out-of-range line", items[0].Primary)
	}
}
