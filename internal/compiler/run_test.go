package compiler_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"sbx/internal/compiler"
)

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func TestArtifactPath(t *testing.T) {
	tests := []struct {
		name      string
		outputDir string
		source    string
		want      string
	}{
		{
			name:   "next to source",
			source: filepath.Join("proj", "hello.sb"),
			want:   filepath.Join("proj", "hello.exe"),
		},
		{
			name:      "manifest output dir",
			outputDir: filepath.Join("out", "bin"),
			source:    filepath.Join("proj", "hello.sb"),
			want:      filepath.Join("out", "bin", "hello.exe"),
		},
		{
			name:   "source without extension",
			source: "hello",
			want:   "hello.exe",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := compiler.Runner{OutputDir: tt.outputDir}
			if got := r.ArtifactPath(tt.source); got != tt.want {
				t.Fatalf("ArtifactPath(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestLocateCompilerExplicitPath(t *testing.T) {
	bin := writeScript(t, t.TempDir(), "sbc", "#!/bin/sh\n")
	r := compiler.Runner{CompilerPath: bin}
	got, err := r.LocateCompiler()
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	if got != bin {
		t.Fatalf("got %q, want %q", got, bin)
	}
}

func TestLocateCompilerExplicitPathMissing(t *testing.T) {
	r := compiler.Runner{CompilerPath: filepath.Join(t.TempDir(), "absent")}
	if _, err := r.LocateCompiler(); !errors.Is(err, compiler.ErrCompilerNotFound) {
		t.Fatalf("want ErrCompilerNotFound, got %v", err)
	}
}

func TestLocateCompilerFromEnv(t *testing.T) {
	bin := writeScript(t, t.TempDir(), "sbc", "#!/bin/sh\n")
	t.Setenv(compiler.EnvCompilerPath, bin)
	var r compiler.Runner
	got, err := r.LocateCompiler()
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	if got != bin {
		t.Fatalf("got %q, want %q", got, bin)
	}
}

func TestLocateCompilerNotFound(t *testing.T) {
	t.Setenv(compiler.EnvCompilerPath, "")
	t.Setenv("PATH", t.TempDir())
	var r compiler.Runner
	if _, err := r.LocateCompiler(); !errors.Is(err, compiler.ErrCompilerNotFound) {
		t.Fatalf("want ErrCompilerNotFound, got %v", err)
	}
}

func TestCompileMissingSource(t *testing.T) {
	var r compiler.Runner
	_, err := r.Compile(context.Background(), filepath.Join(t.TempDir(), "absent.sb"), false)
	if !errors.Is(err, compiler.ErrSourceNotFound) {
		t.Fatalf("want ErrSourceNotFound, got %v", err)
	}
}

func TestCompileSuccess(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script compiler stub")
	}
	dir := t.TempDir()
	src := filepath.Join(dir, "prog.sb")
	if err := os.WriteFile(src, []byte("x = 1\n"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	bin := writeScript(t, t.TempDir(), "fakesbc",
		"#!/bin/sh\necho \"prog.sb: 0 errors.\"\ntouch \"$(dirname \"$1\")/prog.exe\"\n")

	r := compiler.Runner{CompilerPath: bin}
	res, err := r.Compile(context.Background(), src, false)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !res.Success {
		t.Fatalf("expected success, got %+v", res)
	}
	if want := filepath.Join(dir, "prog.exe"); res.ExePath != want {
		t.Fatalf("ExePath = %q, want %q", res.ExePath, want)
	}
}

func TestCompileFailureParsesOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script compiler stub")
	}
	dir := t.TempDir()
	src := filepath.Join(dir, "prog.sb")
	if err := os.WriteFile(src, []byte("x = 1\n"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	bin := writeScript(t, t.TempDir(), "fakesbc",
		"#!/bin/sh\necho \"prog.sb: 2 errors.\"\necho \"Line 1, Col 5: Missing operand\"\nexit 1\n")

	r := compiler.Runner{CompilerPath: bin}
	res, err := r.Compile(context.Background(), src, true)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if res.Success {
		t.Fatalf("expected failure, got %+v", res)
	}
	if len(res.Errors) != 2 {
		t.Fatalf("expected summary and detail records, got %v", res.Errors)
	}
	if res.Errors[1].Line != 1 || res.Errors[1].Column != 5 {
		t.Fatalf("detail position lost: %+v", res.Errors[1])
	}
	if !strings.Contains(res.RawOutput, "2 errors") {
		t.Fatalf("raw output not kept: %q", res.RawOutput)
	}
}

func TestCompileJoinsStderr(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script compiler stub")
	}
	dir := t.TempDir()
	src := filepath.Join(dir, "prog.sb")
	if err := os.WriteFile(src, []byte("x = 1\n"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	bin := writeScript(t, t.TempDir(), "fakesbc",
		"#!/bin/sh\necho \"out line\"\necho \"Error: from stderr\" >&2\nexit 1\n")

	r := compiler.Runner{CompilerPath: bin}
	res, err := r.Compile(context.Background(), src, true)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !strings.Contains(res.RawOutput, "out line\n") ||
		!strings.Contains(res.RawOutput, "Error: from stderr") {
		t.Fatalf("stdout and stderr not joined: %q", res.RawOutput)
	}
	if len(res.Errors) != 1 || res.Errors[0].Message != "from stderr" {
		t.Fatalf("stderr line not interpreted: %v", res.Errors)
	}
}

func TestRunProgram(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script artifact stub")
	}
	exe := writeScript(t, t.TempDir(), "prog.exe", "#!/bin/sh\necho hello from program\n")

	var out bytes.Buffer
	if err := compiler.RunProgram(context.Background(), exe, nil, &out, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := out.String(); got != "hello from program\n" {
		t.Fatalf("program output = %q", got)
	}
}

func TestRunProgramMissingArtifact(t *testing.T) {
	err := compiler.RunProgram(context.Background(), filepath.Join(t.TempDir(), "absent.exe"), nil, io.Discard, io.Discard)
	if err == nil {
		t.Fatal("expected error for missing artifact")
	}
}
