package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadFullManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[package]
name = "sample"

[compiler]
path = "/opt/sb/SmallBasicCompiler.exe"
flags = ["/quiet"]
output_dir = "bin"

[check]
max_diagnostics = 50
`)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if m.Name != "sample" {
		t.Errorf("Name = %q", m.Name)
	}
	if m.CompilerPath != "/opt/sb/SmallBasicCompiler.exe" {
		t.Errorf("CompilerPath = %q", m.CompilerPath)
	}
	if len(m.CompilerFlags) != 1 || m.CompilerFlags[0] != "/quiet" {
		t.Errorf("CompilerFlags = %v", m.CompilerFlags)
	}
	if want := filepath.Join(dir, "bin"); m.OutputDir != want {
		t.Errorf("OutputDir = %q, want %q", m.OutputDir, want)
	}
	if m.MaxDiagnostics != 50 {
		t.Errorf("MaxDiagnostics = %d", m.MaxDiagnostics)
	}
	if m.Root != dir {
		t.Errorf("Root = %q, want %q", m.Root, dir)
	}
}

func TestLoadEmptyManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "")
	m, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if m.Name != "" || m.CompilerPath != "" || m.OutputDir != "" || m.MaxDiagnostics != 0 {
		t.Fatalf("expected zero settings, got %+v", m)
	}
}

func TestLoadManifestValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{
			name:    "bad toml",
			content: "[package\n",
			errPart: "failed to parse TOML",
		},
		{
			name:    "invalid package name",
			content: "[package]\nname = \"9lives\"\n",
			errPart: "invalid [package].name",
		},
		{
			name:    "empty compiler path",
			content: "[compiler]\npath = \"  \"\n",
			errPart: "empty [compiler].path",
		},
		{
			name:    "empty flag entry",
			content: "[compiler]\nflags = [\"/quiet\", \"\"]\n",
			errPart: "empty entry in [compiler].flags",
		},
		{
			name:    "absolute output dir",
			content: "[compiler]\noutput_dir = \"/tmp/out\"\n",
			errPart: "must be relative",
		},
		{
			name:    "escaping output dir",
			content: "[compiler]\noutput_dir = \"../out\"\n",
			errPart: "escapes project root",
		},
		{
			name:    "negative max diagnostics",
			content: "[check]\nmax_diagnostics = -1\n",
			errPart: "must be non-negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeManifest(t, dir, tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Fatalf("error %q does not mention %q", err, tt.errPart)
			}
			if !strings.Contains(err.Error(), path) {
				t.Fatalf("error %q does not carry the manifest path", err)
			}
		})
	}
}

func TestLoadFromDirWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"nested\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	m, err := LoadFromDir(nested)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if m.Name != "nested" {
		t.Errorf("Name = %q", m.Name)
	}
}

func TestLoadFromDirWithoutManifest(t *testing.T) {
	m, err := LoadFromDir(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if m.Path != "" {
		t.Fatalf("expected zero manifest, got %+v", m)
	}
	if got := m.DiagnosticLimit(100); got != 100 {
		t.Errorf("DiagnosticLimit fallback = %d", got)
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "")
	nested := filepath.Join(root, "src")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, ok, err := FindProjectRoot(nested)
	if err != nil || !ok {
		t.Fatalf("find: ok=%v err=%v", ok, err)
	}
	// TempDir может содержать симлинки, сравниваем разрешённые пути.
	wantResolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		t.Fatalf("eval symlinks: %v", err)
	}
	gotResolved, err := filepath.EvalSymlinks(got)
	if err != nil {
		t.Fatalf("eval symlinks: %v", err)
	}
	if gotResolved != wantResolved {
		t.Fatalf("root = %q, want %q", gotResolved, wantResolved)
	}

	if _, ok, err := FindProjectRoot(t.TempDir()); err != nil || ok {
		t.Fatalf("unexpected manifest found: ok=%v err=%v", ok, err)
	}
}

func TestIsValidPackageName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"sample", true},
		{"_x", true},
		{"hello-world", true},
		{"prog2", true},
		{"", false},
		{"9lives", false},
		{"has space", false},
		{"приложение", false},
	}
	for _, tt := range tests {
		if got := IsValidPackageName(tt.name); got != tt.want {
			t.Errorf("IsValidPackageName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestManifestNilAccessors(t *testing.T) {
	var m *Manifest
	if path, flags, out := m.CompilerSettings(); path != "" || flags != nil || out != "" {
		t.Fatal("nil manifest must yield runner defaults")
	}
	if got := m.DiagnosticLimit(7); got != 7 {
		t.Fatalf("DiagnosticLimit = %d", got)
	}
}
