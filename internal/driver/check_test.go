package driver_test

import (
	"os"
	"path/filepath"
	"testing"

	"sbx/internal/diag"
	"sbx/internal/driver"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestCheckFileReportsUnmatchedBlocks(t *testing.T) {
	path := writeSource(t, t.TempDir(), "prog.sb", "If x > 0 Then\n  y = 1\n")

	result, err := driver.CheckFile(path, 100)
	if err != nil {
		t.Fatalf("CheckFile: %v", err)
	}
	if !result.Bag.HasErrors() {
		t.Fatal("expected balance errors")
	}
	items := result.Bag.Items()
	if len(items) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(items))
	}
	if items[0].Code != diag.BalUnmatchedIf {
		t.Fatalf("code = %v, want BalUnmatchedIf", items[0].Code)
	}
	if result.File == nil || result.File.Path == "" {
		t.Fatal("check result missing file metadata")
	}
}

func TestCheckFileCleanSource(t *testing.T) {
	path := writeSource(t, t.TempDir(), "prog.sb", "While x < 3\n  x = x + 1\nEndWhile\n")

	result, err := driver.CheckFile(path, 100)
	if err != nil {
		t.Fatalf("CheckFile: %v", err)
	}
	if result.Bag.Len() != 0 {
		t.Fatalf("got %d diagnostics, want 0", result.Bag.Len())
	}
	if len(result.Balance.Pairs) != 1 {
		t.Fatalf("got %d pairs, want 1", len(result.Balance.Pairs))
	}
}

func TestCheckFileMissing(t *testing.T) {
	if _, err := driver.CheckFile(filepath.Join(t.TempDir(), "absent.sb"), 100); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestCheckSourceVirtualBuffer(t *testing.T) {
	result := driver.CheckSource("buffer.sb", []byte("Sub Greet\n"), 100)

	items := result.Bag.Items()
	if len(items) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(items))
	}
	if items[0].Code != diag.BalUnmatchedSub {
		t.Fatalf("code = %v, want BalUnmatchedSub", items[0].Code)
	}
	if got, want := items[0].Message, "Sub 'Greet' has no matching 'EndSub'"; got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}
}

func TestCheckFileHonorsDiagnosticLimit(t *testing.T) {
	content := "If a Then\nIf b Then\nIf c Then\n"
	path := writeSource(t, t.TempDir(), "prog.sb", content)

	result, err := driver.CheckFile(path, 2)
	if err != nil {
		t.Fatalf("CheckFile: %v", err)
	}
	if result.Bag.Len() != 2 {
		t.Fatalf("got %d diagnostics, want capped 2", result.Bag.Len())
	}
	if len(result.Balance.Unmatched) != 3 {
		t.Fatalf("got %d unmatched openers, want 3", len(result.Balance.Unmatched))
	}
}
