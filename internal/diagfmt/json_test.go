package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"sbx/internal/diag"
	"sbx/internal/source"
)

// TestJSONBasic проверяет базовое JSON форматирование
func TestJSONBasic(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("x = 0\nIf x > 0 Then\n  x = 1\n")
	fileID := fs.AddVirtual("test.sb", content)

	bag := diag.NewBag(10)
	bag.Add(diag.New(
		diag.SevError,
		diag.BalUnmatchedIf,
		source.Span{File: fileID, Start: 6, End: 8},
		"'If' has no matching 'EndIf'",
	))

	var buf bytes.Buffer
	opts := JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
	}

	if err := JSON(&buf, bag, fs, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	// Парсим JSON чтобы убедиться что он валидный
	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("Invalid JSON output: %v\nOutput: %s", err, buf.String())
	}

	if output.Count != 1 {
		t.Errorf("Expected count=1, got %d", output.Count)
	}
	if len(output.Diagnostics) != 1 {
		t.Fatalf("Expected 1 diagnostic, got %d", len(output.Diagnostics))
	}

	d := output.Diagnostics[0]
	if d.Severity != "ERROR" {
		t.Errorf("Expected severity=ERROR, got %s", d.Severity)
	}
	if d.Code != "BAL1001" {
		t.Errorf("Expected code=BAL1001, got %s", d.Code)
	}
	if d.Message != "'If' has no matching 'EndIf'" {
		t.Errorf("unexpected message %q", d.Message)
	}
	if d.Location.File != "test.sb" {
		t.Errorf("Expected file=test.sb, got %s", d.Location.File)
	}
	if d.Location.StartByte != 6 || d.Location.EndByte != 8 {
		t.Errorf("unexpected byte range %d-%d", d.Location.StartByte, d.Location.EndByte)
	}
	if d.Location.StartLine != 2 || d.Location.StartCol != 1 {
		t.Errorf("unexpected start position %d:%d", d.Location.StartLine, d.Location.StartCol)
	}
	if d.Location.EndLine != 2 || d.Location.EndCol != 3 {
		t.Errorf("unexpected end position %d:%d", d.Location.EndLine, d.Location.EndCol)
	}
}

// TestJSONWithoutPositions проверяет, что line/col опускаются без запроса
func TestJSONWithoutPositions(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sb", []byte("While a\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.BalUnmatchedWhile, source.Span{File: fileID, Start: 0, End: 5}, "'While' has no matching 'EndWhile'"))

	output := BuildDiagnosticsOutput(bag, fs, JSONOpts{PathMode: PathModeBasename})
	loc := output.Diagnostics[0].Location
	if loc.StartLine != 0 || loc.StartCol != 0 || loc.EndLine != 0 || loc.EndCol != 0 {
		t.Errorf("positions must be omitted, got %+v", loc)
	}
	if loc.StartByte != 0 || loc.EndByte != 5 {
		t.Errorf("byte offsets are always present, got %+v", loc)
	}
}

// TestJSONNotesAndFixes проверяет включение заметок и исправлений по опциям
func TestJSONNotesAndFixes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sb", []byte("Sub Greet\n"))
	span := source.Span{File: fileID, Start: 0, End: 9}

	bag := diag.NewBag(10)
	d := diag.NewError(diag.BalUnmatchedSub, span, "Sub 'Greet' has no matching 'EndSub'").
		WithNote(span, "subroutine starts here").
		WithFix("Insert 'EndSub'", diag.FixEdit{Span: source.Span{File: fileID, Start: 10, End: 10}, NewText: "EndSub\n"})
	bag.Add(d)

	withAll := BuildDiagnosticsOutput(bag, fs, JSONOpts{IncludeNotes: true, IncludeFixes: true, PathMode: PathModeBasename})
	got := withAll.Diagnostics[0]
	if len(got.Notes) != 1 || got.Notes[0].Message != "subroutine starts here" {
		t.Errorf("unexpected notes %+v", got.Notes)
	}
	if len(got.Fixes) != 1 || got.Fixes[0].Title != "Insert 'EndSub'" {
		t.Errorf("unexpected fixes %+v", got.Fixes)
	}
	if len(got.Fixes[0].Edits) != 1 || got.Fixes[0].Edits[0].NewText != "EndSub\n" {
		t.Errorf("unexpected fix edits %+v", got.Fixes[0].Edits)
	}

	bare := BuildDiagnosticsOutput(bag, fs, JSONOpts{PathMode: PathModeBasename})
	if len(bare.Diagnostics[0].Notes) != 0 || len(bare.Diagnostics[0].Fixes) != 0 {
		t.Errorf("notes and fixes must be opt-in, got %+v", bare.Diagnostics[0])
	}
}

// TestJSONMaxTruncation проверяет обрезку по Max
func TestJSONMaxTruncation(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sb", []byte("If a Then\nWhile b\nFor i = 1 To 2\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.BalUnmatchedIf, source.Span{File: fileID, Start: 0, End: 2}, "one"))
	bag.Add(diag.NewError(diag.BalUnmatchedWhile, source.Span{File: fileID, Start: 10, End: 15}, "two"))
	bag.Add(diag.NewError(diag.BalUnmatchedFor, source.Span{File: fileID, Start: 18, End: 21}, "three"))

	output := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2, PathMode: PathModeBasename})
	if output.Count != 2 || len(output.Diagnostics) != 2 {
		t.Fatalf("expected truncation to 2, got count=%d len=%d", output.Count, len(output.Diagnostics))
	}
	if output.Diagnostics[0].Message != "one" || output.Diagnostics[1].Message != "two" {
		t.Errorf("truncation must keep the first entries, got %+v", output.Diagnostics)
	}
}

// TestJSONEmptyBag: пустой мешок — валидный JSON с нулём записей
func TestJSONEmptyBag(t *testing.T) {
	fs := source.NewFileSet()
	bag := diag.NewBag(10)

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{}); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}
	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("Invalid JSON output: %v", err)
	}
	if output.Count != 0 || len(output.Diagnostics) != 0 {
		t.Errorf("expected empty output, got %+v", output)
	}
}
