package analysis_test

import (
	"testing"

	"sbx/internal/analysis"
	"sbx/internal/source"
)

func collect(t *testing.T, text string) analysis.DocumentSymbols {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.sb", []byte(text))
	return analysis.CollectSymbols(fs.Get(id))
}

func TestCollectSubs(t *testing.T) {
	text := "Sub Outer\n" +
		"  x = 1\n" +
		"EndSub\n" +
		"Sub Helper\n" +
		"  y = 2\n"

	syms := collect(t, text)
	if len(syms.Subs) != 2 {
		t.Fatalf("expected 2 subs, got %d", len(syms.Subs))
	}

	outer := syms.Subs[0]
	if outer.Name != "Outer" || outer.Line != 1 || outer.EndLine != 3 {
		t.Errorf("unexpected first sub %+v", outer)
	}

	// незакрытая подпрограмма тянется до конца файла
	helper := syms.Subs[1]
	if helper.Name != "Helper" || helper.Line != 4 {
		t.Errorf("unexpected second sub %+v", helper)
	}
	if helper.EndLine < helper.Line {
		t.Errorf("open sub must extend forward, got end line %d", helper.EndLine)
	}
}

func TestCollectVariables(t *testing.T) {
	text := "total = 0\n" +
		"For i = 1 To 10\n" +
		"  total = total + i\n" +
		"EndFor\n" +
		"name = \"world\"\n"

	syms := collect(t, text)
	want := []string{"total", "i", "name"}
	if len(syms.Vars) != len(want) {
		t.Fatalf("expected %d variables, got %d: %+v", len(want), len(syms.Vars), syms.Vars)
	}
	for idx, name := range want {
		if syms.Vars[idx].Name != name {
			t.Errorf("variable %d: expected %q, got %q", idx, name, syms.Vars[idx].Name)
		}
	}

	// первое вхождение выигрывает
	if syms.Vars[0].Line != 1 {
		t.Errorf("expected 'total' recorded at line 1, got %d", syms.Vars[0].Line)
	}
}

func TestCollectSkipsComparisonsAndCalls(t *testing.T) {
	text := "If x = 1 Then\n" +
		"EndIf\n" +
		"TextWindow.WriteLine(\"hi\")\n" +
		"Goto start\n"

	syms := collect(t, text)
	if len(syms.Vars) != 0 {
		t.Fatalf("expected no variables, got %+v", syms.Vars)
	}
}

func TestCollectVariableSpan(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.sb", []byte("  answer = 42\n"))
	syms := analysis.CollectSymbols(fs.Get(id))

	if len(syms.Vars) != 1 {
		t.Fatalf("expected one variable, got %d", len(syms.Vars))
	}
	start, end := fs.Resolve(syms.Vars[0].Span)
	if start != (source.LineCol{Line: 1, Col: 3}) || end != (source.LineCol{Line: 1, Col: 9}) {
		t.Errorf("expected span 1:3-1:9, got %+v-%+v", start, end)
	}
}

func TestCollectNestedSubsPairCorrectly(t *testing.T) {
	// вложенные Sub в языке не встречаются, но собиратель не должен падать
	text := "Sub A\nSub B\nEndSub\nEndSub\n"
	syms := collect(t, text)
	if len(syms.Subs) != 2 {
		t.Fatalf("expected 2 subs, got %d", len(syms.Subs))
	}
	if syms.Subs[1].EndLine != 3 || syms.Subs[0].EndLine != 4 {
		t.Errorf("unexpected pairing: %+v", syms.Subs)
	}
}
