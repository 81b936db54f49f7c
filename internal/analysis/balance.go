package analysis

import (
	"fmt"
	"sort"

	"sbx/internal/diag"
	"sbx/internal/source"
)

// Result holds everything one balance pass learns about a document.
// Pairs перечислены в порядке закрытия и пригодны для сворачивания блоков.
type Result struct {
	Unmatched []ControlStatement
	Pairs     []BlockPair
}

// CheckBalance находит открывашки блоков (If/While/For/Sub) без
// соответствующей закрывашки и сообщает по одной диагностике на каждую.
//
// Каждый вид блока матчится независимо, явным стеком: открывашка кладётся,
// закрывашка снимает ближайшую сверху. Лишние закрывашки молча игнорируются:
// движок жалуется только на незакрытые блоки. Чистая функция текста —
// никаких побочных эффектов, кроме отчёта в reporter.
func CheckBalance(file *source.File, reporter diag.Reporter) Result {
	var stacks [numBlockKinds][]ControlStatement
	var pairs []BlockPair

	numLines := file.NumLines()
	for lineNum := uint32(1); lineNum <= numLines; lineNum++ {
		stmt, ok := scanLine(file.GetLine(lineNum))
		if !ok {
			continue
		}

		lineSpan := file.LineSpan(lineNum)
		cs := ControlStatement{
			Kind: stmt.kind,
			Name: stmt.name,
			Line: lineNum,
			Span: source.Span{
				File:  file.ID,
				Start: lineSpan.Start + stmt.start,
				End:   lineSpan.Start + stmt.start + stmt.length,
			},
		}

		if !stmt.closer {
			stacks[stmt.kind] = append(stacks[stmt.kind], cs)
			continue
		}

		stack := stacks[stmt.kind]
		if len(stack) == 0 {
			// лишняя закрывашка — не наша забота
			continue
		}
		open := stack[len(stack)-1]
		stacks[stmt.kind] = stack[:len(stack)-1]
		pairs = append(pairs, BlockPair{Kind: stmt.kind, Open: open, Close: cs})
	}

	var unmatched []ControlStatement
	for kind := range stacks {
		unmatched = append(unmatched, stacks[kind]...)
	}
	// порядок документа, независимо от вида блока
	sort.Slice(unmatched, func(i, j int) bool {
		return unmatched[i].Span.Start < unmatched[j].Span.Start
	})
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Open.Span.Start < pairs[j].Open.Span.Start
	})

	for _, cs := range unmatched {
		reportUnmatched(reporter, file, cs)
	}
	return Result{Unmatched: unmatched, Pairs: pairs}
}

func reportUnmatched(r diag.Reporter, file *source.File, cs ControlStatement) {
	if r == nil {
		return
	}
	var code diag.Code
	switch cs.Kind {
	case BlockIf:
		code = diag.BalUnmatchedIf
	case BlockWhile:
		code = diag.BalUnmatchedWhile
	case BlockFor:
		code = diag.BalUnmatchedFor
	case BlockSub:
		code = diag.BalUnmatchedSub
	default:
		code = diag.UnknownCode
	}

	msg := fmt.Sprintf("'%s' has no matching '%s'", cs.Kind.Opener(), cs.Kind.Closer())
	if cs.Kind == BlockSub {
		msg = fmt.Sprintf("Sub '%s' has no matching 'EndSub'", cs.Name)
	}
	diag.ReportError(r, code, cs.Span, msg).
		WithFix(fmt.Sprintf("Insert '%s'", cs.Kind.Closer()), closerEdit(file, cs.Kind)).
		Emit()
}

// closerEdit — правка, дописывающая недостающую закрывашку в конец файла.
// Вставка в конец балансирует счётчик вида; угадывать настоящую границу
// блока анализатор не берётся.
func closerEdit(file *source.File, kind BlockKind) diag.FixEdit {
	eof := file.LineSpan(file.NumLines()).End
	text := kind.Closer() + "\n"
	if n := len(file.Content); n > 0 && file.Content[n-1] != '\n' {
		text = "\n" + text
	}
	return diag.FixEdit{
		Span:    source.Span{File: file.ID, Start: eof, End: eof},
		NewText: text,
	}
}
