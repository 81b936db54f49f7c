package analysis

import (
	"strings"

	"sbx/internal/source"
)

// SubSymbol — объявление подпрограммы. EndLine указывает на строку EndSub;
// для незакрытой подпрограммы — на последнюю строку файла.
type SubSymbol struct {
	Name    string
	Line    uint32
	EndLine uint32
	Span    source.Span // ключевое слово вместе с именем
}

// VarSymbol — первое присваивание переменной в документе.
type VarSymbol struct {
	Name string
	Line uint32
	Span source.Span // идентификатор
}

// DocumentSymbols перечисляет подпрограммы и переменные одного документа.
// Пересобирается на каждое изменение; между документами не разделяется.
type DocumentSymbols struct {
	Subs []SubSymbol
	Vars []VarSymbol
}

// Управляющие слова не считаются именами переменных.
var reservedWords = map[string]struct{}{
	"if": {}, "then": {}, "else": {}, "elseif": {}, "endif": {},
	"while": {}, "endwhile": {},
	"for": {}, "to": {}, "step": {}, "endfor": {},
	"sub": {}, "endsub": {},
	"goto": {}, "and": {}, "or": {}, "not": {},
}

// CollectSymbols extracts subroutine and variable occurrences for completion
// and outline views. Переменной считается идентификатор слева от '=' в начале
// строки, а также переменная цикла For. Первое вхождение выигрывает.
func CollectSymbols(file *source.File) DocumentSymbols {
	var out DocumentSymbols
	seenVars := make(map[string]struct{})
	var openSubs []int // индексы в out.Subs

	numLines := file.NumLines()
	for lineNum := uint32(1); lineNum <= numLines; lineNum++ {
		line := file.GetLine(lineNum)
		lineSpan := file.LineSpan(lineNum)

		if stmt, ok := scanLine(line); ok {
			switch {
			case stmt.kind == BlockSub && !stmt.closer:
				out.Subs = append(out.Subs, SubSymbol{
					Name:    stmt.name,
					Line:    lineNum,
					EndLine: lineNum,
					Span: source.Span{
						File:  file.ID,
						Start: lineSpan.Start + stmt.start,
						End:   lineSpan.Start + stmt.start + stmt.length,
					},
				})
				openSubs = append(openSubs, len(out.Subs)-1)

			case stmt.kind == BlockSub && stmt.closer:
				if n := len(openSubs); n > 0 {
					out.Subs[openSubs[n-1]].EndLine = lineNum
					openSubs = openSubs[:n-1]
				}

			case stmt.kind == BlockFor && !stmt.closer:
				// переменная цикла: For i = ...
				rest := line[int(stmt.start+stmt.length):]
				if name, off := cutIdent(rest); name != "" {
					start := lineSpan.Start + stmt.start + stmt.length + off
					addVar(&out, seenVars, file.ID, name, lineNum, start)
				}
			}
			continue
		}

		if name, off, ok := scanAssignment(line); ok {
			addVar(&out, seenVars, file.ID, name, lineNum, lineSpan.Start+off)
		}
	}

	// незакрытые подпрограммы тянутся до конца файла
	for _, idx := range openSubs {
		out.Subs[idx].EndLine = numLines
	}
	return out
}

func addVar(out *DocumentSymbols, seen map[string]struct{}, id source.FileID, name string, line, start uint32) {
	key := strings.ToLower(name)
	if _, dup := seen[key]; dup {
		return
	}
	if _, res := reservedWords[key]; res {
		return
	}
	seen[key] = struct{}{}
	out.Vars = append(out.Vars, VarSymbol{
		Name: name,
		Line: line,
		Span: source.Span{File: id, Start: start, End: start + uint32(len(name))},
	})
}

// scanAssignment распознаёт строку вида `ident = expr` и возвращает имя
// и байтовое смещение идентификатора от начала строки.
func scanAssignment(line string) (name string, off uint32, ok bool) {
	trimmed := strings.TrimLeft(line, " \t")
	indent := uint32(len(line) - len(trimmed))

	word, rest := cutWord(trimmed)
	if word == "" || isDigit(word[0]) {
		return "", 0, false
	}

	i := 0
	for i < len(rest) && (rest[i] == ' ' || rest[i] == '\t') {
		i++
	}
	if i >= len(rest) || rest[i] != '=' {
		return "", 0, false
	}
	return word, indent, true
}
