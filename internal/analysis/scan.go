package analysis

import (
	"strings"
)

// statement — результат распознавания одной строки: блочное ключевое
// слово в начале строки (после пробелов), открывашка или закрывашка.
type statement struct {
	kind   BlockKind
	closer bool
	name   string // имя подпрограммы, только для Sub
	start  uint32 // смещение ключевого слова от начала строки, в байтах
	length uint32 // длина токена; для Sub — вместе с именем
}

var openerKinds = map[string]BlockKind{
	"if":    BlockIf,
	"while": BlockWhile,
	"for":   BlockFor,
	"sub":   BlockSub,
}

var closerKinds = map[string]BlockKind{
	"endif":    BlockIf,
	"endwhile": BlockWhile,
	"endfor":   BlockFor,
	"endsub":   BlockSub,
}

// scanLine распознаёт блочное ключевое слово в начале строки.
// Регистр не учитывается, хвост строки после ключевого слова игнорируется.
// Sub дополнительно требует идентификатор после себя.
func scanLine(line string) (statement, bool) {
	trimmed := strings.TrimLeft(line, " \t")
	indent := uint32(len(line) - len(trimmed))

	word, rest := cutWord(trimmed)
	if word == "" {
		return statement{}, false
	}
	lower := strings.ToLower(word)

	if kind, ok := closerKinds[lower]; ok {
		return statement{kind: kind, closer: true, start: indent, length: uint32(len(word))}, true
	}

	kind, ok := openerKinds[lower]
	if !ok {
		return statement{}, false
	}
	if kind == BlockSub {
		name, nameOff := cutIdent(rest)
		if name == "" {
			// Sub без имени блоком не считается
			return statement{}, false
		}
		length := uint32(len(word)) + nameOff + uint32(len(name))
		return statement{kind: kind, name: name, start: indent, length: length}, true
	}
	return statement{kind: kind, start: indent, length: uint32(len(word))}, true
}

// cutWord отрезает максимальную последовательность букв/цифр/подчёркиваний
// с начала строки. Граница слова получается сама собой: "IfX" не даст "If".
func cutWord(s string) (word, rest string) {
	i := 0
	for i < len(s) && isWordByte(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

// cutIdent находит идентификатор после ключевого слова, пропуская пробелы.
// off — смещение идентификатора от начала rest.
func cutIdent(rest string) (name string, off uint32) {
	i := 0
	for i < len(rest) && (rest[i] == ' ' || rest[i] == '\t') {
		i++
	}
	j := i
	for j < len(rest) && isWordByte(rest[j]) {
		j++
	}
	if j == i || isDigit(rest[i]) {
		return "", 0
	}
	return rest[i:j], uint32(i)
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
