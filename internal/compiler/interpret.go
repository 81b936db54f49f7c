// Package compiler turns the free-form textual output of the external
// Small Basic compiler into structured error records and assembles
// per-invocation compile results.
package compiler

import (
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Messages appended by the source augmentation pass.
const (
	MissingThenMessage    = `If statement missing "Then" keyword`
	UnclosedStringMessage = "Unclosed string (uneven number of quotes)"
)

// outputPattern — одна распознаваемая форма строки вывода компилятора.
// Формат вывода внешнего инструмента не специфицирован, поэтому набор форм —
// упорядоченная таблица: паттерны пробуются сверху вниз, первый совпавший
// выигрывает, добавление новой формы — изменение данных, а не логики.
type outputPattern struct {
	name    string
	re      *regexp.Regexp
	extract func(m []string) CompilationError
}

var (
	// Сводка «<имя>: N errors.» обрабатывается до таблицы: она не только
	// порождает запись, но и переключает сканер в режим детальных строк.
	summaryRe = regexp.MustCompile(`(?i)^(\S+)\s*:\s*(\d+)\s+errors?\.?\s*$`)

	// Детальная строка «Line L[, Col C]: сообщение», печатаемая компилятором
	// блоком сразу после сводки.
	detailRe = regexp.MustCompile(`(?i)^line\s+(\d+)(?:\s*,\s*col(?:umn)?\s+(\d+))?\s*:\s*(.+)$`)

	outputPatterns = []outputPattern{
		{
			name: "error-at-line",
			re:   regexp.MustCompile(`(?i)^error:\s*(.+?)\s+at\s+line\s+(\d+)(?:\s*,\s*column\s+(\d+))?\.?\s*$`),
			extract: func(m []string) CompilationError {
				return CompilationError{Message: m[1], Line: atoi(m[2]), Column: atoi(m[3])}
			},
		},
		{
			name: "line-prefixed",
			re:   regexp.MustCompile(`(?i)^line\s+(\d+)\s*:\s*(.+)$`),
			extract: func(m []string) CompilationError {
				return CompilationError{Message: m[2], Line: atoi(m[1])}
			},
		},
		{
			name: "syntax-error",
			re:   regexp.MustCompile(`(?i)^syntax\s+error(?:\s+at\s+line\s+(\d+))?(?:\s*:\s*(.*))?$`),
			extract: func(m []string) CompilationError {
				msg := strings.TrimSpace(m[2])
				if msg == "" {
					msg = "Invalid syntax"
				}
				return CompilationError{Message: "Syntax error: " + msg, Line: atoi(m[1])}
			},
		},
		{
			name: "error-generic",
			re:   regexp.MustCompile(`(?i)^error:\s*(.+)$`),
			extract: func(m []string) CompilationError {
				return CompilationError{Message: m[1]}
			},
		},
	}
)

// Interpret converts the captured output of one compiler run into structured
// errors. It is a total function over arbitrary text: irregular input yields
// an empty or best-effort list, never a failure. When at least one error was
// recognized, the source file is re-read and line-less errors trigger the
// augmentation heuristics; a file that cannot be read is silently skipped.
func Interpret(raw, sourcePath string) []CompilationError {
	errs := scanOutput(raw)
	if len(errs) == 0 {
		return errs
	}
	return augment(errs, sourcePath)
}

// HasZeroErrorsLine reports whether the output contains a "<name>: 0 errors."
// summary. Такая строка — явное свидетельство успеха, перевешивающее
// неоднозначный код выхода внешнего инструмента.
func HasZeroErrorsLine(raw string) bool {
	for _, line := range strings.Split(raw, "\n") {
		if count, ok := SummaryErrorCount(strings.TrimSpace(line)); ok && count == 0 {
			return true
		}
	}
	return false
}

// SummaryErrorCount reports whether the line has the "<name>: N errors."
// summary shape and returns the count.
func SummaryErrorCount(line string) (int, bool) {
	m := summaryRe.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	return atoi(m[2]), true
}

func scanOutput(raw string) []CompilationError {
	if HasZeroErrorsLine(raw) {
		return nil
	}

	var errs []CompilationError
	lookForDetails := false
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if count, ok := SummaryErrorCount(trimmed); ok {
			if count == 0 {
				continue
			}
			// Сводка сама по себе запись: текст строки уже несёт счётчик.
			errs = append(errs, CompilationError{Message: trimmed})
			lookForDetails = true
			continue
		}

		if lookForDetails {
			if err, ok := matchDetail(trimmed); ok {
				errs = append(errs, err)
				continue
			}
		}

		if err, ok := matchPattern(trimmed); ok {
			errs = append(errs, err)
			continue
		}

		// Последний рубеж: строка с упоминанием «error» не должна молча
		// пропасть, даже если ни одна известная форма не подошла.
		lower := strings.ToLower(trimmed)
		if strings.Contains(lower, "error") && !strings.Contains(lower, "0 errors") {
			errs = append(errs, CompilationError{Message: trimmed})
		}
	}
	return errs
}

func matchDetail(line string) (CompilationError, bool) {
	m := detailRe.FindStringSubmatch(line)
	if m == nil {
		return CompilationError{}, false
	}
	return CompilationError{Message: m[3], Line: atoi(m[1]), Column: atoi(m[2])}, true
}

func matchPattern(line string) (CompilationError, bool) {
	for _, p := range outputPatterns {
		if m := p.re.FindStringSubmatch(line); m != nil {
			return p.extract(m), true
		}
	}
	return CompilationError{}, false
}

// augment дописывает (не заменяет) записи для ошибок без номера строки:
// исходник перечитывается, и эвристики отмечают строки, похожие на причину.
// Повторные записи при нескольких безадресных ошибках допустимы: это
// обогащение сигнала, а не исправление исходной записи.
func augment(errs []CompilationError, sourcePath string) []CompilationError {
	if sourcePath == "" {
		return errs
	}
	content, err := os.ReadFile(sourcePath)
	if err != nil {
		return errs
	}
	lines := strings.Split(string(content), "\n")

	out := errs
	for _, e := range errs {
		if e.HasLine() {
			continue
		}
		out = append(out, scanSourceHeuristics(lines)...)
	}
	return out
}

func scanSourceHeuristics(lines []string) []CompilationError {
	var found []CompilationError
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lower := strings.ToLower(trimmed)
		if strings.HasPrefix(lower, "if") && !strings.Contains(lower, "then") {
			found = append(found, CompilationError{Message: MissingThenMessage, Line: i + 1})
		}
		if !strings.HasPrefix(trimmed, "'") && strings.Count(trimmed, `"`)%2 == 1 {
			found = append(found, CompilationError{Message: UnclosedStringMessage, Line: i + 1})
		}
	}
	return found
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
