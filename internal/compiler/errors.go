package compiler

import "fmt"

// CompilationError — одна структурированная ошибка, извлечённая из вывода
// внешнего компилятора. Line и Column 1-based; ноль означает «позиция
// неизвестна». Column > 0 возможен только при Line > 0.
type CompilationError struct {
	Message string
	Line    int
	Column  int
}

// HasLine reports whether the error carries a source line.
func (e CompilationError) HasLine() bool {
	return e.Line > 0
}

// HasColumn reports whether the error carries a source column.
func (e CompilationError) HasColumn() bool {
	return e.Column > 0
}

func (e CompilationError) String() string {
	switch {
	case e.HasColumn():
		return fmt.Sprintf("Line %d, Col %d: %s", e.Line, e.Column, e.Message)
	case e.HasLine():
		return fmt.Sprintf("Line %d: %s", e.Line, e.Message)
	default:
		return e.Message
	}
}

// CompilationResult — итог одного вызова внешнего компилятора.
// ExePath заполнен только при успехе; Errors — только при неуспехе
// (или при номинальном успехе без артефакта на диске). RawOutput
// сохраняется по запросу вызывающего.
type CompilationResult struct {
	Success   bool
	ExePath   string
	Errors    []CompilationError
	RawOutput string
}
