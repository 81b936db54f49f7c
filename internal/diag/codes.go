package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Анализ парности блоков
	BalInfo           Code = 1000
	BalUnmatchedIf    Code = 1001
	BalUnmatchedWhile Code = 1002
	BalUnmatchedFor   Code = 1003
	BalUnmatchedSub   Code = 1004

	// Интерпретация вывода компилятора
	CmpInfo            Code = 2000
	CmpReported        Code = 2001
	CmpSummary         Code = 2002
	CmpMissingThen     Code = 2003
	CmpUnclosedString  Code = 2004
	CmpArtifactMissing Code = 2005
	CmpExitFailure     Code = 2006

	// Ошибки тулинга и I/O
	ToolInfo             Code = 3000
	IOLoadFileError      Code = 3001
	ToolCompilerNotFound Code = 3002
	ToolCacheError       Code = 3003
)

var (
	codeDescription = map[Code]string{
		UnknownCode:          "Unknown error",
		BalInfo:              "Block balance information",
		BalUnmatchedIf:       "Unmatched 'If' block",
		BalUnmatchedWhile:    "Unmatched 'While' block",
		BalUnmatchedFor:      "Unmatched 'For' block",
		BalUnmatchedSub:      "Unmatched 'Sub' block",
		CmpInfo:              "Compiler output information",
		CmpReported:          "Error reported by compiler",
		CmpSummary:           "Compiler error summary",
		CmpMissingThen:       "If statement missing 'Then'",
		CmpUnclosedString:    "Unclosed string literal",
		CmpArtifactMissing:   "Compiler output file not found",
		CmpExitFailure:       "Compiler exited abnormally",
		ToolInfo:             "Tooling information",
		IOLoadFileError:      "I/O load file error",
		ToolCompilerNotFound: "Compiler executable not found",
		ToolCacheError:       "Result cache error",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("BAL%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("CMP%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("TOOL%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
