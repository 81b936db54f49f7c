package compiler

import (
	"fmt"
	"os"
	"strings"
)

// ArtifactMissingMessage marks a run that looked successful (exit 0 or a
// "0 errors" summary) but left no output file on disk.
const ArtifactMissingMessage = "Compilation supposedly succeeded but output file not found"

// ExitMessagePrefix opens the synthetic record built when the compiler fails
// without any interpretable output; the exit code and raw text follow it.
const ExitMessagePrefix = "Compiler exited with code "

// AssembleResult строит CompilationResult из кода выхода процесса, его
// полного вывода и ожидаемого пути артефакта. Нулевой код выхода или сводка
// «0 errors» дают лишь предварительный успех: финальный требует артефакта
// на диске. Несостыковка (успех без артефакта) — нарушение контракта с
// внешним инструментом и выделяется отдельной синтетической ошибкой.
func AssembleResult(exitCode int, raw, sourcePath, exePath string, keepRaw bool) CompilationResult {
	var res CompilationResult
	if keepRaw {
		res.RawOutput = raw
	}

	tentative := exitCode == 0 || HasZeroErrorsLine(raw)
	if tentative && artifactExists(exePath) {
		res.Success = true
		res.ExePath = exePath
		return res
	}

	errs := Interpret(raw, sourcePath)
	if len(errs) == 0 {
		if tentative {
			errs = []CompilationError{{Message: ArtifactMissingMessage}}
		} else {
			msg := fmt.Sprintf("%s%d", ExitMessagePrefix, exitCode)
			if trimmed := strings.TrimSpace(raw); trimmed != "" {
				msg += ": " + trimmed
			}
			errs = []CompilationError{{Message: msg}}
		}
	}
	res.Errors = errs
	return res
}

func artifactExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
