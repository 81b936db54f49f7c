package driver

import (
	"context"
	"strings"
	"time"

	"sbx/internal/compiler"
	"sbx/internal/diag"
	"sbx/internal/source"
)

// cacheApp — имя приложения для каталога дискового кэша результатов.
const cacheApp = "sbx"

// BuildOptions настраивает сборку одного файла.
type BuildOptions struct {
	MaxDiagnostics int
	Runner         compiler.Runner
	NoCache        bool
	Progress       ProgressSink
}

// BuildResult — итог конвейера «проверка + компиляция» для одного файла.
// Compile остаётся нулевым, когда проверка блоков нашла ошибки: внешний
// компилятор в этом случае не вызывается.
type BuildResult struct {
	Check   *CheckResult
	Compile compiler.CompilationResult
	Cached  bool // результат взят из дискового кэша
}

// CheckFailed reports whether the pipeline stopped on balance errors.
func (r BuildResult) CheckFailed() bool {
	return r.Check != nil && r.Check.Bag.HasErrors()
}

// BuildFile проверяет парность блоков и компилирует файл внешним
// компилятором. Жёсткие сбои (нет файла, нет компилятора, отмена)
// возвращаются ошибкой; диагностики и ошибки компиляции — данными
// в результате.
func BuildFile(ctx context.Context, path string, opts BuildOptions) (BuildResult, error) {
	started := time.Now()
	emit(opts.Progress, Event{File: path, Stage: StageCheck, Status: StatusWorking})

	check, err := CheckFile(path, opts.MaxDiagnostics)
	if err != nil {
		emit(opts.Progress, Event{File: path, Stage: StageCheck, Status: StatusError, Err: err, Elapsed: time.Since(started)})
		return BuildResult{}, err
	}
	res := BuildResult{Check: check}
	if check.Bag.HasErrors() {
		emit(opts.Progress, Event{File: path, Stage: StageCheck, Status: StatusError, Elapsed: time.Since(started)})
		return res, nil
	}
	emit(opts.Progress, Event{File: path, Stage: StageCheck, Status: StatusDone, Elapsed: time.Since(started)})

	compileStarted := time.Now()
	emit(opts.Progress, Event{File: path, Stage: StageCompile, Status: StatusWorking})

	// Ключ кэша — хэш нормализованного содержимого, уже посчитанный при
	// загрузке. Любой сбой кэша деградирует в обычную компиляцию.
	var cache *compiler.ResultCache
	digest := compiler.Digest(check.File.Hash)
	if !opts.NoCache {
		if opened, cacheErr := compiler.OpenResultCache(cacheApp); cacheErr == nil {
			cache = opened
			if cached, ok := cache.Lookup(digest); ok {
				res.Compile = cached
				res.Cached = true
				emit(opts.Progress, Event{File: path, Stage: StageCompile, Status: compileStatus(cached), Elapsed: time.Since(compileStarted)})
				return res, nil
			}
		}
	}

	// Сырой вывод сохраняется всегда: запись в кэше должна уметь ответить
	// и на запрос с --raw.
	compiled, err := opts.Runner.Compile(ctx, path, true)
	if err != nil {
		emit(opts.Progress, Event{File: path, Stage: StageCompile, Status: StatusError, Err: err, Elapsed: time.Since(compileStarted)})
		return res, err
	}
	res.Compile = compiled
	if cache != nil {
		// неудачная запись в кэш не портит сборку
		_ = cache.Put(digest, &compiled)
	}
	emit(opts.Progress, Event{File: path, Stage: StageCompile, Status: compileStatus(compiled), Elapsed: time.Since(compileStarted)})
	return res, nil
}

func compileStatus(res compiler.CompilationResult) Status {
	if res.Success {
		return StatusDone
	}
	return StatusError
}

// CompileDiagnostics maps interpreted compiler errors onto the shared
// diagnostic vocabulary, so formatters render them the same way as balance
// findings. Ошибки без номера строки получают пустой span в начале файла.
func (r BuildResult) CompileDiagnostics(maxDiagnostics int) *diag.Bag {
	bag := diag.NewBag(maxDiagnostics)
	if r.Check == nil {
		return bag
	}
	for _, e := range r.Compile.Errors {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     classifyCompileError(e),
			Message:  e.Message,
			Primary:  compileErrorSpan(r.Check.File, e),
		})
	}
	return bag
}

func classifyCompileError(e compiler.CompilationError) diag.Code {
	if _, ok := compiler.SummaryErrorCount(e.Message); ok {
		return diag.CmpSummary
	}
	switch {
	case e.Message == compiler.MissingThenMessage:
		return diag.CmpMissingThen
	case e.Message == compiler.UnclosedStringMessage:
		return diag.CmpUnclosedString
	case e.Message == compiler.ArtifactMissingMessage:
		return diag.CmpArtifactMissing
	case strings.HasPrefix(e.Message, compiler.ExitMessagePrefix):
		return diag.CmpExitFailure
	}
	return diag.CmpReported
}

// compileErrorSpan привязывает ошибку к строке (и колонке, если компилятор
// её назвал). Номера строк за пределами файла обрезаются до пустого span.
func compileErrorSpan(file *source.File, e compiler.CompilationError) source.Span {
	if file == nil {
		return source.Span{}
	}
	if !e.HasLine() || e.Line > int(file.NumLines()) {
		return source.Span{File: file.ID}
	}
	lineSpan := file.LineSpan(uint32(e.Line))
	if !e.HasColumn() {
		return lineSpan
	}
	start := lineSpan.Start + uint32(e.Column-1)
	if start >= lineSpan.End {
		return lineSpan
	}
	return source.Span{File: file.ID, Start: start, End: start + 1}
}
