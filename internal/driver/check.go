package driver

import (
	"sbx/internal/analysis"
	"sbx/internal/diag"
	"sbx/internal/source"
)

// CheckResult содержит результат статического анализа одного файла.
type CheckResult struct {
	FileSet *source.FileSet
	File    *source.File
	Bag     *diag.Bag
	Balance analysis.Result
}

// CheckFile загружает файл и прогоняет анализ парности блоков.
func CheckFile(path string, maxDiagnostics int) (*CheckResult, error) {
	// Создаём FileSet и загружаем файл
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	// Создаём диагностический пакет
	bag := diag.NewBag(maxDiagnostics)

	// Анализ блоков: каждая незакрытая открывашка даст диагностику в bag
	balance := analysis.CheckBalance(file, diag.BagReporter{Bag: bag})

	return &CheckResult{
		FileSet: fs,
		File:    file,
		Bag:     bag,
		Balance: balance,
	}, nil
}

// CheckSource анализирует содержимое, которого (ещё) нет на диске —
// например, несохранённый буфер редактора.
func CheckSource(name string, content []byte, maxDiagnostics int) *CheckResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	balance := analysis.CheckBalance(file, diag.BagReporter{Bag: bag})

	return &CheckResult{
		FileSet: fs,
		File:    file,
		Bag:     bag,
		Balance: balance,
	}
}
