package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"sbx/internal/analysis"
	"sbx/internal/diag"
	"sbx/internal/source"
)

// FileCheck содержит результат анализа одного файла из директории.
type FileCheck struct {
	Path    string          // Путь к файлу
	FileID  source.FileID   // ID файла в FileSet
	Bag     *diag.Bag       // Диагностики
	Balance analysis.Result // Найденные пары и незакрытые блоки
}

// CheckDirOptions настраивает параллельный анализ директории.
type CheckDirOptions struct {
	MaxDiagnostics int
	Jobs           int // <= 0 — использовать GOMAXPROCS
	Progress       ProgressSink
}

// ListSBFiles возвращает отсортированный список всех *.sb файлов в
// директории (рекурсивно, расширение без учёта регистра).
func ListSBFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(path), ".sb") {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// CheckDir анализирует все *.sb файлы в директории параллельно
func CheckDir(ctx context.Context, dir string, opts CheckDirOptions) (*source.FileSet, []FileCheck, error) {
	// Собираем список файлов
	files, err := ListSBFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	if len(files) == 0 {
		return source.NewFileSetWithBase(dir), nil, nil
	}
	emitQueued(opts.Progress, files)

	// Создаём FileSet и предзагружаем все файлы
	fileSet := source.NewFileSetWithBase(dir)
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))

	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			// Нечитаемый файл получает пустой виртуальный плейсхолдер:
			// диагностика I/O тогда несёт правильный путь
			loadErrors[path] = err
			fileIDs[path] = fileSet.AddVirtual(path, nil)
			continue
		}
		fileIDs[path] = fileID
	}

	// Настраиваем параллелизм
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]FileCheck, len(files))

	// Параллельный анализ
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func(i int, path string) func() error {
			return func() error {
				// Проверка отмены
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				started := time.Now()
				emit(opts.Progress, Event{File: path, Stage: StageCheck, Status: StatusWorking})

				// Создаём bag для диагностик
				bag := diag.NewBag(opts.MaxDiagnostics)

				// Проверяем ошибку загрузки
				if loadErr, hadError := loadErrors[path]; hadError {
					// Файл не загрузился, создаём результат с ошибкой I/O
					results[i] = FileCheck{
						Path:   path,
						FileID: fileIDs[path],
						Bag:    bag,
					}
					bag.Add(diag.Diagnostic{
						Severity: diag.SevError,
						Code:     diag.IOLoadFileError,
						Message:  "failed to load file: " + loadErr.Error(),
						Primary:  source.Span{File: fileIDs[path]},
					})
					emit(opts.Progress, Event{File: path, Stage: StageCheck, Status: StatusError, Err: loadErr, Elapsed: time.Since(started)})
					return nil
				}

				fileID := fileIDs[path]
				file := fileSet.Get(fileID)

				balance := analysis.CheckBalance(file, diag.BagReporter{Bag: bag})

				// Сохраняем результат (мьютекс не нужен — индекс i уникален)
				results[i] = FileCheck{
					Path:    path,
					FileID:  fileID,
					Bag:     bag,
					Balance: balance,
				}

				status := StatusDone
				if bag.HasErrors() {
					status = StatusError
				}
				emit(opts.Progress, Event{File: path, Stage: StageCheck, Status: status, Elapsed: time.Since(started)})

				return nil
			}
		}(i, path))
	}

	// Ждём завершения всех горутин
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}

	return fileSet, results, nil
}
