package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"keylint/internal/diag"
	"keylint/internal/object"
	"keylint/internal/source"
)

// CheckDirResult содержит результат проверки одного файла
type CheckDirResult struct {
	Path    string        // Относительный путь к файлу
	FileID  source.FileID // ID файла в FileSet
	Objects *object.File  // Разобранные объекты (nil при попадании в кеш)
	Bag     *diag.Bag     // Диагностики
}

// ListFiles возвращает отсортированный список всех *.klt файлов в директории
func ListFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".klt") {
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

// CheckDir проверяет все *.klt файлы в директории параллельно.
// Результаты идут в порядке отсортированных путей независимо от того,
// в каком порядке закончили горутины.
func CheckDir(ctx context.Context, dir string, opts CheckOptions, jobs int, sink ProgressSink) (*source.FileSet, []CheckDirResult, error) {
	files, err := ListFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	if len(files) == 0 {
		return source.NewFileSetWithBase(dir), nil, nil
	}

	if sink == nil {
		sink = nopSink{}
	}

	// Создаём FileSet и предзагружаем все файлы
	fileSet := source.NewFileSetWithBase(dir)
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))

	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			// Сохраняем ошибку загрузки для последующей обработки
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	// Настраиваем параллелизм
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]CheckDirResult, len(files))

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

				sink.OnEvent(Event{File: path, Stage: StageParse, Status: StatusWorking})

				// Проверяем ошибку загрузки
				if loadErr, hadError := loadErrors[path]; hadError {
					bag := diag.NewBag(opts.maxDiagnostics())
					bag.Add(diag.Diagnostic{
						Severity: diag.SevError,
						Code:     diag.IOLoadFileError,
						Message:  "failed to load file: " + loadErr.Error(),
						Primary:  source.Span{},
					})
					results[i] = CheckDirResult{Path: path, Bag: bag}
					sink.OnEvent(Event{File: path, Status: StatusError, Err: loadErr})
					return nil
				}

				fileID := fileIDs[path]
				sink.OnEvent(Event{File: path, Stage: StageAnalyze, Status: StatusWorking})
				checked := CheckFile(fileSet, fileID, opts)

				results[i] = CheckDirResult{
					Path:    path,
					FileID:  fileID,
					Objects: checked.Objects,
					Bag:     checked.Bag,
				}

				status := StatusDone
				if checked.Bag.HasErrors() {
					status = StatusError
				}
				sink.OnEvent(Event{File: path, Stage: StageAnalyze, Status: status})
				return nil
			}
		}(i, path))
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}

	return fileSet, results, nil
}
