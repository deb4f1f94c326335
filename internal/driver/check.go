package driver

import (
	"keylint/internal/diag"
	"keylint/internal/keyorder"
	"keylint/internal/object"
	"keylint/internal/source"
)

// CheckOptions configures one analysis run.
type CheckOptions struct {
	Analyze        keyorder.Options
	MaxDiagnostics int
	// Cache, when non-nil, short-circuits files whose content and
	// configuration were already checked.
	Cache *DiskCache
}

func (o CheckOptions) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return 100
	}
	return o.MaxDiagnostics
}

// CheckResult holds everything a caller needs to render or fix one file.
type CheckResult struct {
	FileSet *source.FileSet
	FileID  source.FileID
	File    *source.File
	Objects *object.File // nil при попадании в кеш
	Bag     *diag.Bag
}

// Check loads one file and runs the full pipeline over it.
func Check(path string, opts CheckOptions) (*CheckResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return CheckFile(fs, fileID, opts), nil
}

// CheckFile runs parse + analysis over an already-loaded file.
// Диагностики всех фаз собираются в один Bag; порядок стабилен.
func CheckFile(fs *source.FileSet, fileID source.FileID, opts CheckOptions) *CheckResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(opts.maxDiagnostics())

	result := &CheckResult{
		FileSet: fs,
		FileID:  fileID,
		File:    file,
		Bag:     bag,
	}

	key := cacheKey(file, opts.Analyze)
	var payload CachePayload
	if ok, err := opts.Cache.Get(key, &payload); err == nil && ok {
		if payload.Schema == cacheSchemaVersion {
			restoreDiagnostics(bag, fileID, payload.Diagnostics)
			bag.Sort()
			return result
		}
	}

	reporter := diag.BagReporter{Bag: bag}
	parsed := object.Parse(file, reporter)
	result.Objects = parsed

	for _, obj := range parsed.Objects {
		for _, v := range keyorder.Analyze(obj, opts.Analyze) {
			keyorder.Report(v, opts.Analyze.Mode, reporter)
		}
	}

	bag.Sort()

	if opts.Cache != nil {
		payload := CachePayload{
			Schema:      cacheSchemaVersion,
			Diagnostics: cacheDiagnostics(bag.Items()),
		}
		// промах записи в кеш не влияет на результат
		_ = opts.Cache.Put(key, &payload)
	}

	return result
}
