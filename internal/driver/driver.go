// Package driver runs the analysis pipeline over files and directories.
// Each file gets its own token list and diagnostic bag, so files can be
// processed on separate goroutines without sharing.
package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/heshpdx/cppcheck/internal/config"
	"github.com/heshpdx/cppcheck/internal/diag"
	"github.com/heshpdx/cppcheck/internal/lexer"
	"github.com/heshpdx/cppcheck/internal/source"
	"github.com/heshpdx/cppcheck/internal/token"
)

// Result is the outcome of analyzing one file.
type Result struct {
	Path   string
	FileID source.FileID
	List   *token.List
	Bag    *diag.Bag
	// Err is an internal error recovered from a pass; the other fields
	// hold whatever was produced before it.
	Err error
}

var sourceSuffixes = []string{".c", ".cc", ".cpp", ".cxx", ".h", ".hh", ".hpp", ".hxx"}

func isSourceFile(path string) bool {
	for _, suffix := range sourceSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

// ListSourceFiles returns the sorted C/C++ files under dir.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && isSourceFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// deterministic order
	sort.Strings(files)
	return files, nil
}

// TokenizeFile runs the lexical pipeline on one loaded file: scan,
// classify, pair brackets. Internal errors from the passes come back as
// the error return, not as a panic.
func TokenizeFile(file *source.File, settings *config.Settings, bag *diag.Bag) (list *token.List, err error) {
	defer diag.Recover(&err)
	list = lexer.Tokenize(file, settings.Dialect(), bag)
	list.SetMaxValues(settings.MaxValues)
	list.CreateLinks(bag)
	return list, nil
}

// FileResult bundles a single-file run with the file set that owns the
// source bytes.
type FileResult struct {
	FileSet *source.FileSet
	Result
}

// Tokenize loads and tokenizes one file.
func Tokenize(path string, settings *config.Settings) (*FileResult, error) {
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, err
	}
	bag := diag.NewBag(settings.MaxDiagnostics)
	list, passErr := TokenizeFile(fileSet.Get(fileID), settings, bag)
	return &FileResult{
		FileSet: fileSet,
		Result: Result{
			Path:   path,
			FileID: fileID,
			List:   list,
			Bag:    bag,
			Err:    passErr,
		},
	}, nil
}

// TokenizeDir tokenizes every source file under dir, jobs files at a
// time.
func TokenizeDir(ctx context.Context, dir string, settings *config.Settings, log *zap.Logger) (*source.FileSet, []Result, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := settings.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// one slot per file, so the goroutines never share state
	results := make([]Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(settings.MaxDiagnostics)

			if loadErr, hadError := loadErrors[path]; hadError {
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
					Primary:  diag.Pos{File: path},
				})
				results[i] = Result{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)

			list, err := TokenizeFile(file, settings, bag)
			if err != nil {
				log.Warn("pass failed",
					zap.String("path", path),
					zap.Error(err))
			} else {
				count := 0
				for tok := list.Front(); tok != nil; tok = tok.Next() {
					count++
				}
				log.Debug("tokenized",
					zap.String("path", path),
					zap.Int("tokens", count),
					zap.Int("diagnostics", bag.Len()))
			}

			results[i] = Result{
				Path:   path,
				FileID: fileID,
				List:   list,
				Bag:    bag,
				Err:    err,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
