// Package batch implements the multi-file driver: glob resolution, a
// worker pool running the same pipeline.Run over every matched file, and
// atomic in-place rewrite of files whose output differs from their input.
//
// Grounded on core/filewalker.go (worker-pool file discovery via
// doublestar glob matching) and core/fileprocessor.go's TransformFiles
// (semaphore-bounded parallel transform, per-file result collection,
// deterministic final reporting pass). Differences from the teacher:
// no transaction log / rollback (spec.md §6 limits persisted state to
// "atomic in-place file rewrites", nothing transactional) and no
// cross-process file locking (spec.md §5 describes independent per-file
// workers with no cross-worker coordination).
package batch

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"strconv"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"

	"github.com/oxhq/srgn/internal/clierr"
	"github.com/oxhq/srgn/internal/pipeline"
)

// FileResult is the per-file outcome of one batch run.
type FileResult struct {
	Path     string
	Scanned  bool
	Modified bool
	BytesIn  int
	BytesOut int
	Err      error
}

// Summary is the deterministic, final (serial) report spec.md §4.6 requires.
type Summary struct {
	FilesScanned  int
	FilesModified int
	Errors        int
	Files         []FileResult // sorted lexicographically by path
}

// Run resolves glob against the working directory, runs cfg over every
// matched file using a worker pool sized by workers (resolveWorkerCount
// picks a default when workers <= 0), and atomically rewrites any file
// whose output differs from its input.
func Run(glob string, cfg pipeline.Config, workers int) (Summary, error) {
	paths, err := doublestar.FilepathGlob(glob)
	if err != nil {
		return Summary{}, clierr.Config(glob, "invalid glob pattern", err)
	}
	sort.Strings(paths)

	if workers <= 0 {
		workers = resolveWorkerCount(runtime.NumCPU())
	}

	resultCh := make(chan FileResult, len(paths))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for _, p := range paths {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			resultCh <- processFile(path, cfg)
		}(p)
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	var results []FileResult
	for r := range resultCh {
		results = append(results, r)
	}

	// Final reporting pass: stable, lexicographic by path, regardless of
	// the order workers finished in.
	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })

	summary := Summary{Files: results}
	for _, r := range results {
		summary.FilesScanned++
		if r.Modified {
			summary.FilesModified++
		}
		if r.Err != nil {
			summary.Errors++
		}
	}
	return summary, nil
}

func processFile(path string, cfg pipeline.Config) FileResult {
	input, err := os.ReadFile(path)
	if err != nil {
		return FileResult{Path: path, Scanned: true, Err: clierr.IO(path, "failed to read file", err)}
	}

	res, err := pipeline.Run(cfg, input)
	if err != nil {
		return FileResult{Path: path, Scanned: true, Err: err}
	}

	result := FileResult{
		Path:     path,
		Scanned:  true,
		BytesIn:  len(input),
		BytesOut: len(res.Output),
	}
	if !res.Changed {
		return result
	}

	if err := atomicWrite(path, res.Output); err != nil {
		result.Err = clierr.IO(path, "failed to write file", err)
		return result
	}
	result.Modified = true
	return result
}

// atomicWrite writes content to a temp file in dir(path) then renames it
// into place, so a crash mid-write never leaves path truncated. The temp
// name carries a uuid suffix (rather than the teacher's fixed ".morfx.tmp")
// so concurrent srgn --files runs over the same directory never collide.
func atomicWrite(path, content string) error {
	info, err := os.Stat(path)
	mode := os.FileMode(0o644)
	if err == nil {
		mode = info.Mode()
	}

	tempPath := fmt.Sprintf("%s.srgn-%s.tmp", path, uuid.NewString())
	f, err := os.OpenFile(tempPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		os.Remove(tempPath)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tempPath)
		return err
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return err
	}
	return nil
}

func resolveWorkerCount(defaultWorkers int) int {
	value := os.Getenv("SRGN_WORKERS")
	if value == "" {
		return defaultWorkers
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultWorkers
	}
	return n
}

