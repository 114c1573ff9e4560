package snowball

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/charlievieth/fastwalk"

	"github.com/phyzicist/snowballer/internal/logger"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// DefaultMaxPathLen is the combined directory+name length above which a
// file is skipped instead of statted. Metadata reads on longer paths
// fail on platforms with a 255-character path limit.
const DefaultMaxPathLen = 255

// shouldExcludeByPattern checks if path matches any exclusion regex.
func shouldExcludeByPattern(path string, patterns []*regexp.Regexp) *regexp.Regexp {
	if len(patterns) == 0 {
		return nil
	}

	fPath := filepath.ToSlash(path)

	for _, re := range patterns {
		if re.MatchString(fPath) {
			return re
		}
	}

	return nil
}

// startProgressReporter invokes hook(files, bytes) on each tick until ctx is done.
//
//nolint:varnamelen // c is idiomatic for collector
func startProgressReporter(ctx context.Context, c *collector, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				files, bytes := c.snapshot()
				hook(files, bytes)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Run scans opt.Root and returns the aggregated monthly data-creation
// report. It walks the tree, reads per-file modification times and
// sizes, keeps files modified inside the trailing lookback window and
// sums their sizes into equal-width monthly buckets.
//
// The window end is captured once before the walk starts, so files
// modified during the scan fall outside it. Symlinked directories are
// not followed. Files that vanish between enumeration and the metadata
// read are counted and skipped rather than failing the run.
//
// The walk can be cancelled via ctx. Progress updates are sent to
// progressHook if provided.
func Run(ctx context.Context, opt Options, progressHook func(int64, int64)) (*Report, error) {
	log := logger.Get()

	if opt.Root == "" {
		opt.Root = "."
	}

	// Normalize to native format to handle both C:/Path and C:\Path inputs
	opt.Root = filepath.Clean(opt.Root)

	if opt.Months <= 0 {
		opt.Months = DefaultMonths
	}

	if opt.MaxPathLen <= 0 {
		opt.MaxPathLen = DefaultMaxPathLen
	}

	// validate root exists and is a directory before any work begins
	if statInfo, err := os.Stat(opt.Root); err != nil {
		return nil, fmt.Errorf("accessing root %q: %w", opt.Root, err)
	} else if !statInfo.IsDir() {
		return nil, fmt.Errorf("root %q is not a directory", opt.Root)
	}

	excludeRegexes := make([]*regexp.Regexp, 0, len(opt.Excludes))

	for _, p := range opt.Excludes {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compiling exclusion pattern %q: %w", p, err)
		}

		excludeRegexes = append(excludeRegexes, re)
	}

	collector := newCollector()

	// Create child context to ensure progress reporter cleanup
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, collector, progressHook, opt.ProgressInterval)

	start := time.Now()

	// Bucket boundaries are anchored to a single timestamp for the run.
	window := NewTimeWindow(start, opt.Months)

	// Configure fastwalk
	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}

	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, opt.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Debug().Err(err).Str("path", path).Msg("skipping inaccessible path")

			return nil // Silently skip errors
		}

		// Check cancellation periodically
		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		if matchedPattern := shouldExcludeByPattern(path, excludeRegexes); matchedPattern != nil {
			log.Debug().Str("path", path).Str("pattern", matchedPattern.String()).Msg("excluded")

			if d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if d.IsDir() {
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		if len(filepath.Dir(path))+len(filepath.Base(path)) > opt.MaxPathLen {
			collector.addSkipped()

			return nil
		}

		fileInfo, err := d.Info()
		if err != nil {
			// File vanished between enumeration and the metadata read.
			collector.addError()

			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		collector.add(FileRecord{
			Path:    path,
			ModTime: fileInfo.ModTime(),
			Size:    fileInfo.Size(),
		})

		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walking %q: %w", opt.Root, walkErr)
	}

	buckets, inRange, totalBytes := Aggregate(collector.records, window)

	report := &Report{
		Root:         opt.Root,
		Months:       opt.Months,
		TotalFiles:   collector.fileCount + collector.skippedPaths + collector.errorCount,
		SkippedPaths: collector.skippedPaths,
		ErrorCount:   collector.errorCount,
		InRange:      inRange,
		TotalBytes:   totalBytes,
		TotalMB:      float64(totalBytes) * bytesToMB,
		Buckets:      buckets,
		Elapsed:      time.Since(start),
	}

	return report, nil
}
