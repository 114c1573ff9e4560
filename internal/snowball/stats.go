package snowball

import (
	"sync"
	"time"
)

// FileRecord holds the metadata read for a single regular file.
// Records are immutable once collected and are discarded after
// aggregation.
type FileRecord struct {
	// Path is the file path as visited during the walk.
	Path string
	// ModTime is the last-modification timestamp.
	ModTime time.Time
	// Size is the file size in bytes.
	Size int64
}

// Bucket is one equal-width month interval within the lookback window.
type Bucket struct {
	// MonthOffset is the signed month distance from now (0 = current month,
	// negative values lie further back).
	MonthOffset int `json:"month_offset"`
	// SizeMB is the cumulative size of files assigned to this bucket,
	// in megabytes.
	SizeMB float64 `json:"size_mb"`
}

// Report holds the aggregate results of a scan.
type Report struct {
	// Root is the directory that was scanned.
	Root string `json:"root"`
	// Months is the lookback window length in months.
	Months int `json:"months"`
	// TotalFiles is the number of regular files encountered, including
	// skipped and errored ones.
	TotalFiles int64 `json:"total_files"`
	// SkippedPaths counts files excluded because their path exceeded the
	// safe length limit.
	SkippedPaths int64 `json:"skipped_paths"`
	// ErrorCount counts files that vanished or failed to stat mid-scan.
	ErrorCount int64 `json:"error_count"`
	// InRange is the number of files modified inside the lookback window.
	InRange int64 `json:"in_range"`
	// TotalBytes is the cumulative size of in-range files.
	TotalBytes int64 `json:"total_bytes"`
	// TotalMB is TotalBytes expressed in megabytes.
	TotalMB float64 `json:"total_mb"`
	// Buckets holds per-month totals, oldest first.
	Buckets []Bucket `json:"buckets"`
	// Elapsed is the total time taken for the scan.
	Elapsed time.Duration `json:"elapsed"`
}

// Options configures a scan.
type Options struct {
	// Root is the directory to scan.
	Root string
	// Months is the lookback window length (0 = DefaultMonths).
	Months int
	// MaxPathLen is the combined directory+name length above which files
	// are skipped (0 = DefaultMaxPathLen).
	MaxPathLen int
	// Excludes contains regex patterns to exclude.
	Excludes []string
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
}

// collector merges file metadata from concurrent fastwalk callbacks
// using a mutex.
type collector struct {
	mu           sync.Mutex // Protect concurrent access
	records      []FileRecord
	fileCount    int64
	totalBytes   int64
	skippedPaths int64
	errorCount   int64
}

func newCollector() *collector {
	return &collector{
		records: make([]FileRecord, 0),
	}
}

// add records a file. This operation is protected by a mutex since
// fastwalk calls the callback from multiple goroutines concurrently.
func (c *collector) add(rec FileRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records = append(c.records, rec)
	c.fileCount++
	c.totalBytes += rec.Size
}

// addSkipped increments the long-path skip counter.
func (c *collector) addSkipped() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.skippedPaths++
}

// addError increments the error counter.
func (c *collector) addError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errorCount++
}

// snapshot returns the current file and byte counts for progress reporting.
func (c *collector) snapshot() (files, bytes int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.fileCount, c.totalBytes
}
