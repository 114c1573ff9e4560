package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/phyzicist/snowballer/internal/snowball"
)

func testReport() *snowball.Report {
	buckets := make([]snowball.Bucket, 24)
	for i := range buckets {
		buckets[i].MonthOffset = i - 23
	}

	buckets[22].SizeMB = 30.0 // offset -1
	buckets[18].SizeMB = 30.0 // offset -5

	return &snowball.Report{
		Root:       "/home/tester/Documents",
		Months:     24,
		TotalFiles: 3,
		InRange:    3,
		TotalBytes: 60_000_000,
		TotalMB:    60.0,
		Buckets:    buckets,
		Elapsed:    time.Second,
	}
}

func decodePNG(t *testing.T, path string) {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open image: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}

	if img.Bounds().Empty() {
		t.Error("expected non-empty image")
	}
}

func TestHistogramWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "snowball.png")

	if err := Histogram(testReport(), Options{Path: out}); err != nil {
		t.Fatalf("Histogram failed: %v", err)
	}

	decodePNG(t, out)
}

func TestHistogramOverwritesExistingFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "snowball.png")

	if err := os.WriteFile(out, []byte("not a png"), 0o644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	if err := Histogram(testReport(), Options{Path: out}); err != nil {
		t.Fatalf("Histogram failed: %v", err)
	}

	decodePNG(t, out)
}

func TestHistogramEmptyBuckets(t *testing.T) {
	report := testReport()
	for i := range report.Buckets {
		report.Buckets[i].SizeMB = 0
	}

	out := filepath.Join(t.TempDir(), "snowball.png")

	if err := Histogram(report, Options{Path: out}); err != nil {
		t.Fatalf("Histogram failed on empty buckets: %v", err)
	}

	decodePNG(t, out)
}

func TestHistogramUnwritablePath(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing-dir", "snowball.png")

	if err := Histogram(testReport(), Options{Path: out}); err == nil {
		t.Fatal("expected error for unwritable output path")
	}
}
