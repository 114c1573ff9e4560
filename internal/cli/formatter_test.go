package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/phyzicist/snowballer/internal/snowball"
)

func sampleReport() *snowball.Report {
	buckets := make([]snowball.Bucket, 24)
	for i := range buckets {
		buckets[i].MonthOffset = i - 23
	}

	buckets[22].SizeMB = 30.0 // offset -1
	buckets[18].SizeMB = 30.0 // offset -5

	return &snowball.Report{
		Root:         "/home/tester/Documents",
		Months:       24,
		TotalFiles:   103,
		SkippedPaths: 1,
		ErrorCount:   2,
		InRange:      100,
		TotalBytes:   60_000_000,
		TotalMB:      60.0,
		Buckets:      buckets,
		Elapsed:      3 * time.Second,
	}
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer

	if err := PrintJSON(sampleReport(), &buf); err != nil {
		t.Fatalf("PrintJSON failed: %v", err)
	}

	var decoded snowball.Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded.TotalFiles != 103 {
		t.Errorf("expected 103 total files, got %d", decoded.TotalFiles)
	}

	if decoded.SkippedPaths != 1 {
		t.Errorf("expected 1 skipped path, got %d", decoded.SkippedPaths)
	}

	if len(decoded.Buckets) != 24 {
		t.Errorf("expected 24 buckets, got %d", len(decoded.Buckets))
	}
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer

	if err := PrintTable(sampleReport(), &buf); err != nil {
		t.Fatalf("PrintTable failed: %v", err)
	}

	out := buf.String()

	for _, want := range []string{
		"MB per month:",
		"-1)",
		"-5)",
		"Total files:",
		"Skipped paths:",
		"Files in range:",
		"60000000 bytes",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}

	// Empty buckets stay out of the listing.
	if strings.Contains(out, "-10)") {
		t.Errorf("table output lists an empty bucket:\n%s", out)
	}
}

func TestPrintTableEmptyWindow(t *testing.T) {
	report := sampleReport()
	for i := range report.Buckets {
		report.Buckets[i].SizeMB = 0
	}

	var buf bytes.Buffer

	if err := PrintTable(report, &buf); err != nil {
		t.Fatalf("PrintTable failed: %v", err)
	}

	if !strings.Contains(buf.String(), "no files modified") {
		t.Errorf("expected empty-window notice, got:\n%s", buf.String())
	}
}
