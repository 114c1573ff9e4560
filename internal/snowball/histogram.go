package snowball

const bytesToMB = 1e-6

// Aggregate filters records against the window and sums the sizes of
// the retained ones into per-month buckets, oldest first.
//
// It returns the buckets together with the number of in-range records
// and their cumulative size in bytes. Records outside the window
// contribute to no bucket.
func Aggregate(records []FileRecord, window TimeWindow) (buckets []Bucket, inRange, totalBytes int64) {
	buckets = make([]Bucket, window.Months)
	for i := range buckets {
		buckets[i].MonthOffset = i - (window.Months - 1)
	}

	for _, rec := range records {
		if !window.Contains(rec.ModTime) {
			continue
		}

		offset := window.MonthOffset(rec.ModTime)

		idx := offset + window.Months - 1
		if idx < 0 || idx >= len(buckets) {
			// Floating-point edge next to a window boundary.
			continue
		}

		buckets[idx].SizeMB += float64(rec.Size) * bytesToMB
		totalBytes += rec.Size
		inRange++
	}

	return buckets, inRange, totalBytes
}
