// Package snowball estimates monthly data-creation rates from file
// modification times.
//
// It walks a directory tree using fastwalk for parallel traversal,
// reads per-file modification timestamps and sizes, and aggregates
// the sizes (in megabytes) into equal-width monthly buckets over a
// trailing lookback window.
package snowball
