// Package watch re-runs the pipeline when the source directory changes.
//
// Filesystem events for CSV files are debounced so a batch of copied
// exports triggers one run, not one per file.
package watch
