// Package importer ingests recording source files into an open
// experiment store.
//
// All importers share the same best-effort policy: a malformed line is
// skipped, an unreadable file is logged and skipped, and only a failure
// of the store itself aborts an import. Rows are inserted in
// file-discovery order, then in line order within each file.
package importer

import "github.com/google/uuid"

// Policy controls per-importer parsing behavior. The tabular importer
// historically skipped a header line while the log importer did not;
// both are configurable here so the asymmetry is a choice, not a
// hard-coded accident.
type Policy struct {
	// TabularHeaderDetection skips the first line of a tabular file
	// when it contains a comma.
	TabularHeaderDetection bool `yaml:"tabular_header_detection"`
	// LogHeaderDetection skips the first line of a log file when it
	// does not parse as a log record.
	LogHeaderDetection bool `yaml:"log_header_detection"`
}

// DefaultPolicy mirrors the historical behavior: header detection for
// tabular files only.
func DefaultPolicy() Policy {
	return Policy{TabularHeaderDetection: true, LogHeaderDetection: false}
}

// Result summarizes one importer invocation. Skipped rows and failed
// files are counted, not raised; partial success is the norm.
type Result struct {
	// BatchID correlates log lines from one invocation.
	BatchID        string
	FilesProcessed int
	FilesFailed    int
	RowsInserted   int
	RowsSkipped    int
}

func newResult() *Result {
	return &Result{BatchID: uuid.New().String()}
}
