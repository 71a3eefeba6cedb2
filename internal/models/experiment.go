package models

import "time"

// TimeLayout is the canonical timestamp format stored in the database.
// It is fixed-width and sortable, so lexicographic comparison of stored
// timestamps matches chronological order.
const TimeLayout = "2006-01-02 15:04:05"

// FormatTime renders t in the canonical storage layout.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// ParseTime parses a timestamp in the canonical storage layout.
func ParseTime(s string) (time.Time, error) {
	return time.Parse(TimeLayout, s)
}

// Experiment is one recording session. The ID is caller-supplied and
// unique within a store; experiments are immutable after creation.
type Experiment struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	StartTime   string `db:"start_time"`
	EndTime     string `db:"end_time"`
	Description string `db:"description"`
}

func NewExperiment(id, name string, start, end time.Time, description string) *Experiment {
	return &Experiment{
		ID:          id,
		Name:        name,
		StartTime:   FormatTime(start),
		EndTime:     FormatTime(end),
		Description: description,
	}
}

// TimeRange is an inclusive timestamp range in the canonical layout.
// A zero TimeRange means "no filtering".
type TimeRange struct {
	Start string
	End   string
}

// IsZero reports whether the range imposes no filtering.
func (r TimeRange) IsZero() bool {
	return r.Start == "" && r.End == ""
}
