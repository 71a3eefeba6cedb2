package models

// SensorRecord is one parsed data line from a tabular (CSV-like) source
// file. Timestamps are stored as text in TimeLayout; they are not
// validated at import time.
type SensorRecord struct {
	ID           int64   `db:"id"`
	ExperimentID string  `db:"experiment_id"`
	Timestamp    string  `db:"timestamp"`
	SensorType   string  `db:"sensor_type"`
	Value        float64 `db:"value"`
	FileSource   string  `db:"file_source"`
}

// LogRecord is one parsed line from a text log file.
type LogRecord struct {
	ID           int64  `db:"id"`
	ExperimentID string `db:"experiment_id"`
	Timestamp    string `db:"timestamp"`
	Level        string `db:"level"`
	Message      string `db:"message"`
	FileSource   string `db:"file_source"`
}

// VideoRecord registers one discovered video file.
//
// EstimatedDuration is derived from the file size with a per-device
// bytes-per-second divisor. It is a crude estimate for display and
// planning, not a measured media duration.
type VideoRecord struct {
	ID                int64  `db:"id"`
	ExperimentID      string `db:"experiment_id"`
	DeviceID          string `db:"device_id"`
	FilePath          string `db:"file_path"`
	EstimatedDuration int64  `db:"duration"`
	FileSize          int64  `db:"file_size"`
}

// Annotation marks a single point in an experiment's timeline.
// Coordinates is a free-form text encoding of the marked shape.
type Annotation struct {
	ID           int64  `db:"id"`
	ExperimentID string `db:"experiment_id"`
	Timestamp    string `db:"timestamp"`
	Type         string `db:"annotation_type"`
	Coordinates  string `db:"coordinates"`
	Description  string `db:"description"`
}

// Tag marks a named time range in an experiment's timeline. Start and
// end are stored as given; the range is not validated (start may sort
// after end).
type Tag struct {
	ID           int64  `db:"id"`
	ExperimentID string `db:"experiment_id"`
	StartTime    string `db:"start_time"`
	EndTime      string `db:"end_time"`
	Name         string `db:"name"`
	Description  string `db:"description"`
}
