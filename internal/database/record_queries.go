package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/qinglab/replay/internal/models"
)

// Record queries all share the same shape: filter by experiment, apply
// an optional inclusive timestamp range, apply an optional row limit.
// Unknown experiment IDs yield an empty result, never an error.
//
// Range filtering is BETWEEN on the stored text timestamps, which is
// order-preserving because the storage layout is fixed-width.

func rangeClause(column string, tr models.TimeRange, args *[]any) string {
	if tr.IsZero() {
		return ""
	}
	*args = append(*args, tr.Start, tr.End)
	return fmt.Sprintf(" AND %s BETWEEN ? AND ?", column)
}

func limitClause(limit int, args *[]any) string {
	if limit <= 0 {
		return ""
	}
	*args = append(*args, limit)
	return " LIMIT ?"
}

// SensorRecords returns sensor rows for an experiment, oldest first.
func (r *ExperimentRepository) SensorRecords(experimentID string, tr models.TimeRange, limit int) ([]models.SensorRecord, error) {
	if err := r.ensureSchema(); err != nil {
		return nil, err
	}

	args := []any{experimentID}
	query := `
		SELECT id, experiment_id, timestamp, sensor_type, value, file_source
		FROM sensor_data WHERE experiment_id = ?`
	query += rangeClause("timestamp", tr, &args)
	query += " ORDER BY timestamp, id"
	query += limitClause(limit, &args)

	records := []models.SensorRecord{}
	if err := r.db.Conn().Select(&records, query, args...); err != nil {
		return nil, storageErr("query sensor records", err)
	}
	return records, nil
}

// SensorSeries returns sensor rows for the given sensor types only,
// oldest first. An empty type list yields an empty result.
func (r *ExperimentRepository) SensorSeries(experimentID string, sensorTypes []string, tr models.TimeRange) ([]models.SensorRecord, error) {
	if err := r.ensureSchema(); err != nil {
		return nil, err
	}
	records := []models.SensorRecord{}
	if len(sensorTypes) == 0 {
		return records, nil
	}

	query := `
		SELECT id, experiment_id, timestamp, sensor_type, value, file_source
		FROM sensor_data WHERE experiment_id = ? AND sensor_type IN (?)`
	args := []any{experimentID, sensorTypes}
	if !tr.IsZero() {
		query += " AND timestamp BETWEEN ? AND ?"
		args = append(args, tr.Start, tr.End)
	}
	query += " ORDER BY timestamp, id"

	query, expanded, err := sqlx.In(query, args...)
	if err != nil {
		return nil, storageErr("build sensor series query", err)
	}
	query = r.db.Conn().Rebind(query)

	if err := r.db.Conn().Select(&records, query, expanded...); err != nil {
		return nil, storageErr("query sensor series", err)
	}
	return records, nil
}

// LogRecords returns log rows for an experiment, oldest first.
func (r *ExperimentRepository) LogRecords(experimentID string, tr models.TimeRange, limit int) ([]models.LogRecord, error) {
	if err := r.ensureSchema(); err != nil {
		return nil, err
	}

	args := []any{experimentID}
	query := `
		SELECT id, experiment_id, timestamp, level, message, file_source
		FROM log_data WHERE experiment_id = ?`
	query += rangeClause("timestamp", tr, &args)
	query += " ORDER BY timestamp, id"
	query += limitClause(limit, &args)

	records := []models.LogRecord{}
	if err := r.db.Conn().Select(&records, query, args...); err != nil {
		return nil, storageErr("query log records", err)
	}
	return records, nil
}

// VideoRecords returns video registrations for an experiment. Video
// rows carry no timestamp, so no range filtering applies.
func (r *ExperimentRepository) VideoRecords(experimentID string) ([]models.VideoRecord, error) {
	if err := r.ensureSchema(); err != nil {
		return nil, err
	}

	records := []models.VideoRecord{}
	err := r.db.Conn().Select(&records, `
		SELECT id, experiment_id, device_id, file_path, duration, file_size
		FROM video_data WHERE experiment_id = ? ORDER BY id`, experimentID)
	if err != nil {
		return nil, storageErr("query video records", err)
	}
	return records, nil
}

// VideoRecordsByDevice returns video registrations for one device
// category or camera ID within an experiment.
func (r *ExperimentRepository) VideoRecordsByDevice(experimentID, deviceID string) ([]models.VideoRecord, error) {
	if err := r.ensureSchema(); err != nil {
		return nil, err
	}

	records := []models.VideoRecord{}
	err := r.db.Conn().Select(&records, `
		SELECT id, experiment_id, device_id, file_path, duration, file_size
		FROM video_data WHERE experiment_id = ? AND device_id = ? ORDER BY id`,
		experimentID, deviceID)
	if err != nil {
		return nil, storageErr("query video records", err)
	}
	return records, nil
}

// Annotations returns annotations for an experiment, oldest first.
func (r *ExperimentRepository) Annotations(experimentID string, tr models.TimeRange, limit int) ([]models.Annotation, error) {
	if err := r.ensureSchema(); err != nil {
		return nil, err
	}

	args := []any{experimentID}
	query := `
		SELECT id, experiment_id, timestamp, annotation_type, coordinates, description
		FROM annotations WHERE experiment_id = ?`
	query += rangeClause("timestamp", tr, &args)
	query += " ORDER BY timestamp, id"
	query += limitClause(limit, &args)

	records := []models.Annotation{}
	if err := r.db.Conn().Select(&records, query, args...); err != nil {
		return nil, storageErr("query annotations", err)
	}
	return records, nil
}

// Tags returns tags for an experiment ordered by start time. The range
// filter applies to the tag's start time.
func (r *ExperimentRepository) Tags(experimentID string, tr models.TimeRange, limit int) ([]models.Tag, error) {
	if err := r.ensureSchema(); err != nil {
		return nil, err
	}

	args := []any{experimentID}
	query := `
		SELECT id, experiment_id, start_time, end_time, name, description
		FROM tags WHERE experiment_id = ?`
	query += rangeClause("start_time", tr, &args)
	query += " ORDER BY start_time, id"
	query += limitClause(limit, &args)

	records := []models.Tag{}
	if err := r.db.Conn().Select(&records, query, args...); err != nil {
		return nil, storageErr("query tags", err)
	}
	return records, nil
}

// ListCameras returns the distinct device IDs that have video records
// for an experiment.
func (r *ExperimentRepository) ListCameras(experimentID string) ([]string, error) {
	if err := r.ensureSchema(); err != nil {
		return nil, err
	}

	cameras := []string{}
	err := r.db.Conn().Select(&cameras, `
		SELECT DISTINCT device_id FROM video_data
		WHERE experiment_id = ? ORDER BY device_id`, experimentID)
	if err != nil {
		return nil, storageErr("list cameras", err)
	}
	return cameras, nil
}

// ListSensorTypes returns the distinct sensor types recorded for an
// experiment.
func (r *ExperimentRepository) ListSensorTypes(experimentID string) ([]string, error) {
	if err := r.ensureSchema(); err != nil {
		return nil, err
	}

	types := []string{}
	err := r.db.Conn().Select(&types, `
		SELECT DISTINCT sensor_type FROM sensor_data
		WHERE experiment_id = ? ORDER BY sensor_type`, experimentID)
	if err != nil {
		return nil, storageErr("list sensor types", err)
	}
	return types, nil
}
