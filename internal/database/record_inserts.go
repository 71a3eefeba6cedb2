package database

import "github.com/qinglab/replay/internal/models"

// InsertSensorRecords inserts a batch of sensor rows in one
// transaction, preserving slice order. Importers call this once per
// source file, so a file either lands completely or not at all.
func (r *ExperimentRepository) InsertSensorRecords(records []models.SensorRecord) error {
	if err := r.ensureSchema(); err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	tx, err := r.db.Conn().Beginx()
	if err != nil {
		return storageErr("begin sensor insert", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO sensor_data (experiment_id, timestamp, sensor_type, value, file_source)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return storageErr("prepare sensor insert", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.Exec(rec.ExperimentID, rec.Timestamp, rec.SensorType, rec.Value, rec.FileSource); err != nil {
			return storageErr("insert sensor record", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storageErr("commit sensor insert", err)
	}
	return nil
}

// InsertLogRecords inserts a batch of log rows in one transaction,
// preserving slice order.
func (r *ExperimentRepository) InsertLogRecords(records []models.LogRecord) error {
	if err := r.ensureSchema(); err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	tx, err := r.db.Conn().Beginx()
	if err != nil {
		return storageErr("begin log insert", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO log_data (experiment_id, timestamp, level, message, file_source)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return storageErr("prepare log insert", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.Exec(rec.ExperimentID, rec.Timestamp, rec.Level, rec.Message, rec.FileSource); err != nil {
			return storageErr("insert log record", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storageErr("commit log insert", err)
	}
	return nil
}

// InsertVideoRecord registers one video file.
func (r *ExperimentRepository) InsertVideoRecord(rec *models.VideoRecord) error {
	if err := r.ensureSchema(); err != nil {
		return err
	}

	_, err := r.db.Conn().Exec(`
		INSERT INTO video_data (experiment_id, device_id, file_path, duration, file_size)
		VALUES (?, ?, ?, ?, ?)`,
		rec.ExperimentID, rec.DeviceID, rec.FilePath, rec.EstimatedDuration, rec.FileSize)
	if err != nil {
		return storageErr("insert video record", err)
	}
	return nil
}

// AddAnnotation appends one annotation. Coordinates and timestamps are
// stored as given, without validation.
func (r *ExperimentRepository) AddAnnotation(a *models.Annotation) error {
	if err := r.ensureSchema(); err != nil {
		return err
	}

	_, err := r.db.Conn().Exec(`
		INSERT INTO annotations (experiment_id, timestamp, annotation_type, coordinates, description)
		VALUES (?, ?, ?, ?, ?)`,
		a.ExperimentID, a.Timestamp, a.Type, a.Coordinates, a.Description)
	if err != nil {
		return storageErr("insert annotation", err)
	}
	return nil
}

// AddTag appends one tag. The time range is stored as given; start is
// not required to precede end.
func (r *ExperimentRepository) AddTag(t *models.Tag) error {
	if err := r.ensureSchema(); err != nil {
		return err
	}

	_, err := r.db.Conn().Exec(`
		INSERT INTO tags (experiment_id, start_time, end_time, name, description)
		VALUES (?, ?, ?, ?, ?)`,
		t.ExperimentID, t.StartTime, t.EndTime, t.Name, t.Description)
	if err != nil {
		return storageErr("insert tag", err)
	}
	return nil
}
