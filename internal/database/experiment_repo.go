package database

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/mattn/go-sqlite3"

	"github.com/qinglab/replay/internal/models"
)

// ExperimentRepository is a stateless query facade over an open store.
// It holds no state beyond the store handle; the schema of the
// underlying file is verified once, on the first operation.
type ExperimentRepository struct {
	db *DB

	schemaOnce sync.Once
	schemaErr  error
}

func NewExperimentRepository(db *DB) *ExperimentRepository {
	return &ExperimentRepository{db: db}
}

// ensureSchema runs the lazy column check. A store file created by an
// incompatible tool is rejected here, on first use, not at Open time.
func (r *ExperimentRepository) ensureSchema() error {
	r.schemaOnce.Do(func() {
		if err := CheckSchema(r.db.Conn()); err != nil {
			r.schemaErr = storageErr("check schema", err)
		}
	})
	return r.schemaErr
}

// CreateExperiment inserts a new experiment. It returns ErrDuplicateID
// if an experiment with the same ID already exists; the store is left
// unmodified in that case.
func (r *ExperimentRepository) CreateExperiment(exp *models.Experiment) error {
	if err := r.ensureSchema(); err != nil {
		return err
	}

	_, err := r.db.Conn().Exec(`
		INSERT INTO experiments (id, name, start_time, end_time, description)
		VALUES (?, ?, ?, ?, ?)`,
		exp.ID, exp.Name, exp.StartTime, exp.EndTime, exp.Description,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) &&
			(sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
				sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique) {
			return fmt.Errorf("experiment %q: %w", exp.ID, ErrDuplicateID)
		}
		return storageErr("insert experiment", err)
	}
	return nil
}

// GetExperiment returns the experiment with the given ID, or nil if no
// such experiment exists.
func (r *ExperimentRepository) GetExperiment(id string) (*models.Experiment, error) {
	if err := r.ensureSchema(); err != nil {
		return nil, err
	}

	var exp models.Experiment
	err := r.db.Conn().Get(&exp, `
		SELECT id, name, start_time, end_time, description
		FROM experiments WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("get experiment", err)
	}
	return &exp, nil
}

// ListExperiments returns all experiments in the store, ordered by ID.
func (r *ExperimentRepository) ListExperiments() ([]models.Experiment, error) {
	if err := r.ensureSchema(); err != nil {
		return nil, err
	}

	var exps []models.Experiment
	err := r.db.Conn().Select(&exps, `
		SELECT id, name, start_time, end_time, description
		FROM experiments ORDER BY id`)
	if err != nil {
		return nil, storageErr("list experiments", err)
	}
	return exps, nil
}
