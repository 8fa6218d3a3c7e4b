package telemetry

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"codeberg.org/mutker/fanmon/internal/errors"
	"codeberg.org/mutker/fanmon/internal/logger"
	"codeberg.org/mutker/fanmon/internal/sensor"

	_ "github.com/mattn/go-sqlite3"
)

type sqliteRepository struct {
	db  *sql.DB
	log logger.Logger
	mu  sync.Mutex
}

func NewRepository(cfg Config, log logger.Logger) (Repository, error) {
	errFactory := errors.New()

	if cfg.DBPath == "" {
		return nil, errFactory.New(ErrInvalidDBPath)
	}

	log.Debug().Str("path", cfg.DBPath).Msg("Initializing snapshot history repository")

	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), defaultDirPerm); err != nil {
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	dsn := cfg.DBPath + "?_journal=WAL&_auto_vacuum=2"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	if err := ValidateAndUpdateSchema(db, log); err != nil {
		db.Close()
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	log.Info().
		Str("path", cfg.DBPath).
		Int("schema_version", SchemaVersion).
		Msg("Snapshot history initialized")

	return &sqliteRepository{
		db:  db,
		log: log,
	}, nil
}

// Record upserts one snapshot keyed by its Unix timestamp. The drive
// and fan mappings are stored as JSON text; an absent fan mapping
// stays NULL so degraded polls remain distinguishable in the history.
func (r *sqliteRepository) Record(snapshot *sensor.Snapshot) error {
	errFactory := errors.New()

	driveTemps, err := json.Marshal(snapshot.DriveTemps)
	if err != nil {
		return errFactory.Wrap(ErrStorageAccess, err)
	}

	var fanStatus any
	if snapshot.FanStatus != nil {
		data, err := json.Marshal(snapshot.FanStatus)
		if err != nil {
			return errFactory.Wrap(ErrStorageAccess, err)
		}
		fanStatus = string(data)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, err = r.db.Exec(insertSnapshotSQL,
		snapshot.Timestamp.Unix(),
		snapshot.CPUTemp,
		string(driveTemps),
		fanStatus,
		len(snapshot.DriveTemps),
		boolToInt(snapshot.FanStatus != nil),
	)
	if err != nil {
		return errFactory.Wrap(ErrStorageAccess, err)
	}

	return nil
}

func (r *sqliteRepository) Close() error {
	errFactory := errors.New()

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.db.Close(); err != nil {
		return errFactory.Wrap(ErrStorageClose, err)
	}
	return nil
}
