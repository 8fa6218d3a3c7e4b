package journal

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"codeberg.org/mutker/fanmon/internal/errors"
	"codeberg.org/mutker/fanmon/internal/sensor"
)

const (
	filePrefix = "fan_monitor_"
	fileSuffix = ".log"
	fileLayout = "20060102"

	defaultDirPerm  = 0o755
	defaultFilePerm = 0o644
)

// Journal appends snapshots to one line-delimited JSON file per
// calendar day. Files only ever grow; nothing here truncates or
// rewrites prior lines.
type Journal struct {
	dir string
}

// New validates the configuration and ensures the journal directory
// exists, creating intermediate directories as needed. Failing to
// create the directory is the caller's one unrecoverable setup error.
func New(cfg Config) (*Journal, error) {
	errFactory := errors.New()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.Dir, defaultDirPerm); err != nil {
		return nil, errFactory.Wrap(ErrCreateDir, err)
	}

	return &Journal{dir: cfg.Dir}, nil
}

// PathFor returns the journal file holding snapshots taken at t.
func (j *Journal) PathFor(t time.Time) string {
	return filepath.Join(j.dir, filePrefix+t.Format(fileLayout)+fileSuffix)
}

// Append writes one snapshot as a single JSON line. The target file is
// chosen from the snapshot's own timestamp, so a poll finishing just
// past midnight still lands in the day it was taken.
func (j *Journal) Append(ctx context.Context, snapshot *sensor.Snapshot) error {
	errFactory := errors.New()

	if snapshot == nil {
		return errFactory.New(ErrInvalidSnapshot)
	}

	select {
	case <-ctx.Done():
		return errFactory.Wrap(ErrAppend, ctx.Err())
	default:
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return errFactory.Wrap(ErrEncode, err)
	}

	f, err := os.OpenFile(j.PathFor(snapshot.Timestamp), os.O_APPEND|os.O_CREATE|os.O_WRONLY, defaultFilePerm)
	if err != nil {
		return errFactory.Wrap(ErrAppend, err)
	}

	if _, err := f.Write(append(data, '\n')); err != nil {
		f.Close()
		return errFactory.Wrap(ErrAppend, err)
	}

	if err := f.Close(); err != nil {
		return errFactory.Wrap(ErrAppend, err)
	}

	return nil
}
