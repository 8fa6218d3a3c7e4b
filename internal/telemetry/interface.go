package telemetry

import (
	"context"

	"codeberg.org/mutker/fanmon/internal/sensor"
)

// Collector records captured snapshots into longer-term storage. The
// daily journal stays the durable record; this history exists for
// ad-hoc querying and is safe to rebuild.
type Collector interface {
	Record(ctx context.Context, snapshot *sensor.Snapshot) error
	Close() error
}

// Repository defines the storage backend for snapshot history
type Repository interface {
	Record(snapshot *sensor.Snapshot) error
	Close() error
}
