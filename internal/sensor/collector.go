package sensor

import (
	"context"
	"time"

	"codeberg.org/mutker/fanmon/internal/logger"
)

// Collector assembles point-in-time snapshots from the configured
// sensor sources.
type Collector struct {
	cfg Config
}

func NewCollector(cfg Config) (*Collector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Collector{cfg: cfg}, nil
}

// Capture polls every source once and assembles whatever could be
// observed. A failing source only leaves its field absent; Capture
// itself never fails.
func (c *Collector) Capture(ctx context.Context) *Snapshot {
	snapshot := &Snapshot{Timestamp: time.Now()}

	drives := c.cfg.DriveTemps.Read(ctx)
	snapshot.DriveTemps = ParseDriveTemps(drives)

	cpu := c.cfg.CPUTemp.Read(ctx)
	snapshot.CPUTemp = ParseCPUTemp(cpu)

	fans := c.cfg.FanStatus.Read(ctx)
	snapshot.FanStatus = ParseFanStatus(fans)

	logger.Debug().
		Time("timestamp", snapshot.Timestamp).
		Int("drives", len(snapshot.DriveTemps)).
		Bool("cpu_observed", snapshot.CPUTemp != nil).
		Bool("fans_observed", snapshot.FanStatus != nil).
		Msg("Snapshot captured")

	return snapshot
}
