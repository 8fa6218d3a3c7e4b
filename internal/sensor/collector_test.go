package sensor_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"codeberg.org/mutker/fanmon/internal/errors"
	"codeberg.org/mutker/fanmon/internal/sensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureSource writes text to a file and returns a source that cats it.
func fixtureSource(t *testing.T, name, text string) sensor.Source {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))

	return sensor.Source{Name: name, Command: "cat", Args: []string{path}, Timeout: 5 * time.Second}
}

func missingSource(name string) sensor.Source {
	return sensor.Source{Name: name, Command: "fanmon-no-such-binary", Timeout: 5 * time.Second}
}

func TestCaptureWithFanToolAbsent(t *testing.T) {
	cfg := sensor.Config{
		DriveTemps: fixtureSource(t, "drive_temps", singleDriveDump),
		CPUTemp:    fixtureSource(t, "cpu_temp", "45000\n"),
		FanStatus:  missingSource("fan_status"),
	}

	collector, err := sensor.NewCollector(cfg)
	require.NoError(t, err)

	snapshot := collector.Capture(context.Background())

	require.NotNil(t, snapshot)
	assert.False(t, snapshot.Timestamp.IsZero(), "Snapshot always carries a timestamp")
	assert.Nil(t, snapshot.FanStatus, "Absent fan tool must yield no fan mapping")

	require.NotNil(t, snapshot.DriveTemps["f0"], "Drive reading must survive the fan failure")
	assert.InDelta(t, 41.0, *snapshot.DriveTemps["f0"], 0.001)

	require.NotNil(t, snapshot.CPUTemp, "CPU reading must survive the fan failure")
	assert.InDelta(t, 45.0, *snapshot.CPUTemp, 0.001)
}

func TestCaptureWithAllSourcesAbsent(t *testing.T) {
	cfg := sensor.Config{
		DriveTemps: missingSource("drive_temps"),
		CPUTemp:    missingSource("cpu_temp"),
		FanStatus:  missingSource("fan_status"),
	}

	collector, err := sensor.NewCollector(cfg)
	require.NoError(t, err)

	snapshot := collector.Capture(context.Background())

	require.NotNil(t, snapshot, "Capture must succeed no matter how degraded the host is")
	assert.False(t, snapshot.Timestamp.IsZero())
	assert.NotNil(t, snapshot.DriveTemps)
	assert.Empty(t, snapshot.DriveTemps)
	assert.Nil(t, snapshot.CPUTemp)
	assert.Nil(t, snapshot.FanStatus)
}

func TestCaptureFanToolRanWithoutChannels(t *testing.T) {
	cfg := sensor.Config{
		DriveTemps: missingSource("drive_temps"),
		CPUTemp:    missingSource("cpu_temp"),
		FanStatus:  fixtureSource(t, "fan_status", "CPU Temp         | 45 degrees C      | ok\n"),
	}

	collector, err := sensor.NewCollector(cfg)
	require.NoError(t, err)

	snapshot := collector.Capture(context.Background())

	require.NotNil(t, snapshot.FanStatus, "Tool ran, so the mapping is present")
	assert.Empty(t, snapshot.FanStatus)
}

func TestNewCollectorRejectsInvalidSource(t *testing.T) {
	cfg := sensor.DefaultConfig()
	cfg.CPUTemp.Command = ""

	_, err := sensor.NewCollector(cfg)
	require.Error(t, err)

	var appErr errors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, sensor.ErrInvalidSource, appErr.Code())
}
