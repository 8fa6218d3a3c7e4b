package sensor_test

import (
	"testing"

	"codeberg.org/mutker/fanmon/internal/sensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const singleDriveDump = `drivetemp-scsi-0-f0
Adapter: SCSI adapter
temp1:        +41.0°C  (low  =  +0.0°C, high = +60.0°C)
                       (crit low = -40.0°C, crit = +70.0°C)
`

const multiDriveDump = `drivetemp-scsi-0-f0
Adapter: SCSI adapter
temp1:        +41.0°C  (low  =  +0.0°C, high = +60.0°C)

drivetemp-scsi-1-a1
Adapter: SCSI adapter
temp1:        +38.5°C  (low  =  +0.0°C, high = +60.0°C)

drivetemp-scsi-2-b2
Adapter: SCSI adapter
`

func succeeded(text string) sensor.RawOutput {
	return sensor.RawOutput{Text: text, Succeeded: true}
}

func TestParseDriveTempsSingleDevice(t *testing.T) {
	temps := sensor.ParseDriveTemps(succeeded(singleDriveDump))

	require.Len(t, temps, 1, "Expected exactly one device")
	require.NotNil(t, temps["f0"], "Expected a reading for f0")
	assert.InDelta(t, 41.0, *temps["f0"], 0.001, "Expected 41.0°C for f0")
}

func TestParseDriveTempsMultipleDevices(t *testing.T) {
	temps := sensor.ParseDriveTemps(succeeded(multiDriveDump))

	require.Len(t, temps, 3, "Expected three devices")
	require.NotNil(t, temps["f0"])
	assert.InDelta(t, 41.0, *temps["f0"], 0.001)
	require.NotNil(t, temps["a1"])
	assert.InDelta(t, 38.5, *temps["a1"], 0.001)
	assert.Nil(t, temps["b2"], "Device without a value line keeps a nil reading")
}

func TestParseDriveTempsMalformedValueLines(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"no plus marker", "temp1:        41.0°C"},
		{"no degree marker", "temp1:        +41.0C"},
		{"non-numeric body", "temp1:        +forty°C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dump := "drivetemp-scsi-0-f0\n" + tt.line + "\n"
			temps := sensor.ParseDriveTemps(succeeded(dump))

			require.Len(t, temps, 1, "Device key must survive a malformed value line")
			assert.Nil(t, temps["f0"], "Malformed value line must leave the reading nil")
		})
	}
}

func TestParseDriveTempsValueBeforeHeader(t *testing.T) {
	dump := `temp1:        +50.0°C  (low  =  +0.0°C, high = +60.0°C)
drivetemp-scsi-0-f0
temp1:        +41.0°C  (low  =  +0.0°C, high = +60.0°C)
`
	temps := sensor.ParseDriveTemps(succeeded(dump))

	require.Len(t, temps, 1, "Value line before any header must be ignored")
	require.NotNil(t, temps["f0"])
	assert.InDelta(t, 41.0, *temps["f0"], 0.001)
}

func TestParseDriveTempsShortHeaderIgnored(t *testing.T) {
	dump := `drivetemp-scsi
temp1:        +41.0°C
`
	temps := sensor.ParseDriveTemps(succeeded(dump))
	assert.Empty(t, temps, "Header with too few tokens must not establish a device")
}

func TestParseDriveTempsEmptyTrailingTokenDetachesCursor(t *testing.T) {
	dump := `drivetemp-scsi-0-f0
drivetemp-scsi-1-
temp1:        +41.0°C  (low  =  +0.0°C, high = +60.0°C)
`
	temps := sensor.ParseDriveTemps(succeeded(dump))

	require.Len(t, temps, 1, "Empty trailing token must not add a device")
	assert.Nil(t, temps["f0"], "Value after a detached cursor must not attach to the previous device")
}

func TestParseDriveTempsLastValueWins(t *testing.T) {
	dump := `drivetemp-scsi-0-f0
temp1:        +41.0°C  (low  =  +0.0°C, high = +60.0°C)
temp1:        +42.5°C  (low  =  +0.0°C, high = +60.0°C)
`
	temps := sensor.ParseDriveTemps(succeeded(dump))

	require.NotNil(t, temps["f0"])
	assert.InDelta(t, 42.5, *temps["f0"], 0.001, "A later value line overwrites the earlier reading")
}

func TestParseDriveTempsReaderFailed(t *testing.T) {
	temps := sensor.ParseDriveTemps(sensor.RawOutput{Succeeded: false, Failure: sensor.FailureNotFound})

	assert.NotNil(t, temps, "Failed reader still yields a present, empty mapping")
	assert.Empty(t, temps)
}
