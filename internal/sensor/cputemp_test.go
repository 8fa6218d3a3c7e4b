package sensor_test

import (
	"testing"

	"codeberg.org/mutker/fanmon/internal/sensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCPUTempMillidegrees(t *testing.T) {
	temp := sensor.ParseCPUTemp(succeeded("45000\n"))

	require.NotNil(t, temp, "Expected a CPU reading")
	assert.InDelta(t, 45.0, *temp, 0.001, "Expected 45000 millidegrees to become 45.0°C")
}

func TestParseCPUTempFirstLineOnly(t *testing.T) {
	temp := sensor.ParseCPUTemp(succeeded("45000\n46000\n"))

	require.NotNil(t, temp)
	assert.InDelta(t, 45.0, *temp, 0.001, "Only the first thermal zone is consulted")
}

func TestParseCPUTempNegative(t *testing.T) {
	temp := sensor.ParseCPUTemp(succeeded("-5000\n"))

	require.NotNil(t, temp)
	assert.InDelta(t, -5.0, *temp, 0.001)
}

func TestParseCPUTempSurroundingWhitespace(t *testing.T) {
	temp := sensor.ParseCPUTemp(succeeded("  38250  \n"))

	require.NotNil(t, temp)
	assert.InDelta(t, 38.25, *temp, 0.001)
}

func TestParseCPUTempUnparseable(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"blank line", "\n"},
		{"non-numeric", "not-a-number\n"},
		{"decimal not integer", "45.5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, sensor.ParseCPUTemp(succeeded(tt.text)), "Unparseable input must yield no reading")
		})
	}
}

func TestParseCPUTempReaderFailed(t *testing.T) {
	temp := sensor.ParseCPUTemp(sensor.RawOutput{Succeeded: false, Failure: sensor.FailureTimeout})
	assert.Nil(t, temp, "Failed reader must yield no reading")
}
