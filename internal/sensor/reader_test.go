package sensor_test

import (
	"context"
	"testing"
	"time"

	"codeberg.org/mutker/fanmon/internal/sensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceReadCapturesStdout(t *testing.T) {
	src := sensor.Source{Name: "test", Command: "echo", Args: []string{"hello"}, Timeout: 5 * time.Second}

	out := src.Read(context.Background())

	require.True(t, out.Succeeded)
	assert.Equal(t, sensor.FailureNone, out.Failure)
	assert.Equal(t, "hello\n", out.Text)
}

func TestSourceReadCommandNotFound(t *testing.T) {
	src := sensor.Source{Name: "test", Command: "fanmon-no-such-binary", Timeout: 5 * time.Second}

	out := src.Read(context.Background())

	assert.False(t, out.Succeeded)
	assert.Equal(t, sensor.FailureNotFound, out.Failure)
	assert.Empty(t, out.Text)
}

func TestSourceReadTimeout(t *testing.T) {
	src := sensor.Source{Name: "test", Command: "sleep", Args: []string{"5"}, Timeout: 100 * time.Millisecond}

	start := time.Now()
	out := src.Read(context.Background())

	assert.False(t, out.Succeeded)
	assert.Equal(t, sensor.FailureTimeout, out.Failure)
	assert.Less(t, time.Since(start), 3*time.Second, "The read must not wait for the hung tool")
}

func TestSourceReadNonZeroExitKeepsOutput(t *testing.T) {
	src := sensor.Source{Name: "test", Command: "sh", Args: []string{"-c", "echo boom; exit 3"}, Timeout: 5 * time.Second}

	out := src.Read(context.Background())

	require.True(t, out.Succeeded, "Non-zero exit with output still counts as a successful read")
	assert.Equal(t, "boom\n", out.Text)
}

func TestSourceReadIgnoresStderr(t *testing.T) {
	src := sensor.Source{Name: "test", Command: "sh", Args: []string{"-c", "echo visible; echo hidden 1>&2"}, Timeout: 5 * time.Second}

	out := src.Read(context.Background())

	require.True(t, out.Succeeded)
	assert.Equal(t, "visible\n", out.Text)
}
