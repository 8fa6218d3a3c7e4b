package sensor

import (
	"strconv"
	"strings"
)

const millidegreesPerDegree = 1000.0

// ParseCPUTemp converts a thermal-zone reading in millidegrees to
// degrees Celsius. Only the first line is consulted; anything that is
// not a plain integer yields no reading.
func ParseCPUTemp(raw RawOutput) *float64 {
	if !raw.Succeeded {
		return nil
	}

	line, _, _ := strings.Cut(raw.Text, "\n")
	millidegrees, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return nil
	}

	celsius := float64(millidegrees) / millidegreesPerDegree

	return &celsius
}
