package console

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"codeberg.org/mutker/fanmon/internal/sensor"
)

const rulerWidth = 60

// Render writes the human-readable report for one snapshot. Devices
// without a reading are kept in the record but not displayed.
func Render(w io.Writer, snapshot *sensor.Snapshot) {
	ruler := strings.Repeat("=", rulerWidth)

	fmt.Fprintf(w, "\n%s\n", ruler)
	fmt.Fprintf(w, "Fan Monitor Status - %s\n", snapshot.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(w, "%s\n", ruler)

	if len(snapshot.DriveTemps) > 0 {
		fmt.Fprintf(w, "\nDrive Temperatures:\n")
		for _, device := range sortedKeys(snapshot.DriveTemps) {
			if temp := snapshot.DriveTemps[device]; temp != nil {
				fmt.Fprintf(w, "  %s: %.1f°C\n", device, *temp)
			}
		}
	}

	if snapshot.CPUTemp != nil {
		fmt.Fprintf(w, "\nCPU Temperature: %.1f°C\n", *snapshot.CPUTemp)
	}

	switch {
	case snapshot.FanStatus == nil:
		fmt.Fprintf(w, "\nFan Status: IPMI not available (BMC device not accessible)\n")
	case len(snapshot.FanStatus) == 0:
		fmt.Fprintf(w, "\nFan Status: no recognized fan channels reported\n")
	default:
		fmt.Fprintf(w, "\nFan Status (RPM):\n")
		for _, channel := range sortedKeys(snapshot.FanStatus) {
			fmt.Fprintf(w, "  %s: %d RPM\n", channel, snapshot.FanStatus[channel])
		}
	}
}

// FanWarning writes the explicit warning block shown after the report
// when the poll produced no fan data at all.
func FanWarning(w io.Writer) {
	ruler := strings.Repeat("!", rulerWidth)

	fmt.Fprintf(w, "\n%s\n", ruler)
	fmt.Fprintf(w, "WARNING: IPMI Fan Control NOT Available\n")
	fmt.Fprintf(w, "This system does not have IPMI BMC device access.\n")
	fmt.Fprintf(w, "Fan duty cycle control is not possible at this time.\n")
	fmt.Fprintf(w, "%s\n", ruler)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}
