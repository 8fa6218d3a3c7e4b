package sensor

import (
	"strconv"
	"strings"
)

const (
	driveHeaderMarker = "drivetemp-scsi"
	driveValueMarker  = "temp1:"
	minHeaderParts    = 3
)

// ParseDriveTemps extracts per-drive temperatures from a sensors-style
// dump. A header line like "drivetemp-scsi-0-f0" establishes the
// current device from its trailing hyphen token and seeds it with no
// value; a following "temp1:" line supplies the value between the
// first '+' and the '°' after it. The device cursor starts empty on
// every call, so a value line ahead of any header is ignored.
func ParseDriveTemps(raw RawOutput) DriveTemps {
	temps := DriveTemps{}
	if !raw.Succeeded {
		return temps
	}

	device := ""
	for _, line := range strings.Split(raw.Text, "\n") {
		switch {
		case strings.Contains(line, driveHeaderMarker):
			parts := strings.Split(strings.TrimSpace(line), "-")
			if len(parts) < minHeaderParts {
				continue
			}
			device = parts[len(parts)-1]
			if device == "" {
				continue
			}
			temps[device] = nil
		case strings.Contains(line, driveValueMarker):
			if device == "" {
				continue
			}
			if value, ok := parseDriveValue(line); ok {
				temps[device] = &value
			}
		}
	}

	return temps
}

// parseDriveValue pulls the reading out of a line shaped like
// "temp1:        +41.0°C  (low = +0.0°C, high = +60.0°C)".
func parseDriveValue(line string) (float64, bool) {
	_, after, found := strings.Cut(line, "+")
	if !found {
		return 0, false
	}

	body, _, found := strings.Cut(after, "°")
	if !found {
		return 0, false
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(body), 64)
	if err != nil {
		return 0, false
	}

	return value, true
}
