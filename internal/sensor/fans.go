package sensor

import (
	"regexp"
	"strconv"
	"strings"
)

// recognizedChannels is the fixed set of fan channels worth reporting.
var recognizedChannels = []string{"FAN1", "FAN2", "FAN3", "FAN4", "FANA", "FANB"}

// rpmPattern matches an RPM reading of 3 to 5 digits.
var rpmPattern = regexp.MustCompile(`\d{3,5}`)

// ParseFanStatus scans a sensor-data-record dump for the recognized
// fan channels. Any line containing a channel name contributes the
// first 3-5 digit run on that line as the channel's RPM; when a
// channel appears on more than one line, the last line wins. A nil
// result means the tool failed or timed out; an empty result means it
// ran and matched nothing.
func ParseFanStatus(raw RawOutput) FanStatus {
	if !raw.Succeeded {
		return nil
	}

	fans := FanStatus{}
	for _, line := range strings.Split(raw.Text, "\n") {
		for _, channel := range recognizedChannels {
			if !strings.Contains(line, channel) {
				continue
			}
			if match := rpmPattern.FindString(line); match != "" {
				rpm, _ := strconv.Atoi(match)
				fans[channel] = rpm
			}
		}
	}

	return fans
}
