package sensor

import "time"

// FailureKind classifies why a source produced no usable output.
type FailureKind string

const (
	FailureNone     FailureKind = ""
	FailureNotFound FailureKind = "not_found"
	FailureTimeout  FailureKind = "timeout"
)

// RawOutput is the result of one bounded source invocation. It is
// produced once per read and not retained beyond parsing.
type RawOutput struct {
	Text      string
	Succeeded bool
	Failure   FailureKind
}

// DriveTemps maps a drive device identifier to its temperature in
// degrees Celsius. A key with a nil value records a drive whose header
// was seen but whose temperature line was missing or unparseable; that
// upstream inconsistency is preserved rather than dropped.
type DriveTemps map[string]*float64

// FanStatus maps a fan channel name to its RPM reading. A nil map
// means the fan tool itself failed or timed out; an empty map means
// the tool ran but reported no recognized channels.
type FanStatus map[string]int

// Snapshot is one immutable, timestamped observation of host
// thermals. Absence of any field other than the timestamp means
// "unobservable", never an error. The JSON field names are the
// persisted format and must stay stable across versions.
type Snapshot struct {
	Timestamp  time.Time  `json:"timestamp"`
	DriveTemps DriveTemps `json:"drive_temps"`
	CPUTemp    *float64   `json:"cpu_temp"`
	FanStatus  FanStatus  `json:"fan_status"`
}
