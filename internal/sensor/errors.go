package sensor

import "codeberg.org/mutker/fanmon/internal/errors"

const (
	// Configuration Errors
	ErrInvalidSource = errors.ErrorCode("sensor_invalid_source")

	// Sources File Errors
	ErrReadSources  = errors.ErrorCode("sensor_read_sources_failed")
	ErrParseSources = errors.ErrorCode("sensor_parse_sources_failed")
)
