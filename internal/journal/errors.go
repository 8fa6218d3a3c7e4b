package journal

import "codeberg.org/mutker/fanmon/internal/errors"

const (
	// Configuration Errors
	ErrInvalidDir = errors.ErrorCode("journal_invalid_directory")

	// Setup Errors
	ErrCreateDir = errors.ErrorCode("journal_create_directory_failed")

	// Write Errors
	ErrInvalidSnapshot = errors.ErrorCode("journal_invalid_snapshot")
	ErrEncode          = errors.ErrorCode("journal_encode_failed")
	ErrAppend          = errors.ErrorCode("journal_append_failed")

	// Read Errors
	ErrRead = errors.ErrorCode("journal_read_failed")
)
