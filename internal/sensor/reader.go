package sensor

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"codeberg.org/mutker/fanmon/internal/errors"
	"codeberg.org/mutker/fanmon/internal/logger"
)

// Source invokes one external diagnostic tool with a bounded runtime.
type Source struct {
	Name    string
	Command string
	Args    []string
	Timeout time.Duration
}

// Read runs the source command once and captures its stdout. It never
// blocks past the source timeout and never returns an error: failures
// are folded into the RawOutput. A tool that exits non-zero but still
// printed output counts as succeeded; its exit status is not consulted.
func (s Source) Read(ctx context.Context) RawOutput {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.Command, s.Args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	err := cmd.Run()
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		logger.Debug().
			Str("source", s.Name).
			Dur("timeout", s.Timeout).
			Msg("Source timed out")
		return RawOutput{Succeeded: false, Failure: FailureTimeout}
	case err == nil:
		return RawOutput{Text: stdout.String(), Succeeded: true}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return RawOutput{Text: stdout.String(), Succeeded: true}
	}

	logger.Debug().
		Str("source", s.Name).
		Str("command", s.Command).
		Err(err).
		Msg("Source unavailable")

	return RawOutput{Succeeded: false, Failure: FailureNotFound}
}
