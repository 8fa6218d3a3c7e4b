package journal

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"time"

	"codeberg.org/mutker/fanmon/internal/errors"
	"codeberg.org/mutker/fanmon/internal/logger"
	"codeberg.org/mutker/fanmon/internal/sensor"
)

// ReadDay loads the snapshots recorded on t's calendar day.
func (j *Journal) ReadDay(t time.Time) ([]sensor.Snapshot, error) {
	return ReadFile(j.PathFor(t))
}

// ReadFile decodes a journal file back into snapshots. Lines that do
// not decode are skipped: a torn write from an interrupted process
// must not hide the rest of the day.
func ReadFile(path string) ([]sensor.Snapshot, error) {
	errFactory := errors.New()

	f, err := os.Open(path)
	if err != nil {
		return nil, errFactory.Wrap(ErrRead, err)
	}
	defer f.Close()

	var snapshots []sensor.Snapshot
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var snapshot sensor.Snapshot
		if err := json.Unmarshal(line, &snapshot); err != nil {
			logger.Debug().Str("path", path).Err(err).Msg("Skipping malformed journal line")
			continue
		}

		snapshots = append(snapshots, snapshot)
	}

	if err := scanner.Err(); err != nil {
		return nil, errFactory.Wrap(ErrRead, err)
	}

	return snapshots, nil
}
