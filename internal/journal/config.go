package journal

import "codeberg.org/mutker/fanmon/internal/errors"

const defaultDir = "/var/log/fan_control"

type Config struct {
	Dir string
}

func DefaultConfig() Config {
	return Config{
		Dir: defaultDir,
	}
}

func (c Config) Validate() error {
	errFactory := errors.New()
	if c.Dir == "" {
		return errFactory.New(ErrInvalidDir)
	}
	return nil
}
