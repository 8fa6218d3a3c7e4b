package sensor

import (
	"bytes"
	"io"
	"os"
	"time"

	"codeberg.org/mutker/fanmon/internal/errors"
	"gopkg.in/yaml.v3"
)

const defaultTimeout = 5 * time.Second

// Config names the three diagnostic sources one poll reads from.
type Config struct {
	DriveTemps Source
	CPUTemp    Source
	FanStatus  Source
}

func DefaultConfig() Config {
	return Config{
		DriveTemps: Source{
			Name:    "drive_temps",
			Command: "sensors",
			Args:    []string{"-u"},
			Timeout: defaultTimeout,
		},
		CPUTemp: Source{
			Name:    "cpu_temp",
			Command: "sh",
			Args:    []string{"-c", "cat /sys/class/thermal/thermal_zone*/temp 2>/dev/null | head -1"},
			Timeout: defaultTimeout,
		},
		FanStatus: Source{
			Name:    "fan_status",
			Command: "ipmitool",
			Args:    []string{"sdr"},
			Timeout: defaultTimeout,
		},
	}
}

func (c Config) Validate() error {
	errFactory := errors.New()

	for _, src := range []Source{c.DriveTemps, c.CPUTemp, c.FanStatus} {
		if src.Command == "" || src.Timeout <= 0 {
			return errFactory.WithData(ErrInvalidSource, src.Name)
		}
	}

	return nil
}

// sourceOverride is the file form of a source override. Overriding the
// command replaces its arguments wholesale.
type sourceOverride struct {
	Command        string   `yaml:"command"`
	Args           []string `yaml:"args"`
	TimeoutSeconds int      `yaml:"timeout_seconds"`
}

type sourcesFile struct {
	DriveTemps *sourceOverride `yaml:"drive_temps"`
	CPUTemp    *sourceOverride `yaml:"cpu_temp"`
	FanStatus  *sourceOverride `yaml:"fan_status"`
}

// LoadConfig returns the built-in source set, overridden by the YAML
// file at path when one is given. Unknown fields in the file are
// rejected so a typoed override cannot silently fall back to a
// default command.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	errFactory := errors.New()

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errFactory.Wrap(ErrReadSources, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)

	var overrides sourcesFile
	if err := decoder.Decode(&overrides); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errFactory.Wrap(ErrParseSources, err)
	}

	cfg.DriveTemps.apply(overrides.DriveTemps)
	cfg.CPUTemp.apply(overrides.CPUTemp)
	cfg.FanStatus.apply(overrides.FanStatus)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (s *Source) apply(o *sourceOverride) {
	if o == nil {
		return
	}
	if o.Command != "" {
		s.Command = o.Command
		s.Args = o.Args
	}
	if o.TimeoutSeconds > 0 {
		s.Timeout = time.Duration(o.TimeoutSeconds) * time.Second
	}
}
