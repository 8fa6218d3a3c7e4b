package config

import (
	"os"
	"strings"

	"codeberg.org/mutker/fanmon/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultLogLevel = "info"

	defaultLogDir   = "/var/log/fan_control"
	defaultInterval = 60
	defaultDatabase = "/var/lib/fanmon/telemetry.db"

	configName      = "fanmon"
	configType      = "toml"
	configSearchDir = "/etc"
	defaultPrefix   = "FANMON"
)

// Config holds the full application configuration. Values come from
// the config file, FANMON_* environment variables and command-line
// flags, with flags taking precedence.
type Config struct {
	LogDir    string `mapstructure:"log_dir"`
	LogLevel  string `mapstructure:"log_level"`
	Interval  int    `mapstructure:"interval"`
	Monitor   bool   `mapstructure:"monitor"`
	Telemetry bool   `mapstructure:"telemetry"`
	Database  string `mapstructure:"database"`
	Sources   string `mapstructure:"sources"`
}

func Load(opts ...Option) (*Config, error) {
	errFactory := errors.New()

	o := &options{envPrefix: defaultPrefix}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, errFactory.Wrap(errors.ErrInvalidArgument, err)
		}
	}

	flags := pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	configFile := flags.String("config", "", "path to configuration file")
	flags.String("log-dir", defaultLogDir, "directory for snapshot log files")
	flags.String("log-level", DefaultLogLevel, "log level (debug, info, warning, error)")
	flags.Int("interval", defaultInterval, "seconds between polls in monitor mode")
	flags.Bool("monitor", false, "poll continuously instead of once")
	flags.Bool("telemetry", false, "record snapshots to the history database")
	flags.String("database", defaultDatabase, "path to the snapshot history database")
	flags.String("sources", "", "path to a sensor sources override file")

	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, err
		}
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}

	v := viper.New()
	v.SetDefault("log_dir", defaultLogDir)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("interval", defaultInterval)
	v.SetDefault("monitor", false)
	v.SetDefault("telemetry", false)
	v.SetDefault("database", defaultDatabase)
	v.SetDefault("sources", "")

	v.SetEnvPrefix(o.envPrefix)
	v.AutomaticEnv()

	// An explicit file (flag, then environment, then option) wins over
	// the default search path. A missing file is only an error when it
	// was named explicitly.
	explicit := *configFile
	if explicit == "" {
		explicit = os.Getenv(o.envPrefix + "_CONFIG")
	}
	if explicit == "" {
		explicit = o.configFile
	}

	if explicit != "" {
		v.SetConfigFile(explicit)
		v.SetConfigType(configType)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(configSearchDir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	}

	// Flags set on the command line override file and environment values
	flags.Visit(func(f *pflag.Flag) {
		if f.Name == "config" {
			return
		}
		v.Set(strings.ReplaceAll(f.Name, "-", "_"), f.Value.String())
	})

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the loaded configuration for values no component
// downstream could work with.
func (c *Config) Validate() error {
	errFactory := errors.New()

	if !LogLevel(c.LogLevel).IsValid() {
		return errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel)
	}
	if c.Interval <= 0 {
		return errFactory.WithData(errors.ErrInvalidInterval, c.Interval)
	}
	if c.LogDir == "" {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "log_dir must not be empty")
	}
	if c.Telemetry && c.Database == "" {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "database must not be empty when telemetry is enabled")
	}

	return nil
}
