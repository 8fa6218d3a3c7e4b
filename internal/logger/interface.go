package logger

// Logger is the logging surface handed to components that hold a
// reference instead of calling the package functions directly.
type Logger interface {
	Debug() *LogEvent
	Info() *LogEvent
	Warn() *LogEvent
	Error() *LogEvent
}

type defaultLogger struct{}

func (defaultLogger) Debug() *LogEvent { return Debug() }
func (defaultLogger) Info() *LogEvent  { return Info() }
func (defaultLogger) Warn() *LogEvent  { return Warn() }
func (defaultLogger) Error() *LogEvent { return Error() }

// Default returns a Logger backed by the package-level logger.
func Default() Logger {
	return defaultLogger{}
}
