package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
)

type Level logging.Level

// The levels that can be passed to the SetLevel function.
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var levelNames = map[Level]string{
	Debug:   "debug",
	Info:    "info",
	Notice:  "notice",
	Warning: "warning",
	Error:   "error",
}

var backendLevels = map[Level]logging.Level{
	Debug:   logging.DEBUG,
	Info:    logging.INFO,
	Notice:  logging.NOTICE,
	Warning: logging.WARNING,
	Error:   logging.ERROR,
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// ParseLevel maps a level name such as "info" or "WARNING" to a Level.
// "warn" is accepted as an alias for warning.
func ParseLevel(name string) (Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "warn" {
		return Warning, nil
	}
	for level, levelName := range levelNames {
		if levelName == name {
			return level, nil
		}
	}
	return Notice, fmt.Errorf("unknown log level %q", name)
}

// The logger format
var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

// The internal leveled logger backend
var leveledBackend logging.LeveledBackend

// The writer behind the active backend
var currentSink io.Writer

// Per-module overrides, reapplied when the sink changes
var moduleLevels = map[string]logging.Level{}

// The logger interface
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// Create a new named logger.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// Override the backend output sink. The current levels are preserved.
func SetSink(sink io.Writer) {
	level := logging.NOTICE
	if leveledBackend != nil {
		level = leveledBackend.GetLevel("")
	}

	currentSink = sink
	backend := logging.NewLogBackend(sink, "", 0)
	backendWithFormatter := logging.NewBackendFormatter(backend, format)
	leveledBackend = logging.AddModuleLevel(backendWithFormatter)
	leveledBackend.SetLevel(level, "")
	for module, moduleLevel := range moduleLevels {
		leveledBackend.SetLevel(moduleLevel, module)
	}
	logging.SetBackend(leveledBackend)
}

// Set logger verbosity for every module without an override.
func SetLevel(level Level) {
	leveledBackend.SetLevel(backendLevels[level], "")
}

// SetModuleLevel overrides the verbosity of a single named logger.
func SetModuleLevel(module string, level Level) {
	moduleLevels[module] = backendLevels[level]
	leveledBackend.SetLevel(backendLevels[level], module)
}

// ResetModuleLevels drops all per-module overrides.
func ResetModuleLevels() {
	for module := range moduleLevels {
		delete(moduleLevels, module)
	}
	SetSink(currentSink)
}

// Stdout may carry image data, so logs default to stderr.
func init() {
	SetSink(os.Stderr)
	SetLevel(Notice)
}
