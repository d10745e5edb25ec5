package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It starts out usable so packages can log
// before Init runs, e.g. from tests.
var Log = logrus.New()

// Init configures Log from LOG_LEVEL (default "info") and LOG_FORMAT
// ("json" or text). Call once from main.
func Init() {
	Configure(Log, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), os.Stdout)
}

// Configure applies a level name and format to l. Unknown levels fall back
// to info.
func Configure(l *logrus.Logger, levelName, format string, out io.Writer) {
	if levelName == "" {
		levelName = "info"
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
	l.SetOutput(out)
}

// Discard returns a logger that drops everything
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
