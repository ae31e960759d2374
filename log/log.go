package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nPaBwaYT/kalyna/config"
	"github.com/sirupsen/logrus"
)

// LogFilename is written to the config dir when debugging is on
const LogFilename = "development.log"

// Components tag which part of kalyna wrote an entry. The cipher core tags
// its own entries with "cripta".
const (
	AppComponent     = "app"
	VectorsComponent = "vectors"
)

// NewLogger returns the application logger. With debugging on, JSON entries
// are appended to LogFilename in the config dir at the level given by
// LOG_LEVEL (debug by default). Otherwise everything is discarded.
func NewLogger(cfg *config.AppConfig) *logrus.Entry {
	logger := logrus.New()
	logger.Formatter = &logrus.JSONFormatter{}

	if debugging(cfg) {
		logger.SetLevel(levelFromEnv())
		logger.SetOutput(openLogFile(cfg.ConfigDir))
	} else {
		logger.SetLevel(logrus.ErrorLevel)
		logger.SetOutput(io.Discard)
	}

	return logger.WithFields(logrus.Fields{
		"component": AppComponent,
		"debug":     cfg.Debug,
		"version":   cfg.Version,
		"commit":    cfg.Commit,
		"buildDate": cfg.BuildDate,
	})
}

// ForComponent retags entries written through log
func ForComponent(log *logrus.Entry, component string) *logrus.Entry {
	if log == nil {
		return nil
	}
	return log.WithField("component", component)
}

func debugging(cfg *config.AppConfig) bool {
	return cfg.Debug || os.Getenv("DEBUG") == "TRUE"
}

func levelFromEnv() logrus.Level {
	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return logrus.DebugLevel
	}
	return level
}

// openLogFile falls back to stderr so a read-only config dir does not stop
// the cipher from running
func openLogFile(configDir string) io.Writer {
	file, err := os.OpenFile(filepath.Join(configDir, LogFilename), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to log to %s: %v\n", LogFilename, err)
		return os.Stderr
	}
	return file
}
