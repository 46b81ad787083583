package logs

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	log "github.com/sirupsen/logrus"
)

var (
	Logger  = newLogger(io.Discard)
	logFile *os.File
	mu      sync.Mutex
)

// This runs automatically when the package is imported.
// Creates a logger in the current directory as a fallback.
func init() {
	f, err := os.OpenFile("debug.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return
	}
	logFile = f
	Logger = newLogger(f)
}

func newLogger(w io.Writer) *log.Logger {
	l := log.New()
	l.SetOutput(w)
	l.SetLevel(log.DebugLevel)
	l.SetFormatter(&log.TextFormatter{FullTimestamp: true, DisableColors: true})
	return l
}

// Initialize reinitializes the logger to write to a new directory.
func Initialize(logDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if logDir == "" || logDir == "." {
		return nil
	}

	logPath := filepath.Join(logDir, "debug.log")

	Logger.Debugf("Reinitializing logger to: %s", logPath)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		Logger.WithError(err).Warnf("Failed to open new log file at %s", logPath)
		return err
	}

	if logFile != nil {
		logFile.Close()
	}

	logFile = f
	Logger.SetOutput(f)

	Logger.Debugf("Logger successfully reinitialized to: %s", logPath)

	return nil
}

// Close closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		Logger.SetOutput(io.Discard)
		return err
	}
	return nil
}
