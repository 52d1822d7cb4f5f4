// Package logger configures the go-logging backend shared by the sleefe
// commands.
package logger

import (
	"io"
	"os"

	logging "github.com/op/go-logging"
)

const (
	logFormat      = "%{time:2006-01-02 15:04:05.000} [%{level:.4s}] %{shortfile} %{message}"
	logColorFormat = "%{color}%{time:2006-01-02 15:04:05.000} [%{level:.4s}]%{color:reset} %{shortfile} %{message}"
)

// Init directs all loggers to w, dropping records below the given level
// ("debug", "info", "notice", "warning", "error" or "critical").
func Init(w io.Writer, levelString string, color bool) error {
	level, err := logging.LogLevel(levelString)
	if err != nil {
		return err
	}
	format := logFormat
	if color {
		format = logColorFormat
	}
	backend := logging.AddModuleLevel(
		logging.NewBackendFormatter(
			logging.NewLogBackend(w, "", 0),
			logging.MustStringFormatter(format),
		),
	)
	backend.SetLevel(level, "")
	logging.SetBackend(backend)
	return nil
}

// InitConsoleLog directs all loggers to stderr with colors.
func InitConsoleLog(levelString string) error {
	return Init(os.Stderr, levelString, true)
}
