package dump

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/op/go-logging.v1"
)

// ErrLogLevel is returned for log level strings NewLogger does not know.
var ErrLogLevel = errors.New("dump: invalid log level")

const logFormat = "%{time:15:04:05.000} %{level:.4s} %{module}: %{message}"

// NewLogger builds a go-logging logger writing to w, filtered at level,
// for use with NewLogSink. Valid levels are ERROR, WARNING, NOTICE, INFO
// and DEBUG, case insensitive; checkpoints only appear at DEBUG.
func NewLogger(w io.Writer, module, level string) (*logging.Logger, error) {
	lvl, err := logLevel(level)
	if err != nil {
		return nil, err
	}
	base := logging.NewLogBackend(w, "", 0)
	formatted := logging.NewBackendFormatter(base, logging.MustStringFormatter(logFormat))
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(lvl, "")
	l := logging.MustGetLogger(module)
	l.SetBackend(leveled)
	return l, nil
}

func logLevel(s string) (logging.Level, error) {
	switch strings.ToUpper(s) {
	case "ERROR":
		return logging.ERROR, nil
	case "WARNING":
		return logging.WARNING, nil
	case "NOTICE":
		return logging.NOTICE, nil
	case "INFO":
		return logging.INFO, nil
	case "DEBUG":
		return logging.DEBUG, nil
	default:
		return logging.ERROR, fmt.Errorf("%w: %q", ErrLogLevel, s)
	}
}
