package log

import (
	"fmt"
	"io"
	"os"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Logger is the shared go-kit logger of the command line tools.
var Logger = kitlog.NewNopLogger()

// New returns a logfmt logger writing to w that drops entries below lvl
// (one of debug, info, warn, error).
func New(w io.Writer, lvl string) (kitlog.Logger, error) {
	allow, err := allowLevel(lvl)
	if err != nil {
		return nil, err
	}

	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(w))
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)

	// Must put the level filter last for efficiency.
	return level.NewFilter(logger, allow), nil
}

// InitLogger initialises the global logger on stderr and returns it.
func InitLogger(lvl string) (kitlog.Logger, error) {
	logger, err := New(os.Stderr, lvl)
	if err != nil {
		return nil, err
	}

	Logger = logger

	return logger, nil
}

func allowLevel(lvl string) (level.Option, error) {
	switch lvl {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	}

	return nil, fmt.Errorf("invalid log level %q", lvl)
}
