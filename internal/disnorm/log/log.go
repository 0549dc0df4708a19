package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"sync"
	"sync/atomic"

	charmlog "github.com/charmbracelet/log"
	slogmulti "github.com/samber/slog-multi"

	"disnorm/internal/logging"
)

var (
	initOnce    sync.Once
	initialized atomic.Bool
	logCloser   io.Closer
)

// Setup installs the default slog logger: the console logger on stderr,
// plus JSON records in logFile when it is set. Only the first call has an
// effect.
func Setup(logFile string, debug bool) error {
	var err error
	initOnce.Do(func() {
		console := logging.NewLogger()
		if debug {
			console.SetLevel(charmlog.DebugLevel)
			console.SetReportCaller(true)
		}
		handlers := []slog.Handler{console.Logger}

		if logFile != "" {
			f, openErr := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
			if openErr != nil {
				err = fmt.Errorf("open log file: %w", openErr)
				return
			}
			logCloser = f
			level := slog.LevelInfo
			if debug {
				level = slog.LevelDebug
			}
			handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
				Level:     level,
				AddSource: debug,
			}))
		}

		slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))
		initialized.Store(true)
	})
	return err
}

// Close releases the log file opened by Setup, if any.
func Close() error {
	if logCloser == nil {
		return nil
	}
	return logCloser.Close()
}

func Initialized() bool {
	return initialized.Load()
}

func RecoverPanic(name string, cleanup func()) {
	if r := recover(); r != nil {
		if Initialized() {
			slog.Error(fmt.Sprintf("Panic in %s", name),
				"panic", r,
				"stack", string(debug.Stack()))
		}
		if cleanup != nil {
			cleanup()
		}
	}
}
