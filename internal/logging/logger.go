package logging

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/gin-gonic/gin"
)

var (
	level = new(slog.LevelVar)

	outputMu sync.RWMutex
	output   io.Writer = os.Stdout
)

func init() {
	level.Set(slog.LevelDebug)
}

type Logger struct {
	*slog.Logger
}

// SetLevel changes the level of every logger built afterwards, and of those already built
func SetLevel(l slog.Level) {
	level.Set(l)
}

// SetOutput changes where loggers built afterwards write to. A nil writer restores stdout
func SetOutput(w io.Writer) {
	outputMu.Lock()
	defer outputMu.Unlock()
	if w == nil {
		w = os.Stdout
	}
	output = w
}

func BuildLogger() *Logger {
	outputMu.RLock()
	defer outputMu.RUnlock()
	logger := Logger{Logger: slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: level}))}
	return &logger
}

func BuildLoggerFromCtx(ctx *gin.Context) *Logger {
	logger := BuildLogger()
	return &Logger{Logger: logger.With("path", ctx.Request.URL.Path, "method", ctx.Request.Method)}
}

func (l *Logger) WithError(err error) *Logger {
	modifiedLogger := Logger{Logger: l.With("error", err.Error())}
	return &modifiedLogger
}
