package logging

import (
	"github.com/gin-gonic/gin"
	"io"
	"log/slog"
	"os"
)

// RequestIDKey is the gin context key holding the id assigned to each request.
const RequestIDKey = "request_id"

var (
	level            = new(slog.LevelVar)
	output io.Writer = os.Stdout
)

type Logger struct {
	*slog.Logger
}

func init() {
	level.Set(slog.LevelDebug)
}

// SetLevel changes the level of every logger, including ones already built.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// ParseLevel accepts the names slog uses: debug, info, warn, error, case-insensitive.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(s))
	return l, err
}

// SetOutput redirects loggers built after the call.
func SetOutput(w io.Writer) {
	output = w
}

func BuildLogger() *Logger {
	logger := Logger{Logger: slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: level}))}
	return &logger
}

func BuildLoggerFromCtx(ctx *gin.Context) *Logger {
	logger := BuildLogger()
	logger = &Logger{Logger: logger.With("path", ctx.Request.URL.Path, "request_id", ctx.GetString(RequestIDKey))}
	return logger
}

func (l *Logger) WithError(err error) *Logger {
	modifiedLogger := Logger{Logger: l.With("error", err.Error())}
	return &modifiedLogger
}
