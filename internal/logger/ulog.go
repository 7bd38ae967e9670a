// Package logger is the process-wide structured logger. Every record carries
// the service name, the authenticated user and, inside HTTP handlers, the
// request id set by chi.
package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/fhuszti/portfolio-ms-go/internal/api_context"
	"github.com/go-chi/chi/v5/middleware"
)

const serviceName = "portfolio-ms"

var std *slog.Logger

// contextHandler appends request scoped attributes. They land after svc in
// text output.
type contextHandler struct{ next slog.Handler }

func (h contextHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.next.Enabled(ctx, lvl)
}

func (h contextHandler) Handle(ctx context.Context, r slog.Record) error {
	uid, ok := api_context.AuthUserIDFromContext(ctx)
	if !ok {
		uid = "anonymous"
	}
	r.AddAttrs(slog.String("uid", uid))
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		r.AddAttrs(slog.String("req", reqID))
	}
	return h.next.Handle(ctx, r)
}

func (h contextHandler) WithAttrs(a []slog.Attr) slog.Handler {
	return contextHandler{next: h.next.WithAttrs(a)}
}

func (h contextHandler) WithGroup(n string) slog.Handler {
	return contextHandler{next: h.next.WithGroup(n)}
}

// Init configures the default logger from the environment:
//
//	LOG_FORMAT    json|text (default: json)
//	LOG_LEVEL     debug|info|warn|error (default: info)
//	LOG_SOURCE    true|false (default: false)
func Init() {
	initWith(os.Stdout)
}

func initWith(out io.Writer) {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(os.Getenv("LOG_LEVEL")),
		AddSource: parseBool(os.Getenv("LOG_SOURCE")),
	}

	var base slog.Handler = slog.NewJSONHandler(out, opts)
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "text") {
		base = slog.NewTextHandler(out, opts)
	}

	std = slog.New(contextHandler{next: base}).With("svc", serviceName)
	slog.SetDefault(std)

	// asynq and the drivers log through the standard logger
	log.SetFlags(0)
	log.SetOutput(slog.NewLogLogger(base, slog.LevelInfo).Writer())
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseBool(s string) bool {
	b, _ := strconv.ParseBool(s)
	return b
}

func emit(ctx context.Context, lvl slog.Level, msg string, attrs ...any) {
	l := std
	if l == nil {
		l = slog.Default()
	}
	l.Log(ctx, lvl, msg, attrs...)
}

func Debug(ctx context.Context, msg string, attrs ...any) { emit(ctx, slog.LevelDebug, msg, attrs...) }
func Info(ctx context.Context, msg string, attrs ...any)  { emit(ctx, slog.LevelInfo, msg, attrs...) }
func Warn(ctx context.Context, msg string, attrs ...any)  { emit(ctx, slog.LevelWarn, msg, attrs...) }
func Error(ctx context.Context, msg string, attrs ...any) { emit(ctx, slog.LevelError, msg, attrs...) }

func Debugf(ctx context.Context, format string, a ...any) {
	emit(ctx, slog.LevelDebug, fmt.Sprintf(format, a...))
}

func Infof(ctx context.Context, format string, a ...any) {
	emit(ctx, slog.LevelInfo, fmt.Sprintf(format, a...))
}

func Warnf(ctx context.Context, format string, a ...any) {
	emit(ctx, slog.LevelWarn, fmt.Sprintf(format, a...))
}

func Errorf(ctx context.Context, format string, a ...any) {
	emit(ctx, slog.LevelError, fmt.Sprintf(format, a...))
}
