package logger

import (
	"fmt"
	stdlog "log"
	"strings"
)

// Printf-style adapters. *Logger satisfies goose.Logger (Printf, Fatalf)
// and resty.Logger (Errorf, Warnf, Debugf) so third-party output ends up in
// the same JSON stream.

// StdLogger returns a standard library logger whose lines become error
// entries. Used as http.Server.ErrorLog.
func (l *Logger) StdLogger() *stdlog.Logger {
	return stdlog.New(errorWriter{l}, "", 0)
}

type errorWriter struct {
	l *Logger
}

func (w errorWriter) Write(p []byte) (int, error) {
	w.l.Error().Msg(strings.TrimSpace(string(p)))
	return len(p), nil
}

// Fatalf logs at fatal level and exits the process.
func (l *Logger) Fatalf(format string, v ...any) {
	l.Fatal().CallerSkipFrame(1).Msg(fmt.Sprintf(format, v...))
}

func (l *Logger) Errorf(format string, v ...any) {
	l.Error().CallerSkipFrame(1).Msg(fmt.Sprintf(format, v...))
}

func (l *Logger) Warnf(format string, v ...any) {
	l.Warn().CallerSkipFrame(1).Msg(fmt.Sprintf(format, v...))
}

func (l *Logger) Debugf(format string, v ...any) {
	l.Debug().CallerSkipFrame(1).Msg(fmt.Sprintf(format, v...))
}
