package utils

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogLevel string

const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelError LogLevel = "error"
)

// Logger writes to stderr so that stdout carries only the command output.
type Logger struct {
	level      LogLevel
	sugar      *zap.SugaredLogger
	RawBodyLog bool
}

func NewLogger(level string, rawBodyLog bool) *Logger {
	return newLogger(parseLogLevel(level), rawBodyLog, os.Stderr)
}

// NewWriterLogger is NewLogger with an explicit destination.
func NewWriterLogger(level string, rawBodyLog bool, w io.Writer) *Logger {
	return newLogger(parseLogLevel(level), rawBodyLog, w)
}

func NewDiscardLogger() *Logger {
	return &Logger{
		level: LevelInfo,
		sugar: zap.NewNop().Sugar(),
	}
}

func newLogger(level LogLevel, rawBodyLog bool, w io.Writer) *Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zapLevel(level),
	)

	return &Logger{
		level:      level,
		sugar:      zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar(),
		RawBodyLog: rawBodyLog,
	}
}

func parseLogLevel(level string) LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func zapLevel(level LogLevel) zapcore.Level {
	switch level {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *Logger) Level() LogLevel {
	return l.level
}

func (l *Logger) with(reqID *string) *zap.SugaredLogger {
	if reqID == nil || *reqID == "" {
		return l.sugar
	}
	return l.sugar.With("req_id", *reqID)
}

func (l *Logger) Info(reqID *string, format string, v ...any) {
	l.with(reqID).Infof(format, v...)
}

func (l *Logger) Error(reqID *string, format string, v ...any) {
	l.with(reqID).Errorf(format, v...)
}

func (l *Logger) Debug(reqID *string, format string, v ...any) {
	l.with(reqID).Debugf(format, v...)
}

func (l *Logger) Fatal(v ...any) {
	l.sugar.Fatal(fmt.Sprint(v...))
}

func (l *Logger) Sync() {
	_ = l.sugar.Sync()
}
