package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelNone
)

var (
	level  zap.AtomicLevel
	logger *zap.SugaredLogger
)

func init() {
	level = zap.NewAtomicLevelAt(zapcore.WarnLevel)

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = level
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	cfg.EncoderConfig.TimeKey = "T"
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		l = zap.NewNop()
	}
	logger = l.Sugar()
}

// SetLevel sets the minimum level for log output.
// LevelNone disables logging completely.
func SetLevel(l Level) {
	switch l {
	case LevelDebug:
		level.SetLevel(zapcore.DebugLevel)
	case LevelInfo:
		level.SetLevel(zapcore.InfoLevel)
	case LevelWarning:
		level.SetLevel(zapcore.WarnLevel)
	case LevelError:
		level.SetLevel(zapcore.ErrorLevel)
	case LevelNone:
		// above anything we ever log
		level.SetLevel(zapcore.FatalLevel)
	}
}

// ParseLevel maps a level name ("debug", "info", "warning", "error") to a
// Level. Unknown names yield LevelNone.
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warning", "warn":
		return LevelWarning
	case "error":
		return LevelError
	default:
		return LevelNone
	}
}

func Debug(msg string, v ...interface{}) {
	logger.Debugf(msg, v...)
}

func Info(msg string, v ...interface{}) {
	logger.Infof(msg, v...)
}

func Warning(msg string, v ...interface{}) {
	logger.Warnf(msg, v...)
}

func Error(msg string, v ...interface{}) {
	logger.Errorf(msg, v...)
}

// Sync flushes buffered log output.
func Sync() {
	_ = logger.Sync()
}
