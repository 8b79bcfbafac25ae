// Package logger provides the application's leveled, printf-style logger.
// It keeps a small wrapper API on top of zap so services can tag their
// output with the Telegram channel they are working for.
package logger

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logger configuration
type Config struct {
	Level       string
	Format      string
	Development bool
}

var (
	baseMu sync.RWMutex
	base   = mustBuild(Config{Level: "info", Format: "console"})
)

// Logger is a channel-aware wrapper around a zap sugared logger
type Logger struct {
	sugar     *zap.SugaredLogger
	channelID string
}

// New creates a new logger with the given channel ID
func New(channelID string) *Logger {
	baseMu.RLock()
	sugar := base.Sugar()
	baseMu.RUnlock()

	if channelID != "" {
		sugar = sugar.With("channel", channelID)
	}
	return &Logger{
		sugar:     sugar,
		channelID: channelID,
	}
}

// Configure replaces the base zap logger used by subsequently created loggers
// and resets the global logger.
func Configure(cfg Config) error {
	zl, err := build(cfg)
	if err != nil {
		return err
	}

	baseMu.Lock()
	base = zl
	baseMu.Unlock()

	SetGlobal(New(""))
	return nil
}

// ChannelID returns the channel tag of the logger
func (l *Logger) ChannelID() string {
	return l.channelID
}

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) {
	l.sugar.Debugf(format, v...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, v ...interface{}) {
	l.sugar.Warnf(format, v...)
}

// Sync flushes buffered log entries
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}

// Global logger instance for application-wide logging
var Global = New("")

// SetGlobal sets the global logger
func SetGlobal(logger *Logger) {
	Global = logger
}

// ParseLevel parses a level name such as "debug" or "warn". An empty name is info.
func ParseLevel(name string) (zapcore.Level, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

func build(cfg Config) (*zap.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var encoderConfig zapcore.EncoderConfig
	if cfg.Development {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	} else {
		encoderConfig = zap.NewProductionEncoderConfig()
	}
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch cfg.Format {
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level)

	options := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1)}
	if cfg.Development {
		options = append(options, zap.Development(), zap.AddStacktrace(zapcore.ErrorLevel))
	}

	return zap.New(core, options...), nil
}

func mustBuild(cfg Config) *zap.Logger {
	zl, err := build(cfg)
	if err != nil {
		return zap.NewNop()
	}
	return zl
}
