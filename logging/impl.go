package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging surface every package in this module takes.
type Logger interface {
	Debug(args ...interface{})
	Debugf(template string, args ...interface{})
	Debugw(msg string, keysAndValues ...interface{})
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warn(args ...interface{})
	Warnf(template string, args ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Error(args ...interface{})
	Errorf(template string, args ...interface{})
	Errorw(msg string, keysAndValues ...interface{})

	// Sublogger returns a logger named "<name>.<subname>" that shares outputs and level.
	Sublogger(subname string) Logger
	// SetLevel changes the minimum enabled level of this logger and its subloggers.
	SetLevel(level zapcore.Level)
	// Level returns the minimum enabled level.
	Level() zapcore.Level
	// AsZap returns the underlying sugared logger.
	AsZap() *zap.SugaredLogger
	Sync() error
}

type impl struct {
	name   string
	level  zap.AtomicLevel
	logger *zap.SugaredLogger
}

func (imp *impl) Sublogger(subname string) Logger {
	newName := subname
	if imp.name != "" {
		newName = fmt.Sprintf("%s.%s", imp.name, subname)
	}
	return &impl{
		name:   newName,
		level:  imp.level,
		logger: imp.logger.Named(subname),
	}
}

func (imp *impl) SetLevel(level zapcore.Level) {
	imp.level.SetLevel(level)
}

func (imp *impl) Level() zapcore.Level {
	return imp.level.Level()
}

func (imp *impl) AsZap() *zap.SugaredLogger {
	return imp.logger
}

func (imp *impl) Sync() error {
	return imp.logger.Sync()
}

func (imp *impl) Debug(args ...interface{}) {
	imp.logger.Debug(args...)
}

func (imp *impl) Debugf(template string, args ...interface{}) {
	imp.logger.Debugf(template, args...)
}

func (imp *impl) Debugw(msg string, keysAndValues ...interface{}) {
	imp.logger.Debugw(msg, keysAndValues...)
}

func (imp *impl) Info(args ...interface{}) {
	imp.logger.Info(args...)
}

func (imp *impl) Infof(template string, args ...interface{}) {
	imp.logger.Infof(template, args...)
}

func (imp *impl) Infow(msg string, keysAndValues ...interface{}) {
	imp.logger.Infow(msg, keysAndValues...)
}

func (imp *impl) Warn(args ...interface{}) {
	imp.logger.Warn(args...)
}

func (imp *impl) Warnf(template string, args ...interface{}) {
	imp.logger.Warnf(template, args...)
}

func (imp *impl) Warnw(msg string, keysAndValues ...interface{}) {
	imp.logger.Warnw(msg, keysAndValues...)
}

func (imp *impl) Error(args ...interface{}) {
	imp.logger.Error(args...)
}

func (imp *impl) Errorf(template string, args ...interface{}) {
	imp.logger.Errorf(template, args...)
}

func (imp *impl) Errorw(msg string, keysAndValues ...interface{}) {
	imp.logger.Errorw(msg, keysAndValues...)
}
