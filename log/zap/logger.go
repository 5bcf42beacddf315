// Copyright 2022 The vireo Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package zap

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a zap backed logger.
type Logger struct {
	sugared *zap.SugaredLogger
}

// NewLogger creates a zap backed logger that writes JSON entries at level or
// above to stdout and, when outputPath is non-empty, to outputPath too.
func NewLogger(level, outputPath string) *Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder

	cfg.OutputPaths = []string{"/dev/stdout"}
	if len(outputPath) > 0 {
		cfg.OutputPaths = append(cfg.OutputPaths, outputPath)
	}
	lg, _ := cfg.Build()
	return &Logger{sugared: lg.Sugar()}
}

// Debugf uses fmt.Sprintf to log a 'debug' templated message.
func (l *Logger) Debugf(msg string, args ...interface{}) {
	l.sugared.Debugf(msg, args...)
	l.sync()
}

// Debugw writes a 'debug' message with some additional context.
func (l *Logger) Debugw(msg string, keysAndValues ...interface{}) {
	l.sugared.Debugw(msg, keysAndValues...)
	l.sync()
}

// Infof uses fmt.Sprintf to log an 'info' templated message.
func (l *Logger) Infof(msg string, args ...interface{}) {
	l.sugared.Infof(msg, args...)
	l.sync()
}

// Infow writes an 'info' message with some additional context.
func (l *Logger) Infow(msg string, keysAndValues ...interface{}) {
	l.sugared.Infow(msg, keysAndValues...)
	l.sync()
}

// Warnf uses fmt.Sprintf to log a 'warning' templated message.
func (l *Logger) Warnf(msg string, args ...interface{}) {
	l.sugared.Warnf(msg, args...)
	l.sync()
}

// Warnw writes a 'warning' message with some additional context.
func (l *Logger) Warnw(msg string, keysAndValues ...interface{}) {
	l.sugared.Warnw(msg, keysAndValues...)
	l.sync()
}

// Errorf uses fmt.Sprintf to log an 'error' templated message.
func (l *Logger) Errorf(msg string, args ...interface{}) {
	l.sugared.Errorf(msg, args...)
	l.sync()
}

// Errorw writes an 'error' message with some additional context.
func (l *Logger) Errorw(msg string, keysAndValues ...interface{}) {
	l.sugared.Errorw(msg, keysAndValues...)
	l.sync()
}

// Fatalf uses fmt.Sprintf to log a 'fatal' templated message.
func (l *Logger) Fatalf(msg string, args ...interface{}) {
	l.sugared.Fatalf(msg, args...)
	l.sync()
}

// Fatalw writes a 'fatal' message with some additional context.
func (l *Logger) Fatalw(msg string, keysAndValues ...interface{}) {
	l.sugared.Fatalw(msg, keysAndValues...)
	l.sync()
}

func (l *Logger) sync() {
	_ = l.sugared.Desugar().Sync()
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.DebugLevel
	}
}
