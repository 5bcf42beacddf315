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

package log

import (
	"strings"
	"sync"

	"github.com/jackal-xmpp/runqueue/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// Level represents log level type.
type Level int

const (
	// DebugLevel represents DEBUG log level.
	DebugLevel Level = iota

	// InfoLevel represents INFO log level.
	InfoLevel

	// WarningLevel represents WARNING log level.
	WarningLevel

	// ErrorLevel represents ERROR log level.
	ErrorLevel

	// FatalLevel represents FATAL log level.
	FatalLevel

	// OffLevel represents a disabled log level.
	OffLevel
)

// String returns log level string representation.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarningLevel:
		return "warning"
	case ErrorLevel:
		return "error"
	case FatalLevel:
		return "fatal"
	default:
		return "off"
	}
}

// Logger represents a common logger interface.
type Logger interface {
	// Debugf uses fmt.Sprintf to log a 'debug' templated message.
	Debugf(msg string, args ...interface{})

	// Debugw writes a 'debug' message to configured logger with some additional context.
	Debugw(msg string, keysAndValues ...interface{})

	// Infof uses fmt.Sprintf to log an 'info' templated message.
	Infof(msg string, args ...interface{})

	// Infow writes an 'info' message to configured logger with some additional context.
	Infow(msg string, keysAndValues ...interface{})

	// Warnf uses fmt.Sprintf to log a 'warning' templated message.
	Warnf(msg string, args ...interface{})

	// Warnw writes a 'warning' message to configured logger with some additional context.
	Warnw(msg string, keysAndValues ...interface{})

	// Errorf uses fmt.Sprintf to log an 'error' templated message.
	Errorf(msg string, args ...interface{})

	// Errorw writes an 'error' message to configured logger with some additional context.
	Errorw(msg string, keysAndValues ...interface{})

	// Fatalf uses fmt.Sprintf to log a 'fatal' templated message.
	Fatalf(msg string, args ...interface{})

	// Fatalw writes a 'fatal' message to configured logger with some additional context.
	Fatalw(msg string, keysAndValues ...interface{})
}

var loggedMessages = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "vireo",
		Subsystem: "log",
		Name:      "messages_total",
		Help:      "Total number of logged messages.",
	},
	[]string{"level"},
)

func init() {
	prometheus.MustRegister(loggedMessages)
}

var (
	mtx sync.RWMutex

	inst  = Disabled
	level = OffLevel
	rq    *runqueue.RunQueue
)

// SetLogger sets package level logger instance and level.
func SetLogger(lg Logger, lgLevel string) {
	var lv = OffLevel
	switch strings.ToLower(lgLevel) {
	case "debug":
		lv = DebugLevel
	case "info":
		lv = InfoLevel
	case "warn", "warning":
		lv = WarningLevel
	case "error":
		lv = ErrorLevel
	case "fatal":
		lv = FatalLevel
	}
	mtx.Lock()
	rq = runqueue.New("log")
	inst = lg
	level = lv
	mtx.Unlock()
}

// Close stops logger run queue waiting until all pending log messages are written.
func Close() {
	mtx.Lock()
	defer mtx.Unlock()
	if rq == nil {
		return
	}
	ch := make(chan struct{})
	rq.Stop(func() { close(ch) })
	<-ch
	rq = nil
	inst = Disabled
	level = OffLevel
}

// Debugf uses fmt.Sprintf to log a 'debug' templated message.
func Debugf(msg string, args ...interface{}) {
	logf(DebugLevel, msg, args...)
}

// Debugw writes a 'debug' message to configured logger with some additional context.
func Debugw(msg string, keysAndValues ...interface{}) {
	logw(DebugLevel, msg, keysAndValues...)
}

// Infof uses fmt.Sprintf to log an 'info' templated message.
func Infof(msg string, args ...interface{}) {
	logf(InfoLevel, msg, args...)
}

// Infow writes an 'info' message to configured logger with some additional context.
func Infow(msg string, keysAndValues ...interface{}) {
	logw(InfoLevel, msg, keysAndValues...)
}

// Warnf uses fmt.Sprintf to log a 'warning' templated message.
func Warnf(msg string, args ...interface{}) {
	logf(WarningLevel, msg, args...)
}

// Warnw writes a 'warning' message to configured logger with some additional context.
func Warnw(msg string, keysAndValues ...interface{}) {
	logw(WarningLevel, msg, keysAndValues...)
}

// Errorf uses fmt.Sprintf to log an 'error' templated message.
func Errorf(msg string, args ...interface{}) {
	logf(ErrorLevel, msg, args...)
}

// Errorw writes an 'error' message to configured logger with some additional context.
func Errorw(msg string, keysAndValues ...interface{}) {
	logw(ErrorLevel, msg, keysAndValues...)
}

// Fatalf uses fmt.Sprintf to log a 'fatal' templated message.
func Fatalf(msg string, args ...interface{}) {
	logf(FatalLevel, msg, args...)
}

// Fatalw writes a 'fatal' message to configured logger with some additional context.
func Fatalw(msg string, keysAndValues ...interface{}) {
	logw(FatalLevel, msg, keysAndValues...)
}

func logf(lv Level, msg string, args ...interface{}) {
	mtx.RLock()
	defer mtx.RUnlock()
	if rq == nil || lv < level {
		return
	}
	lg := inst
	rq.Run(func() {
		switch lv {
		case DebugLevel:
			lg.Debugf(msg, args...)
		case InfoLevel:
			lg.Infof(msg, args...)
		case WarningLevel:
			lg.Warnf(msg, args...)
		case ErrorLevel:
			lg.Errorf(msg, args...)
		case FatalLevel:
			lg.Fatalf(msg, args...)
		}
		loggedMessages.With(prometheus.Labels{"level": lv.String()}).Inc()
	})
}

func logw(lv Level, msg string, keysAndValues ...interface{}) {
	mtx.RLock()
	defer mtx.RUnlock()
	if rq == nil || lv < level {
		return
	}
	lg := inst
	rq.Run(func() {
		switch lv {
		case DebugLevel:
			lg.Debugw(msg, keysAndValues...)
		case InfoLevel:
			lg.Infow(msg, keysAndValues...)
		case WarningLevel:
			lg.Warnw(msg, keysAndValues...)
		case ErrorLevel:
			lg.Errorw(msg, keysAndValues...)
		case FatalLevel:
			lg.Fatalw(msg, keysAndValues...)
		}
		loggedMessages.With(prometheus.Labels{"level": lv.String()}).Inc()
	})
}
