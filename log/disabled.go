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

// Disabled is a logger instance that drops every message.
var Disabled Logger = &disabledLogger{}

type disabledLogger struct{}

func (l *disabledLogger) Debugf(_ string, _ ...interface{}) {}
func (l *disabledLogger) Debugw(_ string, _ ...interface{}) {}
func (l *disabledLogger) Infof(_ string, _ ...interface{})  {}
func (l *disabledLogger) Infow(_ string, _ ...interface{})  {}
func (l *disabledLogger) Warnf(_ string, _ ...interface{})  {}
func (l *disabledLogger) Warnw(_ string, _ ...interface{})  {}
func (l *disabledLogger) Errorf(_ string, _ ...interface{}) {}
func (l *disabledLogger) Errorw(_ string, _ ...interface{}) {}
func (l *disabledLogger) Fatalf(_ string, _ ...interface{}) {}
func (l *disabledLogger) Fatalw(_ string, _ ...interface{}) {}
