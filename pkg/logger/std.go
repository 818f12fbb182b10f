// Copyright 2020 Envoyproxy Authors
//
//   Licensed under the Apache License, Version 2.0 (the "License");
//   you may not use this file except in compliance with the License.
//   You may obtain a copy of the License at
//
//       http://www.apache.org/licenses/LICENSE-2.0
//
//   Unless required by applicable law or agreed to in writing, software
//   distributed under the License is distributed on an "AS IS" BASIS,
//   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//   See the License for the specific language governing permissions and
//   limitations under the License.
package logger

import (
	"log"
	"strings"

	cplog "github.com/envoyproxy/go-control-plane/pkg/log"
)

// Logger is the go-control-plane logger extended with Fatalf, which the
// entry point uses for unrecoverable startup errors.
type Logger interface {
	cplog.Logger
	Fatalf(format string, args ...interface{})
}

// New returns a Zap logger for the "json" format and a Std logger otherwise.
func New(format, level string) (Logger, error) {
	if strings.EqualFold(format, "json") {
		return NewZap(level)
	}
	return &Std{Debug: strings.EqualFold(level, "debug")}, nil
}

// Std logs through the standard library log package. Debugf is silent
// unless Debug is true.
type Std struct {
	Debug bool
}

func (l *Std) Debugf(format string, args ...interface{}) {
	if l.Debug {
		log.Printf(format+"\n", args...)
	}
}

func (l *Std) Infof(format string, args ...interface{}) {
	log.Printf(format+"\n", args...)
}

func (l *Std) Warnf(format string, args ...interface{}) {
	log.Printf(format+"\n", args...)
}

func (l *Std) Errorf(format string, args ...interface{}) {
	log.Printf(format+"\n", args...)
}

func (l *Std) Fatalf(format string, args ...interface{}) {
	log.Fatalf(format+"\n", args...)
}
