/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package logging builds the zap logger used by association builders.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dirpx.dev/assoc/apis"
)

// New creates a logger from the LogLevel and LogFormat knobs of cfg.
// Output goes to stderr.
func New(cfg apis.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("assoc(logging): %w", err)
	}
	return zap.New(zapcore.NewCore(newEncoder(cfg.LogFormat), zapcore.Lock(os.Stderr), level)), nil
}

// newEncoder creates JSON or console encoder.
func newEncoder(format string) zapcore.Encoder {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	if format == "console" {
		return zapcore.NewConsoleEncoder(encoderCfg)
	}
	return zapcore.NewJSONEncoder(encoderCfg)
}

// Reflection returns the standard fields describing a declaration.
func Reflection(r apis.Reflection) []zap.Field {
	owner := ""
	if r.Owner() != nil {
		owner = r.Owner().Name()
	}
	return []zap.Field{
		zap.String("owner", owner),
		zap.String("association", r.Name()),
		zap.Stringer("macro", r.Macro()),
		zap.String("class_name", r.ClassName()),
	}
}
