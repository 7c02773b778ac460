// Copyright 2024 Atomstate Technologies Private Limited
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

package common

import "go.uber.org/zap"

// Exit codes for the process-level error kinds this tool can report.
const (
	ExitSuccess            = 0
	ExitArgumentError      = 2
	ExitIOError            = 3
	ExitMalformedLineError = 4
)

// Error is a small typed error value carrying a human-readable message, an
// optional wrapped cause, and the process exit code that should accompany it.
type Error struct {
	Message  string
	Cause    error
	ExitCode int
}

// Error implements the error interface, including the cause when present.
func (e Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As.
func (e Error) Unwrap() error {
	return e.Cause
}

// Log writes the error to the given logger, including the cause if present.
func (e Error) Log(logger *zap.Logger) {
	if e.Cause != nil {
		logger.Error(e.Message, zap.Error(e.Cause), zap.Int("exitCode", e.ExitCode))
	} else {
		logger.Error(e.Message, zap.Int("exitCode", e.ExitCode))
	}
}

// NewArgumentError reports a bad CLI flag or unparseable value (exit code 2).
func NewArgumentError(message string, cause error) error {
	return Error{Message: message, Cause: cause, ExitCode: ExitArgumentError}
}

// NewIOError reports a failure to open or read/write a file (exit code 3).
func NewIOError(message string, cause error) error {
	return Error{Message: message, Cause: cause, ExitCode: ExitIOError}
}

// NewMalformedLineError reports a fatal line-format error (exit code 4).
func NewMalformedLineError(message string, cause error) error {
	return Error{Message: message, Cause: cause, ExitCode: ExitMalformedLineError}
}
