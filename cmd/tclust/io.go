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

package main

import (
	"io"
	"os"

	ex "github.com/gpertea/mblasm/pkg/common"
)

// openRead opens path for reading, wrapping any failure as an I/O error.
func openRead(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ex.NewIOError("failed opening "+path, err)
	}
	return f, nil
}

// openWrite opens path for writing (truncating it), wrapping any failure
// as an I/O error. "-" is treated by the caller, not here.
func openWrite(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, ex.NewIOError("failed opening "+path, err)
	}
	return f, nil
}

// nopCloser adapts an io.Writer that must not be closed (stdout/stderr)
// to the io.WriteCloser shape used elsewhere, so closing sinks uniformly
// at shutdown never closes the process's own standard streams.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
