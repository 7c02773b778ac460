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

// Package emit formats and writes cluster records to the output sink once
// the input stream has been fully consumed.
package emit

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gpertea/mblasm/pkg/cluster"
)

// Formatter controls how a cluster.ClusterRecord is rendered to output.
type Formatter struct {
	// WithHeader prefixes each cluster with a ">CL<rank>\t<count>" header
	// line when true.
	WithHeader bool
}

// WriteTo formats rec and writes it to w: an optional header line, then a
// single line of tab-separated member ids.
func (f Formatter) WriteTo(rec cluster.ClusterRecord, w io.Writer) error {
	if f.WithHeader {
		if _, err := fmt.Fprintf(w, ">CL%d\t%d\n", rec.Rank, len(rec.Members)); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, strings.Join(rec.Members, "\t")); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Writer buffers formatted cluster output ahead of an underlying io.Writer,
// wrapping the raw sink in a dedicated type rather than passing io.Writer
// around bare.
type Writer struct {
	bw        *bufio.Writer
	formatter Formatter
}

// NewWriter wraps w with a buffered writer using the given formatter.
func NewWriter(w io.Writer, formatter Formatter) *Writer {
	return &Writer{bw: bufio.NewWriter(w), formatter: formatter}
}

// WriteCluster formats and buffers a single cluster record.
func (w *Writer) WriteCluster(rec cluster.ClusterRecord) error {
	return w.formatter.WriteTo(rec, w.bw)
}

// WriteAll formats and buffers every record in recs, in order.
func (w *Writer) WriteAll(recs []cluster.ClusterRecord) error {
	for _, rec := range recs {
		if err := w.WriteCluster(rec); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes any buffered output to the underlying writer.
func (w *Writer) Flush() error {
	return w.bw.Flush()
}
