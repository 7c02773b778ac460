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

// Package seed loads the auxiliary identifier lists and clone files that
// pre-populate a run's filter sets and clusters before the main stream is
// read.
package seed

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	ex "github.com/gpertea/mblasm/pkg/common"
	"github.com/gpertea/mblasm/pkg/filter"
	"github.com/gpertea/mblasm/pkg/seqid"
)

// LoadList reads whitespace-separated tokens from r into a filter.Set. It is
// used for the exclude, seq-only, and restrict lists alike; they share the
// same file shape. A token longer than seqid.MaxIdentifierLength is the
// "too-long identifier" fatal error.
func LoadList(r io.Reader) (filter.Set, error) {
	var tokens []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		for _, tok := range strings.Fields(scanner.Text()) {
			if len(tok) > seqid.MaxIdentifierLength {
				return nil, ex.NewArgumentError(fmt.Sprintf("too-long identifier %q exceeds maximum length of %d bytes", tok, seqid.MaxIdentifierLength), nil)
			}
			tokens = append(tokens, tok)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return filter.NewSet(tokens), nil
}
