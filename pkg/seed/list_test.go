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

package seed

import (
	"strings"
	"testing"

	ex "github.com/gpertea/mblasm/pkg/common"
	"github.com/gpertea/mblasm/pkg/seqid"
)

func TestLoadListSplitsOnWhitespaceAcrossLines(t *testing.T) {
	r := strings.NewReader("A B\tC\n\nD\n")
	set, err := LoadList(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, name := range []string{"A", "B", "C", "D"} {
		if !set.Contains(name) {
			t.Fatalf("expected set to contain %q", name)
		}
	}
	if set.Len() != 4 {
		t.Fatalf("got len %d, want 4", set.Len())
	}
}

func TestLoadListEmptyInput(t *testing.T) {
	set, err := LoadList(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.Len() != 0 {
		t.Fatalf("got len %d, want 0", set.Len())
	}
}

func TestLoadListRejectsTooLongIdentifier(t *testing.T) {
	tooLong := strings.Repeat("x", seqid.MaxIdentifierLength+1)
	_, err := LoadList(strings.NewReader("A " + tooLong + " B\n"))
	if err == nil {
		t.Fatalf("expected an error for a too-long identifier")
	}
	var ce ex.Error
	if e, ok := err.(ex.Error); ok {
		ce = e
	} else {
		t.Fatalf("expected pkg/common.Error, got %T", err)
	}
	if ce.ExitCode != ex.ExitArgumentError {
		t.Fatalf("got exit code %d, want %d", ce.ExitCode, ex.ExitArgumentError)
	}
}
