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

	"github.com/gpertea/mblasm/pkg/filter"
)

type fakeCloner struct {
	lines [][]string
}

func (f *fakeCloner) SeedClone(tokens []string) error {
	cp := append([]string(nil), tokens...)
	f.lines = append(f.lines, cp)
	return nil
}

func TestLoadCloneSplitsLinesIntoTokenGroups(t *testing.T) {
	fc := &fakeCloner{}
	err := LoadClone(strings.NewReader("X Y Z\nW\tV\n"), fc, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fc.lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(fc.lines))
	}
	if got := fc.lines[0]; len(got) != 3 || got[0] != "X" || got[1] != "Y" || got[2] != "Z" {
		t.Fatalf("got %v, want [X Y Z]", got)
	}
	if got := fc.lines[1]; len(got) != 2 || got[0] != "W" || got[1] != "V" {
		t.Fatalf("got %v, want [W V]", got)
	}
}

func TestLoadCloneDropsTokensOutsideActiveRestrict(t *testing.T) {
	fc := &fakeCloner{}
	restrict := filter.NewSet([]string{"X", "Z"})
	err := LoadClone(strings.NewReader("X Y Z\n"), fc, restrict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fc.lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(fc.lines))
	}
	if got := fc.lines[0]; len(got) != 2 || got[0] != "X" || got[1] != "Z" {
		t.Fatalf("got %v, want [X Z]", got)
	}
}

func TestLoadClonePassesEmptyTokenListAfterRestrictFiltering(t *testing.T) {
	fc := &fakeCloner{}
	restrict := filter.NewSet([]string{"Q"})
	err := LoadClone(strings.NewReader("X Y Z\n"), fc, restrict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fc.lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(fc.lines))
	}
	if len(fc.lines[0]) != 0 {
		t.Fatalf("got %v, want empty token list", fc.lines[0])
	}
}
