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

package filter

import "testing"

func TestDropReasonString(t *testing.T) {
	cases := map[DropReason]string{
		NotDropped:         "none",
		DroppedExcluded:    "excluded",
		DroppedMembership:  "membership",
		DroppedSelfPair:    "selfpair",
		DroppedType:        "type",
		DroppedNumeric:     "numeric",
		DropReason(99):     "unknown",
		DropReason(-1):     "unknown",
	}
	for reason, want := range cases {
		if got := reason.String(); got != want {
			t.Errorf("DropReason(%d).String() = %q, want %q", int(reason), got, want)
		}
	}
}
