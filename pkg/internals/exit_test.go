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

package internals

import "testing"

func TestExitRunsShutdownHooksBeforeExiting(t *testing.T) {
	defer ResetForTest()

	var ran []string
	AddShutdownHook("close-output", func() { ran = append(ran, "close-output") })
	AddShutdownHook("close-filtered", func() { ran = append(ran, "close-filtered") })

	var gotCode int
	SetExitProcedure(func(code int) { gotCode = code })

	Exit(4)

	if gotCode != 4 {
		t.Fatalf("expected exit code 4, got %d", gotCode)
	}
	if len(ran) != 2 || ran[0] != "close-output" || ran[1] != "close-filtered" {
		t.Fatalf("expected both hooks to run in order, got %v", ran)
	}
}

func TestExitSurvivesPanickingHook(t *testing.T) {
	defer ResetForTest()

	ranSecond := false
	AddShutdownHook("panics", func() { panic("boom") })
	AddShutdownHook("second", func() { ranSecond = true })

	var gotCode int
	SetExitProcedure(func(code int) { gotCode = code })

	Exit(2)

	if gotCode != 2 {
		t.Fatalf("expected exit code 2, got %d", gotCode)
	}
	if !ranSecond {
		t.Fatal("expected hook after a panicking hook to still run")
	}
}
