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

package config

import (
	"testing"

	"github.com/gpertea/mblasm/pkg/filter"
)

func TestParseDefaultsAndPositionalPath(t *testing.T) {
	cfg, err := Parse([]string{"input.txt"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.WithHeader {
		t.Errorf("WithHeader = false, want true by default")
	}
	if cfg.InputPath != "input.txt" {
		t.Errorf("InputPath = %q, want %q", cfg.InputPath, "input.txt")
	}
	if cfg.Regime != BarePair {
		t.Errorf("Regime = %v, want BarePair", cfg.Regime)
	}
	if cfg.Thresholds != filter.DefaultThresholds() {
		t.Errorf("Thresholds = %+v, want defaults", cfg.Thresholds)
	}
}

func TestParseSuppressHeaderFlag(t *testing.T) {
	cfg, err := Parse([]string{"-H"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.WithHeader {
		t.Errorf("WithHeader = true, want false after -H")
	}
}

func TestParseOutputAndFilteredHitsFlags(t *testing.T) {
	cfg, err := Parse([]string{"-o", "out.txt", "-f", "-"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OutputPath != "out.txt" {
		t.Errorf("OutputPath = %q, want out.txt", cfg.OutputPath)
	}
	if cfg.FilteredHitsPath != "-" {
		t.Errorf("FilteredHitsPath = %q, want -", cfg.FilteredHitsPath)
	}
}

func TestParseForceTabulatedFlag(t *testing.T) {
	cfg, err := Parse([]string{"-t"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Regime != Tabulated {
		t.Errorf("Regime = %v, want Tabulated", cfg.Regime)
	}
}

func TestParseNumericThresholdActivatesTabulated(t *testing.T) {
	cfg, err := Parse([]string{"SCOV=80", "OVL=50"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Regime != Tabulated {
		t.Errorf("Regime = %v, want Tabulated", cfg.Regime)
	}
	if cfg.Thresholds.MinSCov != 80 || cfg.Thresholds.MinOvl != 50 {
		t.Errorf("Thresholds = %+v, want MinSCov=80 MinOvl=50", cfg.Thresholds)
	}
}

func TestParseSeqFlagDoesNotActivateTabulated(t *testing.T) {
	cfg, err := Parse([]string{"SEQFLT=ET2EST"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Regime != BarePair {
		t.Errorf("Regime = %v, want BarePair for SEQFLT alone", cfg.Regime)
	}
	if cfg.TypeFilter != filter.SeqFilterESTtoET {
		t.Errorf("TypeFilter = %v, want SeqFilterESTtoET", cfg.TypeFilter)
	}
}

func TestParseRestrictClearsPriorSeqOnly(t *testing.T) {
	cfg, err := Parse([]string{"-s", "seqonly.txt", "-r", "restrict.txt"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SeqOnlyPath != "" {
		t.Errorf("SeqOnlyPath = %q, want empty after later -r", cfg.SeqOnlyPath)
	}
	if cfg.Membership != filter.MembershipRestrict {
		t.Errorf("Membership = %v, want MembershipRestrict", cfg.Membership)
	}
}

func TestParseSeqOnlyAfterRestrictIsNotCleared(t *testing.T) {
	cfg, err := Parse([]string{"-r", "restrict.txt", "-s", "seqonly.txt"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SeqOnlyPath != "seqonly.txt" {
		t.Errorf("SeqOnlyPath = %q, want seqonly.txt", cfg.SeqOnlyPath)
	}
	if cfg.Membership != filter.MembershipSeqOnly {
		t.Errorf("Membership = %v, want MembershipSeqOnly", cfg.Membership)
	}
}

func TestParseRejectsUnknownFlag(t *testing.T) {
	_, err := Parse([]string{"-z"}, nil)
	if err == nil {
		t.Fatal("expected error for unrecognized flag")
	}
}

func TestParseRejectsSecondPositionalArg(t *testing.T) {
	_, err := Parse([]string{"first.txt", "second.txt"}, nil)
	if err == nil {
		t.Fatal("expected error for second positional argument")
	}
}

func TestParseRejectsBadSeqfltValue(t *testing.T) {
	_, err := Parse([]string{"SEQFLT=bogus"}, nil)
	if err == nil {
		t.Fatal("expected error for unrecognized SEQFLT value")
	}
}

func TestParseRejectsUnparseableNumericValue(t *testing.T) {
	_, err := Parse([]string{"PID=abc"}, nil)
	if err == nil {
		t.Fatal("expected error for unparseable numeric value")
	}
}

func TestParseRejectsDanglingFlagArgument(t *testing.T) {
	_, err := Parse([]string{"-o"}, nil)
	if err == nil {
		t.Fatal("expected error for -o missing its argument")
	}
}
