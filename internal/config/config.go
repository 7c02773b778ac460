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
	"github.com/gpertea/mblasm/pkg/filter"
	"go.uber.org/zap"
)

// Config is the single immutable record produced by parsing the CLI
// surface. Every downstream component receives it by reference; only the
// node registry remains mutable process-wide state.
type Config struct {
	// WithHeader controls the ">CL<rank>\t<count>" header line. Default
	// true; the -H flag sets it false.
	WithHeader bool

	// InputPath is the positional input path, or "" for stdin.
	InputPath string
	// OutputPath is the -o destination, or "" for stdout.
	OutputPath string
	// FilteredHitsPath is the -f destination for surviving input lines
	// written verbatim, or "" if disabled. "-" means stdout.
	FilteredHitsPath string

	// ExcludePath, SeqOnlyPath, RestrictPath, ClonePath are the -x/-s/-r/-c
	// list file paths, or "" if not supplied.
	ExcludePath  string
	SeqOnlyPath  string
	RestrictPath string
	ClonePath    string

	// Membership is derived from which of RestrictPath/SeqOnlyPath won:
	// an -r appearing after -s clears the seq-only activation, matching
	// the CLI table's documented "clears any seq-only" rule.
	Membership filter.MembershipMode

	// TypeFilter is the SEQFLT= type filter mode; SeqFilterNone if absent.
	TypeFilter filter.SeqFilterMode

	// Thresholds holds the numeric thresholds; zero-valued fields keep
	// filter.DefaultThresholds()'s defaults unless explicitly overridden.
	Thresholds filter.Thresholds

	// ForceTabulated is the -t flag.
	ForceTabulated bool
	// Regime is derived: Tabulated if ForceTabulated or any numeric
	// threshold token was supplied, else BarePair. SEQFLT alone does not
	// force tabulated parsing: type filtering only inspects the two
	// identifiers, which bare-pair lines already provide.
	Regime Regime

	// Logger is the structured logger threaded through every component.
	Logger *zap.SugaredLogger
}

// Regime is computed once during parsing and stored on Config rather than
// recomputed by every consumer.
func (c *Config) resolveRegime(numericFlagSeen bool) {
	if c.ForceTabulated || numericFlagSeen {
		c.Regime = Tabulated
	} else {
		c.Regime = BarePair
	}
}
