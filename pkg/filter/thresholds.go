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

import "github.com/gpertea/mblasm/pkg/hit"

// Thresholds holds the numeric lower/upper bounds applied in tabulated
// mode. Zero-valued thresholds default to MinOvl=20 and MaxOvhang=1000,
// matching the CLI's documented defaults; every other bound defaults to 0.
type Thresholds struct {
	MinSCov   int
	MinLCov   int
	MinPID    int
	MinOvl    int
	MaxOvhang int
	MinScore  int
}

// DefaultThresholds returns the CLI's documented defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{MinOvl: 20, MaxOvhang: 1000}
}

// Matches reports whether rec satisfies every threshold.
func (t Thresholds) Matches(rec *hit.Record) bool {
	minOvl, maxOvhang := t.MinOvl, t.MaxOvhang
	if minOvl == 0 {
		minOvl = DefaultThresholds().MinOvl
	}
	if maxOvhang == 0 {
		maxOvhang = DefaultThresholds().MaxOvhang
	}
	return rec.Scov >= t.MinSCov &&
		rec.Lcov >= t.MinLCov &&
		rec.PID >= t.MinPID &&
		rec.Overlap >= minOvl &&
		rec.Score >= t.MinScore &&
		rec.OvhR <= maxOvhang &&
		rec.OvhL <= maxOvhang
}
