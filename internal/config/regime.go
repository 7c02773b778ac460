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

// Package config parses the CLI surface into a single immutable record
// threaded by reference through every downstream component, rather than
// a scatter of process-wide booleans.
package config

// Regime selects which of the two line grammars the hit-line parser uses.
type Regime int

const (
	// BarePair selects the two-field "name name" grammar.
	BarePair Regime = iota
	// Tabulated selects the twelve-field tab-delimited grammar.
	Tabulated
)

// String returns the canonical name of the regime.
func (r Regime) String() string {
	switch r {
	case BarePair:
		return "bare-pair"
	case Tabulated:
		return "tabulated"
	default:
		return "unknown"
	}
}
