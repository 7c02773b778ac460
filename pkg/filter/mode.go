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

// Package filter implements the per-hit admissibility pipeline: exclusion,
// seq-only/restrict membership, self-pair rejection, ET-like type
// classification, and (in tabulated mode) numeric thresholds.
package filter

import "strings"

// SeqFilterMode selects the type-filter classification applied to each
// pair, driven by the SEQFLT= CLI token.
type SeqFilterMode int

const (
	// SeqFilterNone disables type filtering entirely.
	SeqFilterNone SeqFilterMode = iota
	// SeqFilterETOnly requires both endpoints to be ET-like.
	SeqFilterETOnly
	// SeqFilterESTOnly requires neither endpoint to be ET-like.
	SeqFilterESTOnly
	// SeqFilterESTtoET drops EST-EST pairs, requiring at least one ET-like
	// endpoint. ET2EST and EST2ET are recognised as synonyms for this mode.
	SeqFilterESTtoET
)

var stringToSeqFilterMode = map[string]SeqFilterMode{
	"et":     SeqFilterETOnly,
	"est":    SeqFilterESTOnly,
	"est2et": SeqFilterESTtoET,
	"et2est": SeqFilterESTtoET,
}

// ParseSeqFilterMode converts a SEQFLT= token (case-insensitively) into a
// SeqFilterMode. An unrecognised value is an argument error.
func ParseSeqFilterMode(value string) (SeqFilterMode, bool) {
	m, ok := stringToSeqFilterMode[strings.ToLower(value)]
	return m, ok
}

// String returns the canonical name of the mode.
func (m SeqFilterMode) String() string {
	switch m {
	case SeqFilterNone:
		return "None"
	case SeqFilterETOnly:
		return "ET"
	case SeqFilterESTOnly:
		return "EST"
	case SeqFilterESTtoET:
		return "EST2ET"
	default:
		return "Unknown"
	}
}

// MembershipMode selects which of the mutually-exclusive seq-only/restrict
// sets, if either, is active. Activating Restrict always clears SeqOnly.
type MembershipMode byte

const (
	// MembershipNone disables both the seq-only and restrict checks.
	MembershipNone MembershipMode = iota
	// MembershipSeqOnly requires at least one endpoint in the seq-only set.
	MembershipSeqOnly
	// MembershipRestrict requires both endpoints in the restrict set.
	MembershipRestrict
)

// String returns the canonical name of the mode.
func (m MembershipMode) String() string {
	switch m {
	case MembershipNone:
		return "None"
	case MembershipSeqOnly:
		return "SeqOnly"
	case MembershipRestrict:
		return "Restrict"
	default:
		return "Unknown"
	}
}
