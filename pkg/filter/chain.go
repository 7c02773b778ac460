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

import (
	"github.com/gpertea/mblasm/pkg/hit"
	"go.uber.org/zap"
)

// Chain composes the independent filter predicates into the pipeline's
// fixed evaluation order.
type Chain struct {
	Exclude    Set
	Membership MembershipMode
	SeqOnly    Set
	Restrict   Set
	Type       TypeFilter
	Thresholds Thresholds

	// Logger receives the self-pair warning. May be nil, in which case the
	// warning is simply discarded.
	Logger *zap.SugaredLogger
}

// Matches evaluates pair (and, in tabulated mode, rec) against every stage
// in order, stopping at the first failing stage. It returns whether the
// pair survives and, if not, which stage rejected it.
func (c Chain) Matches(pair hit.Pair, rec *hit.Record) (bool, DropReason) {
	if c.Exclude.Contains(pair.A) {
		return false, DroppedExcluded
	}

	switch c.Membership {
	case MembershipSeqOnly:
		if !c.SeqOnly.Contains(pair.A) && !c.SeqOnly.Contains(pair.B) {
			return false, DroppedMembership
		}
	case MembershipRestrict:
		if !c.Restrict.Contains(pair.A) || !c.Restrict.Contains(pair.B) {
			return false, DroppedMembership
		}
	}

	if pair.A == pair.B {
		if c.Logger != nil {
			c.Logger.Warnf("self-pair ignored: %q", pair.A)
		}
		return false, DroppedSelfPair
	}

	if c.Exclude.Contains(pair.B) {
		return false, DroppedExcluded
	}

	if !c.Type.Matches(pair.A, pair.B) {
		return false, DroppedType
	}

	if rec != nil && !c.Thresholds.Matches(rec) {
		return false, DroppedNumeric
	}

	return true, NotDropped
}
