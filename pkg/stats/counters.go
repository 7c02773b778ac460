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

// Package stats collects the run-level counters reported to the diagnostic
// sink once the stream ends: totals, per-stage drop counts, and the final
// cluster summary.
package stats

import "github.com/gpertea/mblasm/pkg/filter"

// Fixed counter names, reported verbatim in Snapshot's map so a caller can
// depend on the key spelling rather than iterating.
const (
	PairsTotal           = "pairs.total"
	PairsSelfPair        = "pairs.selfpair"
	PairsExcluded        = "pairs.excluded"
	PairsMembershipDrop  = "pairs.membershipfiltered"
	PairsTypeFiltered    = "pairs.typefiltered"
	PairsNumericFiltered = "pairs.numericfiltered"
	LinesMalformed       = "lines.malformed"
	ClustersTotal        = "clusters.total"
	ClustersLargest      = "clusters.largest"
)

// Counters is a single run's named counters. The zero value is ready to
// use. Counters is not safe for concurrent use, matching the single
// threaded pipeline it instruments.
type Counters struct {
	pairsTotal           int64
	pairsSelfPair        int64
	pairsExcluded        int64
	pairsMembershipDrop  int64
	pairsTypeFiltered    int64
	pairsNumericFiltered int64
	linesMalformed       int64
	clustersTotal        int64
	clustersLargest      int64
}

// IncPair records that one pair reached the filter chain.
func (c *Counters) IncPair() {
	c.pairsTotal++
}

// IncMalformedLine records one rejected malformed input line.
func (c *Counters) IncMalformedLine() {
	c.linesMalformed++
}

// IncDrop records one pair rejected at the given filter stage. Reasons
// that never reach the filter chain (parse failures) are not routed
// through here; use IncMalformedLine for those.
func (c *Counters) IncDrop(reason filter.DropReason) {
	switch reason {
	case filter.DroppedSelfPair:
		c.pairsSelfPair++
	case filter.DroppedExcluded:
		c.pairsExcluded++
	case filter.DroppedMembership:
		c.pairsMembershipDrop++
	case filter.DroppedType:
		c.pairsTypeFiltered++
	case filter.DroppedNumeric:
		c.pairsNumericFiltered++
	}
}

// SetClusterSummary records the final cluster count and the size of its
// largest cluster, both computed once at the end of the run.
func (c *Counters) SetClusterSummary(total, largest int) {
	c.clustersTotal = int64(total)
	c.clustersLargest = int64(largest)
}

// Snapshot returns every counter as a plain map, suitable for structured
// logging.
func (c *Counters) Snapshot() map[string]int64 {
	return map[string]int64{
		PairsTotal:           c.pairsTotal,
		PairsSelfPair:        c.pairsSelfPair,
		PairsExcluded:        c.pairsExcluded,
		PairsMembershipDrop:  c.pairsMembershipDrop,
		PairsTypeFiltered:    c.pairsTypeFiltered,
		PairsNumericFiltered: c.pairsNumericFiltered,
		LinesMalformed:       c.linesMalformed,
		ClustersTotal:        c.clustersTotal,
		ClustersLargest:      c.clustersLargest,
	}
}
