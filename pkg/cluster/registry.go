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

package cluster

import (
	"sort"

	"github.com/gpertea/mblasm/pkg/seqid"
	"go.uber.org/zap"
)

// Registry owns the partition of sequence identifiers into clusters. It
// wraps an *seqid.Interner for node identity and keeps the node->cluster
// side table that gives O(1) cluster-of(node) lookup, at the cost of
// rewriting that table's entries for every migrated node during a union.
//
// Registry is not safe for concurrent use. The core pipeline is
// single-threaded for the run's duration.
type Registry struct {
	interner *seqid.Interner
	byNode   map[*seqid.Node]*Cluster
	clusters []*Cluster
	observer MergeObserver
	logger   *zap.SugaredLogger
}

// New creates an empty Registry backed by the given interner. logger may be
// nil, in which case self-pair warnings are simply discarded.
func New(interner *seqid.Interner, logger *zap.SugaredLogger) *Registry {
	return &Registry{
		interner: interner,
		byNode:   make(map[*seqid.Node]*Cluster, seqid.DefaultCapacityHint),
		logger:   logger,
	}
}

// SetObserver installs (or clears, with nil) the merge observer invoked
// after every successful union.
func (r *Registry) SetObserver(obs MergeObserver) {
	r.observer = obs
}

// ClusterOf returns the cluster currently owning node, or nil if node is
// unknown to this registry.
func (r *Registry) ClusterOf(node *seqid.Node) *Cluster {
	return r.byNode[node]
}

// AddPair records that a and b co-occurred in a surviving hit, creating
// nodes/clusters as needed and unioning their clusters if they differ.
//
// a == b is the self-pair case: a warning is logged and the call is a
// no-op, matching the same policy the filter pipeline applies earlier.
// AddPair enforces it independently so that callers outside the filter
// pipeline (such as clone-seed loading) get the same guarantee.
func (r *Registry) AddPair(a, b string) error {
	if a == b {
		if r.logger != nil {
			r.logger.Warnf("self-pair ignored: %q", a)
		}
		return nil
	}

	na, newA, err := r.interner.InternOrFind(a)
	if err != nil {
		return err
	}
	nb, newB, err := r.interner.InternOrFind(b)
	if err != nil {
		return err
	}

	switch {
	case newA && newB:
		c := r.newCluster()
		r.addMember(c, na)
		r.addMember(c, nb)
	case newA && !newB:
		r.addMember(r.byNode[nb], na)
	case !newA && newB:
		r.addMember(r.byNode[na], nb)
	default:
		ca, cb := r.byNode[na], r.byNode[nb]
		if ca != cb {
			r.union(ca, cb)
		}
		// same cluster already: duplicate pair, silently idempotent.
	}
	return nil
}

// SeedClone joins every token in tokens into a single cluster, as if the
// first surviving token had been paired with each subsequent one in turn.
// Called by the seed loader for clone-file lines; tokens excluded by an
// active restrict set must already have been removed by the caller.
func (r *Registry) SeedClone(tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	first := tokens[0]
	node, isNew, err := r.interner.InternOrFind(first)
	if err != nil {
		return err
	}
	if isNew {
		r.addMember(r.newCluster(), node)
	}
	for _, tok := range tokens[1:] {
		if err := r.AddPair(first, tok); err != nil {
			return err
		}
	}
	return nil
}

// newCluster allocates a fresh, empty cluster and registers it for
// enumeration.
func (r *Registry) newCluster() *Cluster {
	c := &Cluster{id: ID(len(r.clusters))}
	r.clusters = append(r.clusters, c)
	return c
}

// addMember appends node to c and records the membership in the side
// table.
func (r *Registry) addMember(c *Cluster, node *seqid.Node) {
	c.members = append(c.members, node)
	r.byNode[node] = c
}

// union merges ca and cb under size-biased union: the larger cluster
// survives. Ties are broken by lower ID (earlier creation) winning as the
// survivor, a deterministic and arbitrary rule per the design.
func (r *Registry) union(ca, cb *Cluster) {
	dest, src := ca, cb
	if len(cb.members) > len(ca.members) ||
		(len(cb.members) == len(ca.members) && cb.id < ca.id) {
		dest, src = cb, ca
	}
	for _, n := range src.members {
		dest.members = append(dest.members, n)
		r.byNode[n] = dest
	}
	src.members = nil
	src.absorbed = true

	if r.observer != nil {
		r.observer(dest, src.id, len(dest.members))
	}
}

// Enumerate returns every live cluster in size-descending order, ties
// broken by first-member-id ascending; within each cluster, members are
// sorted by id ascending (byte-lexicographic). The returned order is the
// same total order mandated for emitted output.
func (r *Registry) Enumerate() []ClusterRecord {
	live := make([]*Cluster, 0, len(r.clusters))
	for _, c := range r.clusters {
		if !c.absorbed && len(c.members) > 0 {
			live = append(live, c)
		}
	}

	memberNames := make([][]string, len(live))
	for i, c := range live {
		names := make([]string, len(c.members))
		for j, n := range c.members {
			names[j] = n.ID()
		}
		sort.Strings(names)
		memberNames[i] = names
	}

	order := make([]int, len(live))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		oi, oj := order[i], order[j]
		if len(memberNames[oi]) != len(memberNames[oj]) {
			return len(memberNames[oi]) > len(memberNames[oj])
		}
		return memberNames[oi][0] < memberNames[oj][0]
	})

	records := make([]ClusterRecord, len(live))
	for rank, idx := range order {
		records[rank] = ClusterRecord{Rank: rank + 1, Members: memberNames[idx]}
	}
	return records
}

// Len returns the number of distinct sequence identifiers interned so far,
// regardless of which cluster currently owns them.
func (r *Registry) Len() int {
	return r.interner.Len()
}
