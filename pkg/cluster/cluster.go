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

// Package cluster implements the disjoint-set cluster registry: the
// connected-component partition of sequence identifiers under the
// surviving-pair relation, with size-biased union and materialised member
// lists so that cluster-of(node) and all-members-of(cluster) are both O(1).
package cluster

import "github.com/gpertea/mblasm/pkg/seqid"

// ID identifies a cluster for its entire lifetime, including after it has
// been absorbed by a union. It also doubles as the creation-order index
// used to break union ties deterministically.
type ID int

// Cluster is a non-empty connected component of sequence nodes. A Cluster
// whose Absorbed is true has had its members reassigned to another cluster
// during a union and holds no members itself; its ID remains valid only as
// a historical reference, never as a live membership.
type Cluster struct {
	id       ID
	members  []*seqid.Node
	absorbed bool
}

// ID returns the cluster's stable identifier.
func (c *Cluster) ID() ID {
	return c.id
}

// Size returns the number of members currently held by the cluster. An
// absorbed cluster always reports zero.
func (c *Cluster) Size() int {
	return len(c.members)
}

// Absorbed reports whether this cluster's members were migrated away during
// a union; an absorbed cluster's handle is a tombstone, never re-populated.
func (c *Cluster) Absorbed() bool {
	return c.absorbed
}

// Members returns the cluster's nodes in no particular order. Callers that
// need a deterministic order should use Registry.Enumerate instead.
func (c *Cluster) Members() []*seqid.Node {
	return c.members
}
