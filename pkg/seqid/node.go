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

package seqid

// Node represents one sequence identifier. Its id is immutable and owned by
// the Interner that created it; index records creation order. Union ties
// are broken by cluster ID (see pkg/cluster), not by node index.
//
// Node intentionally carries no cluster handle: which cluster a node
// currently belongs to is owned by pkg/cluster's Registry, not by Node
// itself, so that this package has no dependency on cluster membership.
type Node struct {
	id    Identifier
	index int
}

// ID returns the node's identifier string.
func (n *Node) ID() string {
	return n.id.String()
}

// Identifier returns the node's validated identifier.
func (n *Node) Identifier() Identifier {
	return n.id
}

// Index returns the node's creation order (0 for the first node interned).
func (n *Node) Index() int {
	return n.index
}

// String returns the node's id.
func (n *Node) String() string {
	return n.id.String()
}
