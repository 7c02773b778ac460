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

// ClusterRecord is the finalized, ranked view of one cluster produced by
// Registry.Enumerate. It decouples the registry's internal representation
// (node pointers, tombstoned handles) from the shape the emitter consumes.
type ClusterRecord struct {
	// Rank is the 1-based position of this cluster in size-descending,
	// first-member-id-ascending order.
	Rank int
	// Members holds the cluster's identifiers sorted byte-lexicographically
	// ascending.
	Members []string
}
