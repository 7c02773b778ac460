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

// MergeObserver is notified after every successful union. It is purely an
// observation seam for verbose/debug logging of merge activity; nothing in
// the registry ever consults it to decide clustering behaviour.
type MergeObserver func(survivor *Cluster, absorbed ID, newSize int)
