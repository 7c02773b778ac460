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

// Package hit decodes one input line into either a bare identifier pair or
// a fully tabulated hit record, depending on the active input regime.
package hit

// Pair is the undirected edge extracted from one input line: the two
// sequence identifiers that co-occur in a surviving hit.
type Pair struct {
	A, B string
}
