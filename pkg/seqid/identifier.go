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

import (
	"fmt"
	"hash/fnv"
)

// MaxIdentifierLength is the longest sequence identifier this package will
// intern. A list file entry beyond this length is a fatal "too-long
// identifier" error.
const MaxIdentifierLength = 255

// Identifier is a validated, hashable wrapper around a raw sequence name.
// It is the unit the interner keys on; its only job is to give the
// byte-equality invariant between a node and its interner key a concrete,
// cheaply-hashable type.
type Identifier struct {
	name string
	hash uint32
}

// NewIdentifier validates name and returns its Identifier, caching an FNV-1a
// hash for fast map probing. name must be non-empty and no longer than
// MaxIdentifierLength bytes.
func NewIdentifier(name string) (Identifier, error) {
	if len(name) == 0 {
		return Identifier{}, fmt.Errorf("identifier must not be empty")
	}
	if len(name) > MaxIdentifierLength {
		return Identifier{}, fmt.Errorf("identifier %q exceeds maximum length of %d bytes", name, MaxIdentifierLength)
	}
	h := fnv.New32a()
	h.Write([]byte(name))
	return Identifier{name: name, hash: h.Sum32()}, nil
}

// String returns the raw identifier text.
func (id Identifier) String() string {
	return id.name
}

// Hash returns the cached FNV-1a hash of the identifier.
func (id Identifier) Hash() uint32 {
	return id.hash
}

// Equal reports whether two identifiers are byte-identical.
func (id Identifier) Equal(other Identifier) bool {
	return id.name == other.name
}
