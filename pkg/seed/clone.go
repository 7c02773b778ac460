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

package seed

import (
	"bufio"
	"io"
	"strings"

	"github.com/gpertea/mblasm/pkg/cluster"
	"github.com/gpertea/mblasm/pkg/filter"
)

// cloner is the subset of *cluster.Registry the clone loader depends on,
// kept narrow so tests can supply a fake without building a real registry.
type cloner interface {
	SeedClone(tokens []string) error
}

var _ cloner = (*cluster.Registry)(nil)

// LoadClone reads one clone line per line of r, each a whitespace/tab
// separated list of identifiers that must end up in a single cluster, and
// seeds reg accordingly.
//
// When restrict is non-nil (the restrict list is active), tokens not in
// restrict are dropped from the line before seeding, per the documented
// rule that an active restrict list also governs clone-file membership.
func LoadClone(r io.Reader, reg cloner, restrict filter.Set) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if restrict != nil {
			tokens = keepRestricted(tokens, restrict)
		}
		if err := reg.SeedClone(tokens); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func keepRestricted(tokens []string, restrict filter.Set) []string {
	kept := tokens[:0:0]
	for _, t := range tokens {
		if restrict.Contains(t) {
			kept = append(kept, t)
		}
	}
	return kept
}
