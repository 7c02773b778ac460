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

import "strings"

// etLikePrefixes are the fixed, reserved prefixes that classify an
// identifier as "ET-like".
var etLikePrefixes = [...]string{"np|", "et|", "egad|", "preegad|"}

// IsETLike reports whether name begins with one of the reserved ET-like
// prefixes.
func IsETLike(name string) bool {
	for _, p := range etLikePrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// TypeFilter classifies a pair by its mode, rejecting pairs whose ET-like
// composition does not match.
type TypeFilter struct {
	Mode SeqFilterMode
}

// Matches applies the active mode's ET-like composition rule to (a, b).
func (f TypeFilter) Matches(a, b string) bool {
	switch f.Mode {
	case SeqFilterNone:
		return true
	case SeqFilterETOnly:
		return IsETLike(a) && IsETLike(b)
	case SeqFilterESTOnly:
		return !IsETLike(a) && !IsETLike(b)
	case SeqFilterESTtoET:
		return IsETLike(a) || IsETLike(b)
	default:
		return true
	}
}
