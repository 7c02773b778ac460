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

package hit

// Record is a decoded tabulated hit line, the twelve source fields plus the
// quantities derived from them by the filter pipeline's numeric thresholds.
//
// Q5/Q3 and H5/H3 are stored post swap-normalization (see ParseTabulated):
// Q5 <= Q3 and H5 <= H3 always hold here, with StrandFlip recording whether
// either pair was swapped to get there.
type Record struct {
	QName string
	QLen  int
	Q5    int
	Q3    int

	HName string
	HLen  int
	H5    int
	H3    int

	PID    int
	Score  int
	PValue float64
	Strand string

	// StrandFlip is the XOR of "Q5 was swapped with Q3" and "H5 was swapped
	// with H3", following the source's swap-and-flip-strand rule.
	StrandFlip bool

	// Derived quantities; see deriveQuantities for the exact formulas,
	// including the documented scov/lcov off-by-one quirk relative to
	// Overlap (see the design notes: reproduced verbatim, not "fixed").
	Overlap int
	Scov    int
	Lcov    int
	OvhR    int
	OvhL    int
}

// Pair returns the identifier pair this record represents.
func (r *Record) Pair() Pair {
	return Pair{A: r.QName, B: r.HName}
}

// deriveQuantities computes Overlap, Scov, Lcov, OvhR and OvhL from the
// (already swap-normalized) coordinate fields.
func (r *Record) deriveQuantities() {
	qRange := r.Q3 - r.Q5
	hRange := r.H3 - r.H5

	r.Overlap = max(qRange+1, hRange+1)

	// scov pairs the *other* sequence's range with the shorter sequence's
	// length, and lcov pairs the shorter sequence's range with the longer
	// sequence's length, a crossed convention inherited verbatim from the
	// source tool, not a mistake.
	var scovRange, lcovRange, shortLen, longLen int
	if r.QLen <= r.HLen {
		scovRange, lcovRange = hRange, qRange
		shortLen, longLen = r.QLen, r.HLen
	} else {
		scovRange, lcovRange = qRange, hRange
		shortLen, longLen = r.HLen, r.QLen
	}
	r.Scov = roundPercent(scovRange, shortLen)
	r.Lcov = roundPercent(lcovRange, longLen)

	if r.StrandFlip {
		r.OvhR = min(r.Q5-1, r.HLen-r.H3)
		r.OvhL = min(r.H5-1, r.QLen-r.Q3)
	} else {
		r.OvhR = min(r.HLen-r.H3, r.QLen-r.Q3)
		r.OvhL = min(r.H5-1, r.Q5-1)
	}
}

func roundPercent(numerator, denominator int) int {
	if denominator == 0 {
		return 0
	}
	return roundToInt(100 * float64(numerator) / float64(denominator))
}
