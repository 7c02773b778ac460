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

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParsePair decodes a bare-pair line: exactly two whitespace-separated
// fields. A trailing newline is stripped first; lines of length <= 1 are
// skipped (reported via the skip return). More than two fields is a fatal
// pairs-mode framing error.
func ParsePair(line string) (pair Pair, skip bool, err error) {
	line = strings.TrimRight(line, "\n")
	if len(line) <= 1 {
		return Pair{}, true, nil
	}
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Pair{}, false, fmt.Errorf("expected exactly two whitespace-separated fields, got %d: %q", len(fields), line)
	}
	return Pair{A: fields[0], B: fields[1]}, false, nil
}

// ParseTabulated decodes a twelve-field tab-delimited hit line:
//
//	q_name q_len q_5 q_3 h_name h_len h_5 h_3 pid score p_value strand
//
// A trailing newline is stripped first; lines of length <= 1 are skipped.
func ParseTabulated(line string) (rec *Record, skip bool, err error) {
	line = strings.TrimRight(line, "\n")
	if len(line) <= 1 {
		return nil, true, nil
	}
	fields := strings.Split(line, "\t")
	if len(fields) != 12 {
		return nil, false, fmt.Errorf("expected 12 tab-delimited fields, got %d: %q", len(fields), line)
	}

	qLen, err := parseRoundedInt(fields[1])
	if err != nil {
		return nil, false, fmt.Errorf("q_len: %w", err)
	}
	q5, err := parseRoundedInt(fields[2])
	if err != nil {
		return nil, false, fmt.Errorf("q_5: %w", err)
	}
	q3, err := parseRoundedInt(fields[3])
	if err != nil {
		return nil, false, fmt.Errorf("q_3: %w", err)
	}
	hLen, err := parseRoundedInt(fields[5])
	if err != nil {
		return nil, false, fmt.Errorf("h_len: %w", err)
	}
	h5, err := parseRoundedInt(fields[6])
	if err != nil {
		return nil, false, fmt.Errorf("h_5: %w", err)
	}
	h3, err := parseRoundedInt(fields[7])
	if err != nil {
		return nil, false, fmt.Errorf("h_3: %w", err)
	}
	pid, err := parseRoundedInt(fields[8])
	if err != nil {
		return nil, false, fmt.Errorf("pid: %w", err)
	}
	score, err := parseRoundedInt(fields[9])
	if err != nil {
		return nil, false, fmt.Errorf("score: %w", err)
	}
	pvalue, err := strconv.ParseFloat(fields[10], 64)
	if err != nil {
		return nil, false, fmt.Errorf("p_value: %w", err)
	}

	if q5 == q3 {
		return nil, false, fmt.Errorf("malformed line: q_5 == q_3 (%d): %q", q5, line)
	}
	if h5 == h3 {
		return nil, false, fmt.Errorf("malformed line: h_5 == h_3 (%d): %q", h5, line)
	}

	var flip bool
	if q5 > q3 {
		q5, q3 = q3, q5
		flip = !flip
	}
	if h5 > h3 {
		h5, h3 = h3, h5
		flip = !flip
	}

	rec = &Record{
		QName: fields[0], QLen: qLen, Q5: q5, Q3: q3,
		HName: fields[4], HLen: hLen, H5: h5, H3: h3,
		PID: pid, Score: score, PValue: pvalue, Strand: fields[11],
		StrandFlip: flip,
	}
	rec.deriveQuantities()
	return rec, false, nil
}

// parseRoundedInt parses s as a decimal (allowing a fractional part) and
// rounds it to the nearest integer, matching the source's float-then-round
// convention for every numeric hit field.
func parseRoundedInt(s string) (int, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return roundToInt(f), nil
}

func roundToInt(f float64) int {
	return int(math.Round(f))
}
