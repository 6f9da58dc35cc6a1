/*
Copyright 2026 The Legal Pedagogy Authors
SPDX-License-Identifier: Apache-2.0
*/

package thermometer

import (
	"regexp"
	"strconv"
)

// numberPattern matches decimal number tokens, longest alternative first so
// "1.5" is one token rather than "1" followed by ".5". A leading minus sign
// is part of the token; range filtering discards negatives under a [0, 1]
// range.
var numberPattern = regexp.MustCompile(`-?(?:\d+\.\d+|\.\d+|\d+)`)

// ExtractNumericValue scans response left to right and returns the first
// number token whose value lies in [minVal, maxVal] inclusive. The second
// return is false when no token qualifies.
//
// First in-range match wins, not the best or last: if an earlier number
// happens to be in range it is returned even when a later one is "more
// obviously" the answer. Out-of-range tokens fall through to the next
// match, so "the answer is 1.5, but really 0.4" yields 0.4 under [0, 1].
func ExtractNumericValue(response string, minVal, maxVal float64) (float64, bool) {
	for _, match := range numberPattern.FindAllString(response, -1) {
		value, err := strconv.ParseFloat(match, 64)
		if err != nil {
			continue
		}
		if value >= minVal && value <= maxVal {
			return value, true
		}
	}
	return 0, false
}
