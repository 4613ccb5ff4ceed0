//
// Copyright 2024 The stikpetgo Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package measures provides descriptive statistics: central tendency
// measures, quartile based ranges, modes, and qualitative variation
// indices.
package measures

import (
	"fmt"
	"sort"

	"github.com/stikpet/stikpetgo/checks"
	"github.com/stikpet/stikpetgo/coding"
)

// TieBreaker selects the median of an even sized sample.
type TieBreaker int

const (
	// TieBetween averages the two middle values.
	TieBetween TieBreaker = iota
	// TieLow takes the lower of the two middle values.
	TieLow
	// TieHigh takes the higher of the two middle values.
	TieHigh
)

// Median returns the median of values, breaking the even-n tie per tie.
func Median(values []float64, tie TieBreaker) (float64, error) {
	if err := checks.CheckSample(values); err != nil {
		return 0, fmt.Errorf("Median: %v", err)
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2], nil
	}
	lo, hi := sorted[n/2-1], sorted[n/2]
	switch tie {
	case TieLow:
		return lo, nil
	case TieHigh:
		return hi, nil
	default:
		return (lo + hi) / 2, nil
	}
}

// MedianCoded returns the median of an ordinal sample as a numeric code
// plus a textual representation. When the numeric median falls between
// two coded values the text names the bracketing labels, or picks one of
// them for TieLow and TieHigh.
func MedianCoded(labels []string, levels coding.Levels, tie TieBreaker) (float64, string, error) {
	values, err := levels.Encode(labels)
	if err != nil {
		return 0, "", fmt.Errorf("Median: %v", err)
	}
	med, err := Median(values, TieBetween)
	if err != nil {
		return 0, "", err
	}
	if label, ok := levels.Label(med); ok {
		return med, label, nil
	}
	lower, upper := "", ""
	for _, l := range levels {
		if l.Code < med {
			lower = l.Label
		}
		if l.Code > med && upper == "" {
			upper = l.Label
		}
	}
	switch tie {
	case TieLow:
		return med, lower, nil
	case TieHigh:
		return med, upper, nil
	default:
		return med, "between " + lower + " and " + upper, nil
	}
}
