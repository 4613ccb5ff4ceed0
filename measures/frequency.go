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

package measures

import "sort"

// Frequency is one row of a numeric frequency table.
type Frequency struct {
	Value float64
	Count int
}

// Frequencies tallies values into a frequency table sorted ascending by
// value.
func Frequencies(values []float64) []Frequency {
	counts := make(map[float64]int)
	for _, v := range values {
		counts[v]++
	}
	table := make([]Frequency, 0, len(counts))
	for v, c := range counts {
		table = append(table, Frequency{Value: v, Count: c})
	}
	sort.Slice(table, func(a, b int) bool { return table[a].Value < table[b].Value })
	return table
}

// LabelFrequency is one row of a categorical frequency table.
type LabelFrequency struct {
	Label string
	Count int
}

// LabelFrequencies tallies labels into a frequency table sorted by
// descending count; categories with equal counts keep their first
// appearance order.
func LabelFrequencies(labels []string) []LabelFrequency {
	counts := make(map[string]int)
	var order []string
	for _, l := range labels {
		if _, seen := counts[l]; !seen {
			order = append(order, l)
		}
		counts[l]++
	}
	table := make([]LabelFrequency, 0, len(order))
	for _, l := range order {
		table = append(table, LabelFrequency{Label: l, Count: counts[l]})
	}
	sort.SliceStable(table, func(a, b int) bool { return table[a].Count > table[b].Count })
	return table
}
