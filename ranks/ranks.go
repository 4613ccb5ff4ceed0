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

// Package ranks assigns ranks to sample values, resolving ties with
// mid-ranks. It backs the rank based tests and effect sizes.
package ranks

import "sort"

// MidRanks returns the rank of each value in values, in input order.
// Tied values all receive the average of the ranks they occupy, e.g.
// [10, 20, 20, 30] ranks as [1, 2.5, 2.5, 4].
func MidRanks(values []float64) []float64 {
	n := len(values)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return values[order[a]] < values[order[b]] })

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && values[order[j+1]] == values[order[i]] {
			j++
		}
		// positions i..j hold a tie group, ranks are 1-based
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[order[k]] = avg
		}
		i = j + 1
	}
	return ranks
}

// TieGroups returns the size of every group of tied values in values.
// Singletons are included, so the sizes sum to len(values).
func TieGroups(values []float64) []int {
	n := len(values)
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	var groups []int
	for i := 0; i < n; {
		j := i
		for j+1 < n && sorted[j+1] == sorted[i] {
			j++
		}
		groups = append(groups, j-i+1)
		i = j + 1
	}
	return groups
}
