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

// Package posthoc contains pairwise follow-up tests for significant
// goodness-of-fit results.
package posthoc

import (
	"fmt"

	"github.com/stikpet/stikpetgo/measures"
	"github.com/stikpet/stikpetgo/onesample"
)

// PairwiseResult is one row of a pairwise comparison table.
type PairwiseResult struct {
	Category1, Category2 string
	N1, N2               int
	// ObservedProp and ExpectedProp refer to the first category within
	// the pair.
	ObservedProp, ExpectedProp float64
	PValue                     float64
	// AdjustedPValue is Bonferroni corrected over all pairs, capped at 1.
	AdjustedPValue float64
}

// PairwiseBinomial runs an exact binomial test for every pair of categories
// in the sample, the usual follow-up after a significant goodness-of-fit
// test. expected gives relative expected weights per category and may be
// nil for equal weights; categories missing from it get weight zero, which
// is an error. The p-values are Bonferroni adjusted for the
// k·(k-1)/2 comparisons.
func PairwiseBinomial(labels []string, expected map[string]float64, method onesample.TwoSidedMethod) ([]PairwiseResult, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("PairwiseBinomial: sample is empty")
	}
	freq := measures.LabelFrequencies(labels)
	k := len(freq)
	if k < 2 {
		return nil, fmt.Errorf("PairwiseBinomial: need at least two categories, got %d", k)
	}

	weights := make([]float64, k)
	for i, f := range freq {
		if expected == nil {
			weights[i] = 1
			continue
		}
		w, ok := expected[f.Label]
		if !ok || w <= 0 {
			return nil, fmt.Errorf("PairwiseBinomial: category %q has no positive expected weight", f.Label)
		}
		weights[i] = w
	}

	adjFactor := float64(k*(k-1)) / 2
	var res []PairwiseResult
	for i := 0; i < k-1; i++ {
		for j := i + 1; j < k; j++ {
			n1, n2 := freq[i].Count, freq[j].Count
			obsProp := float64(n1) / float64(n1+n2)
			expProp := weights[i] / (weights[i] + weights[j])

			b, err := onesample.Binomial(n1, n2, expProp, method)
			if err != nil {
				return nil, fmt.Errorf("PairwiseBinomial: %s vs %s: %v", freq[i].Label, freq[j].Label, err)
			}
			adj := b.PValue * adjFactor
			if adj > 1 {
				adj = 1
			}
			res = append(res, PairwiseResult{
				Category1:      freq[i].Label,
				Category2:      freq[j].Label,
				N1:             n1,
				N2:             n2,
				ObservedProp:   obsProp,
				ExpectedProp:   expProp,
				PValue:         b.PValue,
				AdjustedPValue: adj,
			})
		}
	}
	return res, nil
}
