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

package posthoc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stikpet/stikpetgo/onesample"
)

func pairwiseSample() []string {
	var labels []string
	for i := 0; i < 10; i++ {
		labels = append(labels, "red")
	}
	for i := 0; i < 5; i++ {
		labels = append(labels, "green")
	}
	for i := 0; i < 3; i++ {
		labels = append(labels, "blue")
	}
	return labels
}

func TestPairwiseBinomial(t *testing.T) {
	got, err := PairwiseBinomial(pairwiseSample(), nil, onesample.EqualDistance)
	if err != nil {
		t.Fatalf("PairwiseBinomial returned error %v", err)
	}
	want := []PairwiseResult{
		{Category1: "red", Category2: "green", N1: 10, N2: 5,
			ObservedProp: 10.0 / 15, ExpectedProp: 0.5,
			PValue: 0.301758, AdjustedPValue: 0.905273},
		{Category1: "red", Category2: "blue", N1: 10, N2: 3,
			ObservedProp: 10.0 / 13, ExpectedProp: 0.5,
			PValue: 0.092285, AdjustedPValue: 0.276855},
		{Category1: "green", Category2: "blue", N1: 5, N2: 3,
			ObservedProp: 5.0 / 8, ExpectedProp: 0.5,
			PValue: 0.726562, AdjustedPValue: 1},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
		t.Errorf("PairwiseBinomial returned diff (-want +got):\n%s", diff)
	}
}

func TestPairwiseBinomialExpectedWeights(t *testing.T) {
	weights := map[string]float64{"red": 2, "green": 1, "blue": 1}
	got, err := PairwiseBinomial(pairwiseSample(), weights, onesample.EqualDistance)
	if err != nil {
		t.Fatalf("PairwiseBinomial returned error %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("PairwiseBinomial returned %d rows, want 3", len(got))
	}
	if !cmp.Equal(got[0].ExpectedProp, 2.0/3.0, cmpopts.EquateApprox(0, 1e-12)) {
		t.Errorf("PairwiseBinomial got expected proportion %g for the first pair, want 2/3", got[0].ExpectedProp)
	}
}

func TestPairwiseBinomialErrors(t *testing.T) {
	if _, err := PairwiseBinomial(nil, nil, onesample.EqualDistance); err == nil {
		t.Errorf("PairwiseBinomial on empty sample got nil error, want error")
	}
	if _, err := PairwiseBinomial([]string{"red", "red"}, nil, onesample.EqualDistance); err == nil {
		t.Errorf("PairwiseBinomial with a single category got nil error, want error")
	}
	if _, err := PairwiseBinomial(pairwiseSample(), map[string]float64{"red": 1}, onesample.EqualDistance); err == nil {
		t.Errorf("PairwiseBinomial with missing expected weights got nil error, want error")
	}
}
