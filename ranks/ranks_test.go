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

package ranks

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMidRanks(t *testing.T) {
	for _, tc := range []struct {
		desc   string
		values []float64
		want   []float64
	}{
		{"no ties",
			[]float64{30, 10, 20},
			[]float64{3, 1, 2}},
		{"one tie group",
			[]float64{10, 20, 20, 30},
			[]float64{1, 2.5, 2.5, 4}},
		{"all tied",
			[]float64{5, 5, 5},
			[]float64{2, 2, 2}},
		{"two tie groups",
			[]float64{1, 1, 2, 2, 2, 3},
			[]float64{1.5, 1.5, 4, 4, 4, 6}},
		{"single value",
			[]float64{42},
			[]float64{1}},
	} {
		got := MidRanks(tc.values)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("MidRanks: when %s returned diff (-want +got):\n%s", tc.desc, diff)
		}
	}
}

func TestTieGroups(t *testing.T) {
	for _, tc := range []struct {
		desc   string
		values []float64
		want   []int
	}{
		{"no ties",
			[]float64{3, 1, 2},
			[]int{1, 1, 1}},
		{"mixed groups",
			[]float64{2, 1, 2, 2, 1},
			[]int{2, 3}},
		{"all tied",
			[]float64{7, 7},
			[]int{2}},
	} {
		got := TieGroups(tc.values)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("TieGroups: when %s returned diff (-want +got):\n%s", tc.desc, diff)
		}
	}
}
