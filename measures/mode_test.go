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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestMode(t *testing.T) {
	for _, tc := range []struct {
		desc   string
		values []float64
		opt    *ModeOptions
		want   ModeResult
	}{
		{"single mode",
			[]float64{1, 2, 2, 3},
			nil,
			ModeResult{Modes: []float64{2}, Count: 2}},
		{"two modes",
			[]float64{1, 2, 2, 3, 3},
			nil,
			ModeResult{Modes: []float64{2, 3}, Count: 2}},
		{"uniform frequencies mean no mode",
			[]float64{1, 1, 2, 2},
			nil,
			ModeResult{}},
		{"uniform frequencies with AllEqualIsMode",
			[]float64{1, 1, 2, 2},
			&ModeOptions{AllEqualIsMode: true},
			ModeResult{Modes: []float64{1, 2}, Count: 2}},
		{"constant sample has no mode by default",
			[]float64{4, 4, 4},
			nil,
			ModeResult{}},
	} {
		got, err := Mode(tc.values, tc.opt)
		if err != nil {
			t.Errorf("Mode: when %s returned error %v", tc.desc, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Mode: when %s returned diff (-want +got):\n%s", tc.desc, diff)
		}
	}
}

func TestVariationRatio(t *testing.T) {
	got, err := VariationRatio([]string{"a", "a", "a", "b", "b", "c"})
	if err != nil {
		t.Fatalf("VariationRatio returned error %v", err)
	}
	if got != 0.5 {
		t.Errorf("VariationRatio got %g, want 0.5", got)
	}
}

func TestVariationRatioNoMode(t *testing.T) {
	if _, err := VariationRatio([]string{"a", "b"}); err == nil {
		t.Errorf("VariationRatio without a mode got nil error, want error")
	}
}

func TestBinnedMode(t *testing.T) {
	values := []float64{1, 2, 5, 6, 7}
	bins := []Bin{{0, 4}, {4, 8}}
	for _, tc := range []struct {
		desc  string
		value BinnedModeValue
		want  BinnedModeResult
	}{
		{"interval rendering",
			BinInterval,
			BinnedModeResult{Intervals: []string{"4 < 8"}, Density: 0.75}},
		{"midpoint",
			BinMidpoint,
			BinnedModeResult{Modes: []float64{6}, Density: 0.75}},
		{"quadratic leans towards the denser neighbour",
			BinQuadratic,
			BinnedModeResult{Modes: []float64{5}, Density: 0.75}},
	} {
		got, err := BinnedMode(values, bins, tc.value)
		if err != nil {
			t.Errorf("BinnedMode: when %s returned error %v", tc.desc, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("BinnedMode: when %s returned diff (-want +got):\n%s", tc.desc, diff)
		}
	}
}

func TestBinnedModeQuadraticWithModalNeighbours(t *testing.T) {
	// The middle modal bin is flanked by equally dense bins on both
	// sides, so its quadratic value falls back to the midpoint.
	values := []float64{0, 0.5, 1, 1.5, 2, 2.5, 3}
	bins := []Bin{{0, 1}, {1, 2}, {2, 3}, {3, 4}}
	got, err := BinnedMode(values, bins, BinQuadratic)
	if err != nil {
		t.Fatalf("BinnedMode returned error %v", err)
	}
	want := BinnedModeResult{Modes: []float64{1, 1.5, 2}, Density: 2}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("BinnedMode returned diff (-want +got):\n%s", diff)
	}
}

func TestBinnedModeUniformDensity(t *testing.T) {
	got, err := BinnedMode([]float64{1, 5}, []Bin{{0, 4}, {4, 8}}, BinMidpoint)
	if err != nil {
		t.Fatalf("BinnedMode returned error %v", err)
	}
	if !got.NoMode {
		t.Errorf("BinnedMode with uniform densities got %+v, want NoMode", got)
	}
}

func TestBinnedModeInvalidBin(t *testing.T) {
	if _, err := BinnedMode([]float64{1}, []Bin{{4, 4}}, BinMidpoint); err == nil {
		t.Errorf("BinnedMode with zero-width bin got nil error, want error")
	}
}
