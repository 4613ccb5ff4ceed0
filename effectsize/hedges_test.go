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

package effectsize

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestHedgesGOneSample(t *testing.T) {
	for _, tc := range []struct {
		desc        string
		corr        HedgesCorrection
		want        float64
		wantVersion string
	}{
		{"exact gamma correction", HedgesExact, 0.268649, "exact"},
		{"Hedges approximation", HedgesApprox, 0.268681, "Hedges approximation"},
		{"Durlak approximation", DurlakApprox, 0.252561, "Durlak approximation"},
		{"Xue approximation", XueApprox, 0.268649, "Xue approximation"},
	} {
		got, err := HedgesGOneSample(likertValues, 3, tc.corr)
		if err != nil {
			t.Errorf("HedgesGOneSample: when using the %s returned error %v", tc.desc, err)
			continue
		}
		if !cmp.Equal(got.G, tc.want, cmpopts.EquateApprox(0, esTolerance)) {
			t.Errorf("HedgesGOneSample: when using the %s got %g, want %g", tc.desc, got.G, tc.want)
		}
		if got.Version != tc.wantVersion {
			t.Errorf("HedgesGOneSample: when using the %s got version %q, want %q", tc.desc, got.Version, tc.wantVersion)
		}
	}
}

func TestHedgesGOneSampleLargeSampleDegrades(t *testing.T) {
	// above the gamma overflow point the exact request falls back to the
	// Xue approximation
	big := make([]float64, 400)
	for i := range big {
		big[i] = float64(i % 7)
	}
	got, err := HedgesGOneSample(big, 2, HedgesExact)
	if err != nil {
		t.Fatalf("HedgesGOneSample returned error %v", err)
	}
	if got.Version != "Xue approximation" {
		t.Errorf("HedgesGOneSample on a large sample got version %q, want the Xue approximation", got.Version)
	}
}

func TestHedgesGOneSampleShrinksTowardZero(t *testing.T) {
	d, err := CohenDOneSample(likertValues, 3)
	if err != nil {
		t.Fatalf("CohenDOneSample returned error %v", err)
	}
	g, err := HedgesGOneSample(likertValues, 3, HedgesExact)
	if err != nil {
		t.Fatalf("HedgesGOneSample returned error %v", err)
	}
	if g.G >= d {
		t.Errorf("HedgesGOneSample got %g, want it smaller than the uncorrected %g", g.G, d)
	}
}
