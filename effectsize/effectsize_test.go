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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const esTolerance = 1e-6

var likertValues = []float64{1, 1, 1, 2, 2, 2, 3, 3, 4, 4, 4, 5, 5, 5, 5, 5, 5, 5}

func TestCohenDOneSample(t *testing.T) {
	got, err := CohenDOneSample(likertValues, math.NaN())
	if err != nil {
		t.Fatalf("CohenDOneSample returned error %v", err)
	}
	if !cmp.Equal(got, 0.281275, cmpopts.EquateApprox(0, esTolerance)) {
		t.Errorf("CohenDOneSample got %g, want 0.281275", got)
	}
}

func TestCohenG(t *testing.T) {
	got, err := CohenG(5, 3)
	if err != nil {
		t.Fatalf("CohenG returned error %v", err)
	}
	if !cmp.Equal(got, 0.125, cmpopts.EquateApprox(0, 1e-12)) {
		t.Errorf("CohenG got %g, want 0.125", got)
	}
}

func TestCohenHOneSample(t *testing.T) {
	got, err := CohenHOneSample(5, 3, 0.5)
	if err != nil {
		t.Fatalf("CohenHOneSample returned error %v", err)
	}
	if !cmp.Equal(got, 0.252680, cmpopts.EquateApprox(0, esTolerance)) {
		t.Errorf("CohenHOneSample got %g, want 0.252680", got)
	}
}

func TestAltRatio(t *testing.T) {
	r1, r2, err := AltRatio(5, 3, 0.5)
	if err != nil {
		t.Fatalf("AltRatio returned error %v", err)
	}
	if !cmp.Equal(r1, 1.25, cmpopts.EquateApprox(0, 1e-12)) || !cmp.Equal(r2, 0.75, cmpopts.EquateApprox(0, 1e-12)) {
		t.Errorf("AltRatio got (%g, %g), want (1.25, 0.75)", r1, r2)
	}
}

func TestCohenW(t *testing.T) {
	got, err := CohenW(4.333333, 18)
	if err != nil {
		t.Fatalf("CohenW returned error %v", err)
	}
	if !cmp.Equal(got, 0.490653, cmpopts.EquateApprox(0, esTolerance)) {
		t.Errorf("CohenW got %g, want 0.490653", got)
	}
}

func TestCramerVGoF(t *testing.T) {
	plain, err := CramerVGoF(4.333333, 18, 3, false)
	if err != nil {
		t.Fatalf("CramerVGoF returned error %v", err)
	}
	if !cmp.Equal(plain, 0.346944, cmpopts.EquateApprox(0, esTolerance)) {
		t.Errorf("CramerVGoF got %g, want 0.346944", plain)
	}
	corrected, err := CramerVGoF(4.333333, 18, 3, true)
	if err != nil {
		t.Fatalf("CramerVGoF returned error %v", err)
	}
	if !cmp.Equal(corrected, 0.264108, cmpopts.EquateApprox(0, esTolerance)) {
		t.Errorf("CramerVGoF with the Bergsma correction got %g, want 0.264108", corrected)
	}
}

func TestJohnstonBerryMielkeE(t *testing.T) {
	chi, err := JohnstonBerryMielkeE(4.333333, 18, 6, false)
	if err != nil {
		t.Fatalf("JohnstonBerryMielkeE returned error %v", err)
	}
	if !cmp.Equal(chi, 0.120370, cmpopts.EquateApprox(0, esTolerance)) {
		t.Errorf("JohnstonBerryMielkeE got %g, want 0.120370", chi)
	}
	lik, err := JohnstonBerryMielkeE(4.234414, 18, 6, true)
	if err != nil {
		t.Fatalf("JohnstonBerryMielkeE returned error %v", err)
	}
	if !cmp.Equal(lik, 0.107065, cmpopts.EquateApprox(0, esTolerance)) {
		t.Errorf("JohnstonBerryMielkeE for a likelihood statistic got %g, want 0.107065", lik)
	}
}

func TestDominance(t *testing.T) {
	dom, err := Dominance(likertValues, math.NaN())
	if err != nil {
		t.Fatalf("Dominance returned error %v", err)
	}
	if !cmp.Equal(dom, 4.0/18, cmpopts.EquateApprox(0, 1e-12)) {
		t.Errorf("Dominance got %g, want %g", dom, 4.0/18)
	}
	vda, err := VDA(likertValues, math.NaN())
	if err != nil {
		t.Fatalf("VDA returned error %v", err)
	}
	if !cmp.Equal(vda, (4.0/18+1)/2, cmpopts.EquateApprox(0, 1e-12)) {
		t.Errorf("VDA got %g, want %g", vda, (4.0/18+1)/2)
	}
}

func TestRankBiserial(t *testing.T) {
	got, err := RankBiserial(likertValues, math.NaN())
	if err != nil {
		t.Fatalf("RankBiserial returned error %v", err)
	}
	if !cmp.Equal(got, 46.0/136, cmpopts.EquateApprox(0, 1e-12)) {
		t.Errorf("RankBiserial got %g, want %g", got, 46.0/136)
	}
}

func TestRosenthal(t *testing.T) {
	got, err := Rosenthal(-1.96, 100)
	if err != nil {
		t.Fatalf("Rosenthal returned error %v", err)
	}
	if !cmp.Equal(got, 0.196, cmpopts.EquateApprox(0, 1e-12)) {
		t.Errorf("Rosenthal got %g, want 0.196", got)
	}
}

func TestEffectSizeErrors(t *testing.T) {
	if _, err := CohenDOneSample([]float64{3, 3, 3}, 2); err == nil {
		t.Errorf("CohenDOneSample on a constant sample got nil error, want error")
	}
	if _, err := CohenG(0, 0); err == nil {
		t.Errorf("CohenG on empty counts got nil error, want error")
	}
	if _, _, err := AltRatio(5, 3, 0); err == nil {
		t.Errorf("AltRatio with a zero proportion got nil error, want error")
	}
	if _, err := CohenW(-1, 18); err == nil {
		t.Errorf("CohenW with a negative statistic got nil error, want error")
	}
	if _, err := JohnstonBerryMielkeE(4.3, 18, 0, false); err == nil {
		t.Errorf("JohnstonBerryMielkeE with a zero minimum expected count got nil error, want error")
	}
	if _, err := RankBiserial([]float64{3, 3}, 3); err == nil {
		t.Errorf("RankBiserial with every value at the hypothesized median got nil error, want error")
	}
}
