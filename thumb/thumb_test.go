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

package thumb

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCohenD(t *testing.T) {
	for _, tc := range []struct {
		d    float64
		rule Rule
		want Classification
	}{
		{0.6, RuleDefault, Classification{"medium", "Sawilowsky (2009, p. 599)"}},
		{0.005, RuleSawilowsky, Classification{"negligible", "Sawilowsky (2009, p. 599)"}},
		{0.1, RuleSawilowsky, Classification{"very small", "Sawilowsky (2009, p. 599)"}},
		{1.5, RuleSawilowsky, Classification{"very large", "Sawilowsky (2009, p. 599)"}},
		{2.5, RuleSawilowsky, Classification{"huge", "Sawilowsky (2009, p. 599)"}},
		{-0.6, RuleCohen, Classification{"medium", "Cohen (1988, p. 40)"}},
		{0.9, RuleCohen, Classification{"large", "Cohen (1988, p. 40)"}},
		{0.3, RuleLovakov, Classification{"small", "Lovakov and Agadullina (2021, p. 501)"}},
		{0.65, RuleLovakov, Classification{"large", "Lovakov and Agadullina (2021, p. 501)"}},
		{1.0, RuleRosenthal, Classification{"large", "Rosenthal (1996, p. 45)"}},
		{1.3, RuleRosenthal, Classification{"very large", "Rosenthal (1996, p. 45)"}},
	} {
		got, err := CohenD(tc.d, tc.rule)
		if err != nil {
			t.Errorf("CohenD(%g, %v) returned error %v", tc.d, tc.rule, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("CohenD(%g, %v) returned diff (-want +got):\n%s", tc.d, tc.rule, diff)
		}
	}
}

func TestCohenG(t *testing.T) {
	for _, tc := range []struct {
		g    float64
		want string
	}{
		{0.02, "negligible"},
		{-0.1, "small"},
		{0.2, "medium"},
		{0.25, "large"},
	} {
		got, err := CohenG(tc.g, RuleDefault)
		if err != nil {
			t.Errorf("CohenG(%g) returned error %v", tc.g, err)
			continue
		}
		if got.Label != tc.want {
			t.Errorf("CohenG(%g) got label %q, want %q", tc.g, got.Label, tc.want)
		}
		if got.Reference != "Cohen (1988, pp. 147-149)" {
			t.Errorf("CohenG(%g) got reference %q", tc.g, got.Reference)
		}
	}
}

func TestCohenH(t *testing.T) {
	got, err := CohenH(0.6, RuleCohen)
	if err != nil {
		t.Fatalf("CohenH returned error %v", err)
	}
	want := Classification{"medium", "Cohen (1988, p. 198)"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CohenH(0.6) returned diff (-want +got):\n%s", diff)
	}
}

func TestCohenW(t *testing.T) {
	for _, tc := range []struct {
		w    float64
		want string
	}{
		{0.05, "negligible"},
		{0.24, "small"},
		{0.49, "medium"},
		{0.5, "large"},
	} {
		got, err := CohenW(tc.w, RuleDefault)
		if err != nil {
			t.Errorf("CohenW(%g) returned error %v", tc.w, err)
			continue
		}
		if got.Label != tc.want {
			t.Errorf("CohenW(%g) got label %q, want %q", tc.w, got.Label, tc.want)
		}
	}
}

func TestPearsonR(t *testing.T) {
	for _, tc := range []struct {
		r    float64
		rule Rule
		want Classification
	}{
		{0.6, RuleDefault, Classification{"moderate", "Bartz (1999, p. 184, as cited in Warmbrod 2001)"}},
		{-0.85, RuleBartz, Classification{"very high", "Bartz (1999, p. 184, as cited in Warmbrod 2001)"}},
		{0.5, RuleRafter, Classification{"moderate", "Rafter et al. (2003, p. 194)"}},
		{0.4, RuleCohen, Classification{"medium", "Cohen (1988, p. 82)"}},
		{0.6, RuleRumsey, Classification{"moderate", "Rumsey (2011, p. 284)"}},
		{0.25, RuleGignac, Classification{"medium", "Gignac and Szodorai (2016, p. 75); Hemphill (2003, p. 78)"}},
		{0.25, RuleHemphill, Classification{"medium", "Gignac and Szodorai (2016, p. 75); Hemphill (2003, p. 78)"}},
		{0.41, RuleLovakov, Classification{"large", "Lovakov and Agadullina (2021, p. 514)"}},
		{0.8, RuleRosenthal, Classification{"very large", "Rosenthal (1996, p. 45)"}},
		{0.7, RuleAgnes, Classification{"marked", "Agnes (2011)"}},
		{0.05, RuleDisha, Classification{"markedly low and negligible", "Disha (2016)"}},
		{0.95, RuleHopkins, Classification{"nearly perfect", "Hopkins (1997, as cited in Warmbrod 2001)"}},
		{0.35, RuleFunder, Classification{"large", "Funder and Ozer (2019, p. 166)"}},
	} {
		got, err := PearsonR(tc.r, tc.rule)
		if err != nil {
			t.Errorf("PearsonR(%g, %v) returned error %v", tc.r, tc.rule, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("PearsonR(%g, %v) returned diff (-want +got):\n%s", tc.r, tc.rule, diff)
		}
	}
}

func TestUnknownRules(t *testing.T) {
	if _, err := CohenD(0.5, RuleBartz); err == nil {
		t.Errorf("CohenD with a correlation rule got nil error, want error")
	}
	if _, err := CohenG(0.1, RuleSawilowsky); err == nil {
		t.Errorf("CohenG with an unsupported rule got nil error, want error")
	}
	if _, err := CohenH(0.1, RuleLovakov); err == nil {
		t.Errorf("CohenH with an unsupported rule got nil error, want error")
	}
	if _, err := CohenW(0.1, RuleRosenthal); err == nil {
		t.Errorf("CohenW with an unsupported rule got nil error, want error")
	}
	if _, err := PearsonR(0.5, RuleSawilowsky); err == nil {
		t.Errorf("PearsonR with a Cohen d rule got nil error, want error")
	}
	if _, err := PearsonR(0.5, Rule(99)); err == nil {
		t.Errorf("PearsonR with an out of range rule got nil error, want error")
	}
}
