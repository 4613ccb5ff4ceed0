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

// Package thumb qualifies effect sizes against published rules of thumb.
//
// Each function takes the magnitude of an effect size together with a
// Rule naming the benchmark table and returns the qualification label
// along with a reference to the literature the table was taken from.
// Classification always uses the absolute value, so the direction of an
// effect does not change its qualification.
package thumb

import (
	"fmt"
	"math"
)

// Rule selects a published benchmark table.
type Rule int

const (
	// RuleDefault selects the preferred table of the measure at hand:
	// Sawilowsky for Cohen d, Bartz for the Pearson correlation, and
	// Cohen for everything else.
	RuleDefault Rule = iota
	RuleCohen
	RuleLovakov
	RuleRosenthal
	RuleSawilowsky
	RuleBartz
	RuleRafter
	RuleRumsey
	// RuleGignac and RuleHemphill share one table, published
	// independently with identical boundaries.
	RuleGignac
	RuleHemphill
	RuleAgnes
	RuleDisha
	RuleHopkins
	RuleFunder
)

// String returns the name of the rule of thumb.
func (r Rule) String() string {
	switch r {
	case RuleDefault:
		return "default"
	case RuleCohen:
		return "cohen"
	case RuleLovakov:
		return "lovakov"
	case RuleRosenthal:
		return "rosenthal"
	case RuleSawilowsky:
		return "sawilowsky"
	case RuleBartz:
		return "bartz"
	case RuleRafter:
		return "rafter"
	case RuleRumsey:
		return "rumsey"
	case RuleGignac:
		return "gignac"
	case RuleHemphill:
		return "hemphill"
	case RuleAgnes:
		return "agnes"
	case RuleDisha:
		return "disha"
	case RuleHopkins:
		return "hopkins"
	case RuleFunder:
		return "funder"
	}
	return fmt.Sprintf("unknown rule %d", r)
}

// Classification is the qualification of an effect size together with a
// reference for the benchmark table that produced it.
type Classification struct {
	Label     string
	Reference string
}

// band is one row of a benchmark table: the label applies to magnitudes
// strictly below the limit. The final band carries limit +Inf.
type band struct {
	limit float64
	label string
}

func classify(es float64, ref string, bands []band) Classification {
	es = math.Abs(es)
	for _, b := range bands {
		if es < b.limit {
			return Classification{Label: b.label, Reference: ref}
		}
	}
	return Classification{Label: bands[len(bands)-1].label, Reference: ref}
}

var inf = math.Inf(1)

// CohenD qualifies a Cohen d. Supported rules are RuleCohen, RuleLovakov,
// RuleRosenthal and RuleSawilowsky; RuleDefault uses Sawilowsky.
func CohenD(d float64, rule Rule) (Classification, error) {
	switch rule {
	case RuleCohen:
		// Cohen (1988, p. 40)
		return classify(d, "Cohen (1988, p. 40)", []band{
			{0.2, "negligible"},
			{0.5, "small"},
			{0.8, "medium"},
			{inf, "large"},
		}), nil
	case RuleLovakov:
		// Lovakov and Agadullina (2021, p. 501)
		return classify(d, "Lovakov and Agadullina (2021, p. 501)", []band{
			{0.15, "negligible"},
			{0.35, "small"},
			{0.65, "medium"},
			{inf, "large"},
		}), nil
	case RuleRosenthal:
		// Rosenthal (1996, p. 45)
		return classify(d, "Rosenthal (1996, p. 45)", []band{
			{0.2, "negligible"},
			{0.5, "small"},
			{0.8, "medium"},
			{1.3, "large"},
			{inf, "very large"},
		}), nil
	case RuleDefault, RuleSawilowsky:
		// Sawilowsky (2009, p. 599)
		return classify(d, "Sawilowsky (2009, p. 599)", []band{
			{0.01, "negligible"},
			{0.2, "very small"},
			{0.5, "small"},
			{0.8, "medium"},
			{1.2, "large"},
			{2.0, "very large"},
			{inf, "huge"},
		}), nil
	}
	return Classification{}, fmt.Errorf("CohenD: no rule of thumb %v for Cohen d", rule)
}

// CohenG qualifies a Cohen g. Only RuleCohen (the default) is available.
func CohenG(g float64, rule Rule) (Classification, error) {
	if rule != RuleDefault && rule != RuleCohen {
		return Classification{}, fmt.Errorf("CohenG: no rule of thumb %v for Cohen g", rule)
	}
	// Cohen (1988, pp. 147-149)
	return classify(g, "Cohen (1988, pp. 147-149)", []band{
		{0.05, "negligible"},
		{0.15, "small"},
		{0.25, "medium"},
		{inf, "large"},
	}), nil
}

// CohenH qualifies a Cohen h. Only RuleCohen (the default) is available.
func CohenH(h float64, rule Rule) (Classification, error) {
	if rule != RuleDefault && rule != RuleCohen {
		return Classification{}, fmt.Errorf("CohenH: no rule of thumb %v for Cohen h", rule)
	}
	// Cohen (1988, p. 198)
	return classify(h, "Cohen (1988, p. 198)", []band{
		{0.2, "negligible"},
		{0.5, "small"},
		{0.8, "medium"},
		{inf, "large"},
	}), nil
}

// CohenW qualifies a Cohen w. Only RuleCohen (the default) is available.
func CohenW(w float64, rule Rule) (Classification, error) {
	if rule != RuleDefault && rule != RuleCohen {
		return Classification{}, fmt.Errorf("CohenW: no rule of thumb %v for Cohen w", rule)
	}
	// Cohen (1988, p. 227)
	return classify(w, "Cohen (1988, p. 227)", []band{
		{0.1, "negligible"},
		{0.3, "small"},
		{0.5, "medium"},
		{inf, "large"},
	}), nil
}

// PearsonR qualifies a Pearson correlation coefficient, or any effect
// size on the same -1 to 1 scale such as the rank biserial or the
// Rosenthal correlation. RuleDefault uses Bartz.
func PearsonR(r float64, rule Rule) (Classification, error) {
	switch rule {
	case RuleRafter:
		// Rafter et al. (2003, p. 194)
		return classify(r, "Rafter et al. (2003, p. 194)", []band{
			{0.25, "weak"},
			{0.75, "moderate"},
			{inf, "strong"},
		}), nil
	case RuleCohen:
		// Cohen (1988, p. 82)
		return classify(r, "Cohen (1988, p. 82)", []band{
			{0.1, "negligible"},
			{0.3, "small"},
			{0.5, "medium"},
			{inf, "large"},
		}), nil
	case RuleRumsey:
		// Rumsey (2011, p. 284)
		return classify(r, "Rumsey (2011, p. 284)", []band{
			{0.3, "negligible"},
			{0.5, "weak"},
			{0.7, "moderate"},
			{inf, "strong"},
		}), nil
	case RuleGignac, RuleHemphill:
		// Gignac and Szodorai (2016, p. 75); Hemphill (2003, p. 78)
		return classify(r, "Gignac and Szodorai (2016, p. 75); Hemphill (2003, p. 78)", []band{
			{0.1, "negligible"},
			{0.2, "small"},
			{0.3, "medium"},
			{inf, "large"},
		}), nil
	case RuleLovakov:
		// Lovakov and Agadullina (2021, p. 514)
		return classify(r, "Lovakov and Agadullina (2021, p. 514)", []band{
			{0.12, "negligible"},
			{0.24, "small"},
			{0.41, "medium"},
			{inf, "large"},
		}), nil
	case RuleRosenthal:
		// Rosenthal (1996, p. 45)
		return classify(r, "Rosenthal (1996, p. 45)", []band{
			{0.1, "negligible"},
			{0.3, "small"},
			{0.5, "medium"},
			{0.7, "large"},
			{inf, "very large"},
		}), nil
	case RuleAgnes:
		// Agnes (2011)
		return classify(r, "Agnes (2011)", []band{
			{0.2, "negligible"},
			{0.4, "low"},
			{0.6, "moderate"},
			{0.8, "marked"},
			{inf, "high"},
		}), nil
	case RuleDefault, RuleBartz:
		// Bartz (1999, p. 184, as cited in Warmbrod 2001)
		return classify(r, "Bartz (1999, p. 184, as cited in Warmbrod 2001)", []band{
			{0.2, "very low"},
			{0.4, "low"},
			{0.6, "moderate"},
			{0.8, "strong"},
			{inf, "very high"},
		}), nil
	case RuleDisha:
		// Disha (2016)
		return classify(r, "Disha (2016)", []band{
			{0.1, "markedly low and negligible"},
			{0.3, "very low"},
			{0.5, "low"},
			{0.7, "moderate"},
			{0.9, "high"},
			{inf, "very high"},
		}), nil
	case RuleHopkins:
		// Hopkins (1997, as cited in Warmbrod 2001)
		return classify(r, "Hopkins (1997, as cited in Warmbrod 2001)", []band{
			{0.1, "trivial"},
			{0.3, "low"},
			{0.5, "moderate"},
			{0.7, "high"},
			{0.9, "very large"},
			{inf, "nearly perfect"},
		}), nil
	case RuleFunder:
		// Funder and Ozer (2019, p. 166)
		return classify(r, "Funder and Ozer (2019, p. 166)", []band{
			{0.05, "negligible"},
			{0.1, "very small"},
			{0.2, "small"},
			{0.3, "medium"},
			{0.4, "large"},
			{inf, "very large"},
		}), nil
	}
	return Classification{}, fmt.Errorf("PearsonR: no rule of thumb %v for a correlation coefficient", rule)
}
