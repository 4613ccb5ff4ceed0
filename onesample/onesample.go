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

// Package onesample implements one-sample hypothesis tests.
//
// The tests fall in three groups. Tests on a binary variable (Binomial,
// Score, Wald and Sign) take the two category counts directly. Tests on a
// numeric or ordinal sample (Wilcoxon, Trinomial, StudentT, Z and
// TrimmedMean) take the sample values and a hypothesized location; passing
// NaN for the location uses the midrange of the sample. Goodness-of-fit
// tests (PearsonGoF, GGoF, PowerDivergence, MultinomialGoF) take a table of
// observed counts with optional expected counts.
//
// Every test returns a result struct with the test statistic, the two-sided
// p-value, and a textual description of the exact variant that was run,
// since most of these tests exist in several flavors in the literature.
package onesample

import (
	"fmt"
	"math"

	"github.com/stikpet/stikpetgo/checks"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// Midrange returns (min + max) / 2 of the sample, the default hypothesized
// location for the location tests.
func Midrange(values []float64) (float64, error) {
	if err := checks.CheckSample(values); err != nil {
		return 0, fmt.Errorf("Midrange: %v", err)
	}
	return (floats.Min(values) + floats.Max(values)) / 2, nil
}

// resolveMu replaces a NaN hypothesized location with the midrange.
func resolveMu(values []float64, mu float64) (float64, error) {
	if !math.IsNaN(mu) {
		return mu, nil
	}
	return Midrange(values)
}

// twoSidedNormal returns 2·(1 - Φ(|z|)).
func twoSidedNormal(z float64) float64 {
	return 2 * (1 - stdNormal.CDF(math.Abs(z)))
}

// twoSidedStudentT returns 2·(1 - T(|t|, df)).
func twoSidedStudentT(t, df float64) float64 {
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return 2 * (1 - dist.CDF(math.Abs(t)))
}
