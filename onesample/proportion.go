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

package onesample

import (
	"fmt"
	"math"

	"github.com/stikpet/stikpetgo/checks"
)

// ProportionResult holds the outcome of an approximate test on a binary
// variable (Score or Wald).
type ProportionResult struct {
	N         int
	Statistic float64
	PValue    float64
	Test      string
}

// Score performs the one-sample score test (Wilson, 1927), a normal
// approximation of the binomial test with the standard error based on the
// hypothesized proportion. Also known as a one-sample proportion test.
// yates applies the Yates continuity correction.
func Score(n1, n2 int, p0 float64, yates bool) (ProportionResult, error) {
	minCount, expProp, n, err := minorityCount(n1, n2, p0)
	if err != nil {
		return ProportionResult{}, fmt.Errorf("Score: %v", err)
	}
	se := math.Sqrt(p0 * (1 - p0) / float64(n))
	p := minCount / float64(n)
	testUsed := "Normal approximation"
	if yates {
		p = (minCount + 0.5) / float64(n)
		testUsed += " with Yates continuity correction"
	}
	z := (p - expProp) / se
	return ProportionResult{
		N:         n,
		Statistic: z,
		PValue:    twoSidedNormal(z),
		Test:      testUsed,
	}, nil
}

// Wald performs the one-sample Wald test (Wald, 1943). It differs from
// Score in basing the standard error on the observed proportion instead of
// the hypothesized one. yates applies the Yates continuity correction.
func Wald(n1, n2 int, p0 float64, yates bool) (ProportionResult, error) {
	minCount, expProp, n, err := minorityCount(n1, n2, p0)
	if err != nil {
		return ProportionResult{}, fmt.Errorf("Wald: %v", err)
	}
	p := minCount / float64(n)
	testUsed := "Wald approximation"
	if yates {
		p = (minCount + 0.5) / float64(n)
		testUsed += " with Yates continuity correction"
	}
	se := math.Sqrt(p * (1 - p) / float64(n))
	z := (p - expProp) / se
	return ProportionResult{
		N:         n,
		Statistic: z,
		PValue:    twoSidedNormal(z),
		Test:      testUsed,
	}, nil
}

// minorityCount validates the counts and returns the smaller of the two,
// with the expected proportion flipped to match it.
func minorityCount(n1, n2 int, p0 float64) (minCount, expProp float64, n int, err error) {
	if err := checks.CheckCount(n1, "FirstCount"); err != nil {
		return 0, 0, 0, err
	}
	if err := checks.CheckCount(n2, "SecondCount"); err != nil {
		return 0, 0, 0, err
	}
	if err := checks.CheckPositiveCount(n1+n2, "TotalCount"); err != nil {
		return 0, 0, 0, err
	}
	if err := checks.CheckProportion(p0); err != nil {
		return 0, 0, 0, err
	}
	minCount, expProp = float64(n1), p0
	if n2 < n1 {
		minCount, expProp = float64(n2), 1-p0
	}
	return minCount, expProp, n1 + n2, nil
}
