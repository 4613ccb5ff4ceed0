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

	"github.com/stikpet/stikpetgo/checks"
	"gonum.org/v1/gonum/stat/distuv"
)

// TwoSidedMethod selects how the exact binomial test turns the one-sided
// tail into a two-sided p-value. The three approaches can give noticeably
// different results for asymmetric null proportions.
type TwoSidedMethod int

const (
	// EqualDistance mirrors the observed count to the other side of the
	// expected count and adds both tails.
	EqualDistance TwoSidedMethod = iota
	// Double doubles the one-sided p-value.
	Double
	// SmallP sums all outcome probabilities not exceeding the probability
	// of the observed count.
	SmallP
)

func (m TwoSidedMethod) String() string {
	switch m {
	case EqualDistance:
		return "equal-distance method"
	case Double:
		return "double one-sided method"
	case SmallP:
		return "small p method"
	}
	return fmt.Sprintf("TwoSidedMethod(%d)", int(m))
}

// BinomialResult holds the outcome of the exact binomial test.
type BinomialResult struct {
	PValue float64
	Test   string
}

// Binomial performs the one-sample exact binomial test on a binary variable
// with n1 cases in the first category and n2 in the second. p0 is the
// hypothesized population proportion of the first category.
//
// The one-sided tail is always computed for the smaller of the two counts,
// flipping p0 to 1-p0 when that is the second category.
func Binomial(n1, n2 int, p0 float64, method TwoSidedMethod) (BinomialResult, error) {
	if err := checks.CheckCount(n1, "FirstCount"); err != nil {
		return BinomialResult{}, fmt.Errorf("Binomial: %v", err)
	}
	if err := checks.CheckCount(n2, "SecondCount"); err != nil {
		return BinomialResult{}, fmt.Errorf("Binomial: %v", err)
	}
	if err := checks.CheckPositiveCount(n1+n2, "TotalCount"); err != nil {
		return BinomialResult{}, fmt.Errorf("Binomial: %v", err)
	}
	if err := checks.CheckProportion(p0); err != nil {
		return BinomialResult{}, fmt.Errorf("Binomial: %v", err)
	}

	n := n1 + n2
	minCount, expProp := float64(n1), p0
	if n2 < n1 {
		minCount, expProp = float64(n2), 1-p0
	}
	dist := distuv.Binomial{N: float64(n), P: expProp}
	sigLeft := dist.CDF(minCount)

	testUsed := "one-sample binomial"
	var sigRight float64
	switch method {
	case Double:
		sigRight = sigLeft
	case EqualDistance:
		// Mirror the observed count around the expected count; the CDF
		// truncates the possibly fractional mirrored position.
		expCount := float64(n) * expProp
		sigRight = 1 - dist.CDF(2*expCount-minCount-1)
	case SmallP:
		pObs := dist.Prob(minCount)
		for i := minCount + 1; i <= float64(n); i++ {
			if p := dist.Prob(i); p <= pObs {
				sigRight += p
			}
		}
	default:
		return BinomialResult{}, fmt.Errorf("Binomial: unknown two-sided method %d", method)
	}
	return BinomialResult{
		PValue: sigLeft + sigRight,
		Test:   testUsed + ", with " + method.String(),
	}, nil
}
