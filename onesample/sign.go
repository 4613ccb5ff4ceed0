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

// SignResult holds the outcome of the one-sample sign test.
type SignResult struct {
	Mu     float64
	PValue float64
	Test   string
}

// Sign performs the one-sample sign test (Stewart, 1941): an exact binomial
// test on the number of values below and above mu. Values equal to mu are
// discarded. Passing NaN for mu uses the midrange of the sample.
func Sign(values []float64, mu float64) (SignResult, error) {
	if err := checks.CheckSample(values); err != nil {
		return SignResult{}, fmt.Errorf("Sign: %v", err)
	}
	mu, err := resolveMu(values, mu)
	if err != nil {
		return SignResult{}, fmt.Errorf("Sign: %v", err)
	}
	var below, above int
	for _, v := range values {
		switch {
		case v < mu:
			below++
		case v > mu:
			above++
		}
	}
	n := below + above
	if n == 0 {
		return SignResult{}, fmt.Errorf("Sign: all values equal the hypothesized median %g", mu)
	}
	minCount := below
	if above < below {
		minCount = above
	}
	dist := distuv.Binomial{N: float64(n), P: 0.5}
	p := 2 * dist.CDF(float64(minCount))
	if p > 1 {
		p = 1
	}
	return SignResult{Mu: mu, PValue: p, Test: "one-sample sign test"}, nil
}
