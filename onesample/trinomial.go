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

// TrinomialResult holds the outcome of the one-sample trinomial test.
type TrinomialResult struct {
	Mu     float64
	NPos   int
	NNeg   int
	NTied  int
	PValue float64
	Test   string
}

// Trinomial performs the one-sample trinomial test (Bian, McAleer & Wong,
// 2009), an exact test for ordinal data that accounts for values tied with
// the hypothesized median instead of discarding them. Passing NaN for mu
// uses the midrange of the sample.
func Trinomial(values []float64, mu float64) (TrinomialResult, error) {
	if err := checks.CheckSample(values); err != nil {
		return TrinomialResult{}, fmt.Errorf("Trinomial: %v", err)
	}
	mu, err := resolveMu(values, mu)
	if err != nil {
		return TrinomialResult{}, fmt.Errorf("Trinomial: %v", err)
	}

	var nPos, nNeg, nTied int
	for _, v := range values {
		switch {
		case v > mu:
			nPos++
		case v < mu:
			nNeg++
		default:
			nTied++
		}
	}
	n := len(values)
	nd := nPos - nNeg
	if nd < 0 {
		nd = -nd
	}
	pTied := float64(nTied) / float64(n)
	pPos := (1 - pTied) / 2
	probs := []float64{pPos, pPos, pTied}

	var sig float64
	for d := nd; d <= n; d++ {
		for k := 0; k <= (n-d)/2; k++ {
			sig += trinomialPMF([3]int{k, k + d, n - 2*k - d}, n, probs)
		}
	}
	sig *= 2
	if sig > 1 {
		sig = 1
	}
	return TrinomialResult{
		Mu:     mu,
		NPos:   nPos,
		NNeg:   nNeg,
		NTied:  nTied,
		PValue: sig,
		Test:   "one-sample trinomial",
	}, nil
}

// trinomialPMF evaluates the multinomial probability mass in log space to
// stay stable for larger samples.
func trinomialPMF(counts [3]int, n int, probs []float64) float64 {
	logP := lgamma(float64(n) + 1)
	for i, c := range counts {
		if probs[i] == 0 {
			if c > 0 {
				return 0
			}
			continue
		}
		logP += float64(c)*math.Log(probs[i]) - lgamma(float64(c)+1)
	}
	return math.Exp(logP)
}

func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}
