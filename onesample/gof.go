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

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Correction selects a continuity or bias correction for the
// goodness-of-fit tests.
type Correction int

const (
	// NoCorrection applies the plain test.
	NoCorrection Correction = iota
	// Yates moves every observed count half a point toward its expected
	// count (Yates, 1934).
	Yates
	// EPearson scales the statistic by (n-1)/n (E. Pearson, 1947).
	EPearson
	// Williams divides the statistic by 1 + (k²-1)/(6·n·(k-1))
	// (Williams, 1976).
	Williams
)

// Lambda values selecting the classic members of the Cressie-Read power
// divergence family.
const (
	LambdaPearson         = 1.0
	LambdaLikelihoodRatio = 0.0
	LambdaFreemanTukey    = -0.5
	LambdaModLog          = -1.0
	LambdaNeyman          = -2.0
	LambdaCressieRead     = 2.0 / 3.0
)

// GoFResult holds the outcome of a chi-square based goodness-of-fit test.
// MinExpected and PropBelowFive describe the expected counts, the usual
// diagnostics for whether the chi-square approximation is trustworthy.
type GoFResult struct {
	N             int
	K             int
	Statistic     float64
	DF            float64
	PValue        float64
	MinExpected   float64
	PropBelowFive float64
	Test          string
}

// PearsonGoF performs the Pearson chi-square test of goodness-of-fit on the
// observed category counts. expected gives relative expected weights per
// category and is scaled to the sample size; nil means equal expected
// counts.
func PearsonGoF(observed []float64, expected []float64, corr Correction) (GoFResult, error) {
	obs, expC, n, err := gofCounts(observed, expected)
	if err != nil {
		return GoFResult{}, fmt.Errorf("PearsonGoF: %v", err)
	}
	k := len(obs)
	var chi float64
	for i := range obs {
		dev := obs[i] - expC[i]
		if corr == Yates {
			dev = math.Abs(dev) - 0.5
		}
		chi += dev * dev / expC[i]
	}
	chi = applyScaleCorrection(chi, corr, n, k)

	res := gofResult(chi, expC, n, "Pearson chi-square test of goodness-of-fit")
	switch corr {
	case Yates:
		res.Test += ", with Yates continuity correction"
	case EPearson:
		res.Test += ", with E. Pearson continuity correction"
	case Williams:
		res.Test += ", with Williams continuity correction"
	}
	return res, nil
}

// GGoF performs the G (likelihood-ratio) test of goodness-of-fit on the
// observed category counts. expected gives relative expected weights per
// category; nil means equal expected counts.
func GGoF(observed []float64, expected []float64, corr Correction) (GoFResult, error) {
	obs, expC, n, err := gofCounts(observed, expected)
	if err != nil {
		return GoFResult{}, fmt.Errorf("GGoF: %v", err)
	}
	k := len(obs)
	if err := checkNoZeroCounts(obs); err != nil {
		return GoFResult{}, fmt.Errorf("GGoF: %v", err)
	}
	if corr == Yates {
		obs = yatesAdjust(obs, expC)
	}
	var g float64
	for i := range obs {
		g += obs[i] * math.Log(obs[i]/expC[i])
	}
	g *= 2
	g = applyScaleCorrection(g, corr, n, k)

	res := gofResult(g, expC, n, "G test of goodness-of-fit")
	switch corr {
	case Yates:
		res.Test += ", with Yates continuity correction"
	case EPearson:
		res.Test += ", with E. Pearson continuity correction"
	case Williams:
		res.Test += ", with Williams continuity correction"
	}
	return res, nil
}

// PowerDivergence performs a goodness-of-fit test from the Cressie-Read
// power divergence family (Cressie & Read, 1984). lambda selects the
// member; the Lambda constants cover the named ones, any other value gives
// the generic statistic. expected gives relative expected weights per
// category; nil means equal expected counts.
func PowerDivergence(observed []float64, expected []float64, lambda float64, corr Correction) (GoFResult, error) {
	obs, expC, n, err := gofCounts(observed, expected)
	if err != nil {
		return GoFResult{}, fmt.Errorf("PowerDivergence: %v", err)
	}
	k := len(obs)
	if lambda <= 0 {
		// log and negative-power members blow up on empty categories
		if err := checkNoZeroCounts(obs); err != nil {
			return GoFResult{}, fmt.Errorf("PowerDivergence: %v", err)
		}
	}

	var testUsed string
	switch lambda {
	case LambdaCressieRead:
		testUsed = "Cressie-Read"
	case LambdaLikelihoodRatio:
		testUsed = "likelihood-ratio"
	case LambdaModLog:
		testUsed = "mod-log likelihood ratio"
	case LambdaPearson:
		testUsed = "Pearson chi-square"
	case LambdaFreemanTukey:
		testUsed = "Freeman-Tukey"
	case LambdaNeyman:
		testUsed = "Neyman"
	default:
		testUsed = fmt.Sprintf("power divergence with lambda = %g", lambda)
	}

	if corr == Yates {
		obs = yatesAdjust(obs, expC)
		testUsed += ", and Yates correction"
	}

	var ts float64
	switch lambda {
	case 0:
		for i := range obs {
			ts += obs[i] * math.Log(obs[i]/expC[i])
		}
		ts *= 2
	case -1:
		for i := range obs {
			ts += expC[i] * math.Log(expC[i]/obs[i])
		}
		ts *= 2
	default:
		for i := range obs {
			ts += obs[i] * (math.Pow(obs[i]/expC[i], lambda) - 1)
		}
		ts = 2 * ts / (lambda * (lambda + 1))
	}

	switch corr {
	case EPearson:
		ts *= (n - 1) / n
		testUsed += ", and Pearson correction"
	case Williams:
		kf := float64(k)
		ts /= 1 + (kf*kf-1)/(6*n*(kf-1))
		testUsed += ", and Williams correction"
	}
	return gofResult(ts, expC, n, testUsed), nil
}

// MultinomialResult holds the outcome of the exact multinomial
// goodness-of-fit test.
type MultinomialResult struct {
	PObserved    float64
	Combinations int
	PValue       float64
	Test         string
}

// maxCompositions bounds the number of count vectors MultinomialGoF is
// willing to enumerate.
const maxCompositions = 5_000_000

// MultinomialGoF performs the exact multinomial goodness-of-fit test: the
// p-value is the total probability of all count vectors no more likely than
// the observed one. expected gives relative expected weights per category;
// nil means equal expected counts. The enumeration covers every composition
// of n over the k categories, so the test errors out for combinations of n
// and k that would require more than a few million evaluations.
func MultinomialGoF(observed []float64, expected []float64) (MultinomialResult, error) {
	obs, expC, n, err := gofCounts(observed, expected)
	if err != nil {
		return MultinomialResult{}, fmt.Errorf("MultinomialGoF: %v", err)
	}
	k := len(obs)
	props := make([]float64, k)
	for i := range expC {
		props[i] = expC[i] / n
	}

	total := int(n)
	combs := compositionCount(total, k)
	if combs > maxCompositions {
		return MultinomialResult{}, fmt.Errorf("MultinomialGoF: %d categories over %d cases needs %d compositions, exceeding the limit of %d", k, total, combs, maxCompositions)
	}

	counts := make([]int, k)
	for i, o := range obs {
		counts[i] = int(o)
	}
	pObs := multinomialPMF(counts, total, props)
	// permutations of the observed vector must count as "as likely", so
	// allow a sliver of rounding noise in the comparison
	threshold := pObs * (1 + 1e-12)

	var pVal float64
	cur := make([]int, k)
	var walk func(pos, left int)
	walk = func(pos, left int) {
		if pos == k-1 {
			cur[pos] = left
			if p := multinomialPMF(cur, total, props); p <= threshold {
				pVal += p
			}
			return
		}
		for c := 0; c <= left; c++ {
			cur[pos] = c
			walk(pos+1, left-c)
		}
	}
	walk(0, total)

	return MultinomialResult{
		PObserved:    pObs,
		Combinations: combs,
		PValue:       pVal,
		Test:         "one-sample multinomial exact goodness-of-fit test",
	}, nil
}

// gofCounts validates the observed counts and scales the expected weights
// to the sample size.
func gofCounts(observed, expected []float64) (obs, expC []float64, n float64, err error) {
	if len(observed) < 2 {
		return nil, nil, 0, fmt.Errorf("need at least two categories, got %d", len(observed))
	}
	for i, o := range observed {
		if o < 0 || math.IsNaN(o) || math.IsInf(o, 0) || o != math.Floor(o) {
			return nil, nil, 0, fmt.Errorf("observed count at position %d is %f, must be a nonnegative integer", i, o)
		}
	}
	n = floats.Sum(observed)
	if n == 0 {
		return nil, nil, 0, fmt.Errorf("all observed counts are zero")
	}
	k := len(observed)
	expC = make([]float64, k)
	if expected == nil {
		for i := range expC {
			expC[i] = n / float64(k)
		}
	} else {
		if len(expected) != k {
			return nil, nil, 0, fmt.Errorf("got %d expected weights for %d categories", len(expected), k)
		}
		var sum float64
		for i, e := range expected {
			if e <= 0 || math.IsNaN(e) || math.IsInf(e, 0) {
				return nil, nil, 0, fmt.Errorf("expected weight at position %d is %f, must be strictly positive", i, e)
			}
			sum += e
		}
		for i, e := range expected {
			expC[i] = e / sum * n
		}
	}
	obs = make([]float64, k)
	copy(obs, observed)
	return obs, expC, n, nil
}

func checkNoZeroCounts(obs []float64) error {
	for i, o := range obs {
		if o == 0 {
			return fmt.Errorf("observed count at position %d is zero, the statistic is undefined", i)
		}
	}
	return nil
}

// yatesAdjust moves every observed count half a point toward its expected
// count.
func yatesAdjust(obs, expC []float64) []float64 {
	adj := make([]float64, len(obs))
	for i, o := range obs {
		switch {
		case o > expC[i]:
			adj[i] = o - 0.5
		case o < expC[i]:
			adj[i] = o + 0.5
		default:
			adj[i] = o
		}
	}
	return adj
}

func applyScaleCorrection(ts float64, corr Correction, n float64, k int) float64 {
	switch corr {
	case EPearson:
		return (n - 1) / n * ts
	case Williams:
		kf := float64(k)
		return ts / (1 + (kf*kf-1)/(6*n*(kf-1)))
	}
	return ts
}

func gofResult(ts float64, expC []float64, n float64, testUsed string) GoFResult {
	k := len(expC)
	df := float64(k - 1)
	dist := distuv.ChiSquared{K: df}
	minExp := floats.Min(expC)
	var below int
	for _, e := range expC {
		if e < 5 {
			below++
		}
	}
	return GoFResult{
		N:             int(n),
		K:             k,
		Statistic:     ts,
		DF:            df,
		PValue:        dist.Survival(ts),
		MinExpected:   minExp,
		PropBelowFive: float64(below) / float64(k),
		Test:          testUsed,
	}
}

// multinomialPMF evaluates the multinomial probability mass in log space.
func multinomialPMF(counts []int, n int, probs []float64) float64 {
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

// compositionCount returns C(n+k-1, k-1), the number of ways to split n
// cases over k categories, saturating at maxCompositions+1.
func compositionCount(n, k int) int {
	res := 1.0
	for i := 1; i < k; i++ {
		res = res * float64(n+i) / float64(i)
		if res > maxCompositions {
			return maxCompositions + 1
		}
	}
	return int(math.Round(res))
}
