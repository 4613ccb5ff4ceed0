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

// Package effectsize computes effect size measures accompanying the
// one-sample tests, plus conversions between them.
package effectsize

import (
	"fmt"
	"math"

	"github.com/stikpet/stikpetgo/checks"
	"github.com/stikpet/stikpetgo/ranks"
	"gonum.org/v1/gonum/stat"
)

// CohenDOneSample returns the one-sample Cohen d': the absolute
// standardized deviation of the sample mean from mu. Passing NaN for mu
// uses the midrange of the sample. Multiply by √2 to convert to a regular
// Cohen d (see Convert).
func CohenDOneSample(values []float64, mu float64) (float64, error) {
	if err := checks.CheckSampleSize(values, 2); err != nil {
		return 0, fmt.Errorf("CohenDOneSample: %v", err)
	}
	mu = defaultMu(values, mu)
	s := math.Sqrt(stat.Variance(values, nil))
	if s == 0 {
		return 0, fmt.Errorf("CohenDOneSample: sample has zero variance")
	}
	return math.Abs(stat.Mean(values, nil)-mu) / s, nil
}

// CohenG returns Cohen's g for a binary variable with counts n1 and n2:
// the deviation of the first category's proportion from one half.
func CohenG(n1, n2 int) (float64, error) {
	if err := binaryCounts(n1, n2); err != nil {
		return 0, fmt.Errorf("CohenG: %v", err)
	}
	return float64(n1)/float64(n1+n2) - 0.5, nil
}

// CohenHOneSample returns Cohen's h' for a binary variable: the difference
// between the arcsine transformed observed and hypothesized proportions.
// Multiply by √2 to convert to a regular Cohen h (see Convert).
func CohenHOneSample(n1, n2 int, p0 float64) (float64, error) {
	if err := binaryCounts(n1, n2); err != nil {
		return 0, fmt.Errorf("CohenHOneSample: %v", err)
	}
	if err := checks.CheckProportion(p0); err != nil {
		return 0, fmt.Errorf("CohenHOneSample: %v", err)
	}
	p1 := float64(n1) / float64(n1+n2)
	return 2*math.Asin(math.Sqrt(p1)) - 2*math.Asin(math.Sqrt(p0)), nil
}

// AltRatio returns the alternative ratios of a binary variable: the
// observed proportion of each category over its hypothesized proportion.
func AltRatio(n1, n2 int, p0 float64) (ratio1, ratio2 float64, err error) {
	if err := binaryCounts(n1, n2); err != nil {
		return 0, 0, fmt.Errorf("AltRatio: %v", err)
	}
	if err := checks.CheckProportion(p0); err != nil {
		return 0, 0, fmt.Errorf("AltRatio: %v", err)
	}
	n := float64(n1 + n2)
	return float64(n1) / n / p0, float64(n2) / n / (1 - p0), nil
}

// CohenW returns Cohen's w for a chi-square statistic over n cases.
func CohenW(chiSq float64, n int) (float64, error) {
	if err := chiSqInput(chiSq, n); err != nil {
		return 0, fmt.Errorf("CohenW: %v", err)
	}
	return math.Sqrt(chiSq / float64(n)), nil
}

// CramerVGoF returns Cramér's v for a goodness-of-fit chi-square statistic
// over n cases and k categories. bergsma applies the Bergsma (2013) bias
// correction.
func CramerVGoF(chiSq float64, n, k int, bergsma bool) (float64, error) {
	if err := chiSqInput(chiSq, n); err != nil {
		return 0, fmt.Errorf("CramerVGoF: %v", err)
	}
	if k < 2 {
		return 0, fmt.Errorf("CramerVGoF: need at least two categories, got %d", k)
	}
	nf, df := float64(n), float64(k-1)
	if bergsma {
		if n < 2 {
			return 0, fmt.Errorf("CramerVGoF: the Bergsma correction needs at least two cases")
		}
		kAvg := float64(k) - df*df/(nf-1)
		phi2Avg := math.Max(0, chiSq/nf-df/(nf-1))
		return math.Sqrt(phi2Avg / (kAvg - 1)), nil
	}
	return math.Sqrt(chiSq / (nf * df)), nil
}

// JohnstonBerryMielkeE returns the Johnston-Berry-Mielke E effect size for
// a goodness-of-fit statistic. minExp is the smallest expected count.
// likelihood selects the variant for likelihood-ratio statistics; the
// default form is for Pearson chi-square statistics.
func JohnstonBerryMielkeE(chiSq float64, n int, minExp float64, likelihood bool) (float64, error) {
	if err := chiSqInput(chiSq, n); err != nil {
		return 0, fmt.Errorf("JohnstonBerryMielkeE: %v", err)
	}
	nf := float64(n)
	if minExp <= 0 || minExp >= nf {
		return 0, fmt.Errorf("JohnstonBerryMielkeE: minimum expected count is %f, must be strictly between 0 and %d", minExp, n)
	}
	if likelihood {
		return -1 / math.Log(minExp/nf) * chiSq / (2 * nf), nil
	}
	return chiSq * minExp / (nf * (nf - minExp)), nil
}

// Dominance returns the dominance effect size for the hypothesized median
// mu: the proportion of values above mu minus the proportion below.
// Passing NaN for mu uses the midrange of the sample.
func Dominance(values []float64, mu float64) (float64, error) {
	if err := checks.CheckSample(values); err != nil {
		return 0, fmt.Errorf("Dominance: %v", err)
	}
	mu = defaultMu(values, mu)
	var above, below int
	for _, v := range values {
		switch {
		case v > mu:
			above++
		case v < mu:
			below++
		}
	}
	n := float64(len(values))
	return float64(above)/n - float64(below)/n, nil
}

// VDA returns the Vargha-Delaney A style rescaling of Dominance to the
// [0, 1] range.
func VDA(values []float64, mu float64) (float64, error) {
	dom, err := Dominance(values, mu)
	if err != nil {
		return 0, err
	}
	return (dom + 1) / 2, nil
}

// RankBiserial returns the one-sample rank biserial correlation (Kerby,
// 2014): the absolute difference of the positive and negative rank sums of
// the deviations from mu, over their total. Values equal to mu are
// discarded. Passing NaN for mu uses the midrange of the sample.
func RankBiserial(values []float64, mu float64) (float64, error) {
	if err := checks.CheckSample(values); err != nil {
		return 0, fmt.Errorf("RankBiserial: %v", err)
	}
	mu = defaultMu(values, mu)
	var diffs, absDiffs []float64
	for _, v := range values {
		if v != mu {
			diffs = append(diffs, v-mu)
			absDiffs = append(absDiffs, math.Abs(v-mu))
		}
	}
	if len(diffs) == 0 {
		return 0, fmt.Errorf("RankBiserial: all values equal the hypothesized median %g", mu)
	}
	rk := ranks.MidRanks(absDiffs)
	var rPlus, rMin float64
	for i, d := range diffs {
		if d > 0 {
			rPlus += rk[i]
		} else {
			rMin += rk[i]
		}
	}
	return math.Abs(rPlus-rMin) / (rPlus + rMin), nil
}

// Rosenthal returns the Rosenthal correlation coefficient for a z statistic
// over n cases.
func Rosenthal(z float64, n int) (float64, error) {
	if err := checks.CheckPositiveCount(n, "SampleSize"); err != nil {
		return 0, fmt.Errorf("Rosenthal: %v", err)
	}
	return math.Abs(z / math.Sqrt(float64(n))), nil
}

func defaultMu(values []float64, mu float64) float64 {
	if !math.IsNaN(mu) {
		return mu
	}
	var min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return (min + max) / 2
}

func binaryCounts(n1, n2 int) error {
	if err := checks.CheckCount(n1, "FirstCount"); err != nil {
		return err
	}
	if err := checks.CheckCount(n2, "SecondCount"); err != nil {
		return err
	}
	return checks.CheckPositiveCount(n1+n2, "TotalCount")
}

func chiSqInput(chiSq float64, n int) error {
	if chiSq < 0 || math.IsNaN(chiSq) || math.IsInf(chiSq, 0) {
		return fmt.Errorf("chi-square statistic is %f, must be finite and nonnegative", chiSq)
	}
	return checks.CheckPositiveCount(n, "SampleSize")
}
