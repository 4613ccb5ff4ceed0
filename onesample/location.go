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
	"sort"

	"github.com/stikpet/stikpetgo/checks"
	"gonum.org/v1/gonum/stat"
)

// LocationResult holds the outcome of a test on the sample mean. DF is NaN
// for the z test.
type LocationResult struct {
	Mu         float64
	SampleMean float64
	Statistic  float64
	DF         float64
	PValue     float64
	Test       string
}

// StudentT performs the one-sample Student t test (Student, 1908) for the
// hypothesized mean mu. Passing NaN for mu uses the midrange of the sample.
func StudentT(values []float64, mu float64) (LocationResult, error) {
	if err := checks.CheckSampleSize(values, 2); err != nil {
		return LocationResult{}, fmt.Errorf("StudentT: %v", err)
	}
	mu, err := resolveMu(values, mu)
	if err != nil {
		return LocationResult{}, fmt.Errorf("StudentT: %v", err)
	}
	n := float64(len(values))
	m := stat.Mean(values, nil)
	se := math.Sqrt(stat.Variance(values, nil) / n)
	t := (m - mu) / se
	df := n - 1
	return LocationResult{
		Mu:         mu,
		SampleMean: m,
		Statistic:  t,
		DF:         df,
		PValue:     twoSidedStudentT(t, df),
		Test:       "one-sample Student t",
	}, nil
}

// Z performs the one-sample z test for the hypothesized mean mu. sigma is
// the population standard deviation; passing NaN for sigma uses the sample
// standard deviation, and passing NaN for mu uses the midrange.
func Z(values []float64, mu, sigma float64) (LocationResult, error) {
	if err := checks.CheckSampleSize(values, 2); err != nil {
		return LocationResult{}, fmt.Errorf("Z: %v", err)
	}
	mu, err := resolveMu(values, mu)
	if err != nil {
		return LocationResult{}, fmt.Errorf("Z: %v", err)
	}
	n := float64(len(values))
	m := stat.Mean(values, nil)
	s := sigma
	if math.IsNaN(s) {
		s = math.Sqrt(stat.Variance(values, nil))
	} else if s <= 0 {
		return LocationResult{}, fmt.Errorf("Z: sigma is %f, must be strictly positive", s)
	}
	z := (m - mu) / (s / math.Sqrt(n))
	return LocationResult{
		Mu:         mu,
		SampleMean: m,
		Statistic:  z,
		DF:         math.NaN(),
		PValue:     twoSidedNormal(z),
		Test:       "one-sample z",
	}, nil
}

// TrimmedSE selects the standard error used by the trimmed mean test.
type TrimmedSE int

const (
	// YuenSE uses the Winsorized sum of squares over m·(m-1) with m the
	// trimmed size (Tukey & McLaughlin, 1963).
	YuenSE TrimmedSE = iota
	// WilcoxSE uses the Winsorized variance approach found in Wilcox
	// (2012, p. 157).
	WilcoxSE
)

// TrimmedMeanResult holds the outcome of the one-sample trimmed mean test.
type TrimmedMeanResult struct {
	TrimmedMean float64
	Mu          float64
	Statistic   float64
	DF          float64
	PValue      float64
	Test        string
}

// TrimmedMean performs the one-sample trimmed mean test, also known as a
// Yuen or Yuen-Welch test. trimProp is the total proportion to trim (half
// on each side, rounded down to whole observations). Passing NaN for mu
// uses the midrange of the sample.
func TrimmedMean(values []float64, mu, trimProp float64, se TrimmedSE) (TrimmedMeanResult, error) {
	if err := checks.CheckSampleSize(values, 2); err != nil {
		return TrimmedMeanResult{}, fmt.Errorf("TrimmedMean: %v", err)
	}
	if err := checks.CheckTrimProportion(trimProp); err != nil {
		return TrimmedMeanResult{}, fmt.Errorf("TrimmedMean: %v", err)
	}
	mu, err := resolveMu(values, mu)
	if err != nil {
		return TrimmedMeanResult{}, fmt.Errorf("TrimmedMean: %v", err)
	}

	n := len(values)
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	nl := int(math.Floor(float64(n) * trimProp / 2))
	m := n - 2*nl
	if m < 2 {
		return TrimmedMeanResult{}, fmt.Errorf("TrimmedMean: trimming %f of %d values leaves fewer than two", trimProp, n)
	}
	trimmed := sorted[nl : n-nl]
	mt := stat.Mean(trimmed, nil)

	// Winsorized mean and sum of squared deviations
	nf, mf, nlf := float64(n), float64(m), float64(nl)
	mw := (mt*mf + nlf*(trimmed[0]+trimmed[m-1])) / nf
	ssdw := nlf*(trimmed[0]-mw)*(trimmed[0]-mw) + nlf*(trimmed[m-1]-mw)*(trimmed[m-1]-mw)
	for _, v := range trimmed {
		ssdw += (v - mw) * (v - mw)
	}

	var stderr float64
	switch se {
	case YuenSE:
		stderr = math.Sqrt(ssdw / (mf * (mf - 1)))
	case WilcoxSE:
		stderr = math.Sqrt(ssdw/(nf-1)) / ((1 - trimProp) * math.Sqrt(nf))
	default:
		return TrimmedMeanResult{}, fmt.Errorf("TrimmedMean: unknown standard error variant %d", se)
	}

	t := (mt - mu) / stderr
	df := mf - 1
	return TrimmedMeanResult{
		TrimmedMean: mt,
		Mu:          mu,
		Statistic:   t,
		DF:          df,
		PValue:      twoSidedStudentT(t, df),
		Test:        "one-sample trimmed mean test",
	}, nil
}
