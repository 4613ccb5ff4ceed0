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

package measures

import (
	"fmt"
	"math"
	"sort"

	"github.com/stikpet/stikpetgo/checks"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// MeanVersion selects one of the mean variants.
type MeanVersion int

const (
	// Arithmetic is the ordinary sample mean.
	Arithmetic MeanVersion = iota
	// Olympic drops one minimum and one maximum before averaging.
	Olympic
	// Geometric is the n-th root of the product of the values.
	Geometric
	// Harmonic is the reciprocal of the mean reciprocal.
	Harmonic
	// Midrange averages the minimum and maximum.
	Midrange
	// Winsorized replaces the trimmed tails with the nearest kept value.
	Winsorized
	// Trimmed discards the tails.
	Trimmed
)

// TrimFraction selects how a fractional number of values to trim is
// handled by the Trimmed mean.
type TrimFraction int

const (
	// TrimDown rounds the number of values to trim per tail down.
	TrimDown TrimFraction = iota
	// TrimProportional down-weights the two boundary values by the
	// fractional part.
	TrimProportional
	// TrimLinear interpolates linearly between the two nearest integer
	// trims.
	TrimLinear
)

// MeanOptions configures Mean. TrimProportion and TrimFraction only apply
// to the Winsorized and Trimmed versions.
type MeanOptions struct {
	Version        MeanVersion
	TrimProportion float64 // total proportion to trim, split over both tails; defaults to 0.1
	TrimFraction   TrimFraction
}

// Mean returns the mean of values per the requested version. A nil opt
// computes the arithmetic mean.
func Mean(values []float64, opt *MeanOptions) (float64, error) {
	if opt == nil {
		opt = &MeanOptions{}
	}
	if err := checks.CheckSample(values); err != nil {
		return 0, fmt.Errorf("Mean: %v", err)
	}
	switch opt.Version {
	case Arithmetic:
		return stat.Mean(values, nil), nil
	case Olympic:
		if len(values) < 3 {
			return 0, fmt.Errorf("Mean: olympic mean needs at least 3 values, got %d", len(values))
		}
		return (floats.Sum(values) - floats.Max(values) - floats.Min(values)) / float64(len(values)-2), nil
	case Geometric:
		logSum := 0.0
		for _, v := range values {
			if v <= 0 {
				return 0, fmt.Errorf("Mean: geometric mean needs strictly positive values, got %f", v)
			}
			logSum += math.Log(v)
		}
		return math.Exp(logSum / float64(len(values))), nil
	case Harmonic:
		recSum := 0.0
		for _, v := range values {
			if v == 0 {
				return 0, fmt.Errorf("Mean: harmonic mean needs nonzero values")
			}
			recSum += 1 / v
		}
		return float64(len(values)) / recSum, nil
	case Midrange:
		return (floats.Min(values) + floats.Max(values)) / 2, nil
	case Winsorized, Trimmed:
		return trimmedMean(values, opt)
	default:
		return 0, fmt.Errorf("Mean: unknown version %d", opt.Version)
	}
}

func trimmedMean(values []float64, opt *MeanOptions) (float64, error) {
	trim := opt.TrimProportion
	if trim == 0 {
		trim = 0.1
	}
	if err := checks.CheckTrimProportion(trim); err != nil {
		return 0, fmt.Errorf("Mean: %v", err)
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	nt := float64(n) * trim / 2
	nl := int(math.Floor(nt))
	if 2*nl >= n {
		return 0, fmt.Errorf("Mean: trimming %f leaves no values in a sample of %d", trim, n)
	}

	if opt.Version == Winsorized {
		w := make([]float64, n)
		copy(w, sorted)
		for i := 0; i < nl; i++ {
			w[i] = sorted[nl]
			w[n-1-i] = sorted[n-nl-1]
		}
		return stat.Mean(w, nil), nil
	}

	switch opt.TrimFraction {
	case TrimProportional:
		if nl+1 > n-nl-1 {
			return 0, fmt.Errorf("Mean: trimming %f leaves a single boundary value in a sample of %d", trim, n)
		}
		// The two boundary values are kept with weight 1-fr, where fr is
		// the fractional part of the per-tail trim.
		fr := nt - float64(nl)
		inner := 0.0
		for _, v := range sorted[nl+1 : n-nl-1] {
			inner += v
		}
		total := sorted[nl]*(1-fr) + sorted[n-nl-1]*(1-fr) + inner
		return total / (float64(n) - 2*nt), nil
	case TrimLinear:
		if 2*(nl+1) >= n {
			return 0, fmt.Errorf("Mean: trimming %f leaves no values for linear interpolation in a sample of %d", trim, n)
		}
		p1 := float64(nl) * 2 / float64(n)
		p2 := float64(nl+1) * 2 / float64(n)
		m1 := stat.Mean(sorted[nl:n-nl], nil)
		m2 := stat.Mean(sorted[nl+1:n-nl-1], nil)
		return (trim-p1)/(p2-p1)*(m2-m1) + m1, nil
	default:
		return stat.Mean(sorted[nl:n-nl], nil), nil
	}
}
