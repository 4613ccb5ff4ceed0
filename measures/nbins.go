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

	"github.com/stikpet/stikpetgo/checks"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// BinRule selects a rule for choosing the number of histogram bins.
type BinRule int

const (
	// SquareRoot uses √n bins.
	SquareRoot BinRule = iota
	// Sturges uses log₂(n) + 1.
	Sturges
	// QuarticRoot uses 2.5·n^(1/4).
	QuarticRoot
	// Rice uses 2·n^(1/3).
	Rice
	// TerrellScott uses (2n)^(1/3).
	TerrellScott
	// Exponential uses log₂(n).
	Exponential
	// Velleman uses 2·√n up to n = 100 and 10·log₁₀(n) beyond.
	Velleman
	// Doane extends Sturges with a skewness term.
	Doane
	// Scott derives the bin width 3.49·s/n^(1/3) from the standard
	// deviation.
	Scott
	// FreedmanDiaconis derives the bin width 2·IQR/n^(1/3) from the
	// interquartile range.
	FreedmanDiaconis
)

// NBins returns the number of bins the rule suggests for values, rounded
// up. Quartiles for FreedmanDiaconis are determined with the quartile
// method given in qmethod ("" for the baseline).
func NBins(values []float64, rule BinRule, qmethod string) (int, error) {
	if err := checks.CheckSampleSize(values, 2); err != nil {
		return 0, fmt.Errorf("NBins: %v", err)
	}
	n := float64(len(values))
	var k float64
	switch rule {
	case SquareRoot:
		k = math.Sqrt(n)
	case Sturges:
		k = math.Log2(n) + 1
	case QuarticRoot:
		k = 2.5 * math.Pow(n, 0.25)
	case Rice:
		k = 2 * math.Cbrt(n)
	case TerrellScott:
		k = math.Cbrt(2 * n)
	case Exponential:
		k = math.Log2(n)
	case Velleman:
		if n <= 100 {
			k = 2 * math.Sqrt(n)
		} else {
			k = 10 * math.Log10(n)
		}
	case Doane:
		mean := stat.Mean(values, nil)
		sPop := math.Sqrt(stat.Variance(values, nil) * (n - 1) / n)
		if sPop == 0 {
			return 0, fmt.Errorf("NBins: Doane rule is undefined for a constant sample")
		}
		g1 := 0.0
		for _, v := range values {
			g1 += math.Pow(v-mean, 3)
		}
		g1 /= n * math.Pow(sPop, 3)
		sigSkew := math.Sqrt(6 * (n - 2) / ((n + 1) * (n + 3)))
		k = 1 + math.Log2(n) + math.Log2(math.Abs(g1)/sigSkew)
	case Scott:
		sd := math.Sqrt(stat.Variance(values, nil))
		if sd == 0 {
			return 0, fmt.Errorf("NBins: Scott rule is undefined for a constant sample")
		}
		r := floats.Max(values) - floats.Min(values)
		k = r / (3.49 * sd / math.Cbrt(n))
	case FreedmanDiaconis:
		rr, err := QuartileRange(values, IQR, qmethod)
		if err != nil {
			return 0, err
		}
		if rr.Range == 0 {
			return 0, fmt.Errorf("NBins: Freedman-Diaconis rule is undefined for a zero interquartile range")
		}
		r := floats.Max(values) - floats.Min(values)
		k = r / (2 * rr.Range / math.Cbrt(n))
	default:
		return 0, fmt.Errorf("NBins: unknown rule %d", rule)
	}
	if math.IsNaN(k) || math.IsInf(k, 0) || k < 1 {
		return 0, fmt.Errorf("NBins: rule produced %f bins for n=%d", k, len(values))
	}
	return int(math.Ceil(k)), nil
}
