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
	"strings"

	"github.com/stikpet/stikpetgo/checks"
	"github.com/stikpet/stikpetgo/ranks"
)

// WilcoxonApproximation selects how the p-value of the signed rank test is
// determined.
type WilcoxonApproximation int

const (
	// WilcoxonNormal uses the normal approximation.
	WilcoxonNormal WilcoxonApproximation = iota
	// WilcoxonExact uses the exact signed rank distribution. Refuses
	// samples with tied absolute deviations.
	WilcoxonExact
	// ImanT uses Iman's (1974) Student t approximation.
	ImanT
	// ImanZ uses Iman's (1974) combined z approximation.
	ImanZ
)

// ZeroPolicy selects how values equal to the hypothesized median are
// handled.
type ZeroPolicy int

const (
	// DropZeros removes them before ranking (Wilcoxon's approach).
	DropZeros ZeroPolicy = iota
	// Pratt keeps them in the ranking but excludes their ranks from the
	// sum, adjusting the moments per Cureton (1967).
	Pratt
	// ZSplit keeps them and adds half of their rank sum to W.
	ZSplit
)

// WilcoxonOptions configures the signed rank test.
type WilcoxonOptions struct {
	Approximation        WilcoxonApproximation
	Zeros                ZeroPolicy
	TieCorrection        bool
	ContinuityCorrection bool
}

// DefaultWilcoxonOptions returns the baseline configuration: normal
// approximation with tie correction, dropping values equal to the
// hypothesized median.
func DefaultWilcoxonOptions() WilcoxonOptions {
	return WilcoxonOptions{Approximation: WilcoxonNormal, Zeros: DropZeros, TieCorrection: true}
}

// WilcoxonResult holds the outcome of the signed rank test. DF is NaN
// except for the Iman t approximation.
type WilcoxonResult struct {
	Mu        float64
	W         float64
	Statistic float64
	DF        float64
	PValue    float64
	Test      string
}

// Wilcoxon performs the one-sample Wilcoxon signed rank test for the
// hypothesized median mu. Passing NaN for mu uses the midrange of the
// sample.
func Wilcoxon(values []float64, mu float64, opt WilcoxonOptions) (WilcoxonResult, error) {
	if err := checks.CheckSample(values); err != nil {
		return WilcoxonResult{}, fmt.Errorf("Wilcoxon: %v", err)
	}
	mu, err := resolveMu(values, mu)
	if err != nil {
		return WilcoxonResult{}, fmt.Errorf("Wilcoxon: %v", err)
	}

	n := len(values)
	var zeros int
	for _, v := range values {
		if v == mu {
			zeros++
		}
	}

	// the effective sample size: zeros only count for Pratt and z-split
	nr := n
	if opt.Zeros == DropZeros {
		nr = n - zeros
	}
	if nr == 0 {
		return WilcoxonResult{}, fmt.Errorf("Wilcoxon: all values equal the hypothesized median %g", mu)
	}

	kept := values
	if opt.Zeros == DropZeros || opt.Approximation == WilcoxonExact {
		kept = make([]float64, 0, n-zeros)
		for _, v := range values {
			if v != mu {
				kept = append(kept, v)
			}
		}
	}

	diffs := make([]float64, len(kept))
	absDiffs := make([]float64, len(kept))
	for i, v := range kept {
		diffs[i] = v - mu
		absDiffs[i] = math.Abs(diffs[i])
	}
	rk := ranks.MidRanks(absDiffs)

	var w float64
	for i, d := range diffs {
		if d > 0 {
			w += rk[i]
		}
	}

	if opt.Approximation == WilcoxonExact {
		return wilcoxonExact(mu, w, diffs, rk)
	}

	if opt.Zeros == ZSplit {
		for i, d := range diffs {
			if d == 0 {
				w += rk[i] / 2
			}
		}
	}

	nrF := float64(nr)
	rAvg := nrF * (nrF + 1) / 4
	s2 := nrF * (nrF + 1) * (2*nrF + 1) / 24
	if opt.Zeros == Pratt {
		// Cureton (1967) adjustment for the retained zeros
		z := float64(zeros)
		s2 -= z * (z + 1) * (2*z + 1) / 24
		rAvg = (nrF*(nrF+1) - z*(z+1)) / 4
	}

	if opt.TieCorrection {
		tieRanks := rk
		if opt.Zeros == Pratt {
			tieRanks = make([]float64, 0, len(rk))
			for i, d := range diffs {
				if d != 0 {
					tieRanks = append(tieRanks, rk[i])
				}
			}
		}
		var tCorr float64
		for _, g := range ranks.TieGroups(tieRanks) {
			gf := float64(g)
			tCorr += gf*gf*gf - gf
		}
		s2 -= tCorr / 48
	}

	se := math.Sqrt(s2)
	num := math.Abs(w - rAvg)
	if opt.ContinuityCorrection {
		num -= 0.5
	}

	res := WilcoxonResult{Mu: mu, W: w, DF: math.NaN()}
	if opt.Approximation == ImanT {
		df := nrF - 1
		res.Statistic = num / math.Sqrt((s2*nrF-(w-rAvg)*(w-rAvg))/(nrF-1))
		res.DF = df
		res.PValue = twoSidedStudentT(res.Statistic, df)
	} else {
		z := num / se
		if opt.Approximation == ImanZ {
			z = z / 2 * (1 + math.Sqrt((nrF-1)/(nrF-z*z)))
		}
		res.Statistic = z
		res.PValue = twoSidedNormal(z)
	}

	parts := []string{"one-sample Wilcoxon signed rank test"}
	switch {
	case opt.TieCorrection && opt.ContinuityCorrection:
		parts = append(parts, "with ties and continuity correction")
	case opt.TieCorrection:
		parts = append(parts, "with ties correction")
	case opt.ContinuityCorrection:
		parts = append(parts, "with continuity correction")
	}
	switch opt.Approximation {
	case ImanT:
		parts = append(parts, "using Iman (1974) t approximation")
	case ImanZ:
		parts = append(parts, "using Iman (1974) z approximation")
	}
	switch opt.Zeros {
	case Pratt:
		parts = append(parts, "Pratt method for equal to hyp. med. (inc. Cureton adjustment for normal approximation)")
	case ZSplit:
		parts = append(parts, "z-split method for equal to hyp. med.")
	}
	res.Test = strings.Join(parts, ", ")
	return res, nil
}

func wilcoxonExact(mu, w float64, diffs, rk []float64) (WilcoxonResult, error) {
	for _, g := range ranks.TieGroups(rk) {
		if g > 1 {
			return WilcoxonResult{}, fmt.Errorf("Wilcoxon: ties exist, cannot compute exact method")
		}
	}
	var wMin float64
	for i, d := range diffs {
		if d < 0 {
			wMin += rk[i]
		}
	}
	statistic := math.Min(w, wMin)
	p := 2 * signedRankCDF(int(statistic), len(rk))
	return WilcoxonResult{
		Mu:        mu,
		W:         w,
		Statistic: statistic,
		DF:        math.NaN(),
		PValue:    p,
		Test:      "one-sample Wilcoxon signed rank exact test",
	}, nil
}

// signedRankCDF returns P(W <= w) for the null distribution of the signed
// rank sum over n untied ranks.
func signedRankCDF(w, n int) float64 {
	var total float64
	for i := 0; i <= w; i++ {
		total += signedRankFreq(i, n)
	}
	return total / math.Pow(2, float64(n))
}

// signedRankFreq counts the subsets of {1..n} summing to x.
func signedRankFreq(x, n int) float64 {
	if x < 0 || x > n*(n+1)/2 {
		return 0
	}
	if n == 1 {
		return 1 // x is 0 or 1 here
	}
	if n <= 0 {
		return 0
	}
	return signedRankFreq(x-n, n-1) + signedRankFreq(x, n-1)
}
