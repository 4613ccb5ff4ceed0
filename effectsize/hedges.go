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

package effectsize

import (
	"fmt"
	"math"

	log "github.com/golang/glog"
	"github.com/stikpet/stikpetgo/checks"
	"gonum.org/v1/gonum/stat"
)

// HedgesCorrection selects the small-sample bias correction applied to the
// one-sample Cohen d.
type HedgesCorrection int

const (
	// HedgesExact uses the exact gamma function correction. For samples
	// too large for the gamma evaluation it degrades to XueApprox.
	HedgesExact HedgesCorrection = iota
	// HedgesApprox uses Hedges' (1981) own approximation 1 - 3/(4·df-1).
	HedgesApprox
	// DurlakApprox uses Durlak's (2009) approximation.
	DurlakApprox
	// XueApprox uses Xue's (2020) series approximation.
	XueApprox
)

// HedgesGResult carries the corrected effect size and the correction that
// was actually applied.
type HedgesGResult struct {
	Mu      float64
	G       float64
	Version string
}

// gamma(m) overflows a float64 past this point, so the exact correction
// cannot be evaluated.
const maxExactHedgesM = 172

// HedgesGOneSample returns Hedges' g for a one-sample design: the signed
// one-sample Cohen d corrected for small-sample bias. Passing NaN for mu
// uses the midrange of the sample.
func HedgesGOneSample(values []float64, mu float64, corr HedgesCorrection) (HedgesGResult, error) {
	if err := checks.CheckSampleSize(values, 2); err != nil {
		return HedgesGResult{}, fmt.Errorf("HedgesGOneSample: %v", err)
	}
	mu = defaultMu(values, mu)
	n := float64(len(values))
	df := n - 1
	s := math.Sqrt(stat.Variance(values, nil))
	if s == 0 {
		return HedgesGResult{}, fmt.Errorf("HedgesGOneSample: sample has zero variance")
	}
	d := (stat.Mean(values, nil) - mu) / s

	m := df / 2
	if corr == HedgesExact && m >= maxExactHedgesM {
		log.Warningf("HedgesGOneSample: exact correction unavailable for %d values, using the Xue approximation", len(values))
		corr = XueApprox
	}

	res := HedgesGResult{Mu: mu}
	switch corr {
	case HedgesExact:
		res.G = d * math.Gamma(m) / (math.Gamma(m-0.5) * math.Sqrt(m))
		res.Version = "exact"
	case HedgesApprox:
		res.G = d * (1 - 3/(4*df-1))
		res.Version = "Hedges approximation"
	case DurlakApprox:
		res.G = d * (n - 3) / (n - 2.25) * math.Sqrt((n-2)/n)
		res.Version = "Durlak approximation"
	case XueApprox:
		res.G = d * math.Pow(1-9/df+69/(2*df*df)-72/(df*df*df)+687/(8*math.Pow(df, 4))-441/(8*math.Pow(df, 5))+247/(16*math.Pow(df, 6)), 1.0/12)
		res.Version = "Xue approximation"
	default:
		return HedgesGResult{}, fmt.Errorf("HedgesGOneSample: unknown correction %d", corr)
	}
	return res, nil
}
