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

	"github.com/stikpet/stikpetgo/checks"
)

// Bin is a half-open interval [Lower, Upper).
type Bin struct {
	Lower, Upper float64
}

// BinnedModeValue selects how a modal bin is reported.
type BinnedModeValue int

const (
	// BinInterval reports the bin boundaries as "lower < upper".
	BinInterval BinnedModeValue = iota
	// BinMidpoint reports the midpoint of the modal bin.
	BinMidpoint
	// BinQuadratic shifts the midpoint towards the denser neighbour bin.
	BinQuadratic
)

// BinnedModeResult describes the modal bin(s) of binned data. Modes holds
// midpoint or quadratic values; Intervals holds the rendered boundaries
// for BinInterval. NoMode is set when every bin has the same frequency
// density.
type BinnedModeResult struct {
	Modes     []float64
	Intervals []string
	Density   float64
	NoMode    bool
}

// BinnedMode determines the mode of values grouped into bins, using the
// frequency density (count over width) so that unequal bin widths compare
// fairly.
func BinnedMode(values []float64, bins []Bin, value BinnedModeValue) (BinnedModeResult, error) {
	if err := checks.CheckSample(values); err != nil {
		return BinnedModeResult{}, fmt.Errorf("BinnedMode: %v", err)
	}
	if len(bins) == 0 {
		return BinnedModeResult{}, fmt.Errorf("BinnedMode: no bins given")
	}
	densities := make([]float64, len(bins))
	for i, b := range bins {
		if b.Upper <= b.Lower {
			return BinnedModeResult{}, fmt.Errorf("BinnedMode: bin %d has width %f, must be positive", i, b.Upper-b.Lower)
		}
		count := 0
		for _, v := range values {
			if v >= b.Lower && v < b.Upper {
				count++
			}
		}
		densities[i] = float64(count) / (b.Upper - b.Lower)
	}
	maxDen := densities[0]
	nModal := 0
	for _, d := range densities {
		if d > maxDen {
			maxDen = d
		}
	}
	for _, d := range densities {
		if d == maxDen {
			nModal++
		}
	}
	if nModal == len(bins) {
		return BinnedModeResult{NoMode: true}, nil
	}

	res := BinnedModeResult{Density: maxDen}
	for i, b := range bins {
		if densities[i] != maxDen {
			continue
		}
		switch value {
		case BinMidpoint:
			res.Modes = append(res.Modes, (b.Lower+b.Upper)/2)
		case BinQuadratic:
			d1, d2 := maxDen, maxDen
			if i > 0 {
				d1 = maxDen - densities[i-1]
			}
			if i < len(bins)-1 {
				d2 = maxDen - densities[i+1]
			}
			if d1+d2 == 0 {
				// Both neighbours are modal too, so there is no denser
				// side to lean towards; report the midpoint.
				res.Modes = append(res.Modes, (b.Lower+b.Upper)/2)
				continue
			}
			res.Modes = append(res.Modes, b.Lower+d1/(d1+d2)*(b.Upper-b.Lower))
		default:
			res.Intervals = append(res.Intervals, fmt.Sprintf("%g < %g", b.Lower, b.Upper))
		}
	}
	return res, nil
}
