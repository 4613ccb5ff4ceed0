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
	"github.com/stikpet/stikpetgo/coding"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Consensus returns the agreement measure
//
//	Cns = 1 + Σ pᵢ·log₂(1 - |xᵢ - x̄| / w)
//
// over the distinct values of the sample, with w the sample range. It is
// 1 for complete agreement (all values equal) and 0 when the sample is
// split evenly over the two extremes.
func Consensus(values []float64) (float64, error) {
	if err := checks.CheckSample(values); err != nil {
		return 0, fmt.Errorf("Consensus: %v", err)
	}
	width := floats.Max(values) - floats.Min(values)
	if width == 0 {
		return 1, nil
	}
	mean := stat.Mean(values, nil)
	n := float64(len(values))
	cns := 1.0
	for _, f := range Frequencies(values) {
		p := float64(f.Count) / n
		cns += p * math.Log2(1-math.Abs(f.Value-mean)/width)
	}
	return cns, nil
}

// ConsensusCoded computes Consensus over ordinal data coded via levels.
func ConsensusCoded(labels []string, levels coding.Levels) (float64, error) {
	values, err := levels.Encode(labels)
	if err != nil {
		return 0, fmt.Errorf("Consensus: %v", err)
	}
	return Consensus(values)
}
