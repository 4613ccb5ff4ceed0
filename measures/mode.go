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

// ModeResult lists the modal values and their shared frequency. When
// every distinct value occurs equally often there is no mode: Modes is
// empty and Count is 0, unless AllEqualIsMode was requested.
type ModeResult struct {
	Modes []float64
	Count int
}

// ModeOptions configures Mode.
type ModeOptions struct {
	// AllEqualIsMode reports every value as a mode when all frequencies
	// are equal, instead of reporting no mode.
	AllEqualIsMode bool
}

// Mode returns the most frequent value(s) of values, ascending.
func Mode(values []float64, opt *ModeOptions) (ModeResult, error) {
	if opt == nil {
		opt = &ModeOptions{}
	}
	if err := checks.CheckSample(values); err != nil {
		return ModeResult{}, fmt.Errorf("Mode: %v", err)
	}
	table := Frequencies(values)
	max := 0
	for _, f := range table {
		if f.Count > max {
			max = f.Count
		}
	}
	var modes []float64
	for _, f := range table {
		if f.Count == max {
			modes = append(modes, f.Value)
		}
	}
	if len(modes) == len(table) && !opt.AllEqualIsMode {
		return ModeResult{}, nil
	}
	return ModeResult{Modes: modes, Count: max}, nil
}

// VariationRatio returns the proportion of the sample outside the modal
// categories, 1 - f_mode*m/n with m the number of modal categories. A
// sample where every category is modal has no mode and no variation
// ratio; that case fails with an error.
func VariationRatio(labels []string) (float64, error) {
	if len(labels) == 0 {
		return 0, fmt.Errorf("VariationRatio: sample is empty")
	}
	table := LabelFrequencies(labels)
	maxFreq := table[0].Count
	modal := 0
	n := 0
	for _, f := range table {
		n += f.Count
		if f.Count == maxFreq {
			modal++
		}
	}
	if modal == len(table) {
		return 0, fmt.Errorf("VariationRatio: no mode, every category occurs %d times", maxFreq)
	}
	return 1 - float64(modal*maxFreq)/float64(n), nil
}
