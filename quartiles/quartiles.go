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

// Package quartiles determines the first and third quartile of a sample.
//
// There is no single agreed way to compute quartiles; statistical packages
// and textbooks differ in how they index into the sorted sample and in how
// they treat fractional positions. This package separates the two choices:
// a Convention computes the raw rank positions from the sample size, and a
// pair of policies (one for exactly-integer positions, one for fractional
// ones) resolves each raw position to a concrete value, interpolating
// linearly when the resolved position is still fractional.
//
// Around twenty named methods from the literature (Tukey's hinges, the SAS
// PCTLDEF variants, MS Excel, Minitab, the Hyndman & Fan types, the
// pandas/numpy interpolation modes, …) are provided as preconfigured
// settings via their historical names and synonyms.
package quartiles

import (
	"errors"
	"fmt"
	"sort"

	"github.com/stikpet/stikpetgo/checks"
	"github.com/stikpet/stikpetgo/coding"
)

var (
	// ErrEmptySample indicates a sample with no values; no position is
	// resolvable in an empty sample.
	ErrEmptySample = errors.New("sample is empty")
	// ErrUnknownConvention indicates an indexing convention outside the
	// fixed set of eight.
	ErrUnknownConvention = errors.New("unknown indexing convention")
	// ErrUnknownMethod indicates a method, or policy, name that is not in
	// the dispatch table.
	ErrUnknownMethod = errors.New("unknown quartile method")
	// ErrIndexOutOfRange indicates a resolved position outside [1, n].
	// This can happen for very small samples combined with midpoint
	// policies or the Hyndman-Fan conventions.
	ErrIndexOutOfRange = errors.New("resolved index out of range")
)

// Result holds the resolved quartiles. The labels are only set when the
// sample was supplied as coded ordinal data.
type Result struct {
	Q1, Q3         float64
	Q1Text, Q3Text string
}

// Quartiles computes the first and third quartile of values using the
// named method. The empty method string selects the baseline settings
// (SAS1 indexing with linear interpolation). values need not be sorted.
func Quartiles(values []float64, method string) (q1, q3 float64, err error) {
	s, err := MethodSettings(method)
	if err != nil {
		return 0, 0, fmt.Errorf("Quartiles: %w", err)
	}
	q1, q3, err = QuartilesSettings(values, s)
	if err != nil {
		return 0, 0, err
	}
	return q1, q3, nil
}

// QuartilesSettings computes the first and third quartile of values with
// explicit raw settings, bypassing the method table.
func QuartilesSettings(values []float64, s Settings) (q1, q3 float64, err error) {
	if len(values) == 0 {
		return 0, 0, fmt.Errorf("Quartiles: %w", ErrEmptySample)
	}
	if err := checks.CheckSample(values); err != nil {
		return 0, 0, fmt.Errorf("Quartiles: %v", err)
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	iq1, iq3, err := s.Convention.Indices(len(sorted))
	if err != nil {
		return 0, 0, fmt.Errorf("Quartiles: %w", err)
	}
	q1, err = Resolve(iq1, sorted, s.Q1Frac, s.Q1Int)
	if err != nil {
		return 0, 0, fmt.Errorf("Quartiles: %w", err)
	}
	q3, err = Resolve(iq3, sorted, s.Q3Frac, s.Q3Int)
	if err != nil {
		return 0, 0, fmt.Errorf("Quartiles: %w", err)
	}
	return q1, q3, nil
}

// QuartilesCoded computes the quartiles of an ordinal sample given as
// labels with an ordered label to code mapping. Besides the numeric
// quartiles, the result carries textual representations: the exact label
// when a quartile lands on a coded value, otherwise the two bracketing
// labels as "between <lower> and <upper>".
func QuartilesCoded(labels []string, levels coding.Levels, method string) (Result, error) {
	values, err := levels.Encode(labels)
	if err != nil {
		return Result{}, fmt.Errorf("Quartiles: %v", err)
	}
	q1, q3, err := Quartiles(values, method)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Q1:     q1,
		Q3:     q3,
		Q1Text: levels.Describe(q1),
		Q3Text: levels.Describe(q3),
	}, nil
}
