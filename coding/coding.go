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

// Package coding translates ordinal category labels to numeric codes and back.
//
// Ordinal data (e.g. Likert items) is handled throughout the library by
// first coding each label as a number, running the numeric computation, and
// translating the result back to a label. A result that falls between two
// coded values is rendered as "between <lower> and <upper>".
package coding

import "fmt"

// Level pairs a category label with its numeric code.
type Level struct {
	Label string
	Code  float64
}

// Levels is an ordered label to code mapping. The order is the ordinal
// order of the categories, lowest code first.
type Levels []Level

// NewLevels builds a Levels from labels in ordinal order, coding them
// 1, 2, 3, … like the original scales used throughout the library.
func NewLevels(labels ...string) Levels {
	lv := make(Levels, len(labels))
	for i, l := range labels {
		lv[i] = Level{Label: l, Code: float64(i + 1)}
	}
	return lv
}

// Code returns the numeric code for label.
func (lv Levels) Code(label string) (float64, bool) {
	for _, l := range lv {
		if l.Label == label {
			return l.Code, true
		}
	}
	return 0, false
}

// Label returns the label whose code equals code exactly.
func (lv Levels) Label(code float64) (string, bool) {
	for _, l := range lv {
		if l.Code == code {
			return l.Label, true
		}
	}
	return "", false
}

// Encode translates a sample of labels into their numeric codes. Labels
// missing from the mapping cause an error; the caller must supply a full
// coding.
func (lv Levels) Encode(labels []string) ([]float64, error) {
	values := make([]float64, len(labels))
	for i, label := range labels {
		code, ok := lv.Code(label)
		if !ok {
			return nil, fmt.Errorf("Encode: label %q is not in the coding", label)
		}
		values[i] = code
	}
	return values, nil
}

// Describe renders a numeric result in terms of the coded labels. If x is
// exactly one of the codes the label is returned as-is, otherwise the two
// bracketing labels are named.
func (lv Levels) Describe(x float64) string {
	if label, ok := lv.Label(x); ok {
		return label
	}
	lower, upper := "", ""
	for _, l := range lv {
		if l.Code < x {
			lower = l.Label
		}
		if l.Code > x && upper == "" {
			upper = l.Label
		}
	}
	if lower == "" || upper == "" {
		return fmt.Sprintf("%g", x)
	}
	return "between " + lower + " and " + upper
}
