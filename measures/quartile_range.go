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
	"github.com/stikpet/stikpetgo/quartiles"
)

// RangeMeasure selects the quartile based range to compute.
type RangeMeasure int

const (
	// IQR is the interquartile range Q3 - Q1. With a hinge method it is
	// reported as Tukey's H-spread.
	IQR RangeMeasure = iota
	// SIQR is the semi-interquartile range (quartile deviation),
	// (Q3 - Q1) / 2.
	SIQR
	// MQR is the mid-quartile range (Q3 + Q1) / 2.
	MQR
)

// RangeResult carries the two quartiles and the derived range. Name is
// "IQR", "Hspread", "SIQR" or "MQR" depending on measure and method.
type RangeResult struct {
	Q1, Q3 float64
	Range  float64
	Name   string
}

// QuartileRange computes a quartile based range of values, determining
// the quartiles with the named method (any method known to the quartiles
// package). An empty method uses that package's baseline settings.
func QuartileRange(values []float64, measure RangeMeasure, method string) (RangeResult, error) {
	q1, q3, err := quartiles.Quartiles(values, method)
	if err != nil {
		return RangeResult{}, err
	}
	res := RangeResult{Q1: q1, Q3: q3}
	switch measure {
	case SIQR:
		res.Range = (q3 - q1) / 2
		res.Name = "SIQR"
	case MQR:
		res.Range = (q3 + q1) / 2
		res.Name = "MQR"
	default:
		res.Range = q3 - q1
		res.Name = "IQR"
		if s, err := quartiles.MethodSettings(method); err == nil && s.Convention == quartiles.Inclusive {
			res.Name = "Hspread"
		}
	}
	return res, nil
}
