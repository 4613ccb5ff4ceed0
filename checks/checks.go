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

// Package checks contains input validation shared by the statistical functions.
package checks

import (
	"fmt"
	"math"
)

const (
	sampleName     = "Sample"
	proportionName = "Proportion"
	countName      = "Count"
	trimName       = "TrimProportion"
)

func verifyName(defaultName string, nameSlice []string) (string, error) {
	var name string
	switch len(nameSlice) {
	case 0:
		name = defaultName
	case 1:
		name = nameSlice[0]
	default:
		return "", fmt.Errorf("This should never happen. There should be 0 or 1 'name' parameter, got %d", len(nameSlice))
	}
	return name, nil
}

// CheckSample returns an error if values is empty or contains a NaN or
// infinite element. Callers are expected to filter missing values before
// handing a sample to any of the statistical functions.
func CheckSample(values []float64, name ...string) error {
	sName, err := verifyName(sampleName, name)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return fmt.Errorf("%s is empty, must contain at least one value", sName)
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s contains %f at position %d, all values must be finite", sName, v, i)
		}
	}
	return nil
}

// CheckSampleSize returns an error if values holds fewer than min elements.
func CheckSampleSize(values []float64, min int, name ...string) error {
	sName, err := verifyName(sampleName, name)
	if err != nil {
		return err
	}
	if err := CheckSample(values, sName); err != nil {
		return err
	}
	if len(values) < min {
		return fmt.Errorf("%s has %d values, must have at least %d", sName, len(values), min)
	}
	return nil
}

// CheckProportion returns an error if p is not strictly between 0 and 1.
func CheckProportion(p float64, name ...string) error {
	pName, err := verifyName(proportionName, name)
	if err != nil {
		return err
	}
	if math.IsNaN(p) || p <= 0 || p >= 1 {
		return fmt.Errorf("%s is %f, must be strictly between 0 and 1", pName, p)
	}
	return nil
}

// CheckCount returns an error if n is negative.
func CheckCount(n int, name ...string) error {
	cName, err := verifyName(countName, name)
	if err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("%s is %d, must be nonnegative", cName, n)
	}
	return nil
}

// CheckPositiveCount returns an error if n is not strictly positive.
func CheckPositiveCount(n int, name ...string) error {
	cName, err := verifyName(countName, name)
	if err != nil {
		return err
	}
	if n <= 0 {
		return fmt.Errorf("%s is %d, must be strictly positive", cName, n)
	}
	return nil
}

// CheckTrimProportion returns an error if trim is not in [0, 1). A trim of
// 0 leaves the sample untouched; a trim of 1 or more would discard it.
func CheckTrimProportion(trim float64, name ...string) error {
	tName, err := verifyName(trimName, name)
	if err != nil {
		return err
	}
	if math.IsNaN(trim) || trim < 0 || trim >= 1 {
		return fmt.Errorf("%s is %f, must be in [0, 1)", tName, trim)
	}
	return nil
}
