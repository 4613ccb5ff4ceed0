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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var ordinalValues = []float64{1, 1, 1, 2, 2, 2, 3, 3, 4, 4, 4, 5, 5, 5, 5, 5, 5, 5}

func TestSign(t *testing.T) {
	// midrange is 3; 6 values below, 10 above, 2 tied and discarded
	got, err := Sign(ordinalValues, math.NaN())
	if err != nil {
		t.Fatalf("Sign returned error %v", err)
	}
	if got.Mu != 3 {
		t.Errorf("Sign got mu %g, want 3", got.Mu)
	}
	if !cmp.Equal(got.PValue, 0.454498, cmpopts.EquateApprox(0, pTolerance)) {
		t.Errorf("Sign got p-value %g, want 0.454498", got.PValue)
	}
}

func TestSignCapsPValue(t *testing.T) {
	// a perfectly balanced sample doubles to above one without the cap
	got, err := Sign([]float64{1, 2, 4, 5}, 3)
	if err != nil {
		t.Fatalf("Sign returned error %v", err)
	}
	if got.PValue != 1 {
		t.Errorf("Sign on a balanced sample got p-value %g, want 1", got.PValue)
	}
}

func TestSignErrors(t *testing.T) {
	if _, err := Sign(nil, 3); err == nil {
		t.Errorf("Sign on empty sample got nil error, want error")
	}
	if _, err := Sign([]float64{3, 3, 3}, 3); err == nil {
		t.Errorf("Sign with every value at the hypothesized median got nil error, want error")
	}
}
