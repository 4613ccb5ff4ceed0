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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestConvert(t *testing.T) {
	for _, tc := range []struct {
		desc     string
		es       float64
		from, to string
		extra    []float64
		want     float64
	}{
		{"one-sample Cohen d to Cohen d", 0.281275, "cohendos", "cohend", nil, 0.397783},
		{"one-sample Cohen h to Cohen h", 0.252680, "cohenhos", "cohenh", nil, 0.357343},
		{"Cramer v to Cohen w", 0.346944, "cramervgof", "cohenw", []float64{3}, 0.490653},
		{"Johnston-Berry-Mielke E to Cohen w", 0.120370, "jbme", "cohenw", []float64{1.0 / 3}, 0.490653},
		{"odds ratio to Yule Q", 3, "or", "yuleq", nil, 0.5},
		{"Yule Q to odds ratio", 0.5, "yuleq", "or", nil, 3},
		{"rank biserial to Vargha-Delaney A", 0.5, "rb", "vda", nil, 0.75},
		{"Vargha-Delaney A to rank biserial", 0.75, "vda", "rb", nil, 0.5},
		{"Cohen w to contingency coefficient", 0.5, "cohenw", "cc", nil, 0.447214},
		{"contingency coefficient to Cohen w", 0.447214, "cc", "cohenw", nil, 0.5},
	} {
		got, err := Convert(tc.es, tc.from, tc.to, tc.extra...)
		if err != nil {
			t.Errorf("Convert: when translating %s returned error %v", tc.desc, err)
			continue
		}
		if !cmp.Equal(got, tc.want, cmpopts.EquateApprox(0, esTolerance)) {
			t.Errorf("Convert: when translating %s got %g, want %g", tc.desc, got, tc.want)
		}
	}
}

func TestConvertOddsRatioRoundTrip(t *testing.T) {
	d := 0.4
	or, err := Convert(d, "cohend", "or")
	if err != nil {
		t.Fatalf("Convert returned error %v", err)
	}
	back, err := Convert(or, "or", "cohend")
	if err != nil {
		t.Fatalf("Convert returned error %v", err)
	}
	if !cmp.Equal(back, d, cmpopts.EquateApprox(0, 1e-9)) {
		t.Errorf("Convert round trip via the odds ratio got %g, want %g", back, d)
	}
}

func TestConvertErrors(t *testing.T) {
	if _, err := Convert(0.5, "cohend", "vda"); err == nil {
		t.Errorf("Convert for an unsupported pair got nil error, want error")
	}
	if _, err := Convert(0.5, "cramervgof", "cohenw"); err == nil {
		t.Errorf("Convert without the required extra value got nil error, want error")
	}
}
