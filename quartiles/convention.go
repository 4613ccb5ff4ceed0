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

package quartiles

import "fmt"

// Convention selects how the raw, possibly fractional, rank positions of
// the lower and upper quartile are computed from the sample size.
type Convention int

const (
	// Inclusive splits the sorted sample into two halves, keeping the
	// median in each half when n is odd, and takes the median of each
	// half (Tukey's hinges).
	Inclusive Convention = iota
	// Exclusive does the same but leaves the median out of both halves
	// when n is odd (Moore & McCabe; Joarder & Firozzaman).
	Exclusive
	// SAS1 is the basic n·p position (SAS PCTLDEF=1).
	SAS1
	// SAS4 is the (n+1)·p position (SAS PCTLDEF=4, Snedecor, Minitab).
	SAS4
	// HoggLedolter is the n·p + 1/2 position (Hazen).
	HoggLedolter
	// Excel is the (n-1)·p + 1 position (Gumbel; MS Excel, R type 7).
	Excel
	// HyndmanFan8 is the (n+1/3)·p + 1/3 position (median unbiased).
	HyndmanFan8
	// HyndmanFan9 is the (n+1/4)·p + 3/8 position (normal unbiased).
	HyndmanFan9
)

// conventionNames holds the canonical string for each Convention.
var conventionNames = map[Convention]string{
	Inclusive:    "inclusive",
	Exclusive:    "exclusive",
	SAS1:         "sas1",
	SAS4:         "sas4",
	HoggLedolter: "hl",
	Excel:        "excel",
	HyndmanFan8:  "hf8",
	HyndmanFan9:  "hf9",
}

func (c Convention) String() string {
	if name, ok := conventionNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Convention(%d)", int(c))
}

// ParseConvention maps a convention name to its Convention. Unknown names
// fail with ErrUnknownConvention.
func ParseConvention(name string) (Convention, error) {
	for c, n := range conventionNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownConvention, name)
}

// Indices returns the raw rank positions of the first and third quartile
// for a sorted sample of size n. Positions are 1-based and may be
// fractional; resolving them to sample values is the job of Resolve.
//
// The even-n third-quartile position for Inclusive and Exclusive is
// (3n+1)/4 in both cases, reproducing the reference implementation. The
// cited literature is ambiguous here; do not change one without checking
// the other.
func (c Convention) Indices(n int) (iq1, iq3 float64, err error) {
	if n < 1 {
		return 0, 0, ErrEmptySample
	}
	nf := float64(n)
	switch c {
	case Inclusive:
		if n%2 == 0 {
			iq1 = (nf + 2) / 4
		} else {
			iq1 = (nf + 3) / 4
		}
		iq3 = (3*nf + 1) / 4
	case Exclusive:
		if n%2 == 0 {
			iq1 = (nf + 2) / 4
			iq3 = (3*nf + 1) / 4
		} else {
			iq1 = (nf + 1) / 4
			iq3 = (3*nf + 3) / 4
		}
	case SAS1:
		iq1 = nf / 4
		iq3 = 3 * nf / 4
	case SAS4:
		iq1 = (nf + 1) / 4
		iq3 = 3 * (nf + 1) / 4
	case HoggLedolter:
		iq1 = nf/4 + 0.5
		iq3 = 3*nf/4 + 0.5
	case Excel:
		iq1 = (nf-1)/4 + 1
		iq3 = 3*(nf-1)/4 + 1
	case HyndmanFan8:
		iq1 = (nf+1.0/3)/4 + 1.0/3
		iq3 = 3*(nf+1.0/3)/4 + 1.0/3
	case HyndmanFan9:
		iq1 = (nf+0.25)/4 + 0.375
		iq3 = 3*(nf+0.25)/4 + 0.375
	default:
		return 0, 0, fmt.Errorf("%w: %v", ErrUnknownConvention, c)
	}
	return iq1, iq3, nil
}
