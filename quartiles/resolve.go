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

import (
	"fmt"
	"math"
)

// IntPolicy controls what happens when a raw quartile position is exactly
// an integer.
type IntPolicy int

const (
	// KeepInt uses the integer position as-is.
	KeepInt IntPolicy = iota
	// IntMidpoint shifts the position by +0.5, forcing interpolation with
	// the next element.
	IntMidpoint
)

var intPolicyNames = map[IntPolicy]string{
	KeepInt:     "int",
	IntMidpoint: "midpoint",
}

func (p IntPolicy) String() string {
	if name, ok := intPolicyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("IntPolicy(%d)", int(p))
}

// ParseIntPolicy maps "int" or "midpoint" to the corresponding IntPolicy.
func ParseIntPolicy(name string) (IntPolicy, error) {
	for p, n := range intPolicyNames {
		if n == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: integer policy %q", ErrUnknownMethod, name)
}

// FracPolicy controls what happens when a raw quartile position has a
// non-zero fractional part.
type FracPolicy int

const (
	// Linear keeps the fractional position and interpolates.
	Linear FracPolicy = iota
	// Down rounds the position down.
	Down
	// Up rounds the position up.
	Up
	// Bankers rounds half to even.
	Bankers
	// Nearest rounds half up.
	Nearest
	// HalfDown rounds down when the fraction is exactly one half, and
	// half to even otherwise. The mixed behavior reproduces the reference
	// implementation; it is not a pure round-half-down.
	HalfDown
	// Midpoint averages the floor and ceiling positions.
	Midpoint
)

var fracPolicyNames = map[FracPolicy]string{
	Linear:   "linear",
	Down:     "down",
	Up:       "up",
	Bankers:  "bankers",
	Nearest:  "nearest",
	HalfDown: "halfdown",
	Midpoint: "midpoint",
}

func (p FracPolicy) String() string {
	if name, ok := fracPolicyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("FracPolicy(%d)", int(p))
}

// ParseFracPolicy maps a fractional policy name to its FracPolicy.
func ParseFracPolicy(name string) (FracPolicy, error) {
	for p, n := range fracPolicyNames {
		if n == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: fractional policy %q", ErrUnknownMethod, name)
}

// resolvePosition applies the integer or fractional policy to a raw
// quartile position. The result may still be fractional (Linear, Midpoint
// and IntMidpoint keep or produce halves).
func resolvePosition(raw float64, frac FracPolicy, integer IntPolicy) (float64, error) {
	if raw == math.Floor(raw) {
		switch integer {
		case KeepInt:
			return raw, nil
		case IntMidpoint:
			return raw + 0.5, nil
		default:
			return 0, fmt.Errorf("%w: %v", ErrUnknownMethod, integer)
		}
	}
	switch frac {
	case Linear:
		return raw, nil
	case Down:
		return math.Floor(raw), nil
	case Up:
		return math.Ceil(raw), nil
	case Bankers:
		return math.RoundToEven(raw), nil
	case Nearest:
		return math.Floor(raw + 0.5), nil
	case HalfDown:
		if h := raw + 0.5; h == math.Floor(h) {
			return math.Floor(raw), nil
		}
		return math.RoundToEven(raw), nil
	case Midpoint:
		return (math.Floor(raw) + math.Ceil(raw)) / 2, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownMethod, frac)
	}
}

// valueAt reads the 1-based, possibly fractional position out of the
// sorted sample, interpolating linearly between the bracketing elements.
// Positions outside [1, n] fail with ErrIndexOutOfRange rather than being
// clamped, since clamping would silently misreport the quartile.
func valueAt(sorted []float64, position float64) (float64, error) {
	lo := math.Floor(position)
	hi := math.Ceil(position)
	if lo < 1 || hi > float64(len(sorted)) {
		return 0, fmt.Errorf("%w: position %g outside [1, %d]", ErrIndexOutOfRange, position, len(sorted))
	}
	vLo := sorted[int(lo)-1]
	if lo == hi {
		return vLo, nil
	}
	vHi := sorted[int(hi)-1]
	return vLo + (position-lo)/(hi-lo)*(vHi-vLo), nil
}

// Resolve turns a raw quartile position into a concrete value from the
// sorted sample, applying frac when the position is fractional and integer
// when it is exact.
func Resolve(raw float64, sorted []float64, frac FracPolicy, integer IntPolicy) (float64, error) {
	position, err := resolvePosition(raw, frac, integer)
	if err != nil {
		return 0, err
	}
	return valueAt(sorted, position)
}
