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

// Settings is the full configuration of a quartile computation: one
// indexing convention plus a fractional and an integer policy for each
// quartile. Methods may mix policies between the two quartiles.
type Settings struct {
	Convention Convention
	Q1Frac     FracPolicy
	Q1Int      IntPolicy
	Q3Frac     FracPolicy
	Q3Int      IntPolicy
}

// DefaultSettings is the baseline used when no method is named: SAS1
// indexing with linear interpolation for fractional positions.
var DefaultSettings = Settings{SAS1, Linear, KeepInt, Linear, KeepInt}

// methodSettings maps each canonical method name to its settings.
var methodSettings = map[string]Settings{
	"inclusive": {Inclusive, Linear, KeepInt, Linear, KeepInt},
	"exclusive": {Exclusive, Linear, KeepInt, Linear, KeepInt},
	"sas1":      {SAS1, Linear, KeepInt, Linear, KeepInt},
	"sas2":      {SAS1, Bankers, KeepInt, Bankers, KeepInt},
	"sas3":      {SAS1, Up, KeepInt, Up, KeepInt},
	"sas4":      {SAS4, Linear, KeepInt, Linear, KeepInt},
	"sas5":      {SAS1, Up, IntMidpoint, Up, IntMidpoint},
	"hf3b":      {SAS1, Nearest, KeepInt, HalfDown, KeepInt},
	"ms":        {SAS4, Nearest, KeepInt, HalfDown, KeepInt},
	"lohninger": {SAS4, Nearest, KeepInt, Nearest, KeepInt},
	"hl1":       {HoggLedolter, Midpoint, KeepInt, Midpoint, KeepInt},
	"hl2":       {HoggLedolter, Linear, KeepInt, Linear, KeepInt},
	"maple2":    {HoggLedolter, Down, KeepInt, Down, KeepInt},
	"excel":     {Excel, Linear, KeepInt, Linear, KeepInt},
	"pd2":       {Excel, Down, KeepInt, Down, KeepInt},
	"pd3":       {Excel, Up, KeepInt, Up, KeepInt},
	"pd4":       {Excel, HalfDown, KeepInt, Nearest, KeepInt},
	"pd5":       {Excel, Midpoint, KeepInt, Midpoint, KeepInt},
	"hf8":       {HyndmanFan8, Linear, KeepInt, Linear, KeepInt},
	"hf9":       {HyndmanFan9, Linear, KeepInt, Linear, KeepInt},
}

// methodAliases maps every historical synonym to its canonical method.
// hf refers to the numbering of Hyndman and Fan, r to R's quantile types,
// maple to Maple, pd to pandas/numpy interpolation names, sas to SAS
// PCTLDEF values.
var methodAliases = map[string]string{
	"tukey":  "inclusive",
	"hinges": "inclusive",
	"vining": "inclusive",

	"jf": "exclusive",

	"parzen":                    "sas1",
	"hf4":                       "sas1",
	"interpolated_inverted_cdf": "sas1",
	"maple3":                    "sas1",
	"r4":                        "sas1",

	"hf3": "sas2",
	"r3":  "sas2",

	"hf1":          "sas3",
	"inverted_cdf": "sas3",
	"maple1":       "sas3",
	"r1":           "sas3",

	"minitab":  "sas4",
	"snedecor": "sas4",
	"hf6":      "sas4",
	"weibull":  "sas4",
	"maple5":   "sas4",
	"r6":       "sas4",

	"cdf":                   "sas5",
	"hf2":                   "sas5",
	"averaged_inverted_cdf": "sas5",
	"r2":                    "sas5",

	"closest_observation": "hf3b",

	"hazen":  "hl2",
	"hf5":    "hl2",
	"maple4": "hl2",
	"r5":     "hl2",

	"hf7":    "excel",
	"pd1":    "excel",
	"linear": "excel",
	"gumbel": "excel",
	"maple6": "excel",
	"r7":     "excel",

	"lower":   "pd2",
	"higher":  "pd3",
	"nearest": "pd4",

	"np":       "pd5",
	"midpoint": "pd5",

	"median_unbiased": "hf8",
	"maple7":          "hf8",
	"r8":              "hf8",

	"normal_unbiased": "hf9",
	"maple8":          "hf9",
	"r9":              "hf9",
}

// MethodSettings resolves a method name, or any of its synonyms, to the
// settings it stands for. The empty string selects DefaultSettings.
// Unknown names fail with ErrUnknownMethod naming the offending string.
func MethodSettings(name string) (Settings, error) {
	if name == "" {
		return DefaultSettings, nil
	}
	if canonical, ok := methodAliases[name]; ok {
		name = canonical
	}
	if s, ok := methodSettings[name]; ok {
		return s, nil
	}
	return Settings{}, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// MethodNames returns the canonical method names, for error messages and
// documentation. The slice is freshly allocated on each call.
func MethodNames() []string {
	names := make([]string, 0, len(methodSettings))
	for name := range methodSettings {
		names = append(names, name)
	}
	return names
}
