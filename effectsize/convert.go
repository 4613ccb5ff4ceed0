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
	"fmt"
	"math"
)

// Convert translates one effect size measure into another. from and to
// name the measures:
//
//	"cohendos"    one-sample Cohen d'
//	"cohend"      Cohen d
//	"cohenf"      Cohen f
//	"cohenhos"    one-sample Cohen h'
//	"cohenh"      Cohen h
//	"cohenw"      Cohen w
//	"cc"          contingency coefficient
//	"cramervgof"  Cramér's v for goodness-of-fit (extra: k)
//	"etasq"       eta squared
//	"epsilonsq"   epsilon squared (extras: n, k)
//	"omegasq"     omega squared (extras: MS within, MS between)
//	"jbme"        Johnston-Berry-Mielke E (extra: minimum expected proportion)
//	"or"          odds ratio ("or-chinn" for Chinn's conversion)
//	"rb"          rank biserial correlation
//	"vda"         Vargha-Delaney A
//	"yuleq"       Yule Q
//	"yuley"       Yule Y
//
// Conversions needing context take it through extra, in the order listed
// above. Unsupported pairs return an error.
func Convert(es float64, from, to string, extra ...float64) (float64, error) {
	need := func(k int) error {
		if len(extra) != k {
			return fmt.Errorf("Convert: %s to %s needs %d extra values, got %d", from, to, k, len(extra))
		}
		return nil
	}
	switch from + ">" + to {
	case "cohendos>cohend":
		return es * math.Sqrt2, nil
	case "cohend>or":
		// Borenstein et al. (2009, p. 3)
		return math.Exp(es * math.Pi / math.Sqrt(3)), nil
	case "cohend>or-chinn":
		// Chinn (2000, p. 3129)
		return math.Exp(1.81 * es), nil
	case "cohenf>etasq":
		return es * es / (1 + es*es), nil
	case "cohenhos>cohenh":
		return es * math.Sqrt2, nil
	case "cohenw>cc":
		return math.Sqrt(es * es / (1 + es*es)), nil
	case "cc>cohenw":
		return math.Sqrt(es * es / (1 - es*es)), nil
	case "cramervgof>cohenw":
		if err := need(1); err != nil {
			return 0, err
		}
		return es * math.Sqrt(extra[0]-1), nil
	case "epsilonsq>etasq":
		if err := need(2); err != nil {
			return 0, err
		}
		return 1 - (1-es)*(extra[0]-extra[1])/(extra[0]-1), nil
	case "epsilonsq>omegasq":
		if err := need(2); err != nil {
			return 0, err
		}
		return es * (1 - extra[0]/(extra[1]+extra[0])), nil
	case "etasq>cohenf":
		return math.Sqrt(es / (1 - es)), nil
	case "etasq>epsilonsq":
		if err := need(2); err != nil {
			return 0, err
		}
		return (extra[0]*es - extra[1] + (1 - es)) / (extra[0] - extra[1]), nil
	case "jbme>cohenw":
		if err := need(1); err != nil {
			return 0, err
		}
		return math.Sqrt(es * (1 - extra[0]) / extra[0]), nil
	case "omegasq>epsilonsq":
		if err := need(2); err != nil {
			return 0, err
		}
		return es / (1 - extra[0]/(extra[1]+extra[0])), nil
	case "or>cohend":
		return math.Log(es) * math.Sqrt(3) / math.Pi, nil
	case "or-chinn>cohend":
		return math.Log(es) / 1.81, nil
	case "or>yuleq":
		return (es - 1) / (es + 1), nil
	case "or>yuley":
		return (math.Sqrt(es) - 1) / (math.Sqrt(es) + 1), nil
	case "rb>vda":
		return (es + 1) / 2, nil
	case "vda>rb":
		return 2*es - 1, nil
	case "yuleq>or":
		return (1 + es) / (1 - es), nil
	case "yuleq>yuley":
		return (1 - math.Sqrt(1-es*es)) / es, nil
	case "yuley>or":
		r := (1 + es) / (1 - es)
		return r * r, nil
	case "yuley>yuleq":
		return 2 * es / (1 + es*es), nil
	}
	return 0, fmt.Errorf("Convert: no conversion from %s to %s", from, to)
}
