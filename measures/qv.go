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
	"fmt"
	"math"
)

// QVMeasure selects one of the qualitative variation indices.
type QVMeasure int

const (
	// FreemanVR is Freeman's variation ratio.
	FreemanVR QVMeasure = iota
	// WilcoxModVR is Wilcox's modified variation ratio.
	WilcoxModVR
	// WilcoxRanVR is Wilcox's range variation ratio.
	WilcoxRanVR
	// WilcoxAvDev is Wilcox's average deviation index.
	WilcoxAvDev
	// WilcoxMNDif is Wilcox's mean difference index.
	WilcoxMNDif
	// WilcoxVarNC is Wilcox's variance analog.
	WilcoxVarNC
	// WilcoxStDev is Wilcox's standard deviation analog.
	WilcoxStDev
	// WilcoxHRel is Wilcox's relative entropy.
	WilcoxHRel
	// GibbsPostonM1 through GibbsPostonM6 are the Gibbs and Poston
	// diversity indices.
	GibbsPostonM1
	GibbsPostonM2
	GibbsPostonM3
	GibbsPostonM4
	GibbsPostonM5
	GibbsPostonM6
	// KaiserB is Kaiser's proportional-representation index.
	KaiserB
	// BullaD and BullaE are Bulla's evenness measures.
	BullaD
	BullaE
	// BergerParkerD is the Berger-Parker dominance index.
	BergerParkerD
	// SimpsonD is Simpson's index, SimpsonDBiased the biased estimate,
	// and the two Diversity variants their complements.
	SimpsonD
	SimpsonDBiased
	SimpsonDiversity
	SimpsonDiversityBiased
	// HillDiversity and HillEvenness are Hill's order-q measures.
	HillDiversity
	HillEvenness
	// HeipEvenness is Heip's evenness index.
	HeipEvenness
	// PielouJ is Pielou's J.
	PielouJ
	// SheldonEvenness is Sheldon's evenness index.
	SheldonEvenness
	// SmithWilson1 through SmithWilson3 are the Smith and Wilson
	// evenness indices.
	SmithWilson1
	SmithWilson2
	SmithWilson3
	// ShannonEntropy is the Shannon-Weaver entropy.
	ShannonEntropy
	// RenyiEntropy is Rényi's order-q entropy.
	RenyiEntropy
)

// QVOptions configures the order-dependent measures. Q is the order for
// HillDiversity and RenyiEntropy (default 2); Q2 the second order for
// HillEvenness (default 1).
type QVOptions struct {
	Q  float64
	Q2 float64
}

// QVResult carries a qualitative variation index with the name of the
// measure and its literature source.
type QVResult struct {
	Value   float64
	Measure string
	Source  string
}

// QualitativeVariation computes the requested diversity or evenness index
// over a categorical sample.
func QualitativeVariation(labels []string, measure QVMeasure, opt *QVOptions) (QVResult, error) {
	if opt == nil {
		opt = &QVOptions{}
	}
	q := opt.Q
	if q == 0 {
		q = 2
	}
	q2 := opt.Q2
	if q2 == 0 {
		q2 = 1
	}
	if len(labels) == 0 {
		return QVResult{}, fmt.Errorf("QualitativeVariation: sample is empty")
	}

	table := LabelFrequencies(labels)
	k := float64(len(table))
	freqs := make([]float64, len(table))
	n := 0.0
	fMax := 0.0
	fMin := math.Inf(1)
	for i, row := range table {
		f := float64(row.Count)
		freqs[i] = f
		n += f
		fMax = math.Max(fMax, f)
		fMin = math.Min(fMin, f)
	}
	props := make([]float64, len(freqs))
	for i, f := range freqs {
		props[i] = f / n
	}

	switch measure {
	case FreemanVR:
		return qvResult(1-fMax/n, "Freeman Variation Ratio", "(Freeman, 1965)"), nil
	case WilcoxModVR:
		sum := 0.0
		for _, f := range freqs {
			sum += fMax - f
		}
		return qvResult(sum/(n*(k-1)), "Wilcox MODVR", "(Wilcox, 1973, p. 7)"), nil
	case WilcoxRanVR:
		return qvResult(1-(fMax-fMin)/fMax, "Wilcox RANVR", "(Wilcox, 1973, p. 8)"), nil
	case WilcoxAvDev:
		sum := 0.0
		for _, f := range freqs {
			sum += math.Abs(f - n/k)
		}
		return qvResult(1-sum/(2*n/k*(k-1)), "Wilcox AVDEV", "(Wilcox, 1973, p. 9)"), nil
	case WilcoxMNDif:
		mndif := 0.0
		for i := 0; i < len(freqs)-1; i++ {
			for j := i + 1; j < len(freqs); j++ {
				mndif += math.Abs(freqs[i] - freqs[j])
			}
		}
		return qvResult(1-mndif/(n*(k-1)), "Wilcox MNDIF", "(Wilcox, 1973, p. 9)"), nil
	case WilcoxVarNC:
		sum := 0.0
		for _, f := range freqs {
			sum += (f - n/k) * (f - n/k)
		}
		return qvResult(1-sum/(n*n*(k-1)/k), "Wilcox VARNC", "(Wilcox, 1973, p. 11)"), nil
	case WilcoxStDev:
		sum := 0.0
		for _, f := range freqs {
			sum += (f - n/k) * (f - n/k)
		}
		den := (n-n/k)*(n-n/k) + (k-1)*(n/k)*(n/k)
		return qvResult(1-math.Sqrt(sum/den), "Wilcox STDEV", "(Wilcox, 1973, p. 14)"), nil
	case WilcoxHRel:
		hrel := 0.0
		for _, p := range props {
			hrel += p * math.Log2(p)
		}
		return qvResult(-hrel/math.Log2(k), "Wilcox HREL", "(Wilcox, 1973, p. 16)"), nil
	case GibbsPostonM1:
		return qvResult(1-sumPow(props, 2), "Gibbs-Poston M1", "(Gibbs & Poston, 1975, p. 471)"), nil
	case GibbsPostonM2:
		return qvResult((1-sumPow(props, 2))/(1-1/k), "Gibbs-Poston M2", "(Gibbs & Poston, 1975, p. 472)"), nil
	case GibbsPostonM3:
		pMin := fMin / n
		return qvResult((1-sumPow(props, 2)-pMin)/(1-1/k-pMin), "Gibbs-Poston M3", "(Gibbs & Poston, 1975, p. 472)"), nil
	case GibbsPostonM4:
		return qvResult(1-absDevSum(freqs, n/k)/(2*n), "Gibbs-Poston M4", "(Gibbs & Poston, 1975, p. 473)"), nil
	case GibbsPostonM5:
		fMean := n / k
		return qvResult(1-absDevSum(freqs, fMean)/(2*(n-k+1-fMean)), "Gibbs-Poston M5", "(Gibbs & Poston, 1975, p. 474)"), nil
	case GibbsPostonM6:
		return qvResult(k*(1-absDevSum(freqs, n/k)/(2*n)), "Gibbs-Poston M6", "(Gibbs & Poston, 1975, p. 474)"), nil
	case KaiserB:
		prod := 1.0
		for _, f := range freqs {
			prod *= f * k / n
		}
		gm := math.Pow(prod, 1/k)
		return qvResult(1-math.Sqrt(1-gm*gm), "Kaiser b", "(Kaiser, 1968, p. 211)"), nil
	case BullaD, BullaE:
		o := 0.0
		for _, p := range props {
			o += math.Min(p, 1/k)
		}
		e := (o - 1/k + (k-1)/n) / (1 - 1/k + (k-1)/n)
		if measure == BullaD {
			return qvResult(k*e, "Bulla D", "(Bulla, 1994, p. 169)"), nil
		}
		return qvResult(e, "Bulla E", "(Bulla, 1994, pp. 168-169)"), nil
	case BergerParkerD:
		return qvResult(fMax/n, "Berger-Parker D", "(Berger & Parker, 1970, p. 1345)"), nil
	case SimpsonD:
		sum := 0.0
		for _, f := range freqs {
			sum += f * (f - 1)
		}
		return qvResult(sum/(n*(n-1)), "Simpson D", "(Simpson, 1949, p. 688)"), nil
	case SimpsonDBiased:
		return qvResult(sumPow(props, 2), "Simpson D biased", "(Smith & Wilson, 1996, p. 71)"), nil
	case SimpsonDiversity:
		sum := 0.0
		for _, f := range freqs {
			sum += f * (f - 1)
		}
		return qvResult(1-sum/(n*(n-1)), "Simpson D as diversity", "(Wikipedia, n.d.)"), nil
	case SimpsonDiversityBiased:
		return qvResult(1-sumPow(props, 2), "Simpson D as diversity biased", "(Berger & Parker, 1970, p. 1345)"), nil
	case HillDiversity:
		return qvResult(hillDiversity(props, q), "Hill Diversity", "(Hill, 1973, p. 428)"), nil
	case HillEvenness:
		return qvResult(hillDiversity(props, q)/hillDiversity(props, q2), "Hill Evenness", "(Hill, 1973, p. 429)"), nil
	case HeipEvenness:
		h := shannon(props)
		return qvResult((math.Exp(h)-1)/(k-1), "Heip Evenness", "(Heip, 1974, p. 555)"), nil
	case PielouJ:
		return qvResult(shannon(props)/math.Log(k), "Pielou J", "(Pielou, 1966, p. 141)"), nil
	case SheldonEvenness:
		return qvResult(math.Exp(shannon(props))/k, "Sheldon Evenness", "(Sheldon, 1969, p. 467)"), nil
	case SmithWilson1:
		d := sumPow(props, 2)
		return qvResult((1-d)/(1-1/k), "Smith-Wilson Evenness Index 1", "(Smith & Wilson, 1996, p. 71)"), nil
	case SmithWilson2:
		d := sumPow(props, 2)
		return qvResult(-math.Log(d)/math.Log(k), "Smith-Wilson Evenness Index 2", "(Smith & Wilson, 1996, p. 71)"), nil
	case SmithWilson3:
		d := sumPow(props, 2)
		return qvResult(1/(d*k), "Smith-Wilson Evenness Index 3", "(Smith & Wilson, 1996, p. 71)"), nil
	case ShannonEntropy:
		return qvResult(shannon(props), "Shannon-Weaver Entropy", "(Shannon & Weaver, 1949, p. 20)"), nil
	case RenyiEntropy:
		if q == 1 {
			return QVResult{}, fmt.Errorf("QualitativeVariation: Rényi entropy is undefined for order 1, use ShannonEntropy")
		}
		return qvResult(1/(1-q)*math.Log2(sumPow(props, q)), "Renyi Entropy", "(Rényi, 1961, p. 549)"), nil
	default:
		return QVResult{}, fmt.Errorf("QualitativeVariation: unknown measure %d", measure)
	}
}

func qvResult(value float64, measure, source string) QVResult {
	return QVResult{Value: value, Measure: measure, Source: source}
}

func sumPow(props []float64, q float64) float64 {
	sum := 0.0
	for _, p := range props {
		sum += math.Pow(p, q)
	}
	return sum
}

func absDevSum(freqs []float64, center float64) float64 {
	sum := 0.0
	for _, f := range freqs {
		sum += math.Abs(f - center)
	}
	return sum
}

func shannon(props []float64) float64 {
	h := 0.0
	for _, p := range props {
		h -= p * math.Log(p)
	}
	return h
}

// hillDiversity follows the reference implementation: exp of the Shannon
// entropy at order 1, and sum(p^q)^-(q-1) otherwise.
func hillDiversity(props []float64, q float64) float64 {
	if q == 1 {
		return math.Exp(shannon(props))
	}
	return 1 / math.Pow(sumPow(props, q), q-1)
}
