/*
 * fdint.go, part of gothermo.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

/*
Package fdint tabulates the normalized complete Fermi-Dirac integrals

	F_j(eta) = 1/Gamma(j+1) * Int_0^inf x^j/(1+exp(x-eta)) dx

for j=1/2 and j=-1/2, which give the carrier concentration of a parabolic
band (n = Nc*F_1/2(eta)) and its screening length. The table is computed
once with Gauss-Legendre quadrature and then interpolated, so nobody has to
read it from a side file.
*/
package fdint

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/interp"
)

// Defaults for the table returned by Default.
const (
	DefaultEtaMin = -30.0
	DefaultEtaMax = 60.0
	DefaultPoints = 9001
	quadPoints    = 160 //per sub-interval
	tailWidth     = 50.0
)

var sqrtPi = math.Sqrt(math.Pi)

// Table is a lookup table for F_1/2 and F_-1/2. It is read-only after New, so
// it can be shared among goroutines.
type Table struct {
	eta      []float64
	logHalf  []float64
	logMHalf []float64
	half     interp.FritschButland //log F_1/2 vs eta
	mhalf    interp.FritschButland //log F_-1/2 vs eta
	inverse  interp.FritschButland //eta vs log F_1/2
}

// New builds a table with n points between etaMin and etaMax.
func New(etaMin, etaMax float64, n int) (*Table, error) {
	if n < 3 || !(etaMax > etaMin) {
		return nil, fmt.Errorf("goThermo/fdint: need n>=3 and etaMax>etaMin, got n=%d [%g,%g]", n, etaMin, etaMax)
	}
	t := &Table{
		eta:      floats.Span(make([]float64, n), etaMin, etaMax),
		logHalf:  make([]float64, n),
		logMHalf: make([]float64, n),
	}
	for i, e := range t.eta {
		t.logHalf[i] = math.Log(Half(e))
		t.logMHalf[i] = math.Log(MinusHalf(e))
	}
	//Both integrals are strictly increasing in eta, so all three fits are well defined.
	t.half.Fit(t.eta, t.logHalf)
	t.mhalf.Fit(t.eta, t.logMHalf)
	t.inverse.Fit(t.logHalf, t.eta)
	return t, nil
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the package-wide table, building it on the first call.
func Default() *Table {
	defaultOnce.Do(func() {
		var err error
		defaultTable, err = New(DefaultEtaMin, DefaultEtaMax, DefaultPoints)
		if err != nil {
			panic(err.Error()) //can't happen with the constant defaults
		}
	})
	return defaultTable
}

// Range returns the interval of reduced potentials covered by the table.
func (t *Table) Range() (float64, float64) {
	return t.eta[0], t.eta[len(t.eta)-1]
}

// Half returns F_1/2(eta), from the table inside its range and from the
// non-degenerate or fully degenerate limits outside.
func (t *Table) Half(eta float64) float64 {
	lo, hi := t.Range()
	switch {
	case eta < lo:
		return math.Exp(eta)
	case eta > hi:
		return halfDegenerate(eta)
	}
	return math.Exp(t.half.Predict(eta))
}

// MinusHalf returns F_-1/2(eta), which is also dF_1/2/deta.
func (t *Table) MinusHalf(eta float64) float64 {
	lo, hi := t.Range()
	switch {
	case eta < lo:
		return math.Exp(eta)
	case eta > hi:
		return minusHalfDegenerate(eta)
	}
	return math.Exp(t.mhalf.Predict(eta))
}

// InverseHalf returns the eta for which F_1/2(eta)=y. y must be positive.
func (t *Table) InverseHalf(y float64) (float64, error) {
	if !(y > 0) || math.IsInf(y, 0) {
		return math.NaN(), fmt.Errorf("goThermo/fdint: F_1/2 is only inverted for finite positive values, got %g", y)
	}
	ly := math.Log(y)
	switch {
	case ly < t.logHalf[0]:
		return ly, nil
	case ly > t.logHalf[len(t.logHalf)-1]:
		//Newton on the Sommerfeld expansion, starting from the T=0 value.
		eta := math.Pow(3*sqrtPi*y/4, 2.0/3.0)
		for i := 0; i < 50; i++ {
			d := (halfDegenerate(eta) - y) / minusHalfDegenerate(eta)
			eta -= d
			if math.Abs(d) <= 1e-14*eta {
				break
			}
		}
		return eta, nil
	}
	return t.inverse.Predict(ly), nil
}

// halfDegenerate is the Sommerfeld expansion of F_1/2 for eta>>1
func halfDegenerate(eta float64) float64 {
	return 4 / (3 * sqrtPi) * math.Pow(eta, 1.5) * (1 + math.Pi*math.Pi/(8*eta*eta))
}

// minusHalfDegenerate is the derivative of halfDegenerate.
func minusHalfDegenerate(eta float64) float64 {
	return 2 / sqrtPi * math.Sqrt(eta) * (1 - math.Pi*math.Pi/(24*eta*eta))
}

// Half computes F_1/2(eta) by quadrature, without the table.
func Half(eta float64) float64 {
	//x=s^2 removes the square root: Int 2 s^2/(1+exp(s^2-eta)) ds
	f := func(s float64) float64 { return 2 * s * s * fermi(s*s-eta) }
	return integrateSplit(f, eta) / (sqrtPi / 2)
}

// MinusHalf computes F_-1/2(eta) by quadrature, without the table.
func MinusHalf(eta float64) float64 {
	//x=s^2 removes the 1/sqrt(x) singularity: Int 2/(1+exp(s^2-eta)) ds
	f := func(s float64) float64 { return 2 * fermi(s*s-eta) }
	return integrateSplit(f, eta) / sqrtPi
}

// fermi returns 1/(1+exp(x)) without overflowing.
func fermi(x float64) float64 {
	if x > 0 {
		ex := math.Exp(-x)
		return ex / (1 + ex)
	}
	return 1 / (1 + math.Exp(x))
}

// integrateSplit integrates f in s from 0 to the point where the occupation is
// negligible, splitting at the Fermi step s=sqrt(eta) when it is inside.
func integrateSplit(f func(float64) float64, eta float64) float64 {
	upper := math.Sqrt(math.Max(eta, 0) + tailWidth)
	if eta <= 0 {
		return quad.Fixed(f, 0, upper, quadPoints, quad.Legendre{}, 0)
	}
	step := math.Sqrt(eta)
	return quad.Fixed(f, 0, step, quadPoints, quad.Legendre{}, 0) +
		quad.Fixed(f, step, upper, quadPoints, quad.Legendre{}, 0)
}
