/*
 * grid.go, part of gothermo.
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

package thermo

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// EnergyGrid is the energy axis (eV) shared by every energy-resolved array.
// It is strictly increasing, finite and immutable once built.
type EnergyGrid struct {
	e []float64
}

// NewEnergyGrid returns a grid with a copy of the given energies. It fails with
// ErrShape if there are less than 2 points, or they are not finite and strictly increasing.
func NewEnergyGrid(energies []float64) (*EnergyGrid, error) {
	if err := checkAxis(energies, "NewEnergyGrid"); err != nil {
		return nil, err
	}
	e := make([]float64, len(energies))
	copy(e, energies)
	return &EnergyGrid{e: e}, nil
}

// Linspace returns a grid of n evenly spaced energies from min to max, both included.
func Linspace(min, max float64, n int) (*EnergyGrid, error) {
	if n < 2 || !(max > min) {
		return nil, newError(ErrShape, "Linspace", "need n>=2 and max>min, got n=%d, [%g,%g]", n, min, max)
	}
	e := floats.Span(make([]float64, n), min, max)
	return NewEnergyGrid(e)
}

// checkAxis verifies that x is long enough, finite and strictly increasing.
func checkAxis(x []float64, caller string) error {
	if len(x) < 2 {
		return newError(ErrShape, caller, "axis needs at least 2 points, got %d", len(x))
	}
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return newError(ErrShape, caller, "non-finite value %g at index %d", v, i)
		}
		if i > 0 && v <= x[i-1] {
			return newError(ErrShape, caller, "axis not strictly increasing at index %d (%g after %g)", i, v, x[i-1])
		}
	}
	return nil
}

// Len returns the number of points in the grid.
func (G *EnergyGrid) Len() int {
	return len(G.e)
}

// At returns the i-th energy.
func (G *EnergyGrid) At(i int) float64 {
	return G.e[i]
}

// Min and Max return the edges of the grid.
func (G *EnergyGrid) Min() float64 { return G.e[0] }
func (G *EnergyGrid) Max() float64 { return G.e[len(G.e)-1] }

// Energies returns a copy of the energies. If dst is given and long enough, it is used.
func (G *EnergyGrid) Energies(dst ...[]float64) []float64 {
	var ret []float64
	if len(dst) > 0 && len(dst[0]) >= len(G.e) {
		ret = dst[0][:len(G.e)]
	} else {
		ret = make([]float64, len(G.e))
	}
	copy(ret, G.e)
	return ret
}

// Integrate returns the integral over the grid of the sampled function f.
// Every integral in the library goes through here, so all moments and concentrations
// share the same quadrature (composite trapezoid).
// It panics if len(f) != G.Len(), callers check first.
func (G *EnergyGrid) Integrate(f []float64) float64 {
	return integrate.Trapezoidal(G.e, f)
}

// Check returns an ErrShape error if the length of any of the given arrays doesn't match
// the grid.
func (G *EnergyGrid) Check(caller string, arrays ...[]float64) error {
	for i, v := range arrays {
		if len(v) != len(G.e) {
			return newError(ErrShape, caller, "array %d has %d points, the energy grid has %d", i, len(v), len(G.e))
		}
	}
	return nil
}

// Temperatures is an ordered series of temperatures (K). Most quantities are
// computed for each one of them.
type Temperatures []float64

// NewTemperatures returns a copy of t as a Temperatures, checking that every
// element is finite and positive (ErrTemperature otherwise).
func NewTemperatures(t ...float64) (Temperatures, error) {
	ret := make(Temperatures, len(t))
	copy(ret, t)
	if err := ret.Check(); err != nil {
		return nil, errDecorate(err, "NewTemperatures")
	}
	return ret, nil
}

// TemperatureRange returns min, min+step, ... up to, but excluding, max.
func TemperatureRange(min, max, step float64) (Temperatures, error) {
	if !(step > 0) || !(max > min) {
		return nil, newError(ErrShape, "TemperatureRange", "need step>0 and max>min, got [%g,%g) step %g", min, max, step)
	}
	n := int(math.Ceil((max - min) / step))
	t := make([]float64, n)
	for i := range t {
		t[i] = min + float64(i)*step
	}
	return NewTemperatures(t...)
}

// Check returns an error unless the series is not empty and all temperatures are finite and positive.
func (T Temperatures) Check() error {
	if len(T) == 0 {
		return newError(ErrShape, "Check", "empty temperature series")
	}
	for i, v := range T {
		if !(v > 0) || math.IsInf(v, 0) {
			return newError(ErrTemperature, "Check", "T[%d]=%g", i, v)
		}
	}
	return nil
}

// Len returns the number of temperatures.
func (T Temperatures) Len() int { return len(T) }

// checkPerTemperature checks that each array has one element per temperature.
func (T Temperatures) checkPerTemperature(caller string, arrays ...[]float64) error {
	for i, v := range arrays {
		if len(v) != len(T) {
			return newError(ErrShape, caller, "array %d has %d elements for %d temperatures", i, len(v), len(T))
		}
	}
	return nil
}
