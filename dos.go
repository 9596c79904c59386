/*
 * dos.go, part of gothermo.
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
	"gonum.org/v1/gonum/interp"
)

// DoS is a density of states in 1/(eV m^3), sampled on an EnergyGrid.
// It is never negative and is not modified after construction.
type DoS struct {
	grid    *EnergyGrid
	d       []float64
	clamped int
}

// DoSInput is a binned density of states as written by ab-initio codes.
type DoSInput struct {
	Energies   []float64 //eV, one per bin
	Counts     []float64 //states/eV per unit cell
	CellVolume float64   //m^3
	Valley     int       //first bin of the valley, its energy becomes the zero of the grid
}

// NewDoS converts the raw counts to states/eV/m^3, takes the valley edge as zero energy, resamples on
// the grid with a natural cubic spline and scales the result by (1+porosity), the low volume
// fraction limit of a two-phase medium. Negative values produced by the spline are clamped to zero;
// how many points needed it is reported by Clamped. The DoS is zero below the valley edge.
func NewDoS(G *EnergyGrid, in DoSInput, porosity float64) (*DoS, error) {
	if len(in.Energies) != len(in.Counts) {
		return nil, newError(ErrShape, "NewDoS", "%d energies but %d counts", len(in.Energies), len(in.Counts))
	}
	if in.Valley < 0 || in.Valley >= len(in.Energies)-1 {
		return nil, newError(ErrShape, "NewDoS", "valley index %d out of range for %d bins", in.Valley, len(in.Energies))
	}
	if !(in.CellVolume > 0) || math.IsInf(in.CellVolume, 0) {
		return nil, newError(ErrShape, "NewDoS", "invalid cell volume %g", in.CellVolume)
	}
	e := make([]float64, len(in.Energies)-in.Valley)
	copy(e, in.Energies[in.Valley:])
	floats.AddConst(-in.Energies[in.Valley], e)
	if err := checkAxis(e, "NewDoS"); err != nil {
		return nil, err
	}
	v := make([]float64, len(e))
	floats.ScaleTo(v, 1/in.CellVolume, in.Counts[in.Valley:])
	if floats.HasNaN(v) {
		return nil, newError(ErrShape, "NewDoS", "NaN in state counts")
	}
	var spline interp.NaturalCubic
	if err := spline.Fit(e, v); err != nil {
		return nil, newError(ErrShape, "NewDoS", "spline fit failed: %s", err.Error())
	}
	d := make([]float64, G.Len())
	for i, en := range G.e {
		if en < 0 {
			continue //gap
		}
		d[i] = spline.Predict(en)
	}
	D, err := DoSFromValues(G, d, porosity)
	return D, errDecorate(err, "NewDoS")
}

// DoSFromValues builds a DoS from values already sampled on the grid, clamping negatives to zero
// and scaling by (1+porosity). The values are copied.
func DoSFromValues(G *EnergyGrid, values []float64, porosity float64) (*DoS, error) {
	if err := G.Check("DoSFromValues", values); err != nil {
		return nil, err
	}
	if !(porosity >= 0) || math.IsInf(porosity, 0) {
		return nil, newError(ErrShape, "DoSFromValues", "invalid porosity fraction %g", porosity)
	}
	D := &DoS{grid: G, d: make([]float64, len(values))}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, newError(ErrShape, "DoSFromValues", "non-finite DoS %g at index %d", v, i)
		}
		if v < 0 {
			v = 0
			D.clamped++
		}
		D.d[i] = v * (1 + porosity)
	}
	return D, nil
}

// ParabolicDoS returns the density of states of a parabolic band with effective mass m (kg), bottom at E=0,
// (1/2pi^2)(2m/hbar^2)^3/2 sqrt(E), spin included, in 1/(eV m^3). It is zero for E<0.
func ParabolicDoS(G *EnergyGrid, m float64, c Constants) []float64 {
	return KaneDoS(G, m, 0, c)
}

// KaneDoS returns the density of states of a Kane (non-parabolic) band E(1+alpha E)=hbar^2k^2/2m,
// (1/2pi^2)(2m/hbar^2)^3/2 sqrt(E(1+alpha E))(1+2 alpha E). alpha is in 1/eV.
func KaneDoS(G *EnergyGrid, m, alpha float64, c Constants) []float64 {
	hb := c.HBarSI()
	//the e^3/2 takes E to J inside the root and the result from 1/J to 1/eV
	pref := math.Pow(2*m/(hb*hb), 1.5) / (2 * math.Pi * math.Pi) * math.Pow(c.E2C, 1.5)
	d := make([]float64, G.Len())
	for i, e := range G.e {
		if e <= 0 {
			continue
		}
		d[i] = pref * math.Sqrt(e*(1+alpha*e)) * (1 + 2*alpha*e)
	}
	return d
}

// Len returns the number of energy points.
func (D *DoS) Len() int { return len(D.d) }

// At returns the DoS at the i-th energy of the grid.
func (D *DoS) At(i int) float64 { return D.d[i] }

// Grid returns the energy grid of the DoS.
func (D *DoS) Grid() *EnergyGrid { return D.grid }

// Clamped returns the number of grid points where a negative value had to be set to zero.
func (D *DoS) Clamped() int { return D.clamped }

// Values returns a copy of the DoS values.
func (D *DoS) Values() []float64 {
	ret := make([]float64, len(D.d))
	copy(ret, D.d)
	return ret
}

// States returns the total number of states per m^3 in the grid range.
func (D *DoS) States() float64 {
	return D.grid.Integrate(D.d)
}
