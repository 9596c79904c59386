/*
 * scattering.go, part of gothermo.
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

	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/mat"
)

//Lifetimes are returned as matrices with one row per temperature and one column per
//energy of the grid. Where the DoS vanishes there is nothing to scatter into and the
//lifetime is +Inf, which drops out of Matthiessen's rule.

// PhononParams are the deformation-potential parameters of the acoustic and intervalley
// phonon scattering.
type PhononParams struct {
	DA         float64   //acoustic deformation potential, eV
	Dv         float64   //valence deformation potential, eV. Only enters the non-parabolic correction
	SoundSpeed float64   //m/s
	Density    float64   //mass density, kg/m^3
	Alpha      []float64 //non-parabolicity, 1/eV, one per temperature. nil means parabolic.
}

// SoundSpeed returns the longitudinal sound speed (m/s), sqrt(B/rho), for a bulk modulus
// in GPa and a density in kg/m^3.
func SoundSpeed(bulkGPa, density float64) float64 {
	return math.Sqrt(bulkGPa * 1e9 / density)
}

// PhononLifetimes returns the electron-phonon lifetimes (s) for a parabolic band,
//
//	tau = rho v^2 hbar/(pi kB T DA^2 DoS(E))
//
// and, in npb, the same lifetimes divided by the Kane non-parabolicity factor
//
//	(1 - aE/(1+2aE)(1-Dv/DA))^2 - 8/3 aE(1+aE)/(1+2aE)^2 Dv/DA
//
// If p.Alpha is nil, npb is nil.
func PhononLifetimes(D *DoS, T Temperatures, p PhononParams, c Constants) (pb, npb *mat.Dense, err error) {
	if err = T.Check(); err != nil {
		return nil, nil, errDecorate(err, "PhononLifetimes")
	}
	if p.Alpha != nil {
		if err = T.checkPerTemperature("PhononLifetimes", p.Alpha); err != nil {
			return nil, nil, err
		}
	}
	if p.DA == 0 || !(p.SoundSpeed > 0) || !(p.Density > 0) {
		return nil, nil, newError(ErrShape, "PhononLifetimes", "invalid phonon parameters DA=%g v=%g rho=%g", p.DA, p.SoundSpeed, p.Density)
	}
	N := D.Len()
	pb = mat.NewDense(len(T), N, nil)
	if p.Alpha != nil {
		npb = mat.NewDense(len(T), N, nil)
	}
	ratio := p.Dv / p.DA
	for i, t := range T {
		//The J from rho v^2 becomes eV dividing by e.
		pref := p.Density * p.SoundSpeed * p.SoundSpeed * c.HBar / (math.Pi * c.KT(t) * p.DA * p.DA * c.E2C)
		row := pb.RawRowView(i)
		for j := range row {
			if D.d[j] == 0 {
				row[j] = math.Inf(1)
				continue
			}
			row[j] = pref / D.d[j]
		}
		if npb == nil {
			continue
		}
		nrow := npb.RawRowView(i)
		a := p.Alpha[i]
		for j, e := range D.grid.e {
			ae := a * e
			den := 1 + 2*ae
			f := 1 - ae/den*(1-ratio)
			term := f*f - 8.0/3.0*ae*(1+ae)/(den*den)*ratio
			nrow[j] = row[j] / term
		}
	}
	return pb, npb, nil
}

// ImpurityLifetimes returns the lifetimes (s) for scattering by ionized impurities under the
// strongly screened Coulomb approximation,
//
//	tau = hbar/(pi N DoS(E) (e LD^2/(4 pi eps eps0))^2)
//
// for screening lengths LD (m) and impurity concentrations N (1/m^3), one per temperature.
func ImpurityLifetimes(D *DoS, LD, N []float64, T Temperatures, dielectric float64, c Constants) (*mat.Dense, error) {
	if err := T.Check(); err != nil {
		return nil, errDecorate(err, "ImpurityLifetimes")
	}
	if err := T.checkPerTemperature("ImpurityLifetimes", LD, N); err != nil {
		return nil, err
	}
	if !(dielectric > 0) {
		return nil, newError(ErrShape, "ImpurityLifetimes", "invalid dielectric constant %g", dielectric)
	}
	tau := mat.NewDense(len(T), D.Len(), nil)
	for i := range T {
		if !(LD[i] > 0) || !(N[i] > 0) || math.IsInf(LD[i], 0) || math.IsInf(N[i], 0) {
			return nil, newError(ErrShape, "ImpurityLifetimes", "invalid screening length %g or concentration %g at T=%g", LD[i], N[i], T[i])
		}
		v := c.E2C * LD[i] * LD[i] / (4 * math.Pi * dielectric * c.Eps0) //eV m^3
		pref := c.HBar / (math.Pi * N[i] * v * v)
		row := tau.RawRowView(i)
		for j := range row {
			if D.d[j] == 0 {
				row[j] = math.Inf(1)
				continue
			}
			row[j] = pref / D.d[j]
		}
	}
	return tau, nil
}

// ExternalLifetime resamples an externally computed lifetime curve (e.g. scattering by
// nanoparticles) on the grid. Repeated energies are merged, averaging their lifetimes, and the
// result is interpolated with a monotone cubic, so it goes through every merged sample and adds
// no spurious extrema. Outside the sampled energies the end values are kept.
// The result is a single row, valid for every temperature.
func ExternalLifetime(G *EnergyGrid, energies, lifetimes []float64) (*mat.Dense, error) {
	if len(energies) != len(lifetimes) {
		return nil, newError(ErrShape, "ExternalLifetime", "%d energies but %d lifetimes", len(energies), len(lifetimes))
	}
	for i, v := range lifetimes {
		if !(v > 0) || math.IsInf(v, 0) {
			return nil, newError(ErrShape, "ExternalLifetime", "invalid lifetime %g at sample %d", v, i)
		}
	}
	e, tau := UniqueMean(energies, lifetimes)
	if err := checkAxis(e, "ExternalLifetime"); err != nil {
		return nil, err
	}
	var fb interp.FritschButland
	if err := fb.Fit(e, tau); err != nil {
		return nil, newError(ErrShape, "ExternalLifetime", "%s", err.Error())
	}
	ret := mat.NewDense(1, G.Len(), nil)
	row := ret.RawRowView(0)
	for j, en := range G.e {
		row[j] = fb.Predict(en)
	}
	return ret, nil
}
