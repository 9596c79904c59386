/*
 * carriers.go, part of gothermo.
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
)

// Varshni is the temperature dependence of the band gap, Eg(T) = Eg0 - A T^2/(T+B).
type Varshni struct {
	Eg0 float64 //eV
	A   float64 //eV/K
	B   float64 //K
}

// SiliconGap is the Varshni fit for silicon.
var SiliconGap = Varshni{Eg0: 1.17, A: 4.73e-4, B: 636}

// Gap returns the band gap (eV) for each temperature.
func (v Varshni) Gap(T Temperatures) []float64 {
	g := make([]float64, len(T))
	for i, t := range T {
		g[i] = v.Eg0 - v.A*t*t/(t+v.B)
	}
	return g
}

// Intrinsic models the thermally generated carriers across the gap,
// n_i = sqrt(Nc Nv) exp(-Eg/2kT), with Nc = NcCoeff T^3/2 and Nv = NvCoeff T^3/2.
type Intrinsic struct {
	Gap     Varshni
	NcCoeff float64 //1/(m^3 K^3/2)
	NvCoeff float64 //1/(m^3 K^3/2)
}

// SiliconIntrinsic is the intrinsic carrier model used for silicon.
var SiliconIntrinsic = Intrinsic{Gap: SiliconGap, NcCoeff: 5.3e21, NvCoeff: 3.5e21}

// Concentration returns n_i (1/m^3) for each temperature.
func (I Intrinsic) Concentration(T Temperatures, c Constants) []float64 {
	gap := I.Gap.Gap(T)
	n := make([]float64, len(T))
	for i, t := range T {
		t32 := math.Pow(t, 1.5)
		n[i] = math.Sqrt(I.NcCoeff*t32*I.NvCoeff*t32) * math.Exp(-gap[i]/(2*c.KT(t)))
	}
	return n
}

// CarrierSource gives the extrinsic carrier concentration (1/m^3) the material
// should have at each temperature.
type CarrierSource interface {
	Concentration(T Temperatures) ([]float64, error)
}

// ConstantCarriers is a doping level that doesn't change with temperature.
type ConstantCarriers float64

// Concentration returns the constant value for each temperature.
func (C ConstantCarriers) Concentration(T Temperatures) ([]float64, error) {
	if !(float64(C) > 0) || math.IsInf(float64(C), 0) {
		return nil, newError(ErrShape, "ConstantCarriers.Concentration", "invalid concentration %g", float64(C))
	}
	n := make([]float64, len(T))
	for i := range n {
		n[i] = float64(C)
	}
	return n, nil
}

// TabulatedCarriers is a measured (temperature, concentration) curve, interpolated with a
// monotone cubic on the requested temperatures. Values outside the measured range take
// the closest measured value. Like in the Hall data it usually comes from, the sign is ignored.
type TabulatedCarriers struct {
	T []float64 //K
	N []float64 //1/m^3
}

// Concentration interpolates the table on T.
func (C TabulatedCarriers) Concentration(T Temperatures) ([]float64, error) {
	if len(C.T) != len(C.N) {
		return nil, newError(ErrShape, "TabulatedCarriers.Concentration", "%d temperatures but %d concentrations", len(C.T), len(C.N))
	}
	t, n := UniqueMean(C.T, C.N)
	if err := checkAxis(t, "TabulatedCarriers.Concentration"); err != nil {
		return nil, err
	}
	var fb interp.FritschButland
	fb.Fit(t, n)
	ret := make([]float64, len(T))
	for i, v := range T {
		ret[i] = math.Abs(fb.Predict(v))
	}
	return ret, nil
}
