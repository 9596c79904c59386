/*
 * transport.go, part of gothermo.
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

	"gonum.org/v1/gonum/mat"
)

// Coefficients are the transport coefficients of the electrons, one value per temperature.
// The moments are I_k = Int v^2 DoS tau (E-Ef)^k W dE, with W the Fermi window, v in m/s, energies
// in eV, DoS in 1/(eV m^3) and tau in s.
type Coefficients struct {
	T           Temperatures
	Sigma       []float64 //electrical conductivity, S/m
	Seebeck     []float64 //V/K, negative for electrons
	PowerFactor []float64 //Sigma*Seebeck^2, W/(m K^2)
	Kappa       []float64 //electronic thermal conductivity, W/(m K)
	Lorenz      []float64 //Kappa/(Sigma T), W Ohm/K^2
	I0          []float64
	I1          []float64
	I2          []float64
}

func newCoefficients(T Temperatures) *Coefficients {
	n := len(T)
	return &Coefficients{
		T:           append(Temperatures(nil), T...),
		Sigma:       make([]float64, n),
		Seebeck:     make([]float64, n),
		PowerFactor: make([]float64, n),
		Kappa:       make([]float64, n),
		Lorenz:      make([]float64, n),
		I0:          make([]float64, n),
		I1:          make([]float64, n),
		I2:          make([]float64, n),
	}
}

// Kernel is the lifetime-independent part of the transport integrals for a fixed band,
// Fermi level and set of temperatures: v^2 DoS W for each temperature, and E-Ef.
// A Kernel is not modified after NewKernel, so it can be shared by goroutines, each
// calling Coefficients with its own lifetimes.
type Kernel struct {
	grid *EnergyGrid
	T    Temperatures
	k    *mat.Dense //v^2 DoS W
	de   *mat.Dense //E-Ef
	e    float64
}

// NewKernel precomputes the transport kernel for the DoS D, the group velocity v (m/s) on the
// grid of D, and the Fermi levels ef (eV), one per temperature.
func NewKernel(D *DoS, v, ef []float64, T Temperatures, c Constants) (*Kernel, error) {
	if err := D.grid.Check("NewKernel", v); err != nil {
		return nil, err
	}
	_, win, err := FermiDirac(D.grid, ef, T, c)
	if err != nil {
		return nil, errDecorate(err, "NewKernel")
	}
	N := D.Len()
	K := &Kernel{
		grid: D.grid,
		T:    append(Temperatures(nil), T...),
		k:    mat.NewDense(len(T), N, nil),
		de:   mat.NewDense(len(T), N, nil),
		e:    c.E2C,
	}
	for i := range T {
		w := win.RawRowView(i)
		k := K.k.RawRowView(i)
		de := K.de.RawRowView(i)
		for j, e := range D.grid.e {
			de[j] = e - ef[i]
			if D.d[j] == 0 || v[j] == 0 || w[j] == 0 {
				continue
			}
			k[j] = v[j] * v[j] * D.d[j] * w[j]
		}
	}
	return K, nil
}

// Grid returns the energy grid of the kernel.
func (K *Kernel) Grid() *EnergyGrid { return K.grid }

// Coefficients integrates the kernel with the lifetimes tau (s), which must have one column per
// energy and either one row per temperature or a single row. Every moment goes through
// EnergyGrid.Integrate. Where the kernel vanishes the lifetime is not used, so infinite lifetimes
// there are harmless. A zeroth moment that is not positive and finite makes the Seebeck coefficient
// undefined and gives a *DegenerateError.
func (K *Kernel) Coefficients(tau *mat.Dense) (*Coefficients, error) {
	if tau == nil {
		return nil, newError(ErrShape, "Coefficients", "nil lifetimes")
	}
	r, c := tau.Dims()
	N := K.grid.Len()
	if c != N || (r != 1 && r != len(K.T)) {
		return nil, newError(ErrShape, "Coefficients", "lifetimes are %dx%d, need %dx%d or 1x%d", r, c, len(K.T), N, N)
	}
	C := newCoefficients(K.T)
	f0 := make([]float64, N)
	f1 := make([]float64, N)
	f2 := make([]float64, N)
	for i, t := range K.T {
		trow := tau.RawRowView(0)
		if r > 1 {
			trow = tau.RawRowView(i)
		}
		k := K.k.RawRowView(i)
		de := K.de.RawRowView(i)
		for j := range k {
			if k[j] == 0 {
				f0[j], f1[j], f2[j] = 0, 0, 0
				continue
			}
			if math.IsNaN(trow[j]) || trow[j] < 0 {
				return nil, newError(ErrShape, "Coefficients", "lifetime %g at energy index %d", trow[j], j)
			}
			f0[j] = k[j] * trow[j]
			f1[j] = f0[j] * de[j]
			f2[j] = f1[j] * de[j]
		}
		i0 := K.grid.Integrate(f0)
		if !(i0 > 0) || math.IsInf(i0, 0) {
			return nil, &DegenerateError{Index: i, Temperature: t, Moment: i0, deco: []string{"Coefficients"}}
		}
		i1 := K.grid.Integrate(f1)
		i2 := K.grid.Integrate(f2)
		C.I0[i], C.I1[i], C.I2[i] = i0, i1, i2
		C.Sigma[i] = K.e * i0 / 3
		C.Seebeck[i] = -i1 / (t * i0)
		C.PowerFactor[i] = C.Sigma[i] * C.Seebeck[i] * C.Seebeck[i]
		C.Kappa[i] = K.e * (i2 - i1*i1/i0) / (3 * t)
		C.Lorenz[i] = C.Kappa[i] / (C.Sigma[i] * t)
	}
	return C, nil
}

// Integrate computes the transport coefficients in one go. Use a Kernel when the
// same band and Fermi levels are integrated with many different lifetimes.
func Integrate(D *DoS, v, ef []float64, T Temperatures, tau *mat.Dense, c Constants) (*Coefficients, error) {
	K, err := NewKernel(D, v, ef, T, c)
	if err != nil {
		return nil, errDecorate(err, "Integrate")
	}
	C, err := K.Coefficients(tau)
	return C, errDecorate(err, "Integrate")
}
