/*
 * statistics.go, part of gothermo.
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

// FermiFunction returns the Fermi-Dirac occupation of a state at energy e,
// for a chemical potential ef and kT=kB*T, all in eV.
func FermiFunction(e, ef, kT float64) float64 {
	return 1 / (1 + math.Exp((e-ef)/kT))
}

// FermiWindow returns -df/dE at e, computed analytically as f(1-f)/kT.
// For |e-ef|>>kT the exponential overflows to +Inf and f goes to exactly 0 or 1,
// so the window goes to 0, never to NaN.
func FermiWindow(e, ef, kT float64) float64 {
	f := FermiFunction(e, ef, kT)
	return f * (1 - f) / kT
}

// FermiDirac returns the occupation and the Fermi window over the whole grid for each
// temperature in T, with the chemical potential ef[i] for T[i]. Both matrices have one row
// per temperature and one column per energy.
func FermiDirac(G *EnergyGrid, ef []float64, T Temperatures, c Constants) (occ, win *mat.Dense, err error) {
	if err = T.Check(); err != nil {
		return nil, nil, errDecorate(err, "FermiDirac")
	}
	if err = T.checkPerTemperature("FermiDirac", ef); err != nil {
		return nil, nil, err
	}
	occ = mat.NewDense(len(T), G.Len(), nil)
	win = mat.NewDense(len(T), G.Len(), nil)
	for i, t := range T {
		kT := c.KT(t)
		orow := occ.RawRowView(i)
		wrow := win.RawRowView(i)
		for j, e := range G.e {
			f := FermiFunction(e, ef[i], kT)
			orow[j] = f
			wrow[j] = f * (1 - f) / kT
		}
	}
	return occ, win, nil
}

// Occupation returns only the occupation part of FermiDirac.
func Occupation(G *EnergyGrid, ef []float64, T Temperatures, c Constants) (*mat.Dense, error) {
	occ, _, err := FermiDirac(G, ef, T, c)
	return occ, errDecorate(err, "Occupation")
}

// Window returns only the Fermi window part of FermiDirac.
func Window(G *EnergyGrid, ef []float64, T Temperatures, c Constants) (*mat.Dense, error) {
	_, win, err := FermiDirac(G, ef, T, c)
	return win, errDecorate(err, "Window")
}
