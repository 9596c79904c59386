/*
 * matthiessen.go, part of gothermo.
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

// Mechanism is one scattering channel entering Matthiessen's rule.
type Mechanism struct {
	Name string
	//Lifetimes (s), one column per energy of the grid. Either one row per temperature,
	//or a single row used for all of them.
	Tau *mat.Dense
	//Multiplicity of the channel (e.g. the number of equivalent valleys). Must be at least 1.
	Weight int
}

// Row returns a single-row matrix holding a copy of tau, suitable for a Mechanism that
// doesn't depend on temperature.
func Row(tau []float64) *mat.Dense {
	r := make([]float64, len(tau))
	copy(r, tau)
	return mat.NewDense(1, len(r), r)
}

// Matthiessen combines the mechanisms into a total lifetime, 1/tau = sum_i w_i/tau_i, at each energy.
// Every Tau needs one column per energy of G, otherwise an ErrShape error is returned; a weight under
// 1 gives an ErrWeight error. The result has as many rows as the mechanism with most rows, single-row
// mechanisms are broadcast. Infinite lifetimes contribute nothing; if every contribution is zero the
// total is +Inf.
func Matthiessen(G *EnergyGrid, mechs ...Mechanism) (*mat.Dense, error) {
	if len(mechs) == 0 {
		return nil, newError(ErrShape, "Matthiessen", "no mechanisms given")
	}
	N := G.Len()
	rows := 1
	for _, m := range mechs {
		if m.Tau == nil {
			return nil, newError(ErrShape, "Matthiessen", "mechanism %q has no lifetimes", m.Name)
		}
		if m.Weight < 1 {
			return nil, newError(ErrWeight, "Matthiessen", "mechanism %q has weight %d", m.Name, m.Weight)
		}
		r, c := m.Tau.Dims()
		if c != N {
			return nil, newError(ErrShape, "Matthiessen", "mechanism %q has %d energies, the grid has %d", m.Name, c, N)
		}
		if r != 1 && rows != 1 && r != rows {
			return nil, newError(ErrShape, "Matthiessen", "mechanism %q has %d temperatures, expected %d or 1", m.Name, r, rows)
		}
		if r > rows {
			rows = r
		}
	}
	rate := mat.NewDense(rows, N, nil)
	for _, m := range mechs {
		r, _ := m.Tau.Dims()
		w := float64(m.Weight)
		for i := 0; i < rows; i++ {
			src := m.Tau.RawRowView(0)
			if r > 1 {
				src = m.Tau.RawRowView(i)
			}
			dst := rate.RawRowView(i)
			for j, t := range src {
				if math.IsNaN(t) || t < 0 {
					return nil, newError(ErrShape, "Matthiessen", "mechanism %q has lifetime %g at energy index %d", m.Name, t, j)
				}
				dst[j] += w / t
			}
		}
	}
	for i := 0; i < rows; i++ {
		row := rate.RawRowView(i)
		for j, v := range row {
			row[j] = 1 / v
		}
	}
	return rate, nil
}
