/*
 * band.go, part of gothermo.
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
	"sort"

	"github.com/rmera/gothermo/lattice"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// BandStructure holds band energies sampled along a path in the Brillouin zone.
type BandStructure struct {
	K        *lattice.Matrix //cartesian k-points, 1/m, one row per sample
	Energies *mat.Dense      //eV, one row per k-point, one column per band
}

// NewBandStructure builds a BandStructure from k-points in fractional coordinates of
// the reciprocal lattice of real (lattice vectors in m, one per row).
func NewBandStructure(frac, real *lattice.Matrix, energies *mat.Dense) (*BandStructure, error) {
	if frac == nil || energies == nil {
		return nil, newError(ErrShape, "NewBandStructure", "nil k-points or energies")
	}
	if r, _ := energies.Dims(); r != frac.NVecs() {
		return nil, newError(ErrShape, "NewBandStructure", "%d k-points but %d rows of band energies", frac.NVecs(), r)
	}
	recip, err := lattice.Reciprocal(real)
	if err != nil {
		return nil, newError(ErrShape, "NewBandStructure", "%s", err.Error())
	}
	K, err := lattice.Cartesian(frac, recip)
	if err != nil {
		return nil, newError(ErrShape, "NewBandStructure", "%s", err.Error())
	}
	return &BandStructure{K: K, Energies: energies}, nil
}

// ValleyOptions tells where to look for the conduction valley.
type ValleyOptions struct {
	Band int //column of the band
	From int //first k-point of the search window
	To   int //one past the last k-point of the search window. 0 means the end of the path.
}

// Valley is one side of a conduction valley: energies above the band minimum in ascending order,
// with the k-space distance of each sample to the minimum.
type Valley struct {
	E []float64 //eV
	K []float64 //1/m
}

// Valley locates, inside the search window, the band minimum and the local maximum next to it
// and returns the samples between them. It fails with ErrValley if there are not at least 2 samples
// with different energies between the extrema.
func (B *BandStructure) Valley(o ValleyOptions) (*Valley, error) {
	rows, cols := B.Energies.Dims()
	if B.K.NVecs() != rows {
		return nil, newError(ErrShape, "Valley", "%d k-points but %d rows of band energies", B.K.NVecs(), rows)
	}
	to := o.To
	if to == 0 {
		to = rows
	}
	if o.Band < 0 || o.Band >= cols || o.From < 0 || to > rows || to-o.From < 2 {
		return nil, newError(ErrShape, "Valley", "band %d window [%d,%d) invalid for %d k-points and %d bands", o.Band, o.From, to, rows, cols)
	}
	band := mat.Col(nil, o.Band, B.Energies)[o.From:to]
	if floats.HasNaN(band) {
		return nil, newError(ErrShape, "Valley", "NaN band energies in window")
	}
	imin := floats.MinIdx(band) + o.From
	imax := floats.MaxIdx(band) + o.From
	lo, hi := imin, imax
	if lo > hi {
		lo, hi = hi, lo
	}
	dist, err := lattice.Distances(B.K, imin)
	if err != nil {
		return nil, newError(ErrShape, "Valley", "%s", err.Error())
	}
	emin := B.Energies.At(imin, o.Band)
	e := make([]float64, 0, hi-lo+1)
	k := make([]float64, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		e = append(e, B.Energies.At(i, o.Band)-emin)
		k = append(k, dist[i])
	}
	V, err := NewValley(e, k)
	return V, errDecorate(err, "Valley")
}

// NewValley sorts the (energy, k) samples by energy and merges repeated energies (averaging their k).
// It fails with ErrValley if less than 2 distinct energies remain.
func NewValley(e, k []float64) (*Valley, error) {
	if len(e) != len(k) {
		return nil, newError(ErrShape, "NewValley", "%d energies and %d k-values", len(e), len(k))
	}
	if floats.HasNaN(e) || floats.HasNaN(k) {
		return nil, newError(ErrShape, "NewValley", "NaN in valley samples")
	}
	ue, uk := UniqueMean(e, k)
	if len(ue) < 2 {
		return nil, newError(ErrValley, "NewValley", "only %d distinct energies between the band extrema", len(ue))
	}
	return &Valley{E: ue, K: uk}, nil
}

// GroupVelocity returns the group velocity (m/s) on the grid, (1/hbar)dE/dk. The derivative is
// taken with central differences on the sorted samples (one-sided at the ends) and resampled with a
// monotone cubic (Fritsch-Butland). Below the band minimum (E<0) the velocity is zero, above the
// sampled energies the last value is kept.
func (V *Valley) GroupVelocity(G *EnergyGrid, c Constants) []float64 {
	n := len(V.E)
	dEdk := make([]float64, n)
	slope := func(i, j int) float64 {
		dk := V.K[j] - V.K[i]
		if dk == 0 {
			return 0
		}
		return math.Abs((V.E[j] - V.E[i]) / dk)
	}
	dEdk[0] = slope(0, 1)
	dEdk[n-1] = slope(n-2, n-1)
	for i := 1; i < n-1; i++ {
		dEdk[i] = slope(i-1, i+1)
	}
	var fb interp.FritschButland
	fb.Fit(V.E, dEdk) //can't fail, V.E is strictly increasing and n>=2
	v := make([]float64, G.Len())
	for i, e := range G.e {
		if e < 0 {
			continue //below the band minimum
		}
		v[i] = fb.Predict(e) / c.HBar
	}
	return v
}

// ParabolicVelocity returns the group velocity of a parabolic band of effective mass m (kg), sqrt(2E/m).
func ParabolicVelocity(G *EnergyGrid, m float64, c Constants) []float64 {
	return KaneVelocity(G, m, 0, c)
}

// KaneVelocity returns the group velocity of a Kane band, sqrt(2E(1+alpha E)/m)/(1+2 alpha E).
func KaneVelocity(G *EnergyGrid, m, alpha float64, c Constants) []float64 {
	v := make([]float64, G.Len())
	for i, e := range G.e {
		if e <= 0 {
			continue
		}
		v[i] = math.Sqrt(2*e*c.E2C*(1+alpha*e)/m) / (1 + 2*alpha*e)
	}
	return v
}

// UniqueMean sorts x ascending and collapses repeated x values into one, whose y is the mean of
// the y values of the repeats. It returns new slices; x and y are not modified.
func UniqueMean(x, y []float64) (ux, uy []float64) {
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return x[idx[a]] < x[idx[b]] })
	ux = make([]float64, 0, len(x))
	uy = make([]float64, 0, len(x))
	group := make([]float64, 0, 4)
	for i := 0; i < len(idx); {
		j := i
		group = group[:0]
		for j < len(idx) && x[idx[j]] == x[idx[i]] {
			group = append(group, y[idx[j]])
			j++
		}
		ux = append(ux, x[idx[i]])
		uy = append(uy, stat.Mean(group, nil))
		i = j
	}
	return ux, uy
}
