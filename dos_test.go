/*
 * dos_test.go, part of gothermo.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDoS(t *testing.T) {
	const vol = 2 * 19.70272e-30
	n := 301
	in := DoSInput{Energies: make([]float64, n), Counts: make([]float64, n), CellVolume: vol, Valley: 100}
	for i := range in.Energies {
		in.Energies[i] = -1 + 0.01*float64(i)
		in.Counts[i] = 3 + in.Energies[i]
	}
	G, err := Linspace(0, 1, 101)
	require.NoError(t, err)
	D, err := NewDoS(G, in, 0.05)
	require.NoError(t, err)
	assert.Equal(t, 0, D.Clamped())
	shift := in.Energies[in.Valley]
	for j := 0; j < G.Len(); j += 10 {
		want := (3 + shift + G.At(j)) / vol * 1.05
		assert.InEpsilon(t, want, D.At(j), 1e-9, "E=%g", G.At(j))
	}

	in.Valley = n - 1
	_, err = NewDoS(G, in, 0)
	assert.ErrorIs(t, err, ErrShape)
	in.Valley = 0
	in.CellVolume = 0
	_, err = NewDoS(G, in, 0)
	assert.ErrorIs(t, err, ErrShape)
}

// No states in the gap when the grid starts below the valley edge.
func TestNewDoSBelowValley(t *testing.T) {
	n := 301
	in := DoSInput{Energies: make([]float64, n), Counts: make([]float64, n), CellVolume: 1e-29, Valley: 100}
	for i := range in.Energies {
		in.Energies[i] = -1 + 0.01*float64(i)
		in.Counts[i] = 1
	}
	G, err := Linspace(-0.2, 0.3, 11)
	require.NoError(t, err)
	D, err := NewDoS(G, in, 0)
	require.NoError(t, err)
	for i := 0; i < G.Len(); i++ {
		switch E := G.At(i); {
		case E < -1e-9:
			assert.Equal(t, 0.0, D.At(i), "E=%g", E)
		case E > 1e-9:
			assert.InEpsilon(t, 1e29, D.At(i), 1e-9, "E=%g", E)
		}
	}
	//nothing below the edge contributes to the states either, up to the half step at E=0.
	assert.InDelta(t, 1e29*0.3, D.States(), 1e29*0.026)
}

func TestDoSClampAndPorosity(t *testing.T) {
	G, err := Linspace(0, 1, 5)
	require.NoError(t, err)
	D, err := DoSFromValues(G, []float64{-1, 0, 1, -2, 4}, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 2, D.Clamped())
	assert.Equal(t, []float64{0, 0, 1.5, 0, 6}, D.Values())
	_, err = DoSFromValues(G, []float64{0, 0, math.NaN(), 0, 0}, 0)
	assert.ErrorIs(t, err, ErrShape)
	_, err = DoSFromValues(G, []float64{0, 0, 0}, 0)
	assert.ErrorIs(t, err, ErrShape)
	_, err = DoSFromValues(G, []float64{0, 0, 0, 0, 0}, -0.1)
	assert.ErrorIs(t, err, ErrShape)
}

// A Kane band with alpha=0 is parabolic, and non-parabolicity adds states.
func TestKaneDoS(t *testing.T) {
	c := DefaultConstants()
	G, err := Linspace(-0.1, 1, 111)
	require.NoError(t, err)
	m := testMass * c.Me
	p := ParabolicDoS(G, m, c)
	k := KaneDoS(G, m, 0.5, c)
	assert.Equal(t, p, KaneDoS(G, m, 0, c))
	for i := 0; i < G.Len(); i++ {
		if G.At(i) <= 0 {
			assert.Equal(t, 0.0, p[i])
			continue
		}
		assert.Greater(t, k[i], p[i])
	}
	//total states of a parabolic band up to 1 eV, (1/3pi^2)(2m E/hbar^2)^3/2
	D, err := DoSFromValues(G, p, 0)
	require.NoError(t, err)
	hb := c.HBarSI()
	want := math.Pow(2*m*c.E2C/(hb*hb), 1.5) / (3 * math.Pi * math.Pi)
	assert.InEpsilon(t, want, D.States(), 1e-2)
}
