/*
 * lattice_test.go, part of gothermo.
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

package lattice

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// a_i . b_j must be the Kronecker delta.
func TestReciprocalOrthonormal(t *testing.T) {
	L := FCC(5.401803661945516e-10)
	B, err := Reciprocal(L)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			assert.InDelta(t, want, r3.Dot(L.Vec(i), B.Vec(j)), 1e-12, "a%d.b%d", i, j)
		}
	}
	//the FCC cell holds a quarter of the cubic one.
	a := 5.401803661945516e-10
	assert.InDelta(t, 1.0, Volume(L)/(a*a*a/4), 1e-12)
}

func TestReciprocalCoplanar(t *testing.T) {
	L, err := NewMatrix([]float64{1, 0, 0, 0, 1, 0, 1, 1, 0})
	require.NoError(t, err)
	_, err = Reciprocal(L)
	assert.Error(t, err)
}

// The X point of an FCC lattice, (0.5, 0, 0.5) in reduced coordinates, is at 2pi/a from Gamma.
func TestCartesianXPoint(t *testing.T) {
	a := 5.43e-10
	B, err := Reciprocal(FCC(a))
	require.NoError(t, err)
	frac, err := NewMatrix([]float64{0, 0, 0, 0.5, 0, 0.5})
	require.NoError(t, err)
	K, err := Cartesian(frac, B)
	require.NoError(t, err)
	d, err := Distances(K, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d[0])
	assert.InDelta(t, 1.0, d[1]/(2*math.Pi/a), 1e-12)
	_, err = Distances(K, 2)
	assert.Error(t, err)
}

func TestNewMatrixBadLength(t *testing.T) {
	_, err := NewMatrix([]float64{1, 2})
	assert.Error(t, err)
}
