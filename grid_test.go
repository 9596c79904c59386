/*
 * grid_test.go, part of gothermo.
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

func TestEnergyGrid(t *testing.T) {
	G, err := Linspace(-1, 1, 201)
	require.NoError(t, err)
	assert.Equal(t, 201, G.Len())
	assert.Equal(t, -1.0, G.Min())
	assert.Equal(t, 1.0, G.Max())
	e := G.Energies()
	e[0] = 100 //a copy, the grid doesn't change
	assert.Equal(t, -1.0, G.At(0))
	ones := make([]float64, G.Len())
	for i := range ones {
		ones[i] = 1
	}
	assert.InDelta(t, 2.0, G.Integrate(ones), 1e-12)

	for _, bad := range [][]float64{
		{0},
		{0, 1, 1},
		{0, 2, 1},
		{0, math.NaN(), 1},
		{0, 1, math.Inf(1)},
	} {
		_, err := NewEnergyGrid(bad)
		assert.ErrorIs(t, err, ErrShape, "%v", bad)
	}
	assert.ErrorIs(t, G.Check("test", make([]float64, 3)), ErrShape)
}

func TestTemperatures(t *testing.T) {
	T, err := TemperatureRange(300, 600, 100)
	require.NoError(t, err)
	assert.Equal(t, Temperatures{300, 400, 500}, T)
	_, err = NewTemperatures(300, -1)
	assert.ErrorIs(t, err, ErrTemperature)
	_, err = NewTemperatures(0)
	assert.ErrorIs(t, err, ErrTemperature)
	_, err = NewTemperatures(math.NaN())
	assert.ErrorIs(t, err, ErrTemperature)
	_, err = NewTemperatures()
	assert.ErrorIs(t, err, ErrShape)
	_, err = TemperatureRange(600, 300, 10)
	assert.ErrorIs(t, err, ErrShape)
}
