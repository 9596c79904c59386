/*
 * carriers_test.go, part of gothermo.
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

func TestVarshni(t *testing.T) {
	g := SiliconGap.Gap(Temperatures{1e-9, 300})
	assert.InDelta(t, 1.17, g[0], 1e-12)
	assert.InDelta(t, 1.17-4.73e-4*300*300/(300+636), g[1], 1e-12)
}

func TestIntrinsic(t *testing.T) {
	c := DefaultConstants()
	T := temps(t, 300, 600)
	n := SiliconIntrinsic.Concentration(T, c)
	gap := SiliconGap.Gap(T)
	for i, v := range T {
		want := math.Sqrt(5.3e21*3.5e21) * math.Pow(v, 1.5) * math.Exp(-gap[i]/(2*c.KB*v))
		assert.InEpsilon(t, want, n[i], 1e-12)
	}
	assert.Greater(t, n[1], n[0])
}

func TestTabulatedCarriers(t *testing.T) {
	C := TabulatedCarriers{
		T: []float64{400, 300, 500, 300},
		N: []float64{-2e25, 1e25, -4e25, 1.2e25},
	}
	n, err := C.Concentration(Temperatures{250, 300, 400, 450, 500, 700})
	require.NoError(t, err)
	assert.InEpsilon(t, 1.1e25, n[0], 1e-12)
	assert.InEpsilon(t, 1.1e25, n[1], 1e-12)
	assert.InEpsilon(t, 2e25, n[2], 1e-12)
	assert.True(t, n[3] > 2e25 && n[3] < 4e25)
	assert.InEpsilon(t, 4e25, n[4], 1e-12)
	assert.InEpsilon(t, 4e25, n[5], 1e-12)

	_, err = TabulatedCarriers{T: []float64{300}, N: []float64{1, 2}}.Concentration(Temperatures{300})
	assert.ErrorIs(t, err, ErrShape)
	_, err = TabulatedCarriers{T: []float64{300, 300}, N: []float64{1, 2}}.Concentration(Temperatures{300})
	assert.ErrorIs(t, err, ErrShape)
}

func TestConstantCarriers(t *testing.T) {
	n, err := ConstantCarriers(1e26).Concentration(Temperatures{300, 400})
	require.NoError(t, err)
	assert.Equal(t, []float64{1e26, 1e26}, n)
	_, err = ConstantCarriers(0).Concentration(Temperatures{300})
	assert.ErrorIs(t, err, ErrShape)
}
