/*
 * transport_test.go, part of gothermo.
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
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func constantTau(n int, tau float64) *mat.Dense {
	r := make([]float64, n)
	for i := range r {
		r[i] = tau
	}
	return Row(r)
}

// Doubling the lifetime doubles sigma and the power factor, and leaves the Seebeck coefficient alone.
func TestLifetimeScaling(t *testing.T) {
	_, D, v, c := parabolicBand(t, 2001)
	T := temps(t, 300, 500)
	sol, err := SolveFermiLevel(D, []float64{1e25, 1e25}, T, c, SeedModel{}, SolverOptions{})
	require.NoError(t, err)
	K, err := NewKernel(D, v, sol.Ef, T, c)
	require.NoError(t, err)
	pb, _, err := PhononLifetimes(D, T, siliconPhonons(), c)
	require.NoError(t, err)
	C1, err := K.Coefficients(pb)
	require.NoError(t, err)
	var pb2 mat.Dense
	pb2.Scale(2, pb)
	C2, err := K.Coefficients(&pb2)
	require.NoError(t, err)
	for i := range T {
		assert.Equal(t, 2*C1.Sigma[i], C2.Sigma[i])
		assert.Equal(t, C1.Seebeck[i], C2.Seebeck[i])
		assert.Equal(t, 2*C1.PowerFactor[i], C2.PowerFactor[i])
		assert.Less(t, C1.Seebeck[i], 0.0)
	}
}

// Constant lifetime, non-degenerate parabolic band: sigma=n e^2 tau/m, S=-(kB/e)(5/2-eta), L=5/2 (kB/e)^2.
func TestNonDegenerateLimit(t *testing.T) {
	_, D, v, c := parabolicBand(t, 4001)
	T := temps(t, 300)
	sol, err := SolveFermiLevel(D, []float64{1e21}, T, c, SeedModel{}, SolverOptions{})
	require.NoError(t, err)
	tau := 1e-14
	C, err := Integrate(D, v, sol.Ef, T, constantTau(D.Len(), tau), c)
	require.NoError(t, err)
	m := testMass * c.Me
	eta := sol.Ef[0] / c.KT(300)
	assert.InEpsilon(t, sol.N[0]*c.E2C*c.E2C*tau/m, C.Sigma[0], 2e-3)
	assert.InEpsilon(t, -c.KB*(2.5-eta), C.Seebeck[0], 2e-3)
	assert.InEpsilon(t, 2.5*c.KB*c.KB, C.Lorenz[0], 2e-3)
	assert.InEpsilon(t, C.Sigma[0]*C.Seebeck[0]*C.Seebeck[0], C.PowerFactor[0], 1e-12)
	assert.InEpsilon(t, C.Lorenz[0]*C.Sigma[0]*300, C.Kappa[0], 1e-12)
}

func TestDegenerateMoment(t *testing.T) {
	_, D, v, c := parabolicBand(t, 501)
	T := temps(t, 300, 400)
	_, err := Integrate(D, v, []float64{0.05, -50}, T, constantTau(D.Len(), 1e-14), c)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDegenerate)
	var derr *DegenerateError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, 1, derr.Index)
	assert.Equal(t, 400.0, derr.Temperature)
}

func TestTransportErrors(t *testing.T) {
	_, D, v, c := parabolicBand(t, 101)
	T := temps(t, 300)
	K, err := NewKernel(D, v, []float64{0}, T, c)
	require.NoError(t, err)
	_, err = K.Coefficients(constantTau(100, 1e-14))
	assert.ErrorIs(t, err, ErrShape)
	_, err = K.Coefficients(mat.NewDense(2, 101, nil))
	assert.ErrorIs(t, err, ErrShape)
	_, err = K.Coefficients(nil)
	assert.ErrorIs(t, err, ErrShape)
	nan := constantTau(101, 1e-14)
	nan.Set(0, 50, math.NaN())
	_, err = K.Coefficients(nan)
	assert.ErrorIs(t, err, ErrShape)
	_, err = NewKernel(D, v[:10], []float64{0}, T, c)
	assert.ErrorIs(t, err, ErrShape)
	//infinite lifetimes where there are no states are fine
	inf := constantTau(101, 1e-14)
	inf.Set(0, 0, math.Inf(1))
	_, err = K.Coefficients(inf)
	assert.NoError(t, err)
}
