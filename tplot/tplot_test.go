/*
 * tplot_test.go, part of gothermo.
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

package tplot

import (
	"os"
	"path/filepath"
	"testing"

	thermo "github.com/rmera/gothermo"
	"github.com/rmera/gothermo/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeCoefficients(T ...float64) *thermo.Coefficients {
	C := &thermo.Coefficients{T: T}
	for i, t := range T {
		C.Sigma = append(C.Sigma, 1e5/t)
		C.Seebeck = append(C.Seebeck, -1e-6*t)
		C.PowerFactor = append(C.PowerFactor, C.Sigma[i]*C.Seebeck[i]*C.Seebeck[i])
		C.Kappa = append(C.Kappa, 1)
		C.Lorenz = append(C.Lorenz, 2.44e-8)
	}
	return C
}

func TestCoefficients(t *testing.T) {
	dir := t.TempDir()
	C := fakeCoefficients(300, 400, 500, 600)
	name := filepath.Join(dir, "pf.png")
	err := Coefficients(PowerFactor, "bulk", name,
		FromCoefficients("model", PowerFactor, C),
		Series{Name: "measured", X: []float64{320, 480}, Y: []float64{1e-3, 1.2e-3}, Points: true})
	require.NoError(t, err)
	st, err := os.Stat(name)
	require.NoError(t, err)
	assert.Greater(t, st.Size(), int64(0))

	assert.Error(t, Coefficients(Sigma, "empty", name))
	assert.Error(t, Coefficients(Sigma, "bad", name, Series{Name: "x", X: []float64{1}, Y: nil}))
	assert.Equal(t, "Seebeck (V/K)", Seebeck.String())
}

func TestSurface(t *testing.T) {
	dir := t.TempDir()
	S := &scan.Surface{U: []float64{0.1, 0.2, 0.3}, Tau0: []float64{5e-16, 6e-16}, T: thermo.Temperatures{300}}
	for i := range S.U {
		for j := range S.Tau0 {
			S.Points = append(S.Points, fakeCoefficients(300+float64(10*i+j)))
		}
	}
	name := filepath.Join(dir, "surface.png")
	require.NoError(t, Surface(S, 0, "scan", name))
	_, err := os.Stat(name)
	require.NoError(t, err)
	assert.Error(t, Surface(S, 1, "scan", name))
	S.Tau0 = S.Tau0[:1]
	assert.Error(t, Surface(S, 0, "scan", name))
}
