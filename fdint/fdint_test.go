/*
 * fdint_test.go, part of gothermo.
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

package fdint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reference values: F_1/2(0)=(1-1/sqrt(2))zeta(3/2), F_-1/2(0)=(1-sqrt(2))zeta(1/2).
func TestAtZero(t *testing.T) {
	assert.InDelta(t, 0.7651470246254079, Half(0), 1e-9)
	assert.InDelta(t, 0.6048986434216303, MinusHalf(0), 1e-9)
}

func TestLimits(t *testing.T) {
	//non-degenerate: F_j(eta) -> exp(eta)
	assert.InDelta(t, 1.0, Half(-25)/math.Exp(-25), 1e-6)
	assert.InDelta(t, 1.0, MinusHalf(-25)/math.Exp(-25), 1e-6)
	//degenerate: F_1/2 -> 4/(3 sqrt(pi)) eta^3/2 (1 + pi^2/(8 eta^2))
	eta := 50.0
	sommerfeld := 4 / (3 * sqrtPi) * math.Pow(eta, 1.5) * (1 + math.Pi*math.Pi/(8*eta*eta))
	assert.InDelta(t, 1.0, Half(eta)/sommerfeld, 1e-6)
}

func TestTableMatchesQuadrature(t *testing.T) {
	tab := Default()
	for _, eta := range []float64{-12.3, -3.1, -0.37, 0, 0.52, 4.4, 17.25, 42} {
		assert.InDelta(t, 1.0, tab.Half(eta)/Half(eta), 1e-5, "F_1/2 at %g", eta)
		assert.InDelta(t, 1.0, tab.MinusHalf(eta)/MinusHalf(eta), 1e-5, "F_-1/2 at %g", eta)
	}
}

func TestInverseRoundTrip(t *testing.T) {
	tab := Default()
	for _, eta := range []float64{-40, -8, -1.5, 0, 2.25, 11, 80} {
		y := tab.Half(eta)
		got, err := tab.InverseHalf(y)
		require.NoError(t, err)
		assert.InDelta(t, eta, got, 1e-4, "eta %g", eta)
	}
	_, err := tab.InverseHalf(0)
	assert.Error(t, err)
	_, err = tab.InverseHalf(math.NaN())
	assert.Error(t, err)
}

// dF_1/2/deta = F_-1/2
func TestDerivativeRelation(t *testing.T) {
	h := 1e-4
	for _, eta := range []float64{-2, 0, 3} {
		d := (Half(eta+h) - Half(eta-h)) / (2 * h)
		assert.InDelta(t, 1.0, d/MinusHalf(eta), 1e-6)
	}
}

func TestNewBadInput(t *testing.T) {
	_, err := New(1, 0, 100)
	assert.Error(t, err)
	_, err = New(0, 1, 2)
	assert.Error(t, err)
}
