/*
 * helpers_test.go, part of gothermo.
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

	"github.com/stretchr/testify/require"
)

// effective mass of the synthetic band used in the tests, in electron masses.
const testMass = 0.3

// parabolicBand returns a parabolic band with its bottom at E=0 sampled on n points up to 1 eV:
// the grid, the DoS and the group velocity.
func parabolicBand(t *testing.T, n int) (*EnergyGrid, *DoS, []float64, Constants) {
	t.Helper()
	c := DefaultConstants()
	G, err := Linspace(0, 1, n)
	require.NoError(t, err)
	D, err := DoSFromValues(G, ParabolicDoS(G, testMass*c.Me, c), 0)
	require.NoError(t, err)
	return G, D, ParabolicVelocity(G, testMass*c.Me, c), c
}

// effective density of states coefficient of a parabolic band, Nc/T^3/2.
func parabolicNc(m float64, c Constants) float64 {
	hb := c.HBarSI()
	return 2 * math.Pow(m*c.KB*c.E2C/(2*math.Pi*hb*hb), 1.5)
}

func temps(t *testing.T, T ...float64) Temperatures {
	t.Helper()
	ret, err := NewTemperatures(T...)
	require.NoError(t, err)
	return ret
}
