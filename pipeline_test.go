/*
 * pipeline_test.go, part of gothermo.
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
	"bytes"
	"testing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMaterial(t *testing.T) *Material {
	t.Helper()
	G, D, v, c := parabolicBand(t, 2001)
	T, err := TemperatureRange(300, 700, 100)
	require.NoError(t, err)
	alpha := make([]float64, len(T))
	for i := range alpha {
		alpha[i] = 0.5
	}
	return &Material{
		Name:       "test",
		Grid:       G,
		T:          T,
		DoS:        D,
		Velocity:   v,
		Dielectric: 11.7,
		Mass:       testMass * c.Me,
		Alpha:      alpha,
		Phonon:     siliconPhonons(),
		Solver:     DefaultSolverOptions(),
		Constants:  c,
	}
}

func TestRun(t *testing.T) {
	m := testMaterial(t)
	var buf bytes.Buffer
	l := log.New()
	l.SetOutput(&buf)
	m.Log = l
	s := Scenario{
		Name:     "bulk",
		Carriers: ConstantCarriers(1e25),
		External: &ExternalCurve{Energies: []float64{0.5, 0.1, 0.3}, Lifetimes: []float64{3e-14, 1e-14, 2e-14}},
	}
	res, err := Run(m, s)
	require.NoError(t, err)
	_, err = uuid.Parse(res.RunID)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), res.RunID)
	for i := range m.T {
		assert.InEpsilon(t, 1e25, res.Fermi.N[i], 1e-6)
		assert.Greater(t, res.Screening[i], 0.0)
		assert.Greater(t, res.Coefficients.Sigma[i], 0.0)
		assert.Less(t, res.Coefficients.Seebeck[i], 0.0)
		for j := 1; j < m.Grid.Len(); j += 100 {
			tot := res.Tau.At(i, j)
			assert.Less(t, tot, res.TauPhonon.At(i, j))
			assert.Less(t, tot, res.TauImpurity.At(i, j))
			assert.Less(t, tot, res.TauExternal.At(0, j))
		}
	}
	assert.Equal(t, res.Kernel.Grid(), m.Grid)

	//the same carriers in a porous sample: more states, lower Fermi level.
	s.Porosity = 0.05
	s.Name = "porous"
	res2, err := Run(m, s)
	require.NoError(t, err)
	assert.NotEqual(t, res.RunID, res2.RunID)
	for i := range m.T {
		assert.Less(t, res2.Fermi.Ef[i], res.Fermi.Ef[i])
	}
}

func TestRunVariants(t *testing.T) {
	m := testMaterial(t)
	base := Scenario{Name: "base", Carriers: ConstantCarriers(1e25)}
	np := base
	np.Name = "non-parabolic"
	np.NonParabolic = true
	np.DegenerateScreening = true
	w := base
	w.Name = "six valleys"
	w.Weights = Weights{Phonon: 6, Impurity: 1, External: 1}
	res, err := RunAll(m, base, np, w)
	require.NoError(t, err)
	require.Len(t, res, 3)
	for i := range m.T {
		//six phonon channels: shorter lifetimes, lower conductivity.
		assert.Less(t, res[2].Coefficients.Sigma[i], res[0].Coefficients.Sigma[i])
		assert.Equal(t, res[0].Fermi.Ef[i], res[2].Fermi.Ef[i])
		assert.NotEqual(t, res[0].TauPhonon.At(i, 500), res[1].TauPhonon.At(i, 500))
	}

	bad := *m
	bad.Alpha = nil
	_, err = Run(&bad, np)
	assert.ErrorIs(t, err, ErrShape)
	_, err = Run(m, Scenario{Name: "no carriers"})
	assert.ErrorIs(t, err, ErrShape)
	w.Weights = Weights{Phonon: -1, Impurity: 1}
	_, err = RunAll(m, base, w)
	assert.ErrorIs(t, err, ErrWeight)
}

func TestRunMaterialChecks(t *testing.T) {
	m := testMaterial(t)
	s := Scenario{Name: "bulk", Carriers: ConstantCarriers(1e25)}
	ref, err := Run(m, s)
	require.NoError(t, err)

	//a zero constants record means the default constants.
	zero := *m
	zero.Constants = Constants{}
	res, err := Run(&zero, s)
	require.NoError(t, err)
	assert.Equal(t, ref.Fermi.Ef, res.Fermi.Ef)
	assert.Equal(t, ref.Coefficients.Sigma, res.Coefficients.Sigma)

	neg := *m
	neg.Constants.KB = -neg.Constants.KB
	_, err = Run(&neg, s)
	assert.ErrorIs(t, err, ErrShape)

	//same number of points, different energies.
	G2, err := Linspace(m.Grid.Min()+0.1, m.Grid.Max()+0.1, m.Grid.Len())
	require.NoError(t, err)
	D2, err := DoSFromValues(G2, m.DoS.Values(), 0)
	require.NoError(t, err)
	shifted := *m
	shifted.DoS = D2
	_, err = Run(&shifted, s)
	assert.ErrorIs(t, err, ErrShape)

	//a separate grid with the same energies is accepted.
	G3, err := NewEnergyGrid(m.Grid.Energies())
	require.NoError(t, err)
	D3, err := DoSFromValues(G3, m.DoS.Values(), 0)
	require.NoError(t, err)
	same := *m
	same.DoS = D3
	res, err = Run(&same, s)
	require.NoError(t, err)
	assert.Equal(t, ref.Fermi.Ef, res.Fermi.Ef)
}
