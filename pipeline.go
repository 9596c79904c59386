/*
 * pipeline.go, part of gothermo.
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
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Material is everything about the host that doesn't change between scenarios.
type Material struct {
	Name       string
	Grid       *EnergyGrid
	T          Temperatures
	DoS        *DoS      //bulk density of states, before any porosity scaling
	Velocity   []float64 //group velocity on Grid, m/s
	Dielectric float64   //relative dielectric constant
	Mass       float64   //conduction band effective mass, kg. Only used by the degenerate screening
	Alpha      []float64 //non-parabolicity per temperature, 1/eV. Needed by non-parabolic scenarios
	Phonon     PhononParams
	Seed       SeedModel
	Solver     SolverOptions
	Constants  Constants //the zero value means DefaultConstants
	Log        log.FieldLogger
}

// Weights are the Matthiessen multiplicities of the scattering channels in a scenario.
// External is ignored if the scenario has no external curve.
type Weights struct {
	Phonon   int
	Impurity int
	External int
}

// DefaultWeights gives every channel a weight of 1.
func DefaultWeights() Weights {
	return Weights{Phonon: 1, Impurity: 1, External: 1}
}

// ExternalCurve is a lifetime curve computed elsewhere, like the scattering by nanoparticles.
// Energies need not be sorted or unique.
type ExternalCurve struct {
	Energies  []float64 //eV
	Lifetimes []float64 //s
}

// Scenario is one variant of a calculation on a Material.
type Scenario struct {
	Name      string
	Direction string //label only, e.g. the crystal direction the band path was taken along
	Porosity  float64
	Carriers  CarrierSource
	External  *ExternalCurve //nil means no external mechanism
	//Use the Kane correction for the phonon lifetimes (and, with DegenerateScreening,
	//the non-parabolic screening).
	NonParabolic bool
	//Use DegenerateScreeningLength instead of DebyeLength.
	DegenerateScreening bool
	//A zero value means DefaultWeights.
	Weights Weights
}

// Result holds every intermediate quantity of a Run, so they can be inspected or
// reused (e.g. the Kernel and Tau by a scan).
type Result struct {
	RunID        string
	Scenario     Scenario
	DoS          *DoS
	Fermi        *Solution
	Screening    []float64  //m
	TauPhonon    *mat.Dense //s, one row per temperature
	TauImpurity  *mat.Dense
	TauExternal  *mat.Dense //nil without external mechanism
	Tau          *mat.Dense //Matthiessen total
	Kernel       *Kernel
	Coefficients *Coefficients
}

func (m *Material) check() error {
	if m.Grid == nil || m.DoS == nil {
		return newError(ErrShape, "Run", "material %q needs a grid and a DoS", m.Name)
	}
	if m.DoS.grid != m.Grid && !floats.Equal(m.DoS.grid.e, m.Grid.e) {
		return newError(ErrShape, "Run", "the DoS of material %q is sampled on a different energy grid", m.Name)
	}
	if err := m.Grid.Check("Run", m.Velocity); err != nil {
		return err
	}
	if err := m.T.Check(); err != nil {
		return errDecorate(err, "Run")
	}
	if m.Alpha != nil {
		return m.T.checkPerTemperature("Run", m.Alpha)
	}
	return nil
}

// Run computes the transport coefficients of the material under the scenario: it scales the DoS by the
// porosity, solves the Fermi level for the scenario's carriers, computes screening and lifetimes, combines
// them with Matthiessen's rule and integrates the transport moments.
func Run(m *Material, s Scenario) (*Result, error) {
	if err := m.check(); err != nil {
		return nil, err
	}
	if s.Carriers == nil {
		return nil, newError(ErrShape, "Run", "scenario %q has no carrier source", s.Name)
	}
	if s.NonParabolic && m.Alpha == nil {
		return nil, newError(ErrShape, "Run", "scenario %q is non-parabolic but material %q has no non-parabolicity", s.Name, m.Name)
	}
	w := s.Weights
	if w == (Weights{}) {
		w = DefaultWeights()
	}
	c := m.Constants
	if c == (Constants{}) {
		c = DefaultConstants()
	}
	if !(c.KB > 0 && c.HBar > 0 && c.E2C > 0 && c.Eps0 > 0 && c.Me > 0) {
		return nil, newError(ErrShape, "Run", "material %q has non-positive physical constants", m.Name)
	}
	l := Logger(m.Log).WithFields(log.Fields{"material": m.Name, "scenario": s.Name})
	res := &Result{RunID: uuid.New().String(), Scenario: s}
	l = l.WithField("run", res.RunID)

	target, err := s.Carriers.Concentration(m.T)
	if err != nil {
		return nil, errDecorate(err, "Run")
	}
	res.DoS, err = DoSFromValues(m.Grid, m.DoS.d, s.Porosity)
	if err != nil {
		return nil, errDecorate(err, "Run")
	}
	so := m.Solver
	if so.Log == nil {
		so.Log = m.Log
	}
	res.Fermi, err = SolveFermiLevel(res.DoS, target, m.T, c, m.Seed, so)
	if err != nil {
		return nil, errDecorate(err, "Run")
	}
	l.WithFields(log.Fields{"Ef": res.Fermi.Ef, "n": res.Fermi.N}).Info("Fermi level solved")

	var alpha []float64
	if s.NonParabolic {
		alpha = m.Alpha
	}
	if s.DegenerateScreening {
		res.Screening, err = DegenerateScreeningLength(res.Fermi.Ef, m.T, ScreeningModel{Dielectric: m.Dielectric, Mass: m.Mass, Alpha: alpha, Table: m.Seed.Table}, c)
	} else {
		res.Screening, err = DebyeLength(res.Fermi.N, m.T, m.Dielectric, c)
	}
	if err != nil {
		return nil, errDecorate(err, "Run")
	}

	p := m.Phonon
	p.Alpha = alpha
	pb, npb, err := PhononLifetimes(res.DoS, m.T, p, c)
	if err != nil {
		return nil, errDecorate(err, "Run")
	}
	res.TauPhonon = pb
	if npb != nil {
		res.TauPhonon = npb
	}
	res.TauImpurity, err = ImpurityLifetimes(res.DoS, res.Screening, res.Fermi.N, m.T, m.Dielectric, c)
	if err != nil {
		return nil, errDecorate(err, "Run")
	}
	mechs := []Mechanism{
		{Name: "phonon", Tau: res.TauPhonon, Weight: w.Phonon},
		{Name: "impurity", Tau: res.TauImpurity, Weight: w.Impurity},
	}
	if s.External != nil {
		res.TauExternal, err = ExternalLifetime(m.Grid, s.External.Energies, s.External.Lifetimes)
		if err != nil {
			return nil, errDecorate(err, "Run")
		}
		mechs = append(mechs, Mechanism{Name: "external", Tau: res.TauExternal, Weight: w.External})
	}
	res.Tau, err = Matthiessen(m.Grid, mechs...)
	if err != nil {
		return nil, errDecorate(err, "Run")
	}
	res.Kernel, err = NewKernel(res.DoS, m.Velocity, res.Fermi.Ef, m.T, c)
	if err != nil {
		return nil, errDecorate(err, "Run")
	}
	res.Coefficients, err = res.Kernel.Coefficients(res.Tau)
	if err != nil {
		return nil, errDecorate(err, "Run")
	}
	l.WithFields(log.Fields{
		"sigma":   res.Coefficients.Sigma,
		"seebeck": res.Coefficients.Seebeck,
		"pf":      res.Coefficients.PowerFactor,
	}).Info("transport coefficients")
	return res, nil
}

// RunAll runs every scenario on the material, in order, and stops at the first failure.
func RunAll(m *Material, scenarios ...Scenario) ([]*Result, error) {
	ret := make([]*Result, 0, len(scenarios))
	for _, s := range scenarios {
		r, err := Run(m, s)
		if err != nil {
			Logger(m.Log).WithField("scenario", s.Name).Warn("scenario failed")
			return ret, errDecorate(err, "RunAll")
		}
		ret = append(ret, r)
	}
	return ret, nil
}
