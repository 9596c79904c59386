/*
 * fermi.go, part of gothermo.
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
	"fmt"
	"math"

	"github.com/rmera/gothermo/fdint"
	log "github.com/sirupsen/logrus"
)

//The Fermi level is obtained in two phases. Seed gives an analytic estimate from
//a simplified band, Refine solves the carrier balance against the actual DoS
//starting from it. SolveFermiLevel just chains both.

// CarrierIntegral returns the electron concentration (1/m^3), Int DoS(E) f(E,ef,T) dE,
// for a chemical potential ef (eV) at temperature T (K).
func CarrierIntegral(D *DoS, ef, T float64, c Constants) float64 {
	return carriers(D, ef, c.KT(T), make([]float64, D.Len()))
}

// carriers is CarrierIntegral with a scratch buffer for the integrand.
func carriers(D *DoS, ef, kT float64, buf []float64) float64 {
	for i, e := range D.grid.e {
		if D.d[i] == 0 {
			buf[i] = 0
			continue
		}
		buf[i] = D.d[i] * FermiFunction(e, ef, kT)
	}
	return D.grid.Integrate(buf)
}

// SeedModel is the simplified band used for the analytic estimate of the Fermi level.
type SeedModel struct {
	//Nc = NcCoeff T^3/2 (1/m^3). If zero, the effective density of states of the actual
	//DoS, Int DoS(E) exp(-E/kT) dE, is used.
	NcCoeff float64
	//If not nil, the intrinsic carriers are added to the target.
	Intrinsic *Intrinsic
	//If not nil, the reduced potential is obtained inverting F_1/2 from the table,
	//otherwise the Joyce-Dixon approximation is used.
	Table *fdint.Table
}

// Seed is the typed output of the analytic phase. Everything has one element per temperature.
type Seed struct {
	Target     []float64 //concentration the refinement has to reproduce, extrinsic + intrinsic, 1/m^3
	Intrinsic  []float64 //intrinsic part of Target, zeros if not modeled
	Nc         []float64 //effective density of states, 1/m^3
	JoyceDixon []float64 //reduced potential from the Joyce-Dixon approximation
	Eta        []float64 //reduced potential used for the seed
	Ef         []float64 //kT*Eta, eV
}

// JoyceDixon returns the reduced chemical potential for a ratio r=n/Nc,
// ln r + r/sqrt(8) + (3/16 - sqrt(3)/9) r^2.
func JoyceDixon(r float64) float64 {
	return math.Log(r) + r/math.Sqrt(8) + (3.0/16.0-math.Sqrt(3)/9.0)*r*r
}

// Seed computes the analytic estimate of the Fermi level for the extrinsic concentration
// target (one per temperature).
func (S SeedModel) Seed(D *DoS, target []float64, T Temperatures, c Constants) (*Seed, error) {
	if err := T.Check(); err != nil {
		return nil, errDecorate(err, "Seed")
	}
	if err := T.checkPerTemperature("Seed", target); err != nil {
		return nil, err
	}
	n := len(T)
	ret := &Seed{
		Target:     make([]float64, n),
		Intrinsic:  make([]float64, n),
		Nc:         make([]float64, n),
		JoyceDixon: make([]float64, n),
		Eta:        make([]float64, n),
		Ef:         make([]float64, n),
	}
	if S.Intrinsic != nil {
		ret.Intrinsic = S.Intrinsic.Concentration(T, c)
	}
	buf := make([]float64, D.Len())
	for i, t := range T {
		if !(target[i] > 0) || math.IsInf(target[i], 0) {
			return nil, newError(ErrShape, "Seed", "invalid target concentration %g at T=%g", target[i], t)
		}
		kT := c.KT(t)
		ret.Target[i] = target[i] + ret.Intrinsic[i]
		if S.NcCoeff > 0 {
			ret.Nc[i] = S.NcCoeff * math.Pow(t, 1.5)
		} else {
			for j, e := range D.grid.e {
				buf[j] = D.d[j] * math.Exp(-e/kT)
			}
			ret.Nc[i] = D.grid.Integrate(buf)
		}
		if !(ret.Nc[i] > 0) {
			return nil, newError(ErrShape, "Seed", "zero effective density of states at T=%g", t)
		}
		r := ret.Target[i] / ret.Nc[i]
		ret.JoyceDixon[i] = JoyceDixon(r)
		ret.Eta[i] = ret.JoyceDixon[i]
		if S.Table != nil {
			eta, err := S.Table.InverseHalf(r)
			if err != nil {
				return nil, newError(ErrShape, "Seed", "%s", err.Error())
			}
			ret.Eta[i] = eta
		}
		ret.Ef[i] = kT * ret.Eta[i]
	}
	return ret, nil
}

// SolverOptions controls the self-consistent refinement.
type SolverOptions struct {
	RelTol    float64 //relative error allowed in the concentration
	MaxIter   int     //iterations of the root finder per temperature
	Window    float64 //half width (eV) of the first bracket around the seed
	MaxExpand int     //times the bracket can be doubled before giving up
	Log       log.FieldLogger
}

// DefaultSolverOptions returns a relative tolerance of 1e-6, 200 iterations and
// a first bracket of +-0.2 eV around the seed.
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{RelTol: 1e-6, MaxIter: 200, Window: 0.2, MaxExpand: 60}
}

func (o SolverOptions) withDefaults() SolverOptions {
	d := DefaultSolverOptions()
	if o.RelTol > 0 {
		d.RelTol = o.RelTol
	}
	if o.MaxIter > 0 {
		d.MaxIter = o.MaxIter
	}
	if o.Window > 0 {
		d.Window = o.Window
	}
	if o.MaxExpand > 0 {
		d.MaxExpand = o.MaxExpand
	}
	d.Log = o.Log
	return d
}

// Solution is the self-consistent Fermi level. N is the concentration obtained by
// integrating the DoS at Ef, which is what every downstream quantity should use.
type Solution struct {
	Ef         []float64 //eV
	N          []float64 //1/m^3
	Target     []float64 //1/m^3
	Iterations []int
	Seed       *Seed
}

// Refine solves Int DoS(E) f(E,Ef,T) dE = seed.Target for Ef at each temperature, independently,
// starting from the seed. The integral increases monotonically with Ef, so the root is bracketed
// around the seed and found with the Illinois variant of regula falsi on the logarithm of the
// concentration, falling back to bisection. A temperature that doesn't reach the tolerance within
// the iteration cap produces a *ConvergenceError; one whose target can't be bracketed, an ErrBracket error.
func Refine(D *DoS, seed *Seed, T Temperatures, c Constants, o SolverOptions) (*Solution, error) {
	if seed == nil {
		return nil, newError(ErrShape, "Refine", "nil seed")
	}
	if err := T.Check(); err != nil {
		return nil, errDecorate(err, "Refine")
	}
	if err := T.checkPerTemperature("Refine", seed.Target, seed.Ef); err != nil {
		return nil, err
	}
	o = o.withDefaults()
	l := Logger(o.Log)
	n := len(T)
	sol := &Solution{
		Ef:         make([]float64, n),
		N:          make([]float64, n),
		Target:     append([]float64(nil), seed.Target...),
		Iterations: make([]int, n),
		Seed:       seed,
	}
	buf := make([]float64, D.Len())
	for i, t := range T {
		ef, conc, it, err := solveOne(D, seed.Target[i], c.KT(t), seed.Ef[i], o, buf)
		if err != nil {
			switch e := err.(type) {
			case *ConvergenceError:
				e.Index = i
				e.Temperature = t
			case *TError:
				e.message += fmt.Sprintf(" at T=%g K", t)
			}
			return nil, errDecorate(err, "Refine")
		}
		sol.Ef[i], sol.N[i], sol.Iterations[i] = ef, conc, it
		l.WithFields(log.Fields{
			"T":          t,
			"seed":       seed.Ef[i],
			"Ef":         ef,
			"n":          conc,
			"iterations": it,
		}).Debug("Fermi level converged")
	}
	return sol, nil
}

// SolveFermiLevel runs Seed and Refine.
func SolveFermiLevel(D *DoS, target []float64, T Temperatures, c Constants, model SeedModel, o SolverOptions) (*Solution, error) {
	seed, err := model.Seed(D, target, T, c)
	if err != nil {
		return nil, errDecorate(err, "SolveFermiLevel")
	}
	sol, err := Refine(D, seed, T, c, o)
	return sol, errDecorate(err, "SolveFermiLevel")
}

// solveOne finds the Fermi level for one temperature.
func solveOne(D *DoS, target, kT, seed float64, o SolverOptions, buf []float64) (ef, conc float64, iter int, err error) {
	if !(target > 0) || math.IsInf(target, 0) {
		return 0, 0, 0, newError(ErrShape, "solveOne", "invalid target concentration %g", target)
	}
	if math.IsNaN(seed) || math.IsInf(seed, 0) {
		seed = 0
	}
	ltarget := math.Log(target)
	h := func(x float64) (float64, float64) {
		n := carriers(D, x, kT, buf)
		return math.Log(n) - ltarget, n //log(0)=-Inf is fine, it is handled below
	}
	converged := func(n float64) bool {
		return math.Abs(n-target) <= o.RelTol*target
	}
	//bracket
	a, b := seed-o.Window, seed+o.Window
	ha, na := h(a)
	hb, nb := h(b)
	w := o.Window
	for k := 0; ha > 0 && k < o.MaxExpand; k++ {
		w *= 2
		b, hb, nb = a, ha, na
		a -= w
		ha, na = h(a)
	}
	for k := 0; hb < 0 && k < o.MaxExpand; k++ {
		w *= 2
		a, ha, na = b, hb, nb
		b += w
		hb, nb = h(b)
	}
	if !(ha <= 0 && hb >= 0) {
		return 0, 0, 0, newError(ErrBracket, "solveOne", "target %g 1/m^3 not in [%g,%g] reachable with Ef in [%g,%g] eV", target, na, nb, a, b)
	}
	if converged(na) {
		return a, na, 0, nil
	}
	if converged(nb) {
		return b, nb, 0, nil
	}
	side := 0
	x, nx := a, na
	for iter = 1; iter <= o.MaxIter; iter++ {
		if isFinite(ha) && isFinite(hb) && hb != ha {
			x = (a*hb - b*ha) / (hb - ha)
		}
		if !(x > a && x < b) || !isFinite(ha) || !isFinite(hb) {
			x = a + (b-a)/2
		}
		var hx float64
		hx, nx = h(x)
		if converged(nx) {
			return x, nx, iter, nil
		}
		if hx < 0 {
			a, ha = x, hx
			if side == -1 {
				hb /= 2
			}
			side = -1
		} else {
			b, hb = x, hx
			if side == 1 {
				ha /= 2
			}
			side = 1
		}
		if b-a <= 1e-15*math.Max(1, math.Abs(x)) {
			break //the bracket can't shrink any more in floating point
		}
	}
	return 0, 0, 0, &ConvergenceError{Ef: x, RelErr: math.Abs(nx-target) / target, Iterations: iter - 1, deco: []string{"solveOne"}}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
