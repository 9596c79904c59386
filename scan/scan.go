/*
 * scan.go, part of gothermo.
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

// Package scan sweeps a phenomenological scattering mechanism over a grid of its two
// parameters, a strength U and a lifetime tau0, and collects the transport coefficients
// at every point. Points are independent and are evaluated concurrently.
package scan

import (
	"context"
	"fmt"
	"math"
	"runtime"

	thermo "github.com/rmera/gothermo"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Mechanism fills dst with the lifetimes (s) at the energies E (eV) of a scattering
// channel with parameters U and tau0. It must not keep or modify E.
type Mechanism func(U, tau0 float64, E, dst []float64)

// Filtering is an energy filter: carriers below U scatter with lifetime tau0, those above
// are not affected.
func Filtering(U, tau0 float64, E, dst []float64) {
	for i, e := range E {
		if e < U {
			dst[i] = tau0
		} else {
			dst[i] = math.Inf(1)
		}
	}
}

// Options for Run.
type Options struct {
	U    []float64 //eV
	Tau0 []float64 //s
	//Matthiessen weights of the baseline lifetime and of the scanned mechanism. 0 means 1.
	BaselineWeight  int
	MechanismWeight int
	Mechanism       Mechanism //nil means Filtering
	Workers         int       //0 means GOMAXPROCS
	Log             log.FieldLogger
}

// Surface holds the coefficients at each (U, tau0) point.
type Surface struct {
	U      []float64
	Tau0   []float64
	T      thermo.Temperatures
	Points []*thermo.Coefficients //len(U)*len(Tau0), U is the slow index
}

// At returns the coefficients for U[i], Tau0[j].
func (S *Surface) At(i, j int) *thermo.Coefficients {
	return S.Points[i*len(S.Tau0)+j]
}

func (S *Surface) matrix(ti int, f func(*thermo.Coefficients) []float64) *mat.Dense {
	m := mat.NewDense(len(S.U), len(S.Tau0), nil)
	for i := range S.U {
		for j := range S.Tau0 {
			m.Set(i, j, f(S.At(i, j))[ti])
		}
	}
	return m
}

// PowerFactor returns the power factor surface for the ti-th temperature, one row per U
// and one column per tau0.
func (S *Surface) PowerFactor(ti int) *mat.Dense {
	return S.matrix(ti, func(c *thermo.Coefficients) []float64 { return c.PowerFactor })
}

// Seebeck is like PowerFactor, for the Seebeck coefficient.
func (S *Surface) Seebeck(ti int) *mat.Dense {
	return S.matrix(ti, func(c *thermo.Coefficients) []float64 { return c.Seebeck })
}

// Sigma is like PowerFactor, for the conductivity.
func (S *Surface) Sigma(ti int) *mat.Dense {
	return S.matrix(ti, func(c *thermo.Coefficients) []float64 { return c.Sigma })
}

// Best returns the indexes of the (U, tau0) point with the largest power factor at the
// ti-th temperature, and that power factor.
func (S *Surface) Best(ti int) (i, j int, pf float64) {
	pf = math.Inf(-1)
	for a := range S.U {
		for b := range S.Tau0 {
			if v := S.At(a, b).PowerFactor[ti]; v > pf {
				i, j, pf = a, b, v
			}
		}
	}
	return i, j, pf
}

// Arange returns min, min+step, ... excluding max.
func Arange(min, max, step float64) []float64 {
	if !(step > 0) || !(max > min) {
		return nil
	}
	n := int(math.Ceil((max - min) / step))
	ret := make([]float64, n)
	for i := range ret {
		ret[i] = min + float64(i)*step
	}
	return ret
}

// Run combines, at every (U, tau0) point, the baseline lifetimes with the mechanism through
// Matthiessen's rule and integrates them with the kernel K. baseline is shaped as the lifetimes
// that K.Coefficients takes. The kernel and the baseline are only read, so each point is computed
// in its own goroutine with its own buffers, at most o.Workers at a time. The first error cancels
// the remaining points and is returned. The result doesn't depend on the number of workers.
func Run(ctx context.Context, K *thermo.Kernel, baseline *mat.Dense, o Options) (*Surface, error) {
	if K == nil || baseline == nil {
		return nil, fmt.Errorf("scan: nil kernel or baseline: %w", thermo.ErrShape)
	}
	if len(o.U) == 0 || len(o.Tau0) == 0 {
		return nil, fmt.Errorf("scan: empty grid, %d U and %d tau0 values: %w", len(o.U), len(o.Tau0), thermo.ErrShape)
	}
	mech := o.Mechanism
	if mech == nil {
		mech = Filtering
	}
	bw, mw := o.BaselineWeight, o.MechanismWeight
	if bw == 0 {
		bw = 1
	}
	if mw == 0 {
		mw = 1
	}
	workers := o.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	l := thermo.Logger(o.Log)
	G := K.Grid()
	E := G.Energies()
	S := &Surface{
		U:      append([]float64(nil), o.U...),
		Tau0:   append([]float64(nil), o.Tau0...),
		T:      append(thermo.Temperatures(nil), K.T...),
		Points: make([]*thermo.Coefficients, len(o.U)*len(o.Tau0)),
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, u := range S.U {
		for j, t0 := range S.Tau0 {
			idx := i*len(S.Tau0) + j
			u, t0 := u, t0
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				tau := make([]float64, len(E))
				mech(u, t0, E, tau)
				tot, err := thermo.Matthiessen(G,
					thermo.Mechanism{Name: "baseline", Tau: baseline, Weight: bw},
					thermo.Mechanism{Name: "scanned", Tau: mat.NewDense(1, len(tau), tau), Weight: mw})
				if err != nil {
					return fmt.Errorf("scan: U=%g tau0=%g: %w", u, t0, err)
				}
				C, err := K.Coefficients(tot)
				if err != nil {
					return fmt.Errorf("scan: U=%g tau0=%g: %w", u, t0, err)
				}
				S.Points[idx] = C
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	l.WithFields(log.Fields{"points": len(S.Points), "workers": workers}).Info("scan finished")
	return S, nil
}
