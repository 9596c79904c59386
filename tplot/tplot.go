/*
 * tplot.go, part of gothermo.
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

// Package tplot draws transport coefficients against temperature, and the power factor
// surfaces of a scan, with gonum/plot.
package tplot

import (
	"fmt"
	"math"

	thermo "github.com/rmera/gothermo"
	"github.com/rmera/gothermo/scan"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Quantity selects a transport coefficient.
type Quantity int

const (
	Sigma Quantity = iota
	Seebeck
	PowerFactor
	Kappa
	Lorenz
)

// String returns the axis label of the quantity.
func (q Quantity) String() string {
	switch q {
	case Sigma:
		return "Conductivity (S/m)"
	case Seebeck:
		return "Seebeck (V/K)"
	case PowerFactor:
		return "Power factor (W/m K^2)"
	case Kappa:
		return "Electronic thermal conductivity (W/m K)"
	case Lorenz:
		return "Lorenz number (V^2/K^2)"
	}
	return fmt.Sprintf("Quantity(%d)", int(q))
}

func (q Quantity) values(C *thermo.Coefficients) []float64 {
	switch q {
	case Sigma:
		return C.Sigma
	case Seebeck:
		return C.Seebeck
	case PowerFactor:
		return C.PowerFactor
	case Kappa:
		return C.Kappa
	case Lorenz:
		return C.Lorenz
	}
	return nil
}

// Series is a named curve. Measured data, which is only drawn for comparison, should
// have Points set.
type Series struct {
	Name   string
	X, Y   []float64
	Points bool
}

// FromCoefficients returns the quantity q of C against temperature.
func FromCoefficients(name string, q Quantity, C *thermo.Coefficients) Series {
	return Series{Name: name, X: append([]float64(nil), C.T...), Y: append([]float64(nil), q.values(C)...)}
}

func xys(s Series) (plotter.XYs, error) {
	if len(s.X) != len(s.Y) || len(s.X) == 0 {
		return nil, fmt.Errorf("tplot: series %q has %d x and %d y values", s.Name, len(s.X), len(s.Y))
	}
	pts := make(plotter.XYs, len(s.X))
	for i := range s.X {
		pts[i].X = s.X[i]
		pts[i].Y = s.Y[i]
	}
	return pts, nil
}

// Coefficients plots the curves against temperature and saves the plot to filename. The format
// is taken from the extension.
func Coefficients(q Quantity, title, filename string, curves ...Series) error {
	if len(curves) == 0 {
		return fmt.Errorf("tplot: nothing to plot")
	}
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = "Temperature (K)"
	p.Y.Label.Text = q.String()
	p.Add(plotter.NewGrid())
	for i, c := range curves {
		pts, err := xys(c)
		if err != nil {
			return err
		}
		if c.Points {
			s, err := plotter.NewScatter(pts)
			if err != nil {
				return err
			}
			s.GlyphStyle.Color = plotutil.Color(i)
			s.GlyphStyle.Shape = plotutil.Shape(i)
			p.Add(s)
			p.Legend.Add(c.Name, s)
			continue
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		l.LineStyle.Color = plotutil.Color(i)
		l.LineStyle.Width = vg.Points(2)
		p.Add(l)
		p.Legend.Add(c.Name, l)
	}
	p.Legend.Top = true
	return p.Save(6*vg.Inch, 5*vg.Inch, filename)
}

// surfaceGrid shows a U x tau0 matrix as a plotter.GridXYZ, with U on the x axis and
// log10(tau0) on the y axis.
type surfaceGrid struct {
	m    *mat.Dense
	u    []float64
	tau0 []float64
}

func (g surfaceGrid) Dims() (c, r int)   { return len(g.u), len(g.tau0) }
func (g surfaceGrid) Z(c, r int) float64 { return g.m.At(c, r) }
func (g surfaceGrid) X(c int) float64    { return g.u[c] }
func (g surfaceGrid) Y(r int) float64    { return math.Log10(g.tau0[r]) }

// Surface draws the power factor of the scan at the ti-th temperature as a heat map and saves
// it to filename. The scan needs at least 2 values of each parameter.
func Surface(S *scan.Surface, ti int, title, filename string) error {
	if len(S.U) < 2 || len(S.Tau0) < 2 {
		return fmt.Errorf("tplot: a %dx%d scan can't be drawn as a surface", len(S.U), len(S.Tau0))
	}
	if ti < 0 || ti >= len(S.T) {
		return fmt.Errorf("tplot: temperature index %d out of range", ti)
	}
	for _, t := range S.Tau0 {
		if !(t > 0) {
			return fmt.Errorf("tplot: non-positive lifetime %g", t)
		}
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s, T=%g K", title, S.T[ti])
	p.X.Label.Text = "U (eV)"
	p.Y.Label.Text = "log10 tau0 (s)"
	h := plotter.NewHeatMap(surfaceGrid{m: S.PowerFactor(ti), u: S.U, tau0: S.Tau0}, palette.Heat(16, 1))
	p.Add(h)
	return p.Save(6*vg.Inch, 5*vg.Inch, filename)
}
