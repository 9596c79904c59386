/*
 * screening.go, part of gothermo.
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

	"github.com/rmera/gothermo/fdint"
)

// DebyeLength returns the non-degenerate screening length (m) for each temperature,
// sqrt(eps eps0 kB T/(e^2 n)), for carrier concentrations n (1/m^3) and the relative
// dielectric constant dielectric.
func DebyeLength(n []float64, T Temperatures, dielectric float64, c Constants) ([]float64, error) {
	if err := T.Check(); err != nil {
		return nil, errDecorate(err, "DebyeLength")
	}
	if err := T.checkPerTemperature("DebyeLength", n); err != nil {
		return nil, err
	}
	if !(dielectric > 0) {
		return nil, newError(ErrShape, "DebyeLength", "invalid dielectric constant %g", dielectric)
	}
	ld := make([]float64, len(T))
	for i, t := range T {
		if !(n[i] > 0) || math.IsInf(n[i], 0) {
			return nil, newError(ErrShape, "DebyeLength", "invalid carrier concentration %g at T=%g", n[i], t)
		}
		//kT in eV times e gives J, one of the e^2 cancels.
		ld[i] = math.Sqrt(dielectric * c.Eps0 * c.KT(t) / (c.E2C * n[i]))
	}
	return ld, nil
}

// ScreeningModel holds what the degenerate, non-parabolic screening length needs besides
// the Fermi level.
type ScreeningModel struct {
	Dielectric float64      //relative dielectric constant
	Mass       float64      //conduction band effective mass at the band edge, kg
	Alpha      []float64    //non-parabolicity, 1/eV, one per temperature. nil means parabolic.
	Table      *fdint.Table //nil means fdint.Default()
}

// DegenerateScreeningLength returns the screening length (m) for each temperature, from
//
//	1/LD^2 = e^2 Nc/(eps eps0 kB T) (F_-1/2(eta) + 15 alpha kB T/4 F_1/2(eta))
//
// with eta=ef/kT, Nc = 2(m kB T/(2 pi hbar^2))^3/2 and m = Mass(1+5 alpha kB T).
// For a non-degenerate, parabolic band it reduces to DebyeLength.
func DegenerateScreeningLength(ef []float64, T Temperatures, s ScreeningModel, c Constants) ([]float64, error) {
	if err := T.Check(); err != nil {
		return nil, errDecorate(err, "DegenerateScreeningLength")
	}
	if err := T.checkPerTemperature("DegenerateScreeningLength", ef); err != nil {
		return nil, err
	}
	if s.Alpha != nil {
		if err := T.checkPerTemperature("DegenerateScreeningLength", s.Alpha); err != nil {
			return nil, err
		}
	}
	if !(s.Dielectric > 0) || !(s.Mass > 0) {
		return nil, newError(ErrShape, "DegenerateScreeningLength", "invalid dielectric constant %g or mass %g", s.Dielectric, s.Mass)
	}
	table := s.Table
	if table == nil {
		table = fdint.Default()
	}
	hb := c.HBarSI()
	ld := make([]float64, len(T))
	for i, t := range T {
		kT := c.KT(t)
		alpha := 0.0
		if s.Alpha != nil {
			alpha = s.Alpha[i]
		}
		m := s.Mass * (1 + 5*alpha*kT)
		nc := 2 * math.Pow(m*kT*c.E2C/(2*math.Pi*hb*hb), 1.5)
		eta := ef[i] / kT
		f := table.MinusHalf(eta) + 15*alpha*kT/4*table.Half(eta)
		inv := c.E2C * nc / (s.Dielectric * c.Eps0 * kT) * f
		if !(inv > 0) || math.IsInf(inv, 0) {
			return nil, newError(ErrShape, "DegenerateScreeningLength", "screening undefined at T=%g, Ef=%g", t, ef[i])
		}
		ld[i] = 1 / math.Sqrt(inv)
	}
	return ld, nil
}
